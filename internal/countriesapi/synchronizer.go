package countriesapi

import (
	"context"
	"log"

	"github.com/florianfabre/countrynews/internal/entities"
)

// Fetcher retrieves the remote country catalog.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]CountryInfo, error)
}

// CountryStore is the subset of the countries repository the synchronizer
// writes to and reads back from.
type CountryStore interface {
	InsertAll(countries []entities.Country) error
	GetAllCountries() ([]entities.Country, error)
}

// Synchronizer replaces the local country catalog with the remote one.
type Synchronizer struct {
	fetcher Fetcher
	store   CountryStore
}

// NewSynchronizer creates a synchronizer over the given fetcher and store.
func NewSynchronizer(fetcher Fetcher, store CountryStore) *Synchronizer {
	return &Synchronizer{
		fetcher: fetcher,
		store:   store,
	}
}

// Refresh fetches the full remote catalog, assigns zero-based sequential
// local identifiers in response order, bulk-upserts the rows, and returns
// the catalog as re-read from the store.
//
// Any failure - network, decode, remote-reported, or store - degrades to
// an empty list with a log line. No error escapes to the caller and no
// partial update is applied; an empty result is distinguishable from a
// genuinely empty catalog only through the log.
func (s *Synchronizer) Refresh(ctx context.Context) []entities.Country {
	infos, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		log.Printf("Country sync: fetch failed, catalog left as-is and empty list returned: %v", err)
		return []entities.Country{}
	}

	countries := make([]entities.Country, len(infos))
	for i, info := range infos {
		countries[i] = entities.Country{
			CountryID: i,
			Name:      info.Name,
			ISO2:      info.ISO2,
			ISO3:      info.ISO3,
			Currency:  info.Currency,
			Flag:      info.Flag,
			Capital:   info.Capital,
			DialCode:  info.DialCode,
		}
	}

	if err := s.store.InsertAll(countries); err != nil {
		log.Printf("Country sync: store write failed: %v", err)
		return []entities.Country{}
	}

	refreshed, err := s.store.GetAllCountries()
	if err != nil {
		log.Printf("Country sync: read-back failed: %v", err)
		return []entities.Country{}
	}

	log.Printf("Country sync: refreshed %d countries", len(refreshed))
	return refreshed
}
