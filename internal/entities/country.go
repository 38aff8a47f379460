package entities

// Country is a single entry of the synchronized country catalog.
//
// CountryID is assigned locally by the synchronizer in response order and
// is not stable across refreshes; ISO2 is the natural key and is unique
// across all rows.
type Country struct {
	CountryID int    `gorm:"primaryKey;autoIncrement:false" json:"country_id"`
	Name      string `gorm:"index;size:256" json:"name"`
	ISO2      string `gorm:"uniqueIndex;size:2" json:"iso2"`
	ISO3      string `gorm:"size:3" json:"iso3"`
	Currency  string `gorm:"size:64" json:"currency,omitempty"`
	Flag      string `gorm:"size:2048" json:"flag,omitempty"`
	Capital   string `gorm:"size:256" json:"capital,omitempty"`
	DialCode  string `gorm:"size:16" json:"dial_code,omitempty"`
}

// Favourite links a user to a country. The composite key guarantees at
// most one link per (country, user) pair; inserts replace on conflict.
// There is no cascading delete from Country or User: dangling links are
// filtered out lazily when favourites are read.
type Favourite struct {
	CountryID int  `gorm:"primaryKey;autoIncrement:false" json:"country_id"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
}
