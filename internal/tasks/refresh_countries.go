package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/florianfabre/countrynews/internal/countriesapi"
)

// RefreshCountriesTask replaces the local country catalog with the remote
// one. The refresh itself never reports failure (it degrades to an empty
// list), so no retry policy applies.
type RefreshCountriesTask struct{}

// Config returns the queue configuration for catalog refresh tasks.
func (t RefreshCountriesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "refresh_countries",
		MaxAttempts: 1,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
		},
	}
}

// RefreshCountriesProcessor creates a processor function for
// RefreshCountriesTask.
func RefreshCountriesProcessor(synchronizer *countriesapi.Synchronizer) backlite.QueueProcessor[RefreshCountriesTask] {
	return func(ctx context.Context, task RefreshCountriesTask) error {
		if synchronizer == nil {
			return fmt.Errorf("synchronizer not configured")
		}

		synchronizer.Refresh(ctx)
		return nil
	}
}

// NewRefreshCountriesQueue creates a backlite queue for catalog refresh tasks.
func NewRefreshCountriesQueue(synchronizer *countriesapi.Synchronizer) backlite.Queue {
	return backlite.NewQueue(RefreshCountriesProcessor(synchronizer))
}
