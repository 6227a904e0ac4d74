package repository

import "context"

// RateRepository fetches the EUR->NOK conversion rate from an external source.
type RateRepository interface {
	// FetchEURToNOK returns the current rate. A response without the expected
	// field is an error; the caller keeps its fallback value.
	FetchEURToNOK(ctx context.Context) (float64, error)
}
