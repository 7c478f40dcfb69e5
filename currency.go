package rates

import (
	"context"
	"time"
)

type (
	// Fetcher retrieves the EUR and USD NB rates for a single calendar day.
	Fetcher interface {
		Fetch(ctx context.Context, date time.Time) (DailyRate, error)
	}
)
