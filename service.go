package rates

import "context"

type (
	Service interface {
		Report(ctx context.Context, days int) (Report, error)
	}
)
