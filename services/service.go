package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	rates "github.com/malusev998/exchange-rates"
)

var _ rates.Service = Service{}

type Service struct {
	Fetcher rates.Fetcher
	// Now returns the first day of the report. Defaults to time.Now.
	Now    func() time.Time
	Logger logrus.FieldLogger
}

// Report fetches one day at a time, starting at Now and stepping back one
// calendar day per request. The first failure aborts the whole report.
func (s Service) Report(ctx context.Context, days int) (rates.Report, error) {
	if days < 0 {
		return nil, rates.ErrNegativeDays
	}

	now := s.Now

	if now == nil {
		now = time.Now
	}

	current := now()
	report := make(rates.Report, 0, days)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"days":  days,
			"start": current.Format(rates.DateLayout),
		}).Debug("building exchange rate report")
	}

	for i := 0; i < days; i++ {
		daily, err := s.Fetcher.Fetch(ctx, current)

		if err != nil {
			return nil, err
		}

		report = append(report, daily)
		current = current.AddDate(0, 0, -1)
	}

	return report, nil
}
