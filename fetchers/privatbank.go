package fetchers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	rates "github.com/malusev998/exchange-rates"
)

var _ rates.Fetcher = PrivatBankFetcher{}

type PrivatBankFetcher struct {
	Client *http.Client
	URL    string
	Logger logrus.FieldLogger
}

func (p PrivatBankFetcher) Fetch(ctx context.Context, date time.Time) (rates.DailyRate, error) {
	formatted := date.Format(rates.DateLayout)

	url := p.URL

	if url == "" {
		url = PrivatBankURL
	}

	client := p.Client

	if client == nil {
		client = http.DefaultClient
	}

	req, requestID, err := getData(ctx, url, formatted)

	if err != nil {
		return rates.DailyRate{}, &rates.TransportError{Date: formatted, Err: err}
	}

	logger := p.logger().WithFields(logrus.Fields{
		"date":       formatted,
		"request_id": requestID,
	})

	logger.Debug("requesting exchange rates")

	res, err := client.Do(req)

	if err != nil {
		return rates.DailyRate{}, &rates.TransportError{Date: formatted, Err: err}
	}

	defer res.Body.Close()

	logger.WithField("status", res.StatusCode).Debug("exchange rates response")

	if res.StatusCode != http.StatusOK {
		return rates.DailyRate{}, &rates.FetchError{Date: formatted, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return rates.DailyRate{}, &rates.TransportError{Date: formatted, Err: err}
	}

	entries, err := decodeEntries(body)

	if err != nil {
		return rates.DailyRate{}, &rates.ParseError{Date: formatted, Err: err}
	}

	daily, err := extract(date, entries)

	if err != nil {
		return rates.DailyRate{}, &rates.ParseError{Date: formatted, Err: err}
	}

	return daily, nil
}

func (p PrivatBankFetcher) logger() logrus.FieldLogger {
	if p.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)

		return l
	}

	return p.Logger
}
