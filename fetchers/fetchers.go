package fetchers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	rates "github.com/malusev998/exchange-rates"
)

const (
	PrivatBankURL = "https://api.privatbank.ua/p24api"

	exchangeRatesPath = "/exchange_rates"
	requestIDHeader   = "X-Request-ID"
)

var (
	ErrUnexpectedShape = errors.New("expected an array of rates or an object with exchangeRate")
)

type (
	exchangeRateEntry struct {
		Currency string `json:"currency"`
		// Rates stay raw until the row is known to be EUR or USD; other
		// rows may carry values that are not decimals.
		SaleRateNB     json.RawMessage `json:"saleRateNB"`
		PurchaseRateNB json.RawMessage `json:"purchaseRateNB"`
	}

	exchangeRateResponse struct {
		Date         string              `json:"date"`
		Bank         string              `json:"bank"`
		ExchangeRate []exchangeRateEntry `json:"exchangeRate"`
	}
)

// getData builds the archive request for one day:
// <base>/exchange_rates?json&date=DD.MM.YYYY
func getData(ctx context.Context, url string, date string) (*http.Request, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(url, "/")+exchangeRatesPath, nil)

	if err != nil {
		return nil, "", err
	}

	req.URL.RawQuery = "json&date=" + date

	requestID := uuid.New().String()

	req.Header.Add("Accept", "application/json")
	req.Header.Add(requestIDHeader, requestID)

	return req, requestID, nil
}

// decodeEntries accepts both the bare array and the envelope the live API sends.
func decodeEntries(body []byte) ([]exchangeRateEntry, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) == 0 {
		return nil, ErrUnexpectedShape
	}

	switch trimmed[0] {
	case '[':
		var entries []exchangeRateEntry

		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}

		return entries, nil
	case '{':
		var data exchangeRateResponse

		if err := json.Unmarshal(trimmed, &data); err != nil {
			return nil, err
		}

		if data.ExchangeRate == nil {
			return nil, ErrUnexpectedShape
		}

		return data.ExchangeRate, nil
	}

	return nil, ErrUnexpectedShape
}

// extract scans the entries once. A later entry for the same currency
// overwrites an earlier one.
func extract(date time.Time, entries []exchangeRateEntry) (rates.DailyRate, error) {
	daily := rates.DailyRate{Date: date.Format(rates.DateLayout)}

	for _, entry := range entries {
		switch entry.Currency {
		case rates.EUR, rates.USD:
			quote, err := entry.quote()

			if err != nil {
				return rates.DailyRate{}, fmt.Errorf("%s: %w", entry.Currency, err)
			}

			if entry.Currency == rates.EUR {
				daily.Rates.EUR = quote
			} else {
				daily.Rates.USD = quote
			}
		}
	}

	return daily, nil
}

func (e exchangeRateEntry) quote() (rates.Quote, error) {
	sale, err := decodeRate(e.SaleRateNB)

	if err != nil {
		return rates.Quote{}, err
	}

	purchase, err := decodeRate(e.PurchaseRateNB)

	if err != nil {
		return rates.Quote{}, err
	}

	return rates.Quote{Sale: sale, Purchase: purchase}, nil
}

// decodeRate returns nil for a missing or null field.
func decodeRate(raw json.RawMessage) (*rates.Rate, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var r rates.Rate

	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}

	return &r, nil
}
