package rates

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// DateLayout is DD.MM.YYYY, the date format of the PrivatBank archive API.
const DateLayout = "02.01.2006"

const (
	EUR = "EUR"
	USD = "USD"
)

type (
	// Rate is a National Bank rate as received from upstream. It keeps the
	// scale it was parsed with, so "27.0" is printed back as "27.0".
	Rate struct {
		decimal.Decimal
	}

	// Quote holds one currency's NB rates. A nil field means upstream did
	// not report that currency for the day.
	Quote struct {
		Sale     *Rate `json:"sale"`
		Purchase *Rate `json:"purchase"`
	}

	Rates struct {
		EUR Quote `json:"EUR"`
		USD Quote `json:"USD"`
	}

	DailyRate struct {
		Date  string
		Rates Rates
	}

	// Report is ordered from the most recent day to the oldest.
	Report []DailyRate
)

func NewRate(value string) (*Rate, error) {
	d, err := decimal.NewFromString(value)

	if err != nil {
		return nil, err
	}

	return &Rate{Decimal: d}, nil
}

func (r Rate) String() string {
	if exp := r.Exponent(); exp < 0 {
		return r.StringFixed(-exp)
	}

	return r.Decimal.String()
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	return r.Decimal.UnmarshalJSON(data)
}

func (d DailyRate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	key, err := json.Marshal(d.Date)
	if err != nil {
		return nil, err
	}

	value, err := json.Marshal(d.Rates)
	if err != nil {
		return nil, err
	}

	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(value)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (r Report) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]DailyRate(r))
}
