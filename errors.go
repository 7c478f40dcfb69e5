package rates

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrClient       = errors.New("client error")
	ErrServer       = errors.New("server error")
	ErrUnknown      = errors.New("unknown error")
	ErrNegativeDays = errors.New("number of days must not be negative")
)

type (
	// FetchError is returned when upstream answers with anything but 200 OK.
	FetchError struct {
		Date       string
		StatusCode int
	}

	TransportError struct {
		Date string
		Err  error
	}

	ParseError struct {
		Date string
		Err  error
	}

	ArgumentError struct {
		Value string
		Err   error
	}
)

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch data for date %s, status code: %d", e.Date, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	switch {
	case e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError:
		return ErrClient
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrUnknown
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request for date %s failed: %v", e.Date, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response for date %s: %v", e.Date, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid num_days %q: %v", e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
