package fetchers

import (
	"net/http"
	"time"
)

// Session owns the HTTP client shared by every request of one run.
// Close must be called once the run ends, whether it succeeded or not.
type Session struct {
	client *http.Client
	closed bool
}

// NewSession creates a session. A zero timeout leaves requests without a deadline.
func NewSession(timeout time.Duration) *Session {
	return &Session{
		client: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   timeout,
		},
	}
}

func (s *Session) Client() *http.Client {
	return s.client
}

func (s *Session) Close() error {
	s.client.CloseIdleConnections()
	s.closed = true

	return nil
}

func (s *Session) Closed() bool {
	return s.closed
}
