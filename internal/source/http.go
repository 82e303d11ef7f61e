package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"advocates/internal/domain"
)

const (
	// maxErrorBody bounds how much of a failed response is kept for the error message
	maxErrorBody = 512
	// DefaultMaxBody caps the body of a successful response
	DefaultMaxBody = 32 << 20
)

// HTTPSource fetches GET <url> and decodes the {"data": [...]} envelope
type HTTPSource struct {
	url     string
	client  *http.Client
	maxBody int64
}

// NewHTTPSource creates a source for url. A zero timeout means no client timeout;
// the request context still applies.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		maxBody: DefaultMaxBody,
	}
}

func (s *HTTPSource) Name() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Advocate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch advocates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, body)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read advocates: %w", err)
	}
	if int64(len(body)) > s.maxBody {
		return nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, s.maxBody)
	}
	return Decode(bytes.NewReader(body))
}
