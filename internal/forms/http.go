package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPSource fetches pages from a forms service over JSON/HTTP.
type HTTPSource struct {
	client  *http.Client
	baseURL string
	token   string
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// WithToken sets a bearer token sent with every request.
func WithToken(token string) HTTPOption {
	return func(s *HTTPSource) {
		s.token = token
	}
}

// NewHTTPSource creates a source talking to the forms service at baseURL.
func NewHTTPSource(baseURL string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		client:  &http.Client{},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchPage implements Source.
func (s *HTTPSource) FetchPage(ctx context.Context, q Query) (Page, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return Page{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/forms/search", bytes.NewReader(body))
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if err != nil {
			return Page{}, fmt.Errorf("forms service returned status %d but failed to read body: %w", resp.StatusCode, err)
		}
		return Page{}, fmt.Errorf("forms service error (status %d): %s", resp.StatusCode, string(msg))
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return Page{}, fmt.Errorf("decode forms page: %w", err)
	}
	return page, nil
}
