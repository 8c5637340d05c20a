// Package source provides the record sources the table can load from.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Makepad-fr/postview/internal/model"
)

// DefaultURL is the public placeholder endpoint serving 100 posts.
const DefaultURL = "https://jsonplaceholder.typicode.com/posts"

// HTTP reads records with a single GET against url.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP creates an HTTP source. A nil client gets one with timeout; a
// zero timeout means none.
func NewHTTP(url string, client *http.Client, timeout time.Duration) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTP{url: url, client: client}
}

// URL is the endpoint this source reads from.
func (h *HTTP) URL() string { return h.url }

// Load fetches and decodes the JSON array of records.
func (h *HTTP) Load(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", h.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var records []model.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.Code)
}
