package snippets

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/verte-zerg/sniptype/internal/model"
)

const httpTimeout = 10 * time.Second

// HTTPSource fetches <baseURL>/<lang>-snippets.json.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource returns a remote source. A nil client gets a default with a timeout.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: httpTimeout}
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Fetch implements Source.
func (h *HTTPSource) Fetch(ctx context.Context, language string, level model.Level) ([]model.Snippet, error) {
	url := h.baseURL + "/" + FileName(language, ".json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			// Best-effort body close.
			_ = cerr
		}
	}()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}
	all, err := Decode(resp.Body, language, ".json")
	if err != nil {
		return nil, err
	}
	return filterLevel(all, level), nil
}
