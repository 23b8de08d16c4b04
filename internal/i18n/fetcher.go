package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Fetcher retrieves the complete table of one language.
// attempt is 0 for the first try and grows on every retry.
type Fetcher interface {
	Fetch(ctx context.Context, lang string, attempt int) (Table, error)
}

// HTTPFetcher loads <BaseURL>/<lang>.json over HTTP.
// Retries carry a cache-busting query parameter so a stale cached response is not served again.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher creates a fetcher for translation files under baseURL
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch implements Fetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, lang string, attempt int) (Table, error) {
	u := f.BaseURL + "/" + url.PathEscape(lang) + ".json"
	if attempt > 0 {
		u += fmt.Sprintf("?v=%d-%d", attempt, time.Now().UnixNano())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if attempt > 0 {
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, lang)
	}

	var table Table
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("failed to parse %s translations: %w", lang, err)
	}
	return table, nil
}

// FSFetcher loads <lang>.json, <lang>.yaml or <lang>.yml from a filesystem
type FSFetcher struct {
	FS fs.FS
}

// Fetch implements Fetcher
func (f FSFetcher) Fetch(_ context.Context, lang string, _ int) (Table, error) {
	candidates := []struct {
		name      string
		unmarshal func([]byte, any) error
	}{
		{lang + ".json", json.Unmarshal},
		{lang + ".yaml", yaml.Unmarshal},
		{lang + ".yml", yaml.Unmarshal},
	}

	for _, c := range candidates {
		data, err := fs.ReadFile(f.FS, c.name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", c.name, err)
		}

		var table Table
		if err := c.unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", c.name, err)
		}
		return table, nil
	}

	return nil, fmt.Errorf("no translation file for %s: %w", lang, fs.ErrNotExist)
}
