package resumark

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxFetchBytes caps how much of a remote source is read.
const maxFetchBytes = 4 << 20

// FetchRequest configures FetchSource.
type FetchRequest struct {
	URL    string
	Client *http.Client
}

// FetchSource downloads ResuMarkup source text over HTTP(S). Transport
// failures, non-2xx responses and non-text bodies wrap ErrUnreadableSource.
func FetchSource(ctx context.Context, req FetchRequest) (string, error) {
	if req.URL == "" {
		return "", fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return "", fmt.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("fetch: request: %w: %w", ErrUnreadableSource, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch: status %s: %w", resp.Status, ErrUnreadableSource)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return "", fmt.Errorf("fetch: read body: %w: %w", ErrUnreadableSource, err)
	}
	if len(body) > maxFetchBytes {
		return "", fmt.Errorf("fetch: body exceeds %d bytes: %w", maxFetchBytes, ErrUnreadableSource)
	}
	src, err := SourceText(body)
	if err != nil {
		return "", fmt.Errorf("fetch: %w: %w", ErrUnreadableSource, err)
	}
	return src, nil
}
