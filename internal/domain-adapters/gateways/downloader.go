package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// StreamDownloader downloads artifacts from URLs to local files
type StreamDownloader struct {
	client *http.Client
}

// NewStreamDownloader creates a new downloader with a bounded per-download timeout
func NewStreamDownloader(timeout time.Duration) *StreamDownloader {
	return &StreamDownloader{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Download streams the body of url to dest. On any failure a partially
// written destination file is removed before the error is returned.
func (d *StreamDownloader) Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	//nolint:gosec // G304: File path dest is function parameter for download destination
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		//nolint:errcheck,gosec // G104: Best effort cleanup of partial file
		out.Close()
		//nolint:errcheck,gosec // G104: Best effort cleanup of partial file
		os.Remove(dest)
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := out.Close(); err != nil {
		//nolint:errcheck,gosec // G104: Best effort cleanup of partial file
		os.Remove(dest)
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}
