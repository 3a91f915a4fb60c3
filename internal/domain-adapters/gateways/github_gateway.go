// Package gateways implements the HTTP adapters for the release API and
// artifact downloads.
package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces/gateways"
)

const userAgent = "wheeldex/1.0"

// TokenFromEnv returns the GitHub API token, if any, from the environment
func TokenFromEnv() string {
	if tok := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); tok != "" {
		return tok
	}
	return strings.TrimSpace(os.Getenv("GH_TOKEN"))
}

// HTTPReleaseGateway lists release assets through the GitHub REST API
type HTTPReleaseGateway struct {
	client     *http.Client
	releaseURL string
	suffix     string
	token      string
	logger     interfaces.Logger
}

// NewHTTPReleaseGateway creates a gateway against the given latest-release
// endpoint, keeping only assets whose name ends with suffix.
func NewHTTPReleaseGateway(releaseURL, suffix string, timeout time.Duration, logger interfaces.Logger) *HTTPReleaseGateway {
	return &HTTPReleaseGateway{
		client: &http.Client{
			Timeout: timeout,
		},
		releaseURL: releaseURL,
		suffix:     suffix,
		token:      TokenFromEnv(),
		logger:     logger,
	}
}

// githubAsset represents a GitHub release asset
type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// githubRelease represents the GitHub API release format
type githubRelease struct {
	TagName string        `json:"tag_name"`
	Assets  []githubAsset `json:"assets"`
}

// ListLatestAssets fetches the latest release and extracts the artifacts
// whose name ends with the configured suffix (case-sensitive). Assets with
// a missing name or download URL are skipped with a diagnostic.
func (g *HTTPReleaseGateway) ListLatestAssets(ctx context.Context) ([]entities.Artifact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.releaseURL, nil)
	if err != nil {
		return nil, &gateways.NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &gateways.NetworkError{Err: err}
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &gateways.NetworkError{Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, &gateways.MalformedResponseError{Reason: "invalid JSON body", Err: err}
	}

	// A nil slice means the key was absent (or null), not an empty release.
	if release.Assets == nil {
		return nil, &gateways.MalformedResponseError{Reason: "missing assets collection"}
	}

	artifacts := make([]entities.Artifact, 0, len(release.Assets))
	for _, asset := range release.Assets {
		if asset.Name == "" || asset.BrowserDownloadURL == "" {
			g.logger.Warn("skipping asset with missing name or URL",
				interfaces.F("name", asset.Name),
				interfaces.F("url", asset.BrowserDownloadURL))
			continue
		}
		if !strings.HasSuffix(asset.Name, g.suffix) {
			continue
		}
		artifacts = append(artifacts, entities.Artifact{
			FileName:  asset.Name,
			SourceURL: asset.BrowserDownloadURL,
		})
	}

	g.logger.Info("listed release assets",
		interfaces.F("tag", release.TagName),
		interfaces.F("matching", len(artifacts)),
		interfaces.F("total", len(release.Assets)))

	return artifacts, nil
}
