// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"
	"fmt"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
)

// ReleaseGateway lists the downloadable artifacts of the latest release
type ReleaseGateway interface {
	// ListLatestAssets fetches the latest release once and returns the
	// artifacts whose file name carries the expected archive suffix.
	// Fails with *NetworkError or *MalformedResponseError, both fatal
	// for the run.
	ListLatestAssets(ctx context.Context) ([]entities.Artifact, error)
}

// FileDownloader streams a remote file to a local path
type FileDownloader interface {
	// Download writes the body of url to dest. Partially written files are
	// removed before an error is returned.
	Download(ctx context.Context, url, dest string) error
}

// NetworkError reports a transport failure, timeout, or non-success status
// from the release API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("release listing failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError reports a release API response that is not valid
// JSON or lacks the expected assets collection.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed release response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed release response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// DownloadError reports a failed mirror download for a single artifact.
// Non-fatal: the offending link is omitted and the run continues.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of %s failed: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
