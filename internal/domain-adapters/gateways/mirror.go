package gateways

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces/gateways"
)

// Mirror relabels and locally hosts the subset of artifacts selected by its
// rules, and resolves every artifact to the link rendered on its package page.
type Mirror struct {
	downloader gateways.FileDownloader
	outputRoot string
	rules      []entities.MirrorRule
	logger     interfaces.Logger
}

// NewMirror creates a mirror writing relabeled copies directly under outputRoot
func NewMirror(downloader gateways.FileDownloader, outputRoot string, rules []entities.MirrorRule, logger interfaces.Logger) *Mirror {
	return &Mirror{
		downloader: downloader,
		outputRoot: outputRoot,
		rules:      rules,
		logger:     logger,
	}
}

// ResolveLink returns the link entry for one artifact. When a mirror rule
// matches, the artifact is first downloaded under its relabeled name; an
// existing local copy is reused without any network request. Fails with
// *gateways.DownloadError, which callers treat as "omit this one link".
func (m *Mirror) ResolveLink(ctx context.Context, artifact entities.Artifact) (entities.LinkEntry, error) {
	entry := entities.LinkEntry{
		DisplayName:  artifact.FileName,
		Href:         artifact.SourceURL,
		HashFragment: artifact.DigestFragment(),
	}

	rule, ok := m.matchRule(artifact.FileName)
	if !ok {
		return entry, nil
	}

	display := rule.Rename(artifact.FileName)
	dest := filepath.Join(m.outputRoot, display)

	switch _, err := os.Stat(dest); {
	case err == nil:
		m.logger.Debug("mirror already present", interfaces.F("file", display))
	case !errors.Is(err, fs.ErrNotExist):
		// An unreadable existing mirror is not a cue to re-download over it.
		return entities.LinkEntry{}, &gateways.DownloadError{URL: artifact.SourceURL, Err: fmt.Errorf("checking local mirror: %w", err)}
	default:
		if err := m.downloader.Download(ctx, artifact.SourceURL, dest); err != nil {
			return entities.LinkEntry{}, &gateways.DownloadError{URL: artifact.SourceURL, Err: err}
		}
		m.logger.Info("mirrored artifact",
			interfaces.F("file", artifact.FileName),
			interfaces.F("as", display))
	}

	entry.DisplayName = display
	// Package pages live one directory below the mirrored files.
	entry.Href = "../" + display
	return entry, nil
}

func (m *Mirror) matchRule(fileName string) (entities.MirrorRule, bool) {
	for _, rule := range m.rules {
		if rule.Matches(fileName) {
			return rule, true
		}
	}
	return entities.MirrorRule{}, false
}
