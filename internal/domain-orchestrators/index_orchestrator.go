// Package orchestrators coordinates the fetch, group, mirror, and render stages.
package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces/gateways"
	"github.com/tur-wheels/wheeldex/internal/domain/services"
)

// ErrNoArtifacts reports a latest release without any matching artifacts.
// The run aborts before writing anything.
var ErrNoArtifacts = errors.New("no artifacts found in latest release")

// ErrNoPackages reports that grouping yielded no package at all
var ErrNoPackages = errors.New("no packages found after grouping artifacts")

// LinkResolver resolves one artifact to its rendered link, mirroring it
// locally first when required
type LinkResolver interface {
	ResolveLink(ctx context.Context, artifact entities.Artifact) (entities.LinkEntry, error)
}

// PageWriter writes the per-package and top-level index pages
type PageWriter interface {
	WritePackagePage(packageName string, links []entities.LinkEntry) error
	WriteTopPage(packageNames []string) error
}

// IndexOrchestrator runs the whole index generation pipeline once
type IndexOrchestrator struct {
	gateway    gateways.ReleaseGateway
	resolver   LinkResolver
	writer     PageWriter
	outputRoot string
	logger     interfaces.Logger
}

// NewIndexOrchestrator creates a new index orchestrator
func NewIndexOrchestrator(gateway gateways.ReleaseGateway, resolver LinkResolver, writer PageWriter, outputRoot string, logger interfaces.Logger) *IndexOrchestrator {
	return &IndexOrchestrator{
		gateway:    gateway,
		resolver:   resolver,
		writer:     writer,
		outputRoot: outputRoot,
		logger:     logger,
	}
}

// Run executes the pipeline: list assets, group by package, resolve links
// (mirroring where a rule matches), and write one page per package plus the
// top-level page. A listing failure or an empty listing aborts before any
// output exists; a failed download omits that one link; a failed package
// directory or page write skips that one package.
func (o *IndexOrchestrator) Run(ctx context.Context) error {
	artifacts, err := o.gateway.ListLatestAssets(ctx)
	if err != nil {
		return err
	}
	if len(artifacts) == 0 {
		return ErrNoArtifacts
	}

	groups := services.GroupByPackage(artifacts, o.logger)
	if len(groups) == 0 {
		return ErrNoPackages
	}

	if err := os.MkdirAll(o.outputRoot, 0750); err != nil {
		return fmt.Errorf("failed to create output root %s: %w", o.outputRoot, err)
	}

	names := services.SortedPackageNames(groups)
	written := 0
	for _, name := range names {
		group := groups[name]

		links := make([]entities.LinkEntry, 0, len(group.Artifacts))
		for _, artifact := range group.Artifacts {
			entry, err := o.resolver.ResolveLink(ctx, artifact)
			if err != nil {
				o.logger.Warn("omitting artifact link",
					interfaces.F("file", artifact.FileName),
					interfaces.F("error", err))
				continue
			}
			links = append(links, entry)
		}

		if err := o.writer.WritePackagePage(name, links); err != nil {
			o.logger.Warn("skipping package",
				interfaces.F("package", name),
				interfaces.F("error", err))
			continue
		}
		written++
	}

	if err := o.writer.WriteTopPage(names); err != nil {
		return fmt.Errorf("failed to write top-level index: %w", err)
	}

	o.logger.Info("index generated",
		interfaces.F("packages", written),
		interfaces.F("artifacts", len(artifacts)),
		interfaces.F("output", o.outputRoot))

	return nil
}
