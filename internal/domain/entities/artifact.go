// Package entities defines core domain models and data structures.
package entities

import "strings"

// Artifact represents one downloadable package file published as a release asset
type Artifact struct {
	FileName  string
	SourceURL string
}

// DigestFragment returns the trailing content-hash fragment carried by the
// source URL (e.g. "#sha256=..."), or "" when the URL has none.
func (a Artifact) DigestFragment() string {
	if i := strings.Index(a.SourceURL, "#sha256="); i >= 0 {
		return a.SourceURL[i:]
	}
	return ""
}

// PackageGroup holds every artifact that normalizes to the same package name.
// Artifacts are sorted by file name so generated output is stable across runs.
type PackageGroup struct {
	Name      string
	Artifacts []Artifact
}

// LinkEntry is one rendered anchor on a package page. DisplayName may differ
// from the artifact's real file name when a mirror rule relabeled it, and
// Href is either the original remote URL or a path relative to the package
// page pointing at the locally mirrored copy.
type LinkEntry struct {
	DisplayName  string
	Href         string
	HashFragment string
}
