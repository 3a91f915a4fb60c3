// Package html renders the static simple-index pages.
package html

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
)

const pageStyle = `    body{margin:40px auto;max-width:650px;line-height:1.6;font-size:18px;color:#444;padding:0 10px}
    h1,h2,h3{line-height:1.2}
    a { display: block; margin-bottom: 5px; }`

// Renderer writes simple-index HTML pages under the output root
type Renderer struct {
	outputRoot string
	owner      string
	siteName   string
}

// NewRenderer creates a renderer. owner and siteName only appear in the
// install instructions on the top-level page.
func NewRenderer(outputRoot, owner, siteName string) *Renderer {
	return &Renderer{
		outputRoot: outputRoot,
		owner:      owner,
		siteName:   siteName,
	}
}

// RenderPackagePage assembles the page listing every link of one package
func RenderPackagePage(packageName string, links []entities.LinkEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
%s
    </style>
    <title>Links for %s</title>
</head>
<body>
<h1>Links for %s</h1>
`, pageStyle, packageName, packageName)

	for _, link := range links {
		attrs := ""
		if link.HashFragment != "" {
			attrs = fmt.Sprintf(" data-requires-python=\"\" data-yanked=\"false\" %s", link.HashFragment)
		}
		fmt.Fprintf(&b, "    <a href=\"%s\"%s>%s</a><br/>\n", link.Href, attrs, link.DisplayName)
	}

	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// RenderTopPage assembles the top-level index linking every package directory.
// packageNames must already be sorted alphabetically.
func RenderTopPage(packageNames []string, owner, siteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
%s
    pre { background-color: #f0f0f0; padding: 10px; border-radius: 5px; }
    </style>
    <title>%s PyPI</title>
</head>
<body>
    <h1>%s PyPI Index</h1>
    <p>Pre-compiled Python wheels served as a static simple index.</p>
    <p>Use this index with pip:</p>
    <pre>pip install --upgrade pip
pip install --extra-index-url https://%s.github.io/%s/ SomePackage</pre>
    <h2>Packages</h2>
`, pageStyle, owner, owner, owner, siteName)

	for _, name := range packageNames {
		// Trailing slash keeps relative links on the package page resolving
		// against the package directory.
		fmt.Fprintf(&b, "    <a href=\"%s/\">%s</a><br/>\n", name, name)
	}

	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// WritePackagePage writes one package's index.html, creating its directory
// and overwriting any existing page.
func (r *Renderer) WritePackagePage(packageName string, links []entities.LinkEntry) error {
	dir := filepath.Join(r.outputRoot, packageName)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create package directory: %w", err)
	}

	page := RenderPackagePage(packageName, links)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0644); err != nil { //nolint:gosec // G306: Pages are meant to be world-readable
		return fmt.Errorf("failed to write package page: %w", err)
	}
	return nil
}

// WriteTopPage writes the top-level index.html, overwriting any existing page
func (r *Renderer) WriteTopPage(packageNames []string) error {
	page := RenderTopPage(packageNames, r.owner, r.siteName)
	if err := os.WriteFile(filepath.Join(r.outputRoot, "index.html"), []byte(page), 0644); err != nil { //nolint:gosec // G306: Pages are meant to be world-readable
		return fmt.Errorf("failed to write top-level page: %w", err)
	}
	return nil
}
