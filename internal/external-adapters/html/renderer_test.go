package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
)

func TestRenderPackagePage(t *testing.T) {
	links := []entities.LinkEntry{
		{
			DisplayName:  "foo-1.0-py3-none-linux_aarch64.whl",
			Href:         "https://x/foo-1.0-py3-none-linux_aarch64.whl#sha256=abc",
			HashFragment: "#sha256=abc",
		},
		{
			DisplayName: "foo-2.0-py3-none-any.whl",
			Href:        "https://x/foo-2.0-py3-none-any.whl",
		},
	}

	page := RenderPackagePage("foo", links)

	if !strings.Contains(page, "<title>Links for foo</title>") {
		t.Error("page is missing the title")
	}
	want := `<a href="https://x/foo-1.0-py3-none-linux_aarch64.whl#sha256=abc" data-requires-python="" data-yanked="false" #sha256=abc>foo-1.0-py3-none-linux_aarch64.whl</a>`
	if !strings.Contains(page, want) {
		t.Errorf("page is missing the hashed link:\n%s", page)
	}
	plain := `<a href="https://x/foo-2.0-py3-none-any.whl">foo-2.0-py3-none-any.whl</a>`
	if !strings.Contains(page, plain) {
		t.Errorf("page is missing the plain link:\n%s", page)
	}
}

func TestRenderTopPage(t *testing.T) {
	page := RenderTopPage([]string{"alpha", "zeta"}, "some-owner", "wheels")

	if !strings.Contains(page, `<a href="alpha/">alpha</a>`) {
		t.Error("top page is missing the alpha link")
	}
	if !strings.Contains(page, `<a href="zeta/">zeta</a>`) {
		t.Error("top page is missing the zeta link")
	}
	if !strings.Contains(page, "https://some-owner.github.io/wheels/") {
		t.Error("top page is missing the install instructions URL")
	}
	if strings.Index(page, `href="alpha/"`) > strings.Index(page, `href="zeta/"`) {
		t.Error("top page links are not in alphabetical order")
	}
}

func TestRenderer_WritePackagePage(t *testing.T) {
	root := t.TempDir()
	r := NewRenderer(root, "owner", "site")

	links := []entities.LinkEntry{
		{DisplayName: "foo-1.0-py3-none-any.whl", Href: "https://x/foo-1.0-py3-none-any.whl"},
	}
	if err := r.WritePackagePage("foo", links); err != nil {
		t.Fatalf("WritePackagePage() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "foo", "index.html"))
	if err != nil {
		t.Fatalf("reading package page: %v", err)
	}
	if !strings.Contains(string(data), "foo-1.0-py3-none-any.whl") {
		t.Error("written page is missing the artifact link")
	}

	// Overwrites unconditionally.
	if err := r.WritePackagePage("foo", nil); err != nil {
		t.Fatalf("WritePackagePage() rewrite error = %v", err)
	}
	data, err = os.ReadFile(filepath.Join(root, "foo", "index.html"))
	if err != nil {
		t.Fatalf("re-reading package page: %v", err)
	}
	if strings.Contains(string(data), "foo-1.0-py3-none-any.whl") {
		t.Error("rewrite did not replace the existing page")
	}
}

func TestRenderer_WriteTopPage(t *testing.T) {
	root := t.TempDir()
	r := NewRenderer(root, "owner", "site")

	if err := r.WriteTopPage([]string{"foo"}); err != nil {
		t.Fatalf("WriteTopPage() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("reading top page: %v", err)
	}
	if !strings.Contains(string(data), `<a href="foo/">foo</a>`) {
		t.Error("top page is missing the package link")
	}
}

func TestRenderer_DistinctPackagePaths(t *testing.T) {
	root := t.TempDir()
	r := NewRenderer(root, "owner", "site")

	for _, name := range []string{"foo", "foo-bar", "foobar"} {
		if err := r.WritePackagePage(name, nil); err != nil {
			t.Fatalf("WritePackagePage(%q) error = %v", name, err)
		}
	}

	for _, name := range []string{"foo", "foo-bar", "foobar"} {
		if _, err := os.Stat(filepath.Join(root, name, "index.html")); err != nil {
			t.Errorf("package %q page missing: %v", name, err)
		}
	}
}
