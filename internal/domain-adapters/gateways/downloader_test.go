package gateways

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStreamDownloader_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		//nolint:errcheck // Test handler write
		w.Write([]byte("wheel bytes"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "pkg-1.0-py3-none-any.whl")
	d := NewStreamDownloader(5 * time.Second)

	if err := d.Download(context.Background(), server.URL, dest); err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "wheel bytes" {
		t.Errorf("downloaded content = %q, want %q", data, "wheel bytes")
	}
}

func TestStreamDownloader_Download_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "missing.whl")
	d := NewStreamDownloader(5 * time.Second)

	if err := d.Download(context.Background(), server.URL, dest); err == nil {
		t.Fatal("Download() should fail on HTTP 404")
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("Download() left a file behind after failure: %v", err)
	}
}

func TestStreamDownloader_Download_PartialCleanup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Advertise more bytes than are sent so the copy fails mid-stream.
		w.Header().Set("Content-Length", "1000")
		//nolint:errcheck // Test handler write
		w.Write([]byte("short"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "partial.whl")
	d := NewStreamDownloader(5 * time.Second)

	if err := d.Download(context.Background(), server.URL, dest); err == nil {
		t.Fatal("Download() should fail when the body is truncated")
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("Download() left a partial file behind: %v", err)
	}
}
