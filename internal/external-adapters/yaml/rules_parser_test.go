package yaml

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing rules file: %v", err)
	}
	return path
}

func TestRulesParser_ParseFile(t *testing.T) {
	path := writeRulesFile(t, `rules:
  - marker: pydantic_core
    from_tag: linux_aarch64
    to_tag: android_24_aarch64
  - marker: cryptography
    from_tag: linux_aarch64
    to_tag: android_24_aarch64
`)

	rules, err := NewRulesParser().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	want := []entities.MirrorRule{
		{Marker: "pydantic_core", FromTag: "linux_aarch64", ToTag: "android_24_aarch64"},
		{Marker: "cryptography", FromTag: "linux_aarch64", ToTag: "android_24_aarch64"},
	}
	if !reflect.DeepEqual(rules, want) {
		t.Errorf("ParseFile() = %+v, want %+v", rules, want)
	}
}

func TestRulesParser_ParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid yaml",
			content: "rules: [unclosed",
		},
		{
			name:    "no rules",
			content: "rules: []",
		},
		{
			name: "missing to_tag",
			content: `rules:
  - marker: pydantic_core
    from_tag: linux_aarch64
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRulesFile(t, tt.content)
			if _, err := NewRulesParser().ParseFile(path); err == nil {
				t.Error("ParseFile() should fail")
			}
		})
	}
}

func TestRulesParser_ParseFile_Missing(t *testing.T) {
	if _, err := NewRulesParser().ParseFile(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("ParseFile() should fail for a missing file")
	}
}
