package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLintEmbeddedContent(t *testing.T) {
	var buf bytes.Buffer
	n, err := lintContent(&buf, "")
	if err != nil {
		t.Fatalf("lintContent: %v", err)
	}
	if n != 0 {
		t.Fatalf("embedded content has %d warnings:\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "content OK") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLintReportsWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
profile:
  first_name: Ada
  portrait: /images/ada.jpg
skills:
  - { name: Go, proficiency: 150, icon: terminal }
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := lintContent(&buf, path)
	if err != nil {
		t.Fatalf("lintContent: %v", err)
	}
	if n != 1 {
		t.Fatalf("warnings = %d, want 1:\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "skills[0].proficiency") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLintMissingFile(t *testing.T) {
	_, err := lintContent(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
