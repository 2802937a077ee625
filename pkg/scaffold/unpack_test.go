package scaffold

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// zipArchive builds an in-memory zip with the given name -> content entries.
func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestUnpack(t *testing.T) {
	data := zipArchive(t, map[string]string{
		"README.md":       "# hello",
		"src/main.go":     "package main",
		"config/app.toml": "name = \"app\"",
	})

	dir := filepath.Join(t.TempDir(), "project")
	if err := Unpack(data, dir); err != nil {
		t.Fatalf("Unpack() error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "src", "main.go"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(content) != "package main" {
		t.Errorf("content = %q, want %q", content, "package main")
	}
}

func TestUnpackRejectsTraversal(t *testing.T) {
	data := zipArchive(t, map[string]string{
		"../escape.txt": "nope",
	})

	dir := filepath.Join(t.TempDir(), "project")
	if err := Unpack(data, dir); err == nil {
		t.Error("Unpack() should reject entries escaping the target directory")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt")); err == nil {
		t.Error("traversal entry was written outside the target directory")
	}
}

func TestUnpackRejectsGarbage(t *testing.T) {
	if err := Unpack([]byte("not a zip"), t.TempDir()); err == nil {
		t.Error("Unpack() should fail for a malformed archive")
	}
}

func TestSafePath(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"src/main.go", true},
		{"./nested/../file", true},
		{"..", false},
		{"../x", false},
		{"a/../../x", false},
	}

	for _, tt := range tests {
		_, err := safePath("/tmp/target", tt.name)
		if (err == nil) != tt.ok {
			t.Errorf("safePath(%q) error = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}
