package dirsource

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func newTemplateDir(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("zip"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestList(t *testing.T) {
	dir := newTemplateDir(t,
		"foo-template-1.0.zip",
		"foo-template-1.2.zip",
		"web-app-template-0.9.zip",
		"notes.txt",
		"plugin-1.0.zip", // no template suffix
	)

	s := New(dir)
	names, err := s.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	want := []string{"foo", "web-app"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List() = %v, want %v", names, want)
	}
}

func TestListMissingDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	if _, err := s.List(context.Background(), nil); err == nil {
		t.Error("List() should fail for a missing directory")
	}
}

func TestPackageCount(t *testing.T) {
	dir := newTemplateDir(t, "a-template-1.0.zip", "a-template-2.0.zip", "b-template-1.0.zip")
	s := New(dir)

	n, err := s.PackageCount(context.Background())
	if err != nil {
		t.Fatalf("PackageCount() error: %v", err)
	}
	if n != 2 {
		t.Errorf("PackageCount() = %d, want 2 distinct names", n)
	}
}

func TestGetPicksLatestNumerically(t *testing.T) {
	dir := newTemplateDir(t,
		"foo-template-1.9.zip",
		"foo-template-1.10.zip",
		"foo-template-1.2.zip",
	)

	s := New(dir)
	info, found, err := s.Get(context.Background(), "foo")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	// 1.10 > 1.9 numerically, which lexicographic ordering would get wrong.
	if info.LatestVersion != "1.10" {
		t.Errorf("LatestVersion = %q, want %q", info.LatestVersion, "1.10")
	}
	if len(info.Versions) != 3 {
		t.Errorf("Versions = %v, want 3 entries", info.Versions)
	}
}

func TestGetNotFound(t *testing.T) {
	s := New(newTemplateDir(t, "foo-template-1.0.zip"))

	info, found, err := s.Get(context.Background(), "bar")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if found || info != nil {
		t.Error("Get() should report not-found for an unknown name")
	}

	ok, err := s.Has(context.Background(), "bar")
	if err != nil || ok {
		t.Errorf("Has(bar) = %v, %v, want false, nil", ok, err)
	}
}

func TestTemplateURL(t *testing.T) {
	s := New("/srv/templates")
	u := s.TemplateURL("foo", "1.2")

	if u.Scheme != "file" {
		t.Errorf("Scheme = %q, want file", u.Scheme)
	}
	if !strings.HasSuffix(u.Path, "/srv/templates/foo-template-1.2.zip") {
		t.Errorf("Path = %q, want .../foo-template-1.2.zip", u.Path)
	}
}

func TestSplitArchiveName(t *testing.T) {
	tests := []struct {
		filename string
		name     string
		version  string
		ok       bool
	}{
		{"foo-template-1.2.zip", "foo", "1.2", true},
		{"web-app-template-0.9.1.zip", "web-app", "0.9.1", true},
		{"foo-template-.zip", "", "", false},
		{"foo-1.2.zip", "", "", false},
		{"foo-template-1.2.tar", "", "", false},
		{"-template-1.0.zip", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			name, version, ok := splitArchiveName(tt.filename)
			if ok != tt.ok || name != tt.name || version != tt.version {
				t.Errorf("splitArchiveName(%q) = %q, %q, %v, want %q, %q, %v",
					tt.filename, name, version, ok, tt.name, tt.version, tt.ok)
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign only
	}{
		{"1.0", "1.0", 0},
		{"1.2", "1.10", -1},
		{"2.0", "1.9", 1},
		{"1.0.1", "1.0", 1},
		{"1.0-beta", "1.0-alpha", 1},
	}

	for _, tt := range tests {
		got := compareVersions(tt.a, tt.b)
		if sign(got) != tt.want {
			t.Errorf("compareVersions(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
