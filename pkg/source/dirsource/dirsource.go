package dirsource

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/moldtool/mold/pkg/source"
)

const (
	templateSuffix   = "-template"
	archiveExtension = ".zip"
)

// Source resolves template packages from a local directory. The directory
// is re-scanned on every call, so externally added archives are picked up
// without restarting.
type Source struct {
	name string
	root string
}

// New creates a directory-backed source rooted at dir. The source name
// identifies the backend in provenance and messages, not a remote repo.
func New(dir string) *Source {
	return &Source{name: "local:" + dir, root: dir}
}

// Name returns the source identifier.
func (s *Source) Name() string { return s.name }

// PackageCount returns the number of distinct template names in the
// directory.
func (s *Source) PackageCount(ctx context.Context) (int, error) {
	names, err := s.List(ctx, nil)
	return len(names), err
}

// List returns the distinct template names found in the directory, sorted
// by directory order (lexicographic). Options are ignored by this backend.
func (s *Source) List(_ context.Context, _ source.ListOptions) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("scan template directory: %w", err)
	}

	var names []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		name, _, ok := splitArchiveName(entry.Name())
		if !ok || entry.IsDir() || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// Get collects all archive versions for name. Versions are reported in
// the order the archives appear on disk; the latest version is picked by
// numeric-aware comparison.
func (s *Source) Get(ctx context.Context, name string) (*source.TemplateInfo, bool, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, false, fmt.Errorf("scan template directory: %w", err)
	}

	var versions []string
	for _, entry := range entries {
		n, v, ok := splitArchiveName(entry.Name())
		if ok && !entry.IsDir() && n == name {
			versions = append(versions, v)
		}
	}
	if len(versions) == 0 {
		return nil, false, nil
	}

	latest := versions[0]
	for _, v := range versions[1:] {
		if compareVersions(v, latest) > 0 {
			latest = v
		}
	}

	info, err := source.NewTemplateInfo(s, name, latest, versions)
	if err != nil {
		return nil, false, err
	}
	return info, true, nil
}

// Has reports whether any archive for name exists in the directory.
func (s *Source) Has(ctx context.Context, name string) (bool, error) {
	_, found, err := s.Get(ctx, name)
	return found, err
}

// TemplateURL returns the file:// URL of the archive for name and version.
// Like the remote variant it is pure: the archive's existence is not
// checked.
func (s *Source) TemplateURL(name, version string) *url.URL {
	path := filepath.Join(s.root, name+templateSuffix+"-"+version+archiveExtension)
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
}

// splitArchiveName parses {name}-template-{version}.zip into its parts.
func splitArchiveName(filename string) (name, version string, ok bool) {
	base, found := strings.CutSuffix(filename, archiveExtension)
	if !found {
		return "", "", false
	}
	idx := strings.LastIndex(base, templateSuffix+"-")
	if idx <= 0 {
		return "", "", false
	}
	name = base[:idx]
	version = base[idx+len(templateSuffix)+1:]
	if version == "" {
		return "", "", false
	}
	return name, version, true
}

// compareVersions orders dotted version strings, comparing numeric
// segments numerically and anything else lexicographically.
func compareVersions(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		switch {
		case aerr == nil && berr == nil && ai != bi:
			if ai > bi {
				return 1
			}
			return -1
		case as[i] != bs[i]:
			return strings.Compare(as[i], bs[i])
		}
	}
	return len(as) - len(bs)
}

var _ source.Source = (*Source)(nil)
