package source

import (
	"context"
	"net/url"
)

// ListOptions carries backend-specific listing options.
// Recognized keys depend on the backend; the catalog backend ignores all
// options. A nil map is valid and means "defaults".
type ListOptions map[string]any

// Source is the contract every template package backend implements.
//
// Implementations are immutable after construction and safe for concurrent
// use as long as their underlying transport is. Every method performs at
// most one synchronous round trip; TemplateURL performs none.
type Source interface {
	// Name returns the repository/source identifier fixed at construction.
	Name() string

	// PackageCount returns the total number of templates the source reports.
	PackageCount(ctx context.Context) (int, error)

	// List returns the names of all available templates with any
	// backend-internal naming suffix removed. Order is backend-defined
	// and not guaranteed sorted.
	List(ctx context.Context, opts ListOptions) ([]string, error)

	// Get looks up one template by logical name. It returns found == false
	// (with a nil error) when the template does not exist, a *NoVersionsError
	// when it exists but has no published versions, and any other error when
	// the lookup could not be completed.
	Get(ctx context.Context, name string) (info *TemplateInfo, found bool, err error)

	// Has reports whether Get would succeed for name. Lookup failures
	// propagate; they are never collapsed into false.
	Has(ctx context.Context, name string) (bool, error)

	// TemplateURL derives the artifact download location for a template
	// version from the inputs alone. It is pure and deterministic: no
	// network I/O, and it cannot fail for well-formed inputs. Callers are
	// responsible for validating name and version upstream.
	TemplateURL(name, version string) *url.URL
}

// TemplateInfo describes one resolvable template package.
//
// Source is a non-owning back-reference to the backend that produced the
// info, kept for provenance (e.g. to later derive the download URL).
// Owner, Description, and InfoURL are optional; Description is set only
// when the backend supplied a non-empty value.
type TemplateInfo struct {
	Source        Source
	Name          string   // logical name, naming suffix stripped
	LatestVersion string   // most recent published version, never empty
	Versions      []string // version identifiers in the order reported
	Owner         string
	Description   string
	InfoURL       string
}

// NewTemplateInfo constructs a TemplateInfo after checking the one
// construction invariant: a template without a latest version cannot be
// resolved to an artifact, so latest must be non-empty. It returns a
// *NoVersionsError carrying name otherwise.
func NewTemplateInfo(src Source, name, latest string, versions []string) (*TemplateInfo, error) {
	if latest == "" {
		return nil, &NoVersionsError{Name: name}
	}
	return &TemplateInfo{
		Source:        src,
		Name:          name,
		LatestVersion: latest,
		Versions:      versions,
	}, nil
}
