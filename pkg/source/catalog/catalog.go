package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/moldtool/mold/pkg/httputil"
	"github.com/moldtool/mold/pkg/source"
)

// TemplateSuffix distinguishes template packages from other artifacts
// hosted under the same repository.
const TemplateSuffix = "-template"

// Default service locations. Both can be overridden via [Config].
const (
	DefaultAPIBase      = "https://api.templatehub.io"
	DefaultDownloadBase = "https://dl.templatehub.io"
)

// Config configures a catalog Source.
type Config struct {
	// Repo is the repository identifier on the catalog service. Required.
	Repo string

	// APIBase is the catalog API base URL. Defaults to DefaultAPIBase.
	APIBase string

	// DownloadBase is the artifact host used by TemplateURL.
	// Defaults to DefaultDownloadBase.
	DownloadBase string

	// HTTPClient overrides the transport. If nil, a default client with
	// proxy settings from the environment is used.
	HTTPClient *http.Client
}

// Source resolves template packages from the remote catalog service.
// It is immutable after construction; safety for concurrent use is
// delegated to the underlying HTTP client. Every call is a single
// synchronous round trip with no caching and no retries.
type Source struct {
	repo     string
	client   *httputil.Client
	download *url.URL
}

// New creates a catalog Source for the configured repository.
func New(cfg Config) (*Source, error) {
	if cfg.Repo == "" {
		return nil, fmt.Errorf("catalog: repository name is required")
	}
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.DownloadBase == "" {
		cfg.DownloadBase = DefaultDownloadBase
	}

	client, err := httputil.NewClient(cfg.APIBase, cfg.HTTPClient)
	if err != nil {
		return nil, err
	}
	download, err := url.Parse(cfg.DownloadBase)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse download base %q: %w", cfg.DownloadBase, err)
	}

	return &Source{repo: cfg.Repo, client: client, download: download}, nil
}

// Name returns the repository identifier fixed at construction.
func (s *Source) Name() string { return s.repo }

// PackageCount fetches the repository metadata and returns its package
// count. The field is returned as reported; a missing or malformed field
// surfaces as whatever the decoder produced (zero or a decode error), not
// as a distinct condition.
func (s *Source) PackageCount(ctx context.Context) (int, error) {
	var body struct {
		PackageCount int `json:"package_count"`
	}
	if err := s.client.GetJSON(ctx, &body, "repos", s.repo); err != nil {
		return 0, err
	}
	return body.PackageCount, nil
}

// List returns the logical names of all template packages in the
// repository: catalog entries carrying the template suffix, suffix
// stripped, in the order the catalog reported them. Options are ignored
// by this backend.
func (s *Source) List(ctx context.Context, _ source.ListOptions) ([]string, error) {
	var body []struct {
		Name string `json:"name"`
	}
	if err := s.client.GetJSON(ctx, &body, "repos", s.repo, "packages"); err != nil {
		return nil, err
	}

	var names []string
	for _, pkg := range body {
		if strings.HasSuffix(pkg.Name, TemplateSuffix) {
			names = append(names, strings.TrimSuffix(pkg.Name, TemplateSuffix))
		}
	}
	return names, nil
}

type packageDetail struct {
	Name          string   `json:"name"`
	LatestVersion string   `json:"latest_version"`
	Versions      []string `json:"versions"`
	Owner         string   `json:"owner"`
	Desc          string   `json:"desc"`
	DescURL       string   `json:"desc_url"`
}

// Get looks up a template by logical name. A 404 from the catalog means
// the template does not exist and is reported as found == false with a
// nil error; any other failure propagates. A catalog entry without a
// latest_version yields a *source.NoVersionsError.
func (s *Source) Get(ctx context.Context, name string) (*source.TemplateInfo, bool, error) {
	var detail packageDetail
	err := s.client.GetJSON(ctx, &detail, "packages", s.repo, name+TemplateSuffix)
	if httputil.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	info, err := source.NewTemplateInfo(s, name, detail.LatestVersion, detail.Versions)
	if err != nil {
		return nil, false, err
	}
	info.Owner = detail.Owner
	info.Description = detail.Desc
	info.InfoURL = detail.DescURL
	return info, true, nil
}

// Has reports whether the template exists in the catalog. Lookup failures
// propagate rather than being collapsed into false.
func (s *Source) Has(ctx context.Context, name string) (bool, error) {
	_, found, err := s.Get(ctx, name)
	return found, err
}

// TemplateURL derives the artifact download location from name and
// version alone: {download-host}/{repo}/{name}-template-{version}.zip.
// No network I/O is performed and no validation is applied beyond
// standard URL construction.
func (s *Source) TemplateURL(name, version string) *url.URL {
	return s.download.JoinPath(s.repo, name+TemplateSuffix+"-"+version+".zip")
}

var _ source.Source = (*Source)(nil)
