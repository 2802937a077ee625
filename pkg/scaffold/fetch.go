package scaffold

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/moldtool/mold/pkg/cache"
	"github.com/moldtool/mold/pkg/httputil"
	"github.com/moldtool/mold/pkg/source"
)

// NotFoundError reports a template the source does not know about.
type NotFoundError struct {
	Template string
	Source   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found in source %q", e.Template, e.Source)
}

// Fetcher downloads template archives through a package source.
// It is safe for concurrent use.
type Fetcher struct {
	cache cache.Cache
	http  *http.Client
}

// NewFetcher creates a Fetcher. A nil cache disables caching; a nil HTTP
// client uses the default transport with proxy settings from the
// environment.
func NewFetcher(c cache.Cache, hc *http.Client) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if hc == nil {
		hc = httputil.NewHTTPClient(httputil.ProxyFromEnv())
	}
	return &Fetcher{cache: c, http: hc}
}

// Fetch resolves and downloads the archive for a template. An empty
// version resolves to the source's latest published version, which costs
// one metadata lookup. The resolved version is returned alongside the
// archive bytes.
//
// Downloaded archives are cached without expiry: a (source, name, version)
// triple identifies an immutable artifact.
func (f *Fetcher) Fetch(ctx context.Context, src source.Source, name, version string) ([]byte, string, error) {
	if version == "" {
		info, found, err := src.Get(ctx, name)
		if err != nil {
			return nil, "", err
		}
		if !found {
			return nil, "", &NotFoundError{Template: name, Source: src.Name()}
		}
		version = info.LatestVersion
	}

	key := "artifact:" + src.Name() + ":" + name + ":" + version
	if data, ok, _ := f.cache.Get(ctx, key); ok {
		return data, version, nil
	}

	data, err := f.download(ctx, src.TemplateURL(name, version))
	if err != nil {
		return nil, "", err
	}
	_ = f.cache.Set(ctx, key, data, 0)
	return data, version, nil
}

func (f *Fetcher) download(ctx context.Context, u *url.URL) ([]byte, error) {
	if u.Scheme == "file" {
		data, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, fmt.Errorf("read template archive: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httputil.StatusError{StatusCode: resp.StatusCode, URL: u.String()}
	}
	return io.ReadAll(resp.Body)
}
