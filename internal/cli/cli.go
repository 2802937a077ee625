// Package cli implements the mold command-line interface.
package cli

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/moldtool/mold/pkg/buildinfo"
	"github.com/moldtool/mold/pkg/cache"
	"github.com/moldtool/mold/pkg/httputil"
	"github.com/moldtool/mold/pkg/source"
	"github.com/moldtool/mold/pkg/source/catalog"
	"github.com/moldtool/mold/pkg/source/dirsource"
)

// appName is the application name used for directories and display.
const appName = "mold"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the config
// loaded from the default location (missing config falls back to
// defaults; a malformed one is logged and ignored).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}

	cfg, err := LoadConfig(DefaultConfigPath())
	if err != nil {
		c.Logger.Warn("Ignoring unreadable config file", "path", DefaultConfigPath(), "err", err)
		cfg = DefaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mold",
		Short:        "Mold scaffolds projects from template packages",
		Long:         `Mold is a CLI tool for creating new projects from versioned template packages hosted on a remote catalog service or in a local directory.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.listCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.urlCommand())
	root.AddCommand(c.createCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newSource builds the template source for a command invocation. A
// non-empty localDir selects the directory backend; otherwise the remote
// catalog from the config is used.
func (c *CLI) newSource(localDir string) (source.Source, error) {
	if localDir == "" {
		localDir = c.Config.TemplateDir
	}
	if localDir != "" {
		return dirsource.New(localDir), nil
	}
	return catalog.New(catalog.Config{
		Repo:         c.Config.Repo,
		APIBase:      c.Config.APIBase,
		DownloadBase: c.Config.DownloadBase,
		HTTPClient:   c.newHTTPClient(),
	})
}

// newHTTPClient builds the transport shared by catalog lookups and
// artifact downloads, honoring proxy settings from the environment.
func (c *CLI) newHTTPClient() *http.Client {
	return httputil.NewHTTPClient(httputil.ProxyFromEnv())
}

// newCache selects the artifact cache backend. Failures fall back to a
// disabled cache rather than blocking the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Backend == "none" {
		return cache.NewNullCache()
	}

	if c.Config.Cache.Backend == "redis" {
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.Addr)
		if err == nil {
			return rc
		}
		c.Logger.Warn("Redis cache unavailable, caching disabled", "addr", c.Config.Cache.Addr, "err", err)
		return cache.NewNullCache()
	}

	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/mold/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
