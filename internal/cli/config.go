package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/moldtool/mold/pkg/source/catalog"
)

// Config holds user-level settings read from ~/.config/mold/config.toml.
type Config struct {
	// Repo is the repository on the catalog service to resolve templates
	// from.
	Repo string `toml:"repo"`

	// APIBase overrides the catalog API base URL.
	APIBase string `toml:"api_base"`

	// DownloadBase overrides the artifact download host.
	DownloadBase string `toml:"download_base"`

	// TemplateDir, when set, uses a local directory of template archives
	// instead of the remote catalog.
	TemplateDir string `toml:"template_dir"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	// Backend is "file" (default), "redis", or "none".
	Backend string `toml:"backend"`

	// Addr is the Redis address (host:port) for the redis backend.
	Addr string `toml:"addr"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Repo:         "mold-templates",
		APIBase:      catalog.DefaultAPIBase,
		DownloadBase: catalog.DefaultDownloadBase,
		Cache:        CacheConfig{Backend: "file"},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
// A missing file is not an error; it yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfigPath returns the config file location using XDG standard
// (~/.config/mold/config.toml).
func DefaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.toml")
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
