package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moldtool/mold/pkg/source/catalog"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	want := DefaultConfig()
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, want)
	}
	if cfg.APIBase != catalog.DefaultAPIBase {
		t.Errorf("APIBase = %q, want %q", cfg.APIBase, catalog.DefaultAPIBase)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
repo = "acme-templates"
api_base = "https://catalog.acme.dev"

[cache]
backend = "redis"
addr = "cache.acme.dev:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Repo != "acme-templates" {
		t.Errorf("Repo = %q, want %q", cfg.Repo, "acme-templates")
	}
	if cfg.APIBase != "https://catalog.acme.dev" {
		t.Errorf("APIBase = %q, want %q", cfg.APIBase, "https://catalog.acme.dev")
	}
	// Unset keys keep their defaults.
	if cfg.DownloadBase != catalog.DefaultDownloadBase {
		t.Errorf("DownloadBase = %q, want default", cfg.DownloadBase)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Addr != "cache.acme.dev:6379" {
		t.Errorf("Cache = %+v, want redis backend", cfg.Cache)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("repo = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail for malformed TOML")
	}
}

func TestDefaultConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	want := filepath.Join("/xdg/config", appName, "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
