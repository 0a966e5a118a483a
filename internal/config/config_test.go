package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig tests the default configuration values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected endpoint %q, got %q", DefaultEndpoint, cfg.Endpoint)
	}
	if cfg.APIVersion != DefaultAPIVersion {
		t.Errorf("expected API version %q, got %q", DefaultAPIVersion, cfg.APIVersion)
	}
	if cfg.PageLimit != DefaultPageLimit {
		t.Errorf("expected page limit %d, got %d", DefaultPageLimit, cfg.PageLimit)
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.OrgID = "org-123"
		cfg.APIToken = "secret"
		return cfg
	}

	t.Run("valid configuration passes", func(t *testing.T) {
		t.Parallel()

		if err := valid().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing org ID", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.OrgID = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoOrgID) {
			t.Errorf("expected ErrNoOrgID, got %v", err)
		}
	})

	t.Run("missing API token", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.APIToken = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoAPIToken) {
			t.Errorf("expected ErrNoAPIToken, got %v", err)
		}
	})

	t.Run("page limit below minimum", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.PageLimit = 5
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidPageLimit) {
			t.Errorf("expected ErrInvalidPageLimit, got %v", err)
		}
	})

	t.Run("page limit not a multiple of 10", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.PageLimit = 55
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidPageLimit) {
			t.Errorf("expected ErrInvalidPageLimit, got %v", err)
		}
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Endpoint = "not a url"
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidEndpoint) {
			t.Errorf("expected ErrInvalidEndpoint, got %v", err)
		}
	})
}

// TestResolveToken tests API token resolution order.
func TestResolveToken(t *testing.T) {
	t.Run("flag value wins over environment", func(t *testing.T) {
		t.Setenv(EnvAPIToken, "from-env")

		if got := ResolveToken("from-flag"); got != "from-flag" {
			t.Errorf("expected 'from-flag', got %q", got)
		}
	})

	t.Run("falls back to environment variable", func(t *testing.T) {
		t.Setenv(EnvAPIToken, "from-env")

		if got := ResolveToken(""); got != "from-env" {
			t.Errorf("expected 'from-env', got %q", got)
		}
	})

	t.Run("empty when neither is set", func(t *testing.T) {
		t.Setenv(EnvAPIToken, "")

		if got := ResolveToken(""); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

// TestLoadConfigFile tests loading overrides from a YAML file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads overrides", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "endpoint: https://api.snyk.io/rest\napi_version: \"2024-10-15\"\nlimit: 50\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Endpoint != "https://api.snyk.io/rest" {
			t.Errorf("unexpected endpoint: %q", cf.Endpoint)
		}
		if cf.APIVersion != "2024-10-15" {
			t.Errorf("unexpected API version: %q", cf.APIVersion)
		}
		if cf.Limit != 50 {
			t.Errorf("unexpected limit: %d", cf.Limit)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("endpoint: [unclosed"), 0600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFileApply tests override precedence onto a Config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("non-zero fields override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cf := &File{Endpoint: "https://api.snyk.io/rest", Limit: 20}
		cf.Apply(cfg)

		if cfg.Endpoint != "https://api.snyk.io/rest" {
			t.Errorf("unexpected endpoint: %q", cfg.Endpoint)
		}
		if cfg.PageLimit != 20 {
			t.Errorf("unexpected page limit: %d", cfg.PageLimit)
		}
		if cfg.APIVersion != DefaultAPIVersion {
			t.Errorf("expected default API version, got %q", cfg.APIVersion)
		}
	})

	t.Run("zero fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.Endpoint != DefaultEndpoint || cfg.PageLimit != DefaultPageLimit {
			t.Errorf("expected defaults to be kept, got %+v", cfg)
		}
	})
}

// TestFindConfigFile tests config file search behavior for explicit paths.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("limit: 10\n"), 0600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}
