package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Resolve.DefaultExpression != "DEFAULT" {
		t.Errorf("Resolve.DefaultExpression = %s, want DEFAULT", cfg.Resolve.DefaultExpression)
	}
	if cfg.Reference.Path != "openssl" {
		t.Errorf("Reference.Path = %s, want openssl", cfg.Reference.Path)
	}
	if cfg.Output.DefaultFormat != "table" {
		t.Errorf("Output.DefaultFormat = %s, want table", cfg.Output.DefaultFormat)
	}
	if !cfg.Output.PrettyJSON {
		t.Error("Output.PrettyJSON should be true by default")
	}
	if cfg.TUI.Theme != "dark" {
		t.Errorf("TUI.Theme = %s, want dark", cfg.TUI.Theme)
	}
	if !cfg.TUI.ShowProviders {
		t.Error("TUI.ShowProviders should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
resolve:
  default_expression: "HIGH:!aNULL"
reference:
  path: /opt/openssl/bin/openssl
providers:
  profile_files:
    - /etc/cipherlist/conscrypt.yaml
output:
  default_format: json
  pretty_json: false
tui:
  theme: light
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Resolve.DefaultExpression != "HIGH:!aNULL" {
		t.Errorf("Resolve.DefaultExpression = %s", cfg.Resolve.DefaultExpression)
	}
	if cfg.Reference.Path != "/opt/openssl/bin/openssl" {
		t.Errorf("Reference.Path = %s", cfg.Reference.Path)
	}
	if len(cfg.Providers.ProfileFiles) != 1 {
		t.Errorf("ProfileFiles = %v", cfg.Providers.ProfileFiles)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Output.DefaultFormat = %s", cfg.Output.DefaultFormat)
	}
	if cfg.Output.PrettyJSON {
		t.Error("Output.PrettyJSON should be false")
	}
	if cfg.TUI.Theme != "light" {
		t.Errorf("TUI.Theme = %s", cfg.TUI.Theme)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile_PartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %s, want warn", cfg.Logging.Level)
	}
	if cfg.Resolve.DefaultExpression != "DEFAULT" {
		t.Errorf("Resolve.DefaultExpression = %s, defaults should survive", cfg.Resolve.DefaultExpression)
	}
	if cfg.Output.DefaultFormat != "table" {
		t.Errorf("Output.DefaultFormat = %s, defaults should survive", cfg.Output.DefaultFormat)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromFile should fail for a missing file")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := expandPath("~/bin/openssl")
	if !strings.HasPrefix(got, home) {
		t.Errorf("expandPath = %s, want under %s", got, home)
	}

	if got := expandPath("/usr/bin/openssl"); got != "/usr/bin/openssl" {
		t.Errorf("absolute path changed: %s", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("empty path changed: %s", got)
	}
}

func TestGlobalConfig(t *testing.T) {
	SetGlobal(nil)
	cfg := Global()
	if cfg == nil {
		t.Fatal("Global returned nil")
	}

	custom := DefaultConfig()
	custom.Logging.Level = "error"
	SetGlobal(custom)
	if Global().Logging.Level != "error" {
		t.Error("SetGlobal did not take effect")
	}
	SetGlobal(nil)
}
