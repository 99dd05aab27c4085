package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SenneDW/authkit/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
broker: memory
client:
  client_id: abc
  authority: https://login.microsoftonline.com/common
logging:
  level: debug
  format: json
`)

	cfg, err := Load(WithConfigFile(cfgFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Client.ClientID != "abc" {
		t.Errorf("expected client_id abc, got %q", cfg.Client.ClientID)
	}
	if cfg.Client.Authority != "https://login.microsoftonline.com/common" {
		t.Errorf("unexpected authority %q", cfg.Client.Authority)
	}
	if cfg.Broker != "memory" {
		t.Errorf("expected broker memory, got %q", cfg.Broker)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
client:
  client_id: abc
  authority: https://login.microsoftonline.com/common
`)

	cfg, err := Load(WithConfigFile(cfgFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Broker != "memory" {
		t.Errorf("expected default broker memory, got %q", cfg.Broker)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
client:
  client_id: from-file
  authority: https://login.microsoftonline.com/common
`)
	t.Setenv("AUTHKIT_CLIENT_CLIENT_ID", "from-env")

	cfg, err := Load(WithConfigFile(cfgFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Client.ClientID != "from-env" {
		t.Errorf("expected env to win, got %q", cfg.Client.ClientID)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
client:
  client_id: abc
  authority: https://login.microsoftonline.com/common
`)
	envFile := writeFile(t, dir, ".env", "AUTHKIT_BROKER=android\n")
	t.Setenv("AUTHKIT_BROKER", "") // ensure godotenv's value is visible
	os.Unsetenv("AUTHKIT_BROKER")

	cfg, err := Load(WithConfigFile(cfgFile), WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Broker != "android" {
		t.Errorf("expected broker from .env, got %q", cfg.Broker)
	}
}

func TestLoadInvalidClientConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
client:
  authority: https://login.microsoftonline.com/common
`)

	_, err := Load(WithConfigFile(cfgFile))
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidConfiguration {
		t.Errorf("expected INVALID_CONFIGURATION, got %v", err)
	}
}

func TestLoadMissingFilesStillValidates(t *testing.T) {
	t.Setenv("AUTHKIT_CLIENT_CLIENT_ID", "abc")
	t.Setenv("AUTHKIT_CLIENT_AUTHORITY", "https://login.microsoftonline.com/common")

	cfg, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "nope.yml")))
	if err != nil {
		t.Fatalf("Load from env alone failed: %v", err)
	}
	if cfg.Client.ClientID != "abc" {
		t.Errorf("expected client_id from env, got %q", cfg.Client.ClientID)
	}
}
