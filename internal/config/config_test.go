package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"UNIFORM_API_KEY", "UNIFORM_PROJECT_ID", "UNIFORM_API_HOST", "UNIFORM_PREVIEW", "UNITERM_LOG_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIHost != "https://api.uniform.app" {
		t.Fatalf("APIHost = %q, want the public api host", cfg.APIHost)
	}
	if cfg.Preview {
		t.Fatalf("Preview = true, want false")
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if got := cfg.MissingCredentials(); !reflect.DeepEqual(got, []string{"api_key", "project_id"}) {
		t.Fatalf("MissingCredentials = %v", got)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_key = "  key-123  "
project_id = " proj "
api_host = "https://canvas.example.com"
preview = true
log_dir = "  ~/.uniterm/logs  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "key-123" || cfg.ProjectID != "proj" {
		t.Fatalf("credentials = %q/%q", cfg.APIKey, cfg.ProjectID)
	}
	if cfg.APIHost != "https://canvas.example.com" {
		t.Fatalf("APIHost = %q", cfg.APIHost)
	}
	if !cfg.Preview {
		t.Fatalf("Preview = false, want true")
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.LogPath() != filepath.Join(cfg.LogDir, "uniterm.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
	if missing := cfg.MissingCredentials(); len(missing) != 0 {
		t.Fatalf("MissingCredentials = %v, want none", missing)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_key = "file-key"
project_id = "file-project"
preview = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("UNIFORM_API_KEY", "env-key")
	t.Setenv("UNIFORM_PREVIEW", "false")
	t.Setenv("UNIFORM_API_HOST", "http://localhost:9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("APIKey = %q, want env-key", cfg.APIKey)
	}
	if cfg.ProjectID != "file-project" {
		t.Fatalf("ProjectID = %q, want file-project", cfg.ProjectID)
	}
	if cfg.Preview {
		t.Fatalf("Preview = true, want env override false")
	}
	if cfg.APIHost != "http://localhost:9000" {
		t.Fatalf("APIHost = %q", cfg.APIHost)
	}
}

func TestLoad_InvalidPreviewEnvFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)
	t.Setenv("UNIFORM_PREVIEW", "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Load error = %v, want parse env error", err)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_host = "   "
log_dir = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIHost != defaultAPIHost {
		t.Fatalf("APIHost = %q, want %q", cfg.APIHost, defaultAPIHost)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_key = [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/uniterm.log")) {
		t.Fatalf("LogPath = %q, want it to end with /uniterm.log", got)
	}
}
