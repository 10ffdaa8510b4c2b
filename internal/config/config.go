package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the Uniform project settings uniterm needs.
type Config struct {
	APIKey    string
	ProjectID string
	APIHost   string
	Preview   bool
	LogDir    string
}

const (
	defaultConfigPath = "~/.config/uniterm/config.toml"
	defaultLogDir     = "~/.local/state/uniterm"
	defaultAPIHost    = "https://api.uniform.app"
	logFileName       = "uniterm.log"
)

// envOverrides mirrors the variables that win over the config file. Empty
// values leave the file value untouched.
type envOverrides struct {
	APIKey    string `env:"UNIFORM_API_KEY"`
	ProjectID string `env:"UNIFORM_PROJECT_ID"`
	APIHost   string `env:"UNIFORM_API_HOST"`
	Preview   string `env:"UNIFORM_PREVIEW"`
	LogDir    string `env:"UNITERM_LOG_DIR"`
}

// Load locates and parses the uniterm config, applies environment overrides
// and falls back to defaults for anything left unset.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		APIKey    string `toml:"api_key"`
		ProjectID string `toml:"project_id"`
		APIHost   string `toml:"api_host"`
		Preview   bool   `toml:"preview"`
		LogDir    string `toml:"log_dir"`
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg := Config{
		APIKey:    strings.TrimSpace(raw.APIKey),
		ProjectID: strings.TrimSpace(raw.ProjectID),
		APIHost:   strings.TrimSpace(raw.APIHost),
		Preview:   raw.Preview,
		LogDir:    strings.TrimSpace(raw.LogDir),
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.APIHost == "" {
		cfg.APIHost = defaultAPIHost
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var over envOverrides
	if err := env.Parse(&over); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v := strings.TrimSpace(over.APIKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(over.ProjectID); v != "" {
		cfg.ProjectID = v
	}
	if v := strings.TrimSpace(over.APIHost); v != "" {
		cfg.APIHost = v
	}
	if v := strings.TrimSpace(over.LogDir); v != "" {
		cfg.LogDir = v
	}
	if v := strings.TrimSpace(over.Preview); v != "" {
		preview, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse env: UNIFORM_PREVIEW: %w", err)
		}
		cfg.Preview = preview
	}
	return nil
}

// MissingCredentials names the credential settings that are empty. Requests
// made without them fail at the API, so callers only warn.
func (c Config) MissingCredentials() []string {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if c.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	return missing
}

// LogPath returns the path of uniterm's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
