// Package config loads ShellMate configuration from disk and the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/shellmate-go/assets"
	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/pkg/filesystem"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.shellmate/config.yaml
// (overridable via SHELLMATE_CONFIG) and applies environment overrides on top.
// The result is an immutable snapshot taken once at process start.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader; an empty path means the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			return applyEnvOverrides(cfg), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return applyEnvOverrides(cfg), nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("SHELLMATE_CONFIG"); custom != "" {
		return filesystem.Expand(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".shellmate", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		// The embedded YAML is compiled in; reaching this means a build
		// problem, so fall back to the bare minimum.
		return domain.Config{
			ConfigFormatVersion: "1",
			Backend: domain.BackendSettings{
				TimeoutSeconds: 30,
				Retry: domain.RetrySettings{
					MaxAttempts:        domain.DefaultRetryAttempts,
					BackoffBaseSeconds: 2,
				},
			},
			Preferences: domain.Preferences{ShowPrompt: true},
		}
	}
	return cfg
}

// applyEnvOverrides folds the environment contract into the file snapshot.
// Environment always wins over the file.
func applyEnvOverrides(cfg domain.Config) domain.Config {
	if endpoint := os.Getenv("SHELLMATE_API_ENDPOINT"); endpoint != "" {
		cfg.Backend.Endpoint = endpoint
	}
	if key := os.Getenv("SHELLMATE_API_KEY"); key != "" {
		cfg.Backend.APIKey = key
	}
	if raw, ok := os.LookupEnv("SHELLMATE_SHOW_PROMPT"); ok {
		cfg.Preferences.ShowPrompt = parseBool(raw, cfg.Preferences.ShowPrompt)
	}
	if raw, ok := os.LookupEnv("SHELLMATE_DEBUG"); ok {
		cfg.Preferences.Verbose = parseBool(raw, cfg.Preferences.Verbose)
	}
	return cfg
}

func parseBool(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
