// Package file provides the TOML-backed configuration store.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultServerURL is used when no server URL is configured.
const DefaultServerURL = "http://localhost:5000"

// fileConfig mirrors the on-disk TOML layout.
type fileConfig struct {
	Server struct {
		URL            string `toml:"url,omitempty"`
		TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
	} `toml:"server"`
	Files struct {
		DropDir string `toml:"drop_dir,omitempty"`
		DataDir string `toml:"data_dir,omitempty"`
	} `toml:"files"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration is stored within the withdrawal config
// directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	baseDir  string
	cfg      fileConfig
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.withdrawal/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".withdrawal")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		baseDir:  configDir,
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Settings returns the current configuration with defaults applied.
func (s *ConfigStore) Settings() driven.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := driven.Settings{
		ServerURL:             s.cfg.Server.URL,
		RequestTimeoutSeconds: s.cfg.Server.TimeoutSeconds,
		DropDir:               s.cfg.Files.DropDir,
		DataDir:               s.cfg.Files.DataDir,
	}
	if out.ServerURL == "" {
		out.ServerURL = DefaultServerURL
	}
	if out.DropDir == "" {
		out.DropDir = filepath.Join(s.baseDir, "inbox")
	}
	if out.DataDir == "" {
		out.DataDir = filepath.Join(s.baseDir, "data")
	}
	return out
}

// Set stores a configuration value by dotted key and persists
// immediately.
func (s *ConfigStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "server.url":
		s.cfg.Server.URL = value
	case "server.timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		s.cfg.Server.TimeoutSeconds = n
	case "files.drop_dir":
		s.cfg.Files.DropDir = value
	case "files.data_dir":
		s.cfg.Files.DataDir = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.cfg = fileConfig{}
			return nil
		}
		return err
	}

	var loaded fileConfig
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.cfg = loaded
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
