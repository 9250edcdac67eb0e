package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
)

const (
	// DefaultFile is the config file looked up in the working directory.
	DefaultFile = "spendlog.yaml"
	// DefaultTOMLFile is written by "init --toml".
	DefaultTOMLFile = "spendlog.toml"
)

// Config represents the top-level spendlog.yaml (or .toml) configuration.
type Config struct {
	Store      StoreConfig   `yaml:"store" toml:"store"`
	Log        logger.Config `yaml:"log" toml:"log"`
	Categories []string      `yaml:"categories,omitempty" toml:"categories,omitempty"`
	Import     ImportConfig  `yaml:"import" toml:"import"`
	Git        GitConfig     `yaml:"git" toml:"git"`
}

// StoreConfig locates the expense file. A relative path is resolved against
// the directory holding the config file.
type StoreConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// ImportConfig controls bank statement imports.
type ImportConfig struct {
	DefaultCategory string `yaml:"default_category" toml:"default_category"`
}

// GitConfig controls committing the store after each change.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit" toml:"auto_commit"`
	AuthorName  string `yaml:"author_name" toml:"author_name"`
	AuthorEmail string `yaml:"author_email" toml:"author_email"`
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a config file from disk. Files ending in .toml are decoded as
// TOML, everything else as YAML. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Store.Path != "" && !filepath.IsAbs(cfg.Store.Path) {
		cfg.Store.Path = filepath.Join(filepath.Dir(path), cfg.Store.Path)
	}
	return cfg, nil
}

// Save writes a Config to path, as TOML or YAML by extension.
func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path: ledger.DefaultFile,
		},
		Log: logger.DefaultConfig(),
		Import: ImportConfig{
			DefaultCategory: "other",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "spendlog",
			AuthorEmail: "spendlog@localhost",
		},
	}
}
