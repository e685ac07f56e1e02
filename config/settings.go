// Package config loads and validates application configuration from a YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Indexer IndexerConfig `yaml:"indexer"`
}

// ServerConfig holds HTTP server settings for the diagnostic API.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DataConfig holds the locations of the two JSON artifacts.
type DataConfig struct {
	CollectionFile string `yaml:"collectionFile"` // document collection produced by ingestion
	IndexFile      string `yaml:"indexFile"`      // inverted index produced by a build
}

// IndexerConfig controls the build.
type IndexerConfig struct {
	Workers int `yaml:"workers"` // concurrent document workers; 1 means a sequential build
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Data: DataConfig{
			CollectionFile: "documents_index.json",
			IndexFile:      "inverted_index.json",
		},
		Indexer: IndexerConfig{Workers: 1},
	}
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with sensible defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DOCIDX_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DOCIDX_COLLECTION_FILE"); v != "" {
		cfg.Data.CollectionFile = v
	}
	if v := os.Getenv("DOCIDX_INDEX_FILE"); v != "" {
		cfg.Data.IndexFile = v
	}
	if v := os.Getenv("DOCIDX_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			cfg.Indexer.Workers = workers
		}
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Data.CollectionFile == "" {
		return fmt.Errorf("data.collectionFile must not be empty")
	}
	if c.Data.IndexFile == "" {
		return fmt.Errorf("data.indexFile must not be empty")
	}
	if c.Indexer.Workers < 1 {
		return fmt.Errorf("indexer.workers must be at least 1, got %d", c.Indexer.Workers)
	}
	return nil
}
