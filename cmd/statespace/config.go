package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SearchConfig holds the settings shared by every puzzle command.
type SearchConfig struct {
	Algorithm     string        `yaml:"algorithm"`
	Seed          uint64        `yaml:"seed"`
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Merge applies non-zero values from source into c.
func (c *SearchConfig) Merge(source *SearchConfig) {
	if source.Algorithm != "" {
		c.Algorithm = source.Algorithm
	}
	if source.Seed != 0 {
		c.Seed = source.Seed
	}
	if source.MaxExpansions > 0 {
		c.MaxExpansions = source.MaxExpansions
	}
	if source.Timeout > 0 {
		c.Timeout = source.Timeout
	}
}

// MazeConfig configures the maze command.
type MazeConfig struct {
	SearchConfig `yaml:",inline"`

	// File is a text maze; empty selects the built-in demo maze.
	File         string `yaml:"file"`
	From         string `yaml:"from"`
	To           string `yaml:"to"`
	Diagonal     bool   `yaml:"diagonal"`
	Weighted     bool   `yaml:"weighted"`
	Animate      bool   `yaml:"animate"`
	AnimateEvery int    `yaml:"animate_every"`
	Color        string `yaml:"color"`
}

// Merge applies non-zero values from source into c.
func (c *MazeConfig) Merge(source *MazeConfig) {
	c.SearchConfig.Merge(&source.SearchConfig)

	if source.File != "" {
		c.File = source.File
	}
	if source.From != "" {
		c.From = source.From
	}
	if source.To != "" {
		c.To = source.To
	}
	if source.AnimateEvery > 0 {
		c.AnimateEvery = source.AnimateEvery
	}
	if source.Color != "" {
		c.Color = source.Color
	}
	c.Diagonal = c.Diagonal || source.Diagonal
	c.Weighted = c.Weighted || source.Weighted
	c.Animate = c.Animate || source.Animate
}

// KnightConfig configures the knight command.
type KnightConfig struct {
	SearchConfig `yaml:",inline"`

	Size string `yaml:"size"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Merge applies non-zero values from source into c.
func (c *KnightConfig) Merge(source *KnightConfig) {
	c.SearchConfig.Merge(&source.SearchConfig)

	if source.Size != "" {
		c.Size = source.Size
	}
	if source.From != "" {
		c.From = source.From
	}
	if source.To != "" {
		c.To = source.To
	}
}

// Config is the full run configuration: defaults, then the optional YAML
// file, then explicitly set flags.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Trace    bool         `yaml:"trace"`
	Maze     MazeConfig   `yaml:"maze"`
	Knight   KnightConfig `yaml:"knight"`
}

// DefaultConfig reproduces the classic demos: A* through the built-in maze
// and a knight crossing an 8×8 board.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Maze: MazeConfig{
			SearchConfig: SearchConfig{Algorithm: "astar"},
			From:         "1,43",
			To:           "21,47",
			AnimateEvery: 1,
			Color:        colorAuto,
		},
		Knight: KnightConfig{
			SearchConfig: SearchConfig{Algorithm: "bfs"},
			Size:         "8x8",
			From:         "0,0",
			To:           "7,7",
		},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
	c.Trace = c.Trace || source.Trace
	c.Maze.Merge(&source.Maze)
	c.Knight.Merge(&source.Knight)
}

// LoadConfig reads a YAML run file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
