// Package config loads tool configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tabwrap/go-tabwrap/internal/fileutil"
	"github.com/tabwrap/go-tabwrap/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all persistent tool configuration. Flags override any
// field set here.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Compile CompileConfig `yaml:"compile"`
	Batch   BatchConfig   `yaml:"batch"`
}

// OutputConfig defines output destination and naming options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Suffix     string `yaml:"suffix"`     // Output file suffix (default "_compiled")
	Format     string `yaml:"format"`     // "pdf", "png", "svg" (default "pdf")
	DPI        int    `yaml:"dpi"`        // PNG resolution (default 300)
}

// CompileConfig defines document assembly options.
type CompileConfig struct {
	Packages     []string `yaml:"packages"`     // Extra packages, always included
	Landscape    bool     `yaml:"landscape"`    // Landscape page geometry
	NoRescale    bool     `yaml:"noRescale"`    // Disable width auto-rescale
	ShowFilename bool     `yaml:"showFilename"` // Print file name above the table
	KeepTex      bool     `yaml:"keepTex"`      // Keep intermediate build files
	Combine      bool     `yaml:"combine"`      // Merge successful PDFs into one document
}

// BatchConfig defines batch scheduling options.
type BatchConfig struct {
	Parallel   bool `yaml:"parallel"`   // Compile units concurrently
	MaxWorkers int  `yaml:"maxWorkers"` // 0 = auto
}

// Validate checks value ranges. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "pdf", "png", "svg":
	default:
		return fmt.Errorf("output.format: invalid value %q (must be pdf, png, or svg)", c.Output.Format)
	}
	if strings.ContainsAny(c.Output.Suffix, "/\\\x00") {
		return fmt.Errorf("output.suffix: invalid value %q", c.Output.Suffix)
	}
	if c.Output.DPI < 0 {
		return fmt.Errorf("output.dpi: must be non-negative, got %d", c.Output.DPI)
	}
	if c.Batch.MaxWorkers < 0 {
		return fmt.Errorf("batch.maxWorkers: must be non-negative, got %d", c.Batch.MaxWorkers)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: PDF output, default
// suffix, sequential batches.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Suffix: "_compiled", Format: "pdf", DPI: 300},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchedPaths returns the locations resolveConfigPath would try for a
// name, for use in error hints.
func SearchedPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-tabwrap", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/go-tabwrap/
func resolveConfigPath(name string) (string, error) {
	tried := SearchedPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
