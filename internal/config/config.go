package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robert-at-pretension-io/vhdl-deps/internal/validator"
)

// Config is the top-level configuration for vhdl-deps
type Config struct {
	// Libraries is the ordered list of libraries to scan
	Libraries []Library `json:"libraries,omitempty"`

	// Patterns is the list of glob patterns matched under each library path
	Patterns []string `json:"patterns,omitempty"`

	// Exclude is a list of files or glob patterns to skip during scanning
	Exclude []string `json:"exclude,omitempty"`

	// AssumedLibraries are pruned from the graph: the build tools provide
	// them without explicit compile ordering
	AssumedLibraries []string `json:"assumedLibraries,omitempty"`

	// ObjDir is the prefix for object artifacts in the emitted rules
	ObjDir string `json:"objDir,omitempty"`
}

// Library pairs a logical library name with the directory holding its sources
type Library struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Libraries: []Library{
			{Name: "work", Path: "."},
		},
		Patterns:         []string{"**/*.vhd", "**/*.vhdl", "**/*.psl"},
		Exclude:          []string{},
		AssumedLibraries: []string{"ieee", "std"},
		ObjDir:           "obj",
	}
}

// Load finds and loads the configuration file
// Search order:
//  1. ./vhdl_deps.json (current working directory)
//  2. ./.vhdl_deps.json (current working directory)
//  3. <rootPath>/vhdl_deps.json (if different from cwd)
//  4. ~/.config/vhdl_deps/config.json
//
// If no config file is found, the LIBS/LIB_PATHS environment interface is
// consulted; with neither present, DefaultConfig is returned.
func Load(rootPath string) (*Config, error) {
	cwd, _ := os.Getwd()

	searchPaths := []string{
		filepath.Join(cwd, "vhdl_deps.json"),
		filepath.Join(cwd, ".vhdl_deps.json"),
	}

	if info, err := os.Stat(rootPath); err == nil && info.IsDir() {
		absRoot, _ := filepath.Abs(rootPath)
		if absRoot != cwd {
			searchPaths = append(searchPaths,
				filepath.Join(rootPath, "vhdl_deps.json"),
				filepath.Join(rootPath, ".vhdl_deps.json"),
			)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", "vhdl_deps", "config.json"))
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	if os.Getenv("LIBS") != "" {
		return FromEnv()
	}

	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file, validating it against
// the CUE schema first
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	v, err := validator.New()
	if err != nil {
		return nil, fmt.Errorf("loading config schema: %w", err)
	}
	if err := v.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables:
//   - LIBS:          space separated list of library names
//   - LIB_PATHS:     space separated list of corresponding library paths
//   - IGNORED_FILES: space separated list of files or patterns to ignore
func FromEnv() (*Config, error) {
	libs := strings.Fields(os.Getenv("LIBS"))
	paths := strings.Fields(os.Getenv("LIB_PATHS"))
	if len(libs) != len(paths) {
		return nil, fmt.Errorf("LIBS names %d libraries but LIB_PATHS names %d paths", len(libs), len(paths))
	}

	cfg := DefaultConfig()
	cfg.Libraries = nil
	for i, name := range libs {
		cfg.Libraries = append(cfg.Libraries, Library{Name: name, Path: paths[i]})
	}
	cfg.Exclude = strings.Fields(os.Getenv("IGNORED_FILES"))

	return cfg, nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if len(c.Libraries) == 0 {
		c.Libraries = def.Libraries
	}
	if len(c.Patterns) == 0 {
		c.Patterns = def.Patterns
	}
	if c.AssumedLibraries == nil {
		c.AssumedLibraries = def.AssumedLibraries
	}
	if c.ObjDir == "" {
		c.ObjDir = def.ObjDir
	}
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
