package config

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// LibraryFiles expands the configured patterns under the library's path and
// returns the matching source files as absolute paths, sorted, with
// excluded files removed. Relative library paths and exclude patterns are
// interpreted against rootPath.
func (c *Config) LibraryFiles(rootPath string, lib Library) ([]string, error) {
	base := lib.Path
	if !filepath.IsAbs(base) {
		base = filepath.Join(rootPath, base)
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving library path %q: %w", lib.Path, err)
	}

	excluded, err := c.excludedFiles(rootPath)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range c.Patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(base, pattern))
		if err != nil {
			return nil, fmt.Errorf("library %s: pattern %q: %w", lib.Name, pattern, err)
		}
		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, fmt.Errorf("resolving %q: %w", match, err)
			}
			if excluded[abs] || seen[abs] {
				continue
			}
			seen[abs] = true
			files = append(files, abs)
		}
	}

	sort.Strings(files)
	return files, nil
}

// excludedFiles expands the Exclude list into a set of absolute paths.
// Entries may be plain paths or glob patterns; patterns that match nothing
// are not an error.
func (c *Config) excludedFiles(rootPath string) (map[string]bool, error) {
	excluded := make(map[string]bool)
	for _, pattern := range c.Exclude {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootPath, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, fmt.Errorf("resolving %q: %w", match, err)
			}
			excluded[abs] = true
		}
	}
	return excluded, nil
}
