package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vhdl_deps.json")
	content := `{
  "libraries": [
    {"name": "work", "path": "vhdl"},
    {"name": "neorv32", "path": "lib/neorv32"}
  ],
  "exclude": ["lib/neorv32/rtl/core/neorv32_icache.vhd"]
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(cfg.Libraries) != 2 {
		t.Fatalf("expected 2 libraries, got %d", len(cfg.Libraries))
	}
	if cfg.Libraries[0].Name != "work" || cfg.Libraries[1].Path != "lib/neorv32" {
		t.Fatalf("library order not preserved: %+v", cfg.Libraries)
	}
	// defaults fill the gaps
	if len(cfg.Patterns) == 0 {
		t.Fatal("patterns default not applied")
	}
	if cfg.ObjDir != "obj" {
		t.Fatalf("objDir default not applied, got %q", cfg.ObjDir)
	}
	if len(cfg.AssumedLibraries) != 2 {
		t.Fatalf("assumedLibraries default not applied: %v", cfg.AssumedLibraries)
	}
}

func TestLoadFileRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vhdl_deps.json")
	if err := os.WriteFile(path, []byte(`{"librarys": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected schema error for misspelled field")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LIBS", "work neorv32")
	t.Setenv("LIB_PATHS", "vhdl lib/neorv32")
	t.Setenv("IGNORED_FILES", "lib/neorv32/rtl/core/neorv32_icache.vhd")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if len(cfg.Libraries) != 2 {
		t.Fatalf("expected 2 libraries, got %+v", cfg.Libraries)
	}
	if cfg.Libraries[1].Name != "neorv32" || cfg.Libraries[1].Path != "lib/neorv32" {
		t.Fatalf("name/path pairing broken: %+v", cfg.Libraries)
	}
	if len(cfg.Exclude) != 1 {
		t.Fatalf("ignored files not picked up: %v", cfg.Exclude)
	}
}

func TestFromEnvMismatchedLists(t *testing.T) {
	t.Setenv("LIBS", "work neorv32")
	t.Setenv("LIB_PATHS", "vhdl")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for mismatched LIBS/LIB_PATHS")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("LIBS", "")
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Libraries) != 1 || cfg.Libraries[0].Name != "work" {
		t.Fatalf("expected default work library, got %+v", cfg.Libraries)
	}
}
