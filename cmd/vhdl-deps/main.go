// vhdl-deps scans VHDL/PSL sources and prints Make rules that encode a
// correct compile order.
//
// The pipeline:
//  1. Config names the libraries, their source roots and glob patterns
//  2. Extractor pulls defined/used design units out of each file
//  3. The dependency graph folds all per-file facts together
//  4. Resolve binds wildcard references to concrete units
//  5. Prune drops always-available libraries (ieee, std)
//  6. The emitter prints du/ and object rules for the build tool
//
// Rules go to stdout (or -o), diagnostics to stderr; the two streams are
// never mixed, so the output can be piped straight into a Makefile
// include.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/robert-at-pretension-io/vhdl-deps/internal/config"
	"github.com/robert-at-pretension-io/vhdl-deps/internal/makegen"
	"github.com/robert-at-pretension-io/vhdl-deps/internal/scanner"
)

func main() {
	var (
		configPath string
		outputPath string
		verbose    bool
		rootPath   = "."
	)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "init":
			runInit()
			return
		case "-h", "--help", "help":
			printUsage()
			return
		case "-v", "--verbose":
			verbose = true
		case "-c", "--config":
			i++
			if i >= len(args) {
				printUsage()
				os.Exit(1)
			}
			configPath = args[i]
		case "-o", "--output":
			i++
			if i >= len(args) {
				printUsage()
				os.Exit(1)
			}
			outputPath = args[i]
		default:
			rootPath = args[i]
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(rootPath, configPath, outputPath, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(rootPath, configPath, outputPath string, logger *log.Logger) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(rootPath)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("resolving root path: %w", err)
	}

	s := scanner.New(cfg, logger)
	if err := s.Run(context.Background(), absRoot); err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	e := &makegen.Emitter{
		Graph:  s.Graph,
		Root:   absRoot,
		ObjDir: cfg.ObjDir,
		Log:    logger,
	}
	return e.Emit(out)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: vhdl-deps [command] [options] <path>

Commands:
  init              Create a vhdl_deps.json configuration file
  <path>            Scan sources under the given path (default ".")

Options:
  -v, --verbose     Enable verbose diagnostics
  -c, --config      Specify config file: vhdl-deps -c config.json <path>
  -o, --output      Write rules to a file instead of stdout
  -h, --help        Show this help message

Configuration:
  vhdl-deps looks for configuration in:
    1. ./vhdl_deps.json
    2. ./.vhdl_deps.json
    3. <path>/vhdl_deps.json
    4. ~/.config/vhdl_deps/config.json
  With no config file, the LIBS, LIB_PATHS and IGNORED_FILES environment
  variables are honored (space separated, order paired).

  Run 'vhdl-deps init' to create a default configuration file.`)
}

func runInit() {
	configPath := "vhdl_deps.json"

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file %s already exists. Overwrite? [y/N]: ", configPath)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return
		}
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("\nEdit this file to configure:")
	fmt.Println("  - Library names and source roots")
	fmt.Println("  - File patterns and excluded files")
	fmt.Println("  - Libraries assumed to be always available")
}
