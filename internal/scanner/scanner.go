// Package scanner drives the dependency pipeline: discover source files
// per library, extract them in parallel, merge everything into one graph,
// then resolve wildcard references and prune assumed libraries.
package scanner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/robert-at-pretension-io/vhdl-deps/internal/config"
	"github.com/robert-at-pretension-io/vhdl-deps/internal/depgraph"
	"github.com/robert-at-pretension-io/vhdl-deps/internal/extractor"
)

// Scanner owns the graph being built. Extraction of individual files is
// independent and runs in parallel; graph insertion is commutative, so the
// results are merged under a single lock. Resolve and Prune need the full
// node set and run strictly after all files are in.
type Scanner struct {
	Config *config.Config
	Graph  *depgraph.Graph
	Log    *log.Logger
}

// New creates a Scanner with an empty graph.
func New(cfg *config.Config, logger *log.Logger) *Scanner {
	return &Scanner{
		Config: cfg,
		Graph:  depgraph.New(),
		Log:    logger,
	}
}

// Run scans every configured library under rootPath and leaves the
// resolved, pruned graph in s.Graph. Any unreadable file fails the whole
// run.
func (s *Scanner) Run(ctx context.Context, rootPath string) error {
	s.Log.Info("scanning dependencies...")

	var mu sync.Mutex
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))

	for _, lib := range s.Config.Libraries {
		files, err := s.Config.LibraryFiles(rootPath, lib)
		if err != nil {
			return fmt.Errorf("resolving library %s: %w", lib.Name, err)
		}
		s.Log.Debug("library resolved", "library", lib.Name, "files", len(files))

		for _, file := range files {
			grp.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				src, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
				defines, uses := extractor.Extract(src, lib.Name)
				mu.Lock()
				s.Graph.Insert(file, defines, uses)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := grp.Wait(); err != nil {
		return err
	}

	s.Graph.Resolve()
	s.Graph.Prune(s.Config.AssumedLibraries)

	s.Log.Debug("graph built", "nodes", s.Graph.NodeCount(), "edges", s.Graph.EdgeCount())
	return nil
}
