package depgraph

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/robert-at-pretension-io/vhdl-deps/internal/extractor"
)

// AddFile reads one source file, extracts its design units and merges them
// into the graph under the given library name.
func (g *Graph) AddFile(path, library string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defines, uses := extractor.Extract(src, library)
	g.Insert(path, defines, uses)
	return nil
}

// Insert merges one file's extraction result. Every defined unit gets a
// node tagged with the file and an edge to every unit the file uses,
// except itself. For first-level units a companion wildcard node
// "<unit>.*" is ensured; it has no file and anchors the later resolution
// of open-architecture references.
//
// Insertion is commutative: the same node and edge set results regardless
// of file order, so callers may extract files in parallel and merge the
// results under a lock.
func (g *Graph) Insert(path string, defines, uses map[string]bool) {
	useIDs := sortedSet(uses)
	for _, d := range sortedSet(defines) {
		g.nodes[d] = Node{File: path}
		for _, u := range useIDs {
			g.AddEdge(d, u)
		}
		if strings.Count(d, ".") == 1 {
			g.ensure(d + ".*")
		}
	}
}

func sortedSet(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, normalize(id))
	}
	sort.Strings(ids)
	return ids
}
