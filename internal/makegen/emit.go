// Package makegen turns a resolved dependency graph into Make rules.
//
// Two kinds of rule are emitted per design unit: a phony "du/" rule whose
// recipe just records that the unit is available, and an object rule
// listing which design units must exist before the unit's source file can
// be compiled. Aggregate OBJS / OBJS_TB variables collect the object
// artifacts for non-test and test sources.
package makegen

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/robert-at-pretension-io/vhdl-deps/internal/depgraph"
)

// anyToken replaces the wildcard character in rule names; make does not
// like "*" in targets.
const anyToken = "ANY"

// Testbench naming convention: a file name containing "_tb." or a path
// segment starting with "tb_".
var testbenchPattern = regexp.MustCompile(`(?i)(_tb\.)|(/tb_)`)

// Emitter writes build rules for every node of a graph. The graph is not
// mutated.
type Emitter struct {
	Graph *depgraph.Graph

	// Root is the directory object paths are made relative to.
	Root string

	// ObjDir prefixes every object artifact, e.g. "obj".
	ObjDir string

	// Log receives missing-definition warnings, kept apart from the rule
	// output.
	Log *log.Logger
}

// Emit writes the rules for all nodes, sorted by identifier. Referenced
// units that no scanned file defines are reported on the diagnostic logger
// and skipped; compilation downstream will surface the real failure if the
// unit is truly missing.
func (e *Emitter) Emit(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, id := range e.Graph.NodeIDs() {
		node, _ := e.Graph.Node(id)
		unit := strings.ReplaceAll(id, "*", anyToken)

		objFile := ""
		if node.File != "" {
			objFile = e.objectPath(node.File)
		}
		if objFile == "" && !strings.Contains(unit, anyToken) {
			e.Log.Warn("referenced design unit is not defined in any file, ignoring", "unit", unit)
			continue
		}

		// design unit rule:
		// du/<design_unit>: <object_file>
		//     @touch du/<design_unit>
		if objFile != "" {
			fmt.Fprintf(bw, "du/%s: %s\n", unit, objFile)
		} else {
			fmt.Fprintf(bw, "du/%s:\n", unit)
		}
		fmt.Fprintf(bw, "\t@echo [DU] %s\n", unit)
		fmt.Fprintln(bw, "\t@mkdir -p $(@D)")
		fmt.Fprintln(bw, "\t@touch $@")

		if objFile == "" {
			continue
		}

		// object file dependency-only rule:
		// <object_file>: <design_unit_dependencies>
		fmt.Fprintf(bw, "%s:", objFile)
		for _, dep := range e.Graph.Dependencies(id) {
			depNode, _ := e.Graph.Node(dep)
			// Dependencies defined in the same file (e.g. an entity and
			// its architecture) are resolved by compiling that one file;
			// listing them would make the rule circular.
			if depNode.File == node.File {
				continue
			}
			fmt.Fprintf(bw, " du/%s", strings.ReplaceAll(dep, "*", anyToken))
		}
		fmt.Fprintln(bw)

		// testbenches go to OBJS_TB, other sources to OBJS
		if testbenchPattern.MatchString(objFile) {
			fmt.Fprintf(bw, "OBJS_TB += %s\n", objFile)
		} else {
			fmt.Fprintf(bw, "OBJS += %s\n", objFile)
		}
	}

	return bw.Flush()
}

// objectPath derives the object artifact for a source file:
// <objDir>/<source path relative to Root>.o, slash-separated. Files
// outside Root keep their own path under objDir.
func (e *Emitter) objectPath(file string) string {
	rel, err := filepath.Rel(e.Root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = strings.TrimPrefix(filepath.Clean(file), string(filepath.Separator))
	}
	return e.ObjDir + "/" + filepath.ToSlash(rel) + ".o"
}
