package depgraph

import "strings"

// Resolve binds wildcard identifiers to the concrete units they refer to.
//
// A file that references a generically-qualified unit (open architecture,
// open library) cannot know at scan time which concrete units will satisfy
// it; once the whole project is in the graph, every wildcard identifier
// gets an edge to each concrete identifier it matches. The node set is
// snapshotted once and walked in a single pass: added edges never
// introduce new wildcard ids, so no fixed-point iteration is needed.
// Calling Resolve again adds nothing.
func (g *Graph) Resolve() {
	ids := g.NodeIDs()
	for _, u := range ids {
		if !strings.Contains(u, "*") {
			continue
		}
		for _, v := range ids {
			if matchesWildcard(u, v) {
				g.AddEdge(u, v)
			}
		}
	}
}

// matchesWildcard reports whether the wildcard identifier u refers to the
// concrete identifier v. Exactly one side may carry a wildcard. Segments
// compare literally except `*`, which stands for exactly one segment; v
// may continue past the end of u, so an open reference to an entity also
// covers the entity's specializations. Wildcard references only ever bind
// to second-level or deeper units: a bare first-level unit (the entity or
// package itself) is never a valid wildcard target.
func matchesWildcard(u, v string) bool {
	if !strings.Contains(u, "*") || strings.Contains(v, "*") {
		return false
	}
	vSegs := strings.Split(v, ".")
	if len(vSegs) < 3 {
		return false
	}
	uSegs := strings.Split(u, ".")
	if len(uSegs) > len(vSegs) {
		return false
	}
	for i, s := range uSegs {
		if s == "*" {
			continue
		}
		if s != vSegs[i] {
			return false
		}
	}
	return true
}
