package depgraph

import "strings"

// Prune deletes every node belonging to one of the given libraries,
// together with all incident edges. Used for libraries like ieee or std
// that the build tools provide without explicit compile ordering.
func (g *Graph) Prune(libraries []string) {
	for _, id := range g.NodeIDs() {
		for _, lib := range libraries {
			if strings.HasPrefix(id, normalize(lib)+".") {
				g.RemoveNode(id)
				break
			}
		}
	}
}
