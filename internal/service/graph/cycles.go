package graph

import (
	"context"
)

// Cycles is the result of simple-cycle enumeration.
type Cycles struct {
	TotalCycles int
	Cycles      [][]string
	Truncated   bool
}

// FindCycles enumerates the simple directed cycles of the graph: node
// sequences where consecutive nodes are linked and the last links back to
// the first, with no repeated nodes. Each cycle is reported exactly once,
// starting from its lexicographically smallest node and following edge
// direction.
//
// Enumeration is exponential in the worst case for densely cyclic graphs.
// The search stops after cfg.MaxCycles cycles (Truncated is then set), and
// at most cfg.ReportCycles cycles are included in the result.
func (s *Service) FindCycles(ctx context.Context) (*Cycles, error) {
	snap, err := s.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	total, found, truncated := snap.simpleCycles(s.cfg.MaxCycles)
	if len(found) > s.cfg.ReportCycles {
		found = found[:s.cfg.ReportCycles]
	}

	return &Cycles{
		TotalCycles: total,
		Cycles:      found,
		Truncated:   truncated,
	}, nil
}

// simpleCycles enumerates simple directed cycles, each rooted at its
// smallest node: the DFS from a given root only walks nodes that compare
// greater than the root, so a cycle is discovered exactly once. Stops once
// budget cycles have been counted.
func (g *snapshot) simpleCycles(budget int) (total int, cycles [][]string, truncated bool) {
	cycles = [][]string{}

	onPath := make(map[string]struct{})
	var path []string

	var dfs func(root, node string) bool
	dfs = func(root, node string) bool {
		onPath[node] = struct{}{}
		path = append(path, node)

		for _, next := range g.out[node] {
			if next == root {
				total++
				cycles = append(cycles, append([]string(nil), path...))
				if total >= budget {
					return false
				}
				continue
			}
			// Nodes smaller than the root belong to cycles already rooted
			// elsewhere.
			if next < root {
				continue
			}
			if _, visiting := onPath[next]; visiting {
				continue
			}
			if !dfs(root, next) {
				return false
			}
		}

		path = path[:len(path)-1]
		delete(onPath, node)
		return true
	}

	for _, root := range g.sortedNodes() {
		if len(g.out[root]) == 0 {
			continue
		}
		if !dfs(root, root) {
			return total, cycles, true
		}
	}

	return total, cycles, false
}
