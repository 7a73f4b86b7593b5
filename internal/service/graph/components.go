package graph

// largestWeakComponent returns the size of the largest weakly connected
// component: the biggest set of nodes mutually reachable when edge direction
// is ignored. Zero for an empty graph.
func largestWeakComponent(snap *snapshot) int {
	if len(snap.nodes) == 0 {
		return 0
	}

	// Undirected adjacency: every edge contributes both directions.
	undirected := make(map[string][]string, len(snap.nodes))
	for source, targets := range snap.out {
		for _, target := range targets {
			undirected[source] = append(undirected[source], target)
			undirected[target] = append(undirected[target], source)
		}
	}

	visited := make(map[string]struct{}, len(snap.nodes))
	largest := 0

	for start := range snap.nodes {
		if _, seen := visited[start]; seen {
			continue
		}

		size := 0
		queue := []string{start}
		visited[start] = struct{}{}

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			size++

			for _, next := range undirected[node] {
				if _, seen := visited[next]; seen {
					continue
				}
				visited[next] = struct{}{}
				queue = append(queue, next)
			}
		}

		if size > largest {
			largest = size
		}
	}

	return largest
}
