package execgraph

// LongestPath performs the backward relaxation over the graph and
// returns the critical path as the ordered sequence of edges traversed
// from the last retire node back to the first dispatch node. The first
// entry is a weight-1 edge whose To is the last node itself; each later
// entry is an edge whose To is the next node on the way down. Every edge
// points to a strictly lower node index, so a single backward sweep from
// the last node to the first suffices; no iteration to a fixed point is
// needed.
func (g *Graph) LongestPath() []Edge {
	n := len(g.nodes)
	if n == 0 {
		return nil
	}

	const negInf = -(int64(1) << 62)
	dist := make([]int64, n)
	path := make([][]Edge, n)
	for i := range dist {
		dist[i] = negInf
	}

	last := n - 1
	dist[last] = 0
	path[last] = []Edge{{To: last, Weight: 1}}

	for u := last; u >= 1; u-- {
		for _, e := range g.nodes[u] {
			if dist[e.To] < dist[u]+e.Weight {
				dist[e.To] = dist[u] + e.Weight
				np := make([]Edge, len(path[u])+1)
				copy(np, path[u])
				np[len(path[u])] = e
				path[e.To] = np
			}
		}
	}
	return path[0]
}
