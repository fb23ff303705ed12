package execgraph

// Edge is a weighted dependency: "the node holding this edge depends on
// node To, costing Weight cycles." Weights are mutated in place by Update
// as the scheduler learns each dynamic instruction's actual latencies.
type Edge struct {
	To     int
	Weight int64
}

// Graph is the 3·M-node dispatch/execute/retire DAG for a run of M
// dynamic instructions.
type Graph struct {
	nodes [][]Edge
}

// Build constructs the graph's fixed structure for dynN dynamic
// instructions, given the reorder window capacity and the static
// per-instruction dependency offsets (program.Program.DepOffsets,
// indexed by static instruction, i.e. dynamic index modulo staticN).
// Edge weights start at their structural defaults (1 for the fixed
// dispatch-to-execute and execute-to-retire transitions, 0 elsewhere)
// and are refined later by Update.
func Build(dynN, windowSize, staticN int, depOffsets [][]int) *Graph {
	g := &Graph{nodes: make([][]Edge, dynN*3)}

	for i := 0; i < dynN; i++ {
		dispIdx := 3 * i
		execIdx := dispIdx + 1
		retIdx := dispIdx + 2

		var dispatchEdges []Edge
		if i > 0 {
			dispatchEdges = append(dispatchEdges, Edge{To: (i - 1) * 3, Weight: 0})
		}
		if i >= windowSize {
			dispatchEdges = append(dispatchEdges, Edge{To: (i-windowSize)*3 + 2, Weight: 0})
		}
		g.nodes[dispIdx] = dispatchEdges

		executeEdges := []Edge{{To: dispIdx, Weight: 1}}
		for _, off := range depOffsets[i%staticN] {
			j := i - off
			if j >= 0 {
				executeEdges = append(executeEdges, Edge{To: j*3 + 1, Weight: 0})
			}
		}
		g.nodes[execIdx] = executeEdges

		retireEdges := []Edge{{To: execIdx, Weight: 1}}
		if i > 0 {
			retireEdges = append(retireEdges, Edge{To: (i-1)*3 + 2, Weight: 0})
		}
		g.nodes[retIdx] = retireEdges
	}
	return g
}

// NodeCount returns the total number of nodes (3 * number of dynamic
// instructions).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Update records dynamic instruction dynamicIdx's measured latencies onto
// its three nodes. Dispatch and retire-stage latencies are capped at one
// cycle in the graph (the graph attributes stalls to the instructions
// that caused them, not to dispatch/retire bandwidth itself). Any
// dependency edge of the execute node is recomputed from the producer's
// retire-node execute-latency accumulator, mirroring how a cross-
// instruction data dependency's cost is only known once the producer has
// been fully timed.
func (g *Graph) Update(dynamicIdx int, dispLatency, execLatency, retLatency int64) {
	if dispLatency > 1 {
		dispLatency = 1
	}
	if retLatency > 1 {
		retLatency = 1
	}

	dispIdx := 3 * dynamicIdx
	execIdx := dispIdx + 1
	retIdx := dispIdx + 2

	if len(g.nodes[dispIdx]) > 0 {
		g.nodes[dispIdx][0].Weight = dispLatency
	}

	for k := 1; k < len(g.nodes[execIdx]); k++ {
		dep := &g.nodes[execIdx][k]
		producerRetireIdx := dep.To + 1
		dep.Weight = g.nodes[producerRetireIdx][0].Weight - 1
	}

	g.nodes[retIdx][0].Weight += execLatency
	if len(g.nodes[retIdx]) > 1 {
		g.nodes[retIdx][1].Weight = retLatency
	}
}
