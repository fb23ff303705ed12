package execgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rvcat/execgraph"
)

// Two dynamic instructions of a single-instruction, dependency-free
// program, window large enough never to constrain dispatch. Hand-traced
// expected critical path and percentage attribution.
func TestLongestPath_TwoInstructionChain(t *testing.T) {
	g := execgraph.Build(2, 4, 1, [][]int{{}})

	g.Update(0, 1, 3, 1)
	g.Update(1, 1, 2, 1)

	path := g.LongestPath()
	var total int64
	for _, e := range path {
		total += e.Weight
	}
	assert.EqualValues(t, 7, total)

	stats := execgraph.PathStats(path, 1)
	assert.InDelta(t, 100*4.0/7.0, stats.PerInstruction[0], 0.01)
	assert.InDelta(t, 100*1.0/7.0, stats.DispatchPct, 0.01)
	assert.InDelta(t, 100*2.0/7.0, stats.RetirePct, 0.01)
}

func TestPathStats_PercentagesSumToFullPath(t *testing.T) {
	g := execgraph.Build(3, 4, 1, [][]int{{1}})
	g.Update(0, 1, 2, 1)
	g.Update(1, 1, 1, 1)
	g.Update(2, 1, 1, 1)

	path := g.LongestPath()
	stats := execgraph.PathStats(path, 1)

	sum := stats.DispatchPct + stats.RetirePct
	for _, v := range stats.PerInstruction {
		sum += v
	}
	assert.InDelta(t, 100, sum, 0.01)
}

func TestBuild_NodeCountIsThreePerDynamicInstruction(t *testing.T) {
	g := execgraph.Build(5, 2, 1, [][]int{{}})
	assert.Equal(t, 15, g.NodeCount())
}
