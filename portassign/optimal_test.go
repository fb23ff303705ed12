package portassign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rvcat/portassign"
)

func outcomeByPos(out []portassign.Outcome, pos int) portassign.Outcome {
	for _, o := range out {
		if o.Pos == pos {
			return o
		}
	}
	return portassign.Outcome{}
}

// Two ports, four candidates: a and d can use either port, b is pinned to
// P0, c is pinned to P1. Only two can issue per cycle regardless of
// strategy, but greedy's first-fit bias always lets a claim P0 before b
// gets a chance, while the optimal assignment's lower-sum tie-break
// prefers the more constrained, lower-position candidate.
func fourCandidates() []portassign.Candidate {
	return []portassign.Candidate{
		{Pos: 0, Ports: []string{"P0", "P1"}}, // a
		{Pos: 1, Ports: []string{"P0"}},        // b
		{Pos: 2, Ports: []string{"P1"}},        // c
		{Pos: 3, Ports: []string{"P0", "P1"}},  // d
	}
}

func TestGreedy_FirstFitStarvesPinnedCandidates(t *testing.T) {
	out := portassign.Greedy(fourCandidates(), 4)

	a := outcomeByPos(out, 0)
	b := outcomeByPos(out, 1)
	c := outcomeByPos(out, 2)
	d := outcomeByPos(out, 3)

	assert.True(t, a.Assigned)
	assert.Equal(t, "P0", a.Port)
	assert.False(t, b.Assigned)
	assert.True(t, c.Assigned)
	assert.Equal(t, "P1", c.Port)
	assert.False(t, d.Assigned)
}

func TestOptimal_PrefersLowerSumAssignment(t *testing.T) {
	out := portassign.Optimal(fourCandidates(), 4)

	a := outcomeByPos(out, 0)
	b := outcomeByPos(out, 1)
	c := outcomeByPos(out, 2)
	d := outcomeByPos(out, 3)

	assert.True(t, a.Assigned)
	assert.Equal(t, "P1", a.Port)
	assert.True(t, b.Assigned)
	assert.Equal(t, "P0", b.Port)
	assert.False(t, c.Assigned)
	assert.False(t, d.Assigned)
}

func TestOptimal_MaximizesCardinalityOverThreePorts(t *testing.T) {
	cands := []portassign.Candidate{
		{Pos: 0, Ports: []string{"P0"}},
		{Pos: 1, Ports: []string{"P0", "P1"}},
		{Pos: 2, Ports: []string{"P1", "P2"}},
	}
	out := portassign.Optimal(cands, 3)

	assigned := 0
	for _, o := range out {
		if o.Assigned {
			assigned++
		}
	}
	assert.Equal(t, 3, assigned)
}

func TestOptimal_ExecuteWidthTruncatesInWindowOrder(t *testing.T) {
	out := portassign.Optimal(fourCandidates(), 1)

	assigned := 0
	for _, o := range out {
		if o.Assigned {
			assigned++
		}
	}
	assert.Equal(t, 1, assigned)
	assert.True(t, outcomeByPos(out, 0).Assigned)
}

func TestGreedy_ExecuteWidthZeroAssignsNothing(t *testing.T) {
	out := portassign.Greedy(fourCandidates(), 0)
	for _, o := range out {
		assert.False(t, o.Assigned)
	}
}
