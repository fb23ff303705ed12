package staticanalyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvcat/instruction"
	"github.com/katalvlaran/rvcat/processor"
	"github.com/katalvlaran/rvcat/program"
	"github.com/katalvlaran/rvcat/staticanalyzer"
)

func mustProcessor(t *testing.T, data string) *processor.Processor {
	t.Helper()
	p, err := processor.LoadJSON([]byte(data))
	require.NoError(t, err)
	return p
}

// Single self-recurrent add (spec §8 scenario 1) with latency 3: the
// cyclic path is [0,0], lat=3, iters=1, so latency_bound = 3.
func TestAnalyze_LatencyBoundFromSelfCycle(t *testing.T) {
	prog, err := program.Load("self-recur", []instruction.Instruction{
		{Type: "ADD", Text: "add a,a,1", Destin: "a", Source1: "a", Constant: "1"},
	})
	require.NoError(t, err)

	proc := mustProcessor(t, `{
		"name": "p", "dispatch": 4, "retire": 4,
		"latencies": {"ADD": 3},
		"ports": {"P0": ["ADD"]}
	}`)

	report := staticanalyzer.Analyze(prog, proc)
	assert.Equal(t, "3", report.LatencyCyclesPerIter.RatString())
}

// No data dependences at all: latency_bound is 0, so the program is
// necessarily throughput-bound (or tied, if throughput also works out
// to 0, which cannot happen with a positive dispatch width).
func TestAnalyze_NoCyclesIsThroughputBound(t *testing.T) {
	prog, err := program.Load("no-deps", []instruction.Instruction{
		{Type: "ADD", Text: "add x,c1,c2", Destin: "x", Constant: "1"},
	})
	require.NoError(t, err)

	proc := mustProcessor(t, `{
		"name": "p", "dispatch": 1, "retire": 1,
		"latencies": {"ADD": 1},
		"ports": {"P0": ["ADD"]}
	}`)

	report := staticanalyzer.Analyze(prog, proc)
	assert.Equal(t, staticanalyzer.ThroughputBound, report.Classification)
	assert.Equal(t, "0", report.LatencyCyclesPerIter.RatString())
}

// Two instructions pinned to the same single port: port_cycles = 2/1 = 2,
// which must dominate dispatch/retire cycles of 2/4 = 0.5.
func TestAnalyze_PortContentionDominatesThroughput(t *testing.T) {
	prog, err := program.Load("port-bound", []instruction.Instruction{
		{Type: "MUL", Text: "mul a,c1,c2", Destin: "a", Constant: "1"},
		{Type: "MUL", Text: "mul b,c1,c2", Destin: "b", Constant: "1"},
	})
	require.NoError(t, err)

	proc := mustProcessor(t, `{
		"name": "p", "dispatch": 4, "retire": 4,
		"latencies": {"MUL": 1},
		"ports": {"P0": ["MUL"]}
	}`)

	report := staticanalyzer.Analyze(prog, proc)
	assert.Equal(t, "2", report.ThroughputCyclesPerIter.RatString())
	require.Len(t, report.Bottlenecks, 1)
	assert.Equal(t, "PORTS", report.Bottlenecks[0].Kind)
	assert.Equal(t, []string{"P0"}, report.Bottlenecks[0].Ports)
}
