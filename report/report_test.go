package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvcat/execgraph"
	"github.com/katalvlaran/rvcat/instruction"
	"github.com/katalvlaran/rvcat/processor"
	"github.com/katalvlaran/rvcat/program"
	"github.com/katalvlaran/rvcat/report"
	"github.com/katalvlaran/rvcat/scheduler"
	"github.com/katalvlaran/rvcat/staticanalyzer"
)

func selfRecurrentProgram(t *testing.T) *program.Program {
	t.Helper()
	p, err := program.Load("p", []instruction.Instruction{
		{Type: "ADD", Text: "add a,a,c1", Destin: "a", Source1: "a", Constant: "1"},
	})
	require.NoError(t, err)
	return p
}

func testProcessor(t *testing.T) *processor.Processor {
	t.Helper()
	proc, err := processor.LoadJSON([]byte(`{
		"name": "proc", "dispatch": 1, "retire": 1,
		"latencies": {"ADD": 3},
		"ports": {"P0": ["ADD"]}
	}`))
	require.NoError(t, err)
	return proc
}

func TestStaticText_ContainsClassification(t *testing.T) {
	p := selfRecurrentProgram(t)
	proc := testProcessor(t)
	rep := staticanalyzer.Analyze(p, proc)

	text := report.StaticText(rep)
	assert.Contains(t, text, "Classification:")
	assert.Contains(t, text, string(rep.Classification))
}

func TestStaticJSON_RoundTripsClassification(t *testing.T) {
	p := selfRecurrentProgram(t)
	proc := testProcessor(t)
	rep := staticanalyzer.Analyze(p, proc)

	data, err := report.StaticJSON(rep)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, string(rep.Classification), decoded["classification"])
}

func TestDynamicText_ReportsHeadlineCounters(t *testing.T) {
	p := selfRecurrentProgram(t)
	result := &scheduler.Result{
		Iterations: 2, Instructions: 2, Cycles: 8, IPC: 0.25,
		PortUsage: map[string]float64{"P0": 50.0},
		PathStats: execgraph.Stats{PerInstruction: []float64{80}, DispatchPct: 10, RetirePct: 10},
	}

	text := report.DynamicText(p, result)
	assert.Contains(t, text, "Cycles:        8")
	assert.Contains(t, text, "50.00%")
}

func TestDynamicJSON_EmitsCriticalPathInstructions(t *testing.T) {
	p := selfRecurrentProgram(t)
	result := &scheduler.Result{
		Iterations: 2, Instructions: 2, Cycles: 8, IPC: 0.25,
		PortUsage: map[string]float64{"P0": 0.5},
		PathStats: execgraph.Stats{PerInstruction: []float64{80}, DispatchPct: 10, RetirePct: 10},
	}

	data, err := report.DynamicJSON(p, result)
	require.NoError(t, err)

	var decoded struct {
		CriticalPath struct {
			Instructions []struct {
				ID          int     `json:"id"`
				Instruction string  `json:"instruction"`
				Percentage  float64 `json:"percentage"`
			} `json:"instructions"`
		} `json:"critical_path"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.CriticalPath.Instructions, 1)
	assert.Equal(t, "add a,a,c1", decoded.CriticalPath.Instructions[0].Instruction)
}

func TestGraphviz_MarksRecurrentEdgeRed(t *testing.T) {
	p := selfRecurrentProgram(t)
	out := report.Graphviz(p, []int64{3}, report.GraphvizOptions{Iterations: 2, ShowLatency: true})

	assert.True(t, strings.HasPrefix(out, "digraph \"Data Dependence Graph\""))
	assert.Contains(t, out, "cluster_1")
	assert.Contains(t, out, "cluster_2")
	assert.Contains(t, out, "color=red")
	assert.Contains(t, out, "i1s0 -> i2s0")
}
