package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvcat/instruction"
	"github.com/katalvlaran/rvcat/program"
)

func instr(typ, destin, s1, s2, s3, constant string) instruction.Instruction {
	return instruction.Instruction{Type: typ, Text: destin + "=" + s1 + s2 + s3, Destin: destin, Source1: s1, Source2: s2, Source3: s3, Constant: constant}
}

// Scenario 1 (spec §8): single-instruction self-cycle "add a,a,1".
func TestLoad_SelfCycle(t *testing.T) {
	p, err := program.Load("self", []instruction.Instruction{
		instr("ADD", "a", "a", "", "", "1"),
	})
	require.NoError(t, err)

	require.Len(t, p.CyclicPaths, 1)
	assert.Equal(t, []int{0, 0}, p.CyclicPaths[0])
	assert.Equal(t, []int{1}, p.DepOffsets[0])
}

// Scenario 2 (spec §8): two-stage chain, no cycle. b = a+1; c = b+1 with
// read-only a.
func TestLoad_ChainNoCycle(t *testing.T) {
	p, err := program.Load("chain", []instruction.Instruction{
		instr("ADD", "b", "a", "", "", "1"),
		instr("ADD", "c", "b", "", "", "1"),
	})
	require.NoError(t, err)

	assert.Empty(t, p.CyclicPaths)
	assert.Equal(t, []string{"a"}, p.ReadOnly)
	assert.Equal(t, []int{1}, p.DepOffsets[1]) // c depends on b, one instruction back
	assert.Empty(t, p.DepOffsets[0])           // a is read-only, not a data producer
}

// Scenario 3 (spec §8): loop-carried two-node cycle. x = x + y; y = x - 1.
// Instruction 0 also reads its own x from the previous iteration, so the
// self-loop [0, 0] is a second simple cycle.
func TestLoad_LoopCarriedTwoNode(t *testing.T) {
	p, err := program.Load("lc", []instruction.Instruction{
		instr("ADD", "x", "x", "y", "", ""),
		instr("SUB", "y", "x", "", "", "1"),
	})
	require.NoError(t, err)

	require.Len(t, p.CyclicPaths, 2)
	assert.Equal(t, []int{0, 1, 0}, p.CyclicPaths[0])
	assert.Equal(t, []int{0, 0}, p.CyclicPaths[1])
}

func TestLoad_EmptyProgramRejected(t *testing.T) {
	_, err := program.Load("empty", nil)
	assert.ErrorIs(t, err, program.ErrEmptyProgram)
}

// Every source symbol must land in exactly one classification bucket
// (spec §8 invariants).
func TestLoad_SymbolClassificationIsPartition(t *testing.T) {
	p, err := program.Load("classify", []instruction.Instruction{
		instr("ADD", "b", "a", "", "", ""),
		instr("MUL", "c", "b", "k", "", ""),
	})
	require.NoError(t, err)

	variables := make(map[string]bool)
	for _, v := range p.Variables {
		variables[v] = true
	}
	readOnly := make(map[string]bool)
	for _, v := range p.ReadOnly {
		readOnly[v] = true
	}

	assert.True(t, variables["a"])
	assert.True(t, readOnly["a"])
	assert.True(t, variables["k"])
	assert.True(t, readOnly["k"])
	assert.True(t, variables["b"])
	assert.True(t, variables["c"])
	// Variables holds every symbol; a produced source is never read-only.
	assert.False(t, readOnly["b"])
}

// WAW within one iteration: the last writer before a read wins (resolved
// Open Question, SPEC_FULL.md §9 item 1).
func TestLoad_LastWriterWins(t *testing.T) {
	p, err := program.Load("waw", []instruction.Instruction{
		instr("ADD", "x", "", "", "", "1"), // 0: x = 1
		instr("ADD", "x", "", "", "", "2"), // 1: x = 2 (overwrites producer of x)
		instr("ADD", "y", "x", "", "", ""), // 2: y = x, should depend on instr 1
	})
	require.NoError(t, err)

	deps := p.DepList[2]
	require.Len(t, deps, 1)
	assert.Equal(t, 1, deps[0].Producer)
}

func TestJSONRoundTrip(t *testing.T) {
	p, err := program.Load("rt", []instruction.Instruction{
		instr("ADD", "x", "x", "y", "", ""),
		instr("SUB", "y", "x", "", "", "1"),
	})
	require.NoError(t, err)

	data, err := p.JSON()
	require.NoError(t, err)

	reloaded, err := program.LoadJSON(data)
	require.NoError(t, err)

	assert.Equal(t, p.Instructions, reloaded.Instructions)
	assert.Equal(t, p.Variables, reloaded.Variables)
	assert.Equal(t, p.DepList, reloaded.DepList)
	assert.Equal(t, p.CyclicPaths, reloaded.CyclicPaths)
}

func TestLoadJSON_MismatchedCount(t *testing.T) {
	_, err := program.LoadJSON([]byte(`{"name":"bad","n":2,"instruction_list":[{"type":"ADD"}]}`))
	assert.ErrorIs(t, err, program.ErrMismatchedCount)
}
