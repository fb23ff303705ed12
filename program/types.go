package program

import "github.com/katalvlaran/rvcat/instruction"

// Dep is a single dependency record: Producer identifies the instruction
// (or the constant/read-only sentinel) that supplies the operand, and
// OperandRef indexes either Program.Constants (when Producer ==
// ProducerConstant) or Program.Variables (otherwise).
type Dep struct {
	Producer   int
	OperandRef int
}

// LoopCarried pairs a producing instruction index with the variable name
// it supplies, through the previous iteration, to a consumer at or before
// its own position.
type LoopCarried struct {
	Producer int
	Variable string
}

// Program is the immutable, analyzed form of an ordered instruction list.
// All fields besides Name/N/Instructions are derived by Load and never
// mutated afterward; the scheduler's only mutable per-static-instruction
// state (memory stride counters) lives outside Program, in the
// scheduler itself.
type Program struct {
	Name         string
	N            int
	Instructions []instruction.Instruction

	Variables   []string
	Constants   []string
	ReadOnly    []string
	LoopCarried []LoopCarried

	DepList     [][]Dep
	DepOffsets  [][]int

	// CyclicPaths holds the simple cyclic dependence paths discovered by
	// enumerateCyclicPaths, each rotated to start at its lowest
	// instruction index and stored as a closed walk [a, ..., a] whose last
	// element repeats the first (see cycles.go).
	CyclicPaths [][]int

	// InstrCyclic is the deduplicated set of instruction indices that
	// appear in at least one cyclic path, in the order first encountered
	// while walking CyclicPaths.
	InstrCyclic []int
}

// At returns the instruction at static index i, wrapping modulo N so
// dynamic indices (which run i, i+N, i+2N, ...) can be indexed directly.
func (p *Program) At(i int) instruction.Instruction {
	return p.Instructions[i%p.N]
}
