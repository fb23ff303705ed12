// Package program builds a Program from an ordered list of
// instruction.Instruction values: it derives the variable/constant/
// read-only tables, the per-instruction dependence list, the dynamic
// dependence offsets consumed by the scheduler, and the set of simple
// cyclic dependence paths used by the static analyzer.
//
// Producers are represented as plain integers (-1 constant, -3 read-only,
// 0..N-1 a producing instruction) rather than pointers, so the dependence
// graph — including its cycles — is just a pair of flat adjacency arrays
// (Program.DepList forward, an internal successor table reverse). See
// the "program" entry of DESIGN.md for the rationale.
//
// Complexity: Load is a single O(N) forward sweep plus an O(N) fixup sweep
// for loop-carried producers, followed by cyclic-path enumeration bounded
// by O(N + E + C·L) where C is the number of simple cycles and L their
// average length (spec §4.1).
package program

// Sentinel producer values used throughout Program.DepList.
const (
	// ProducerConstant marks a dependency on a constant literal; the
	// associated operand reference indexes Program.Constants.
	ProducerConstant = -1
	// producerPending marks a dependency not yet resolved during the
	// forward sweep; resolved to a real producer (or ProducerReadOnly by
	// construction it is never read-only) by the fixup sweep. Never
	// observable after Load returns.
	producerPending = -2
	// ProducerReadOnly marks a dependency on a symbol that is read but
	// never written; the associated operand reference indexes
	// Program.Variables.
	ProducerReadOnly = -3
)
