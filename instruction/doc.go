// Package instruction defines the static Instruction value type consumed by
// the dependence analyzer, the processor resolver, and the scheduler.
//
// An Instruction never carries pointers to other instructions: producers are
// always expressed as integer indices (see package program), keeping the
// dependence graph representable as flat adjacency arrays rather than a web
// of pointer cycles.
package instruction
