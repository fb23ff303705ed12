package program

import "errors"

// Sentinel errors for the program package.
//
// Error policy: only package-level sentinels are exposed; callers branch
// with errors.Is. Sentinels are never wrapped with formatted text at the
// definition site — call sites attach context with %w.
var (
	// ErrMismatchedCount indicates the declared instruction count (n) does
	// not match the length of the decoded instruction list (spec §6, §7
	// MalformedSource).
	ErrMismatchedCount = errors.New("program: declared instruction count does not match instruction list length")

	// ErrEmptyProgram indicates an attempt to load a Program with zero
	// instructions; the rest of the analyzer assumes N >= 1.
	ErrEmptyProgram = errors.New("program: instruction list must be non-empty")

	// ErrNegativeCount indicates an instruction declared a negative
	// memory access count, which would make the per-static address
	// counter ill-defined. A count of zero marks a non-memory instruction.
	ErrNegativeCount = errors.New("program: memory instruction access count must be positive")
)
