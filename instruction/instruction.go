package instruction

// MemKind classifies the memory behavior of an Instruction for cache
// integration (spec §4.5, §6). Instructions that are not memory operations
// carry MemNone.
type MemKind int

const (
	// MemNone marks an instruction with no memory access.
	MemNone MemKind = iota
	// MemLoad marks a memory read.
	MemLoad
	// MemStore marks a memory write.
	MemStore
)

// String renders a MemKind for diagnostics and JSON-adjacent text output.
func (k MemKind) String() string {
	switch k {
	case MemLoad:
		return "load"
	case MemStore:
		return "store"
	default:
		return "none"
	}
}

// Stride describes the per-iteration address sequence of a memory
// instruction: the k-th dynamic dispatch (0-indexed, wrapping modulo Count)
// offers address Base + k*Stride to the cache (spec §4.5).
//
// Count == 0 means the instruction is not a memory access; the scheduler
// never consults Stride in that case.
type Stride struct {
	Base   int64
	Stride int64
	Count  int64
}

// IsMemory reports whether this Stride describes an active memory access
// sequence.
func (s Stride) IsMemory() bool { return s.Count > 0 }

// Instruction is a single static instruction in a straight-line loop body.
//
// Type is a hierarchical, dot-separated tag (e.g. "MEM.L.D") resolved by the
// processor model via successive suffix-stripping (spec §4.2). Text is
// free-form and used only for display. Destin/Source1/Source2/Source3 and
// Constant are opaque symbols compared only by equality; the empty string
// denotes "absent" for every field.
type Instruction struct {
	Type     string
	Text     string
	Destin   string
	Source1  string
	Source2  string
	Source3  string
	Constant string

	// Mem describes the memory-access sequence of this instruction, if any.
	// Zero value (Count == 0) means "not a memory instruction".
	Mem Stride
	// MemKind classifies the access as a load or a store; only meaningful
	// when Mem.IsMemory() is true.
	MemKind MemKind
}

// Sources returns the up-to-three source operand symbols in declared order,
// including empty strings for absent operands. Callers that need only the
// non-empty ones should filter the result.
func (i Instruction) Sources() [3]string {
	return [3]string{i.Source1, i.Source2, i.Source3}
}

// IsMemory reports whether this instruction participates in the cache model.
func (i Instruction) IsMemory() bool { return i.Mem.IsMemory() }
