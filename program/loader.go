package program

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rvcat/instruction"
)

// jsonInstruction mirrors the wire format of a single instruction entry
// (spec §6): missing fields default to the empty string.
type jsonInstruction struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Destin   string `json:"destin"`
	Source1  string `json:"source1"`
	Source2  string `json:"source2"`
	Source3  string `json:"source3"`
	Constant string `json:"constant"`

	// MemBase/MemStride/MemCount supplement the distilled wire format with
	// the per-iteration address sequence (spec §4.5); all default to zero,
	// which Instruction.IsMemory reports as "not a memory access".
	MemBase   int64  `json:"mem_base,omitempty"`
	MemStride int64  `json:"mem_stride,omitempty"`
	MemCount  int64  `json:"mem_count,omitempty"`
	MemKind   string `json:"mem_kind,omitempty"`
}

// jsonProgram mirrors the Program wire object: {name, n, instruction_list}.
type jsonProgram struct {
	Name            string            `json:"name"`
	N               int               `json:"n"`
	InstructionList []jsonInstruction `json:"instruction_list"`
}

// LoadJSON decodes a Program wire object and runs the dependence analyzer
// over it. It fails with ErrMismatchedCount when n disagrees with the
// decoded instruction list length (spec §6 "Validation"), and returns any
// json.Unmarshal error wrapped with a "malformed source" prefix (spec §7
// MalformedSource).
func LoadJSON(data []byte) (*Program, error) {
	var wire jsonProgram
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("program: malformed source: %w", err)
	}

	if wire.N != len(wire.InstructionList) {
		return nil, fmt.Errorf("%w: n=%d instructions=%d", ErrMismatchedCount, wire.N, len(wire.InstructionList))
	}

	instrs := make([]instruction.Instruction, len(wire.InstructionList))
	for i, ji := range wire.InstructionList {
		in := instruction.Instruction{
			Type:     ji.Type,
			Text:     ji.Text,
			Destin:   ji.Destin,
			Source1:  ji.Source1,
			Source2:  ji.Source2,
			Source3:  ji.Source3,
			Constant: ji.Constant,
		}
		if ji.MemCount > 0 {
			in.Mem = instruction.Stride{Base: ji.MemBase, Stride: ji.MemStride, Count: ji.MemCount}
			if ji.MemKind == "store" {
				in.MemKind = instruction.MemStore
			} else {
				in.MemKind = instruction.MemLoad
			}
		} else if ji.MemCount < 0 {
			return nil, ErrNegativeCount
		}
		instrs[i] = in
	}

	return Load(wire.Name, instrs)
}

// JSON re-encodes the Program's source-level fields (name, n,
// instruction_list) in the spec §6 wire format. Derived fields
// (Variables, DepList, CyclicPaths, ...) are not part of the wire format —
// they are always recomputed by LoadJSON/Load — so JSON->LoadJSON is a
// lossless round trip over the source-level fields only (spec §8).
func (p *Program) JSON() ([]byte, error) {
	wire := jsonProgram{Name: p.Name, N: p.N}
	for _, in := range p.Instructions {
		ji := jsonInstruction{
			Type:     in.Type,
			Text:     in.Text,
			Destin:   in.Destin,
			Source1:  in.Source1,
			Source2:  in.Source2,
			Source3:  in.Source3,
			Constant: in.Constant,
		}
		if in.IsMemory() {
			ji.MemBase = in.Mem.Base
			ji.MemStride = in.Mem.Stride
			ji.MemCount = in.Mem.Count
			ji.MemKind = in.MemKind.String()
		}
		wire.InstructionList = append(wire.InstructionList, ji)
	}
	return json.MarshalIndent(wire, "", "  ")
}
