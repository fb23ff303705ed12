package program

import "github.com/katalvlaran/rvcat/instruction"

// Load analyzes an ordered instruction list into a fully-derived Program
// (spec §4.1). name is carried through for display/JSON only.
//
// Load never fails on unresolved sources: any source that is neither a
// known destination nor previously marked read-only is itself recorded as
// read-only (spec §7 "the dependence analyzer never fails"). It does
// return an error when the instruction list is empty, since every derived
// table assumes N >= 1.
func Load(name string, instrs []instruction.Instruction) (*Program, error) {
	n := len(instrs)
	if n == 0 {
		return nil, ErrEmptyProgram
	}

	p := &Program{Name: name, N: n, Instructions: instrs}

	isOutput := make(map[string]bool, n)
	for _, in := range instrs {
		if in.Destin != "" {
			isOutput[in.Destin] = true
		}
	}

	varIndex := make(map[string]int)
	constIndex := make(map[string]int)
	readOnlySeen := make(map[string]bool)

	internVar := func(sym string) int {
		if idx, ok := varIndex[sym]; ok {
			return idx
		}
		idx := len(p.Variables)
		varIndex[sym] = idx
		p.Variables = append(p.Variables, sym)
		return idx
	}
	internConst := func(sym string) int {
		if idx, ok := constIndex[sym]; ok {
			return idx
		}
		idx := len(p.Constants)
		constIndex[sym] = idx
		p.Constants = append(p.Constants, sym)
		return idx
	}

	producer := make(map[string]int, len(isOutput))
	for sym := range isOutput {
		producer[sym] = producerPending
	}

	p.DepList = make([][]Dep, n)
	for i, in := range instrs {
		var deps []Dep

		if in.Constant != "" {
			deps = append(deps, Dep{Producer: ProducerConstant, OperandRef: internConst(in.Constant)})
		}

		for _, src := range in.Sources() {
			if src == "" {
				continue
			}
			varRef := internVar(src)
			if isOutput[src] {
				deps = append(deps, Dep{Producer: producer[src], OperandRef: varRef})
			} else {
				if !readOnlySeen[src] {
					readOnlySeen[src] = true
					p.ReadOnly = append(p.ReadOnly, src)
				}
				deps = append(deps, Dep{Producer: ProducerReadOnly, OperandRef: varRef})
			}
		}

		if in.Destin != "" {
			internVar(in.Destin)
			producer[in.Destin] = i
		}

		p.DepList[i] = deps
	}

	// Fixup sweep: resolve pending (loop-carried) producers to the final
	// writer of that variable within the loop body.
	loopCarriedSeen := make(map[LoopCarried]bool)
	for i := range p.DepList {
		for d := range p.DepList[i] {
			dep := &p.DepList[i][d]
			if dep.Producer != producerPending {
				continue
			}
			sym := p.Variables[dep.OperandRef]
			final := producer[sym]
			dep.Producer = final
			lc := LoopCarried{Producer: final, Variable: sym}
			if !loopCarriedSeen[lc] {
				loopCarriedSeen[lc] = true
				p.LoopCarried = append(p.LoopCarried, lc)
			}
		}
	}

	p.generateDepOffsets()
	p.enumerateCyclicPaths()

	cyclicSeen := make(map[int]bool)
	for _, cyc := range p.CyclicPaths {
		for _, id := range cyc {
			if !cyclicSeen[id] {
				cyclicSeen[id] = true
				p.InstrCyclic = append(p.InstrCyclic, id)
			}
		}
	}

	return p, nil
}

// generateDepOffsets derives, for each instruction, the positive offsets
// k such that the instruction depends on the dynamic instance k positions
// earlier (spec §4.1 step 6).
func (p *Program) generateDepOffsets() {
	p.DepOffsets = make([][]int, p.N)
	for i, deps := range p.DepList {
		var offsets []int
		for _, dep := range deps {
			if dep.Producer < 0 {
				continue
			}
			var offset int
			if dep.Producer >= i {
				offset = i - dep.Producer + p.N
			} else {
				offset = i - dep.Producer
			}
			offsets = append(offsets, offset)
		}
		p.DepOffsets[i] = offsets
	}
}
