package scheduler

import (
	"github.com/katalvlaran/rvcat/cache"
	"github.com/katalvlaran/rvcat/instruction"
	"github.com/katalvlaran/rvcat/portassign"
	"github.com/katalvlaran/rvcat/processor"
	"github.com/katalvlaran/rvcat/window"
)

// dispatchIn pushes new dynamic instances while the dispatch-width budget
// and window capacity allow, generating each memory instruction's stride
// address, and advances the global cycle counter.
func (s *Scheduler) dispatchIn() {
	dw := s.proc.DispatchWidth
	for dw > 0 && !s.win.IsFull() {
		staticIdx := s.pc % s.prog.N
		in := s.prog.Instructions[staticIdx]

		inst := &window.Instance{
			DynamicIndex: s.pc,
			StaticIndex:  staticIdx,
			State:        window.Dispatch,
			Substate:     window.None,
			DispCycle:    s.cycles,
			ExecCycle:    s.cycles,
			MemKind:      in.MemKind,
			MemAddr:      -1,
		}
		if in.IsMemory() {
			inst.MemAddr = s.memAddr[staticIdx]
			s.memAddr[staticIdx] += in.Mem.Stride
			s.memCount[staticIdx]++
			if s.memCount[staticIdx] >= in.Mem.Count {
				s.memCount[staticIdx] = 0
				s.memAddr[staticIdx] = in.Mem.Base
			}
		}

		s.win.Push(inst)
		s.pc++
		dw--
	}
	s.cycles++
}

// nextCycle runs the retire/write-back, dispatch and port-assignment
// passes and returns how many instances retired this cycle, which ports
// were used, and the cycle of any main-memory transaction started (-1 if
// none).
func (s *Scheduler) nextCycle() (retires int, usedPorts map[string]bool, mmEvent int) {
	xw := s.proc.ExecuteWidth
	rw := s.proc.RetireWidth
	optimal := s.proc.Sched == processor.Optimal

	usedPorts = make(map[string]bool, len(s.proc.PortOrder))
	mmEvent = -1

	var candidates []portassign.Candidate

	s.win.Each(func(idx int, inst *window.Instance) {
		switch inst.State {
		case window.WriteBack:
			if rw > 0 {
				if idx == 0 || s.win.At(idx-1).State == window.Retire {
					inst.State = window.Retire
					inst.Substate = window.None
					rw--
				} else {
					inst.Substate = window.WaitRetire
				}
			} else {
				inst.Substate = window.WaitRetire
			}

		case window.Execute:
			inst.RemainingLatency--
			if inst.RemainingLatency == 0 {
				if inst.Substate == window.None && inst.MemKind != instruction.MemNone && s.cch != nil {
					kind := cache.Read
					if inst.MemKind == instruction.MemStore {
						kind = cache.Write
					}
					lat, outcome, memEvt := s.cch.Access(kind, inst.MemAddr, s.cycles)
					if memEvt >= 0 {
						mmEvent = memEvt
					}
					inst.ExecLatAccum += int64(lat)
					if lat > 0 {
						inst.RemainingLatency = int64(lat)
						if outcome == cache.Miss {
							inst.Substate = window.WaitCacheMiss
						} else {
							inst.Substate = window.WaitCacheSecond
						}
					} else {
						inst.State = window.WriteBack
						inst.Substate = window.None
					}
				} else {
					inst.State = window.WriteBack
					inst.Substate = window.None
				}
			}

		case window.Dispatch:
			if inst.Substate == window.None || inst.Substate == window.WaitData {
				inst.Substate = window.None
				for _, offset := range s.prog.DepOffsets[inst.StaticIndex] {
					dep := s.win.Get(inst.DynamicIndex - offset)
					if dep == nil {
						continue
					}
					if dep.State != window.WriteBack && dep.State != window.Retire {
						inst.Substate = window.WaitData
						break
					}
				}
			}

			if inst.Substate == window.WaitData {
				return
			}

			lat, ports := s.proc.GetResource(s.prog.Instructions[inst.StaticIndex].Type)
			candidates = append(candidates, portassign.Candidate{Pos: idx, Ports: ports})
			inst.RemainingLatency = lat
		}
	})

	if len(candidates) > 0 {
		var outcomes []portassign.Outcome
		if optimal {
			outcomes = portassign.Optimal(candidates, xw)
		} else {
			outcomes = portassign.Greedy(candidates, xw)
		}
		for _, o := range outcomes {
			inst := s.win.At(o.Pos)
			inst.Substate = window.None
			switch {
			case o.Assigned:
				usedPorts[o.Port] = true
				inst.PortUsed = o.Port
				inst.ExecCycle = s.cycles
				inst.ExecLatAccum += inst.RemainingLatency
				inst.State = window.Execute
			case o.BandwidthLimited:
				inst.Substate = window.WaitBandwidth
				inst.ExecLatAccum++
			default:
				inst.Substate = window.WaitResource
				inst.ExecLatAccum++
			}
		}
	}

	retires = s.proc.RetireWidth - rw
	return retires, usedPorts, mmEvent
}
