package scheduler

import (
	"github.com/katalvlaran/rvcat/execgraph"
	"github.com/katalvlaran/rvcat/window"
)

// Run drives the scheduler to completion: iterations full passes through
// the program, building the execution graph in lockstep and returning
// the aggregate dynamic-analysis report (spec §6 "Outputs"). LoadProgram
// must have been called first.
func (s *Scheduler) Run() (*Result, error) {
	if s.prog == nil {
		return nil, ErrNoProgramLoaded
	}

	g := execgraph.Build(s.total, s.windowSize, s.prog.N, s.prog.DepOffsets)

	portCycles := make(map[string]int, len(s.proc.PortOrder))
	for _, p := range s.proc.PortOrder {
		portCycles[p] = 0
	}

	retired := 0
	lastRetCycle := 0
	lastDispCycle := 0
	idleCycles := 0
	var lastFingerprint int64

	for retired < s.total {
		retires, usedPorts, _ := s.nextCycle()

		for port, used := range usedPorts {
			if used {
				portCycles[port]++
			}
		}

		for i := 0; i < retires; i++ {
			r := s.win.At(i)
			dispLatency := int64(r.DispCycle - lastDispCycle)
			lastDispCycle = r.DispCycle
			retLatency := int64(s.cycles - lastRetCycle)
			lastRetCycle = s.cycles

			g.Update(r.DynamicIndex, dispLatency, r.ExecLatAccum, retLatency)

			retired++
			if retired >= s.total {
				break
			}
		}

		fingerprint := int64(s.pc)
		s.win.Each(func(_ int, inst *window.Instance) {
			fingerprint = fingerprint*31 + int64(inst.State)*7 + int64(inst.Substate)*13 + inst.RemainingLatency
		})

		if retires == 0 && fingerprint == lastFingerprint {
			idleCycles++
			if idleCycles >= 2 {
				return nil, ErrDeadlockDetected
			}
		} else {
			idleCycles = 0
		}
		lastFingerprint = fingerprint

		s.win.Pop(retires)
		s.dispatchIn()
	}

	path := g.LongestPath()
	stats := execgraph.PathStats(path, s.prog.N)

	portUsage := make(map[string]float64, len(portCycles))
	for port, n := range portCycles {
		if s.cycles > 0 {
			portUsage[port] = 100 * float64(n) / float64(s.cycles)
		}
	}

	result := &Result{
		Iterations:   s.iterations,
		Instructions: s.total,
		Cycles:       s.cycles,
		PortUsage:    portUsage,
		CriticalPath: path,
		PathStats:    stats,
	}
	if s.cycles > 0 {
		result.IPC = float64(s.total) / float64(s.cycles)
	}
	if s.cch != nil {
		result.MMTotalBW, result.MMReadBW, result.ReadMisses, result.WriteMisses = s.cch.Statistics(s.cycles)
	}
	return result, nil
}
