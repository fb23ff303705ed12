package scheduler

import (
	"github.com/katalvlaran/rvcat/execgraph"
	"github.com/katalvlaran/rvcat/window"
)

// TimelineEvent is one cycle's recorded state for a dynamic instruction,
// rendered later as a single letter in the report package's timeline
// matrix (D E W R * - . ! 2).
type TimelineEvent struct {
	Cycle  int
	Letter byte
}

// Timeline is the complete per-cycle history of a run, kept separately
// from Result because it is comparatively large and only needed when the
// caller actually wants to render a timeline view.
type Timeline struct {
	Events       [][]TimelineEvent // indexed by dynamic index
	PortBusy     map[string][]bool // port -> per-cycle busy flags
	MMEvents     []int             // cycles at which a main-memory transaction started
	TotalCycles  int
	CriticalPath []execgraph.Edge
}

func stateLetter(state window.State, sub window.Substate) byte {
	if sub != window.None {
		return sub.String()[0]
	}
	return state.String()[0]
}

// Timeline drives the scheduler to completion exactly as Run does, but
// additionally records every cycle's state for every dynamic instruction
// (mirroring the reference implementation's generate_timeline).
func (s *Scheduler) Timeline() (*Timeline, error) {
	if s.prog == nil {
		return nil, ErrNoProgramLoaded
	}

	g := execgraph.Build(s.total, s.windowSize, s.prog.N, s.prog.DepOffsets)

	tl := &Timeline{
		Events:   make([][]TimelineEvent, s.total),
		PortBusy: make(map[string][]bool, len(s.proc.PortOrder)),
	}
	for _, p := range s.proc.PortOrder {
		tl.PortBusy[p] = nil
	}

	retired := 0
	lastRetCycle := 0
	lastDispCycle := 0
	idleCycles := 0
	var lastFingerprint int64

	for retired < s.total {
		retires, usedPorts, mmEvt := s.nextCycle()

		if mmEvt >= 0 {
			// Recorded one cycle after the transaction starts, matching the
			// reference implementation's generate_timeline (MM_access+1):
			// the marker lands on the cycle the transaction is visible, not
			// the cycle it was issued.
			tl.MMEvents = append(tl.MMEvents, mmEvt+1)
		}
		for _, p := range s.proc.PortOrder {
			tl.PortBusy[p] = append(tl.PortBusy[p], usedPorts[p])
		}

		for i := 0; i < retires; i++ {
			r := s.win.At(i)
			dispLatency := int64(r.DispCycle - lastDispCycle)
			lastDispCycle = r.DispCycle
			retLatency := int64(s.cycles - lastRetCycle)
			lastRetCycle = s.cycles

			g.Update(r.DynamicIndex, dispLatency, r.ExecLatAccum, retLatency)

			tl.Events[r.DynamicIndex] = append(tl.Events[r.DynamicIndex],
				TimelineEvent{Cycle: s.cycles, Letter: stateLetter(r.State, window.None)})

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

		s.win.Each(func(_ int, inst *window.Instance) {
			if inst.DynamicIndex >= s.total {
				return
			}
			tl.Events[inst.DynamicIndex] = append(tl.Events[inst.DynamicIndex],
				TimelineEvent{Cycle: s.cycles, Letter: stateLetter(inst.State, inst.Substate)})
		})
	}

	tl.TotalCycles = s.cycles
	tl.CriticalPath = g.LongestPath()
	return tl, nil
}
