package scheduler

import (
	"github.com/katalvlaran/rvcat/cache"
	"github.com/katalvlaran/rvcat/execgraph"
	"github.com/katalvlaran/rvcat/processor"
	"github.com/katalvlaran/rvcat/program"
	"github.com/katalvlaran/rvcat/window"
)

// Scheduler is the cycle-accurate simulator core. It takes exclusive
// ownership of its Processor for the duration of a run; a fresh
// LoadProgram call resets that ownership, including the processor's
// cache state.
type Scheduler struct {
	proc *processor.Processor
	prog *program.Program
	win  *window.Window
	cch  *cache.Cache

	iterations int
	windowSize int
	total      int // iterations * prog.N, total dynamic instructions to retire
	pc         int
	cycles     int

	memAddr  []int64 // per static instruction, next stride address
	memCount []int64 // per static instruction, accesses issued since stride wrap
}

// New constructs a Scheduler bound to proc. LoadProgram must be called
// before Run/Timeline.
func New(proc *processor.Processor) *Scheduler {
	return &Scheduler{proc: proc}
}

// LoadProgram resets the scheduler onto a fresh run of prog: iterations
// full passes through the program, each dynamic instance competing for a
// window of windowSize in-flight slots. It clears the processor's cache
// state and the per-static memory-stride counters.
func (s *Scheduler) LoadProgram(prog *program.Program, iterations, windowSize int) {
	s.prog = prog
	s.iterations = iterations
	s.windowSize = windowSize
	s.win = window.New(windowSize)
	s.total = iterations * prog.N
	s.pc = 0
	s.cycles = 0

	s.memAddr = make([]int64, prog.N)
	s.memCount = make([]int64, prog.N)
	for i, in := range prog.Instructions {
		s.memAddr[i] = in.Mem.Base
	}

	if s.proc.Cache.Enabled() {
		s.cch = cache.New(s.proc.Cache.NumBlocks, s.proc.Cache.BlockSize, s.proc.Cache.MissPenalty, s.proc.Cache.MissIssueTime)
	} else {
		s.cch = nil
	}
}

// Result is the aggregate dynamic-analysis report of a completed run.
type Result struct {
	Iterations   int
	Instructions int
	Cycles       int
	IPC          float64

	PortUsage map[string]float64 // percentage (0-100) of cycles each port was busy

	MMTotalBW, MMReadBW float64
	ReadMisses          int
	WriteMisses         int

	CriticalPath []execgraph.Edge
	PathStats    execgraph.Stats
}
