package session

import (
	"github.com/katalvlaran/rvcat/processor"
	"github.com/katalvlaran/rvcat/program"
	"github.com/katalvlaran/rvcat/scheduler"
	"github.com/katalvlaran/rvcat/staticanalyzer"
)

// Session holds the program and processor a command-line invocation is
// currently operating on, plus the scheduler bound to them once both are
// present.
type Session struct {
	Program   *program.Program
	Processor *processor.Processor

	sched *scheduler.Scheduler
}

// New returns an empty Session.
func New() *Session {
	return &Session{}
}

// LoadProgram sets the active program.
func (s *Session) LoadProgram(p *program.Program) {
	s.Program = p
}

// LoadProgramJSON decodes and sets the active program from its wire
// format (spec §6).
func (s *Session) LoadProgramJSON(data []byte) error {
	p, err := program.LoadJSON(data)
	if err != nil {
		return err
	}
	s.Program = p
	return nil
}

// LoadProcessor sets the active processor.
func (s *Session) LoadProcessor(p *processor.Processor) {
	s.Processor = p
}

// LoadProcessorJSON decodes and sets the active processor from its wire
// format (spec §6).
func (s *Session) LoadProcessorJSON(data []byte) error {
	p, err := processor.LoadJSON(data)
	if err != nil {
		return err
	}
	s.Processor = p
	return nil
}

// Static runs the static performance analyzer over the currently loaded
// program and processor (spec §4.3).
func (s *Session) Static() (*staticanalyzer.Report, error) {
	if s.Program == nil {
		return nil, ErrNoProgram
	}
	if s.Processor == nil {
		return nil, ErrNoProcessor
	}
	return staticanalyzer.Analyze(s.Program, s.Processor), nil
}

// Run simulates iterations passes of the program through a window of
// windowSize in-flight instances and returns the aggregate dynamic
// analysis report (spec §4.5). Each call constructs a fresh Scheduler,
// giving it exclusive ownership of Processor for the run's duration
// (spec §5) — Re-entrant scheduling is not supported, so callers must not
// hold a concurrent Run/Timeline against the same Session.
func (s *Session) Run(iterations, windowSize int) (*scheduler.Result, error) {
	if s.Program == nil {
		return nil, ErrNoProgram
	}
	if s.Processor == nil {
		return nil, ErrNoProcessor
	}
	s.sched = scheduler.New(s.Processor)
	s.sched.LoadProgram(s.Program, iterations, windowSize)
	return s.sched.Run()
}

// Timeline is Run's counterpart that additionally records the full
// per-cycle history for timeline rendering (spec §6 "timeline").
func (s *Session) Timeline(iterations, windowSize int) (*scheduler.Timeline, error) {
	if s.Program == nil {
		return nil, ErrNoProgram
	}
	if s.Processor == nil {
		return nil, ErrNoProcessor
	}
	s.sched = scheduler.New(s.Processor)
	s.sched.LoadProgram(s.Program, iterations, windowSize)
	return s.sched.Timeline()
}
