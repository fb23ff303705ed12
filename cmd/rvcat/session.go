package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rvcat/session"
)

func loadSession(cfg *config) (*session.Session, error) {
	if cfg.ProgramPath == "" {
		return nil, fmt.Errorf("rvcat: --program is required")
	}
	if cfg.ProcessorPath == "" {
		return nil, fmt.Errorf("rvcat: --processor is required")
	}

	progData, err := os.ReadFile(cfg.ProgramPath)
	if err != nil {
		return nil, fmt.Errorf("reading program file: %w", err)
	}
	procData, err := os.ReadFile(cfg.ProcessorPath)
	if err != nil {
		return nil, fmt.Errorf("reading processor file: %w", err)
	}

	s := session.New()
	if err := s.LoadProgramJSON(progData); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	if err := s.LoadProcessorJSON(procData); err != nil {
		return nil, fmt.Errorf("loading processor: %w", err)
	}

	if cfg.Verbose {
		logger.Printf("loaded program %q (%d instructions) and processor %q", s.Program.Name, s.Program.N, s.Processor.Name)
	}

	return s, nil
}
