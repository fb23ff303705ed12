package scheduler

import "errors"

// ErrNoProgramLoaded is returned by Run/Timeline when called before
// LoadProgram.
var ErrNoProgramLoaded = errors.New("scheduler: no program loaded")

// ErrDeadlockDetected is returned when two consecutive cycles produce no
// state change at all (no retirement, no dispatch, no execute-start) —
// spec §7's DeadlockDetected, the progress-guarantee escape hatch rather
// than looping forever on a malformed processor/program pair.
var ErrDeadlockDetected = errors.New("scheduler: no progress for two consecutive cycles")
