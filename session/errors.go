package session

import "errors"

// ErrNoProgram is returned by any operation that needs a loaded program
// before one has been set via LoadProgram/LoadProgramJSON.
var ErrNoProgram = errors.New("session: no program loaded")

// ErrNoProcessor is returned by any operation that needs a configured
// processor before one has been set via LoadProcessor/LoadProcessorJSON.
var ErrNoProcessor = errors.New("session: no processor loaded")
