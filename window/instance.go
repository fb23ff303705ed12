package window

import "github.com/katalvlaran/rvcat/instruction"

// State is the primary pipeline stage of a dynamic instruction instance
// (spec §3).
type State int

const (
	Dispatch State = iota
	Execute
	WriteBack
	Retire
)

func (s State) String() string {
	switch s {
	case Dispatch:
		return "D"
	case Execute:
		return "E"
	case WriteBack:
		return "W"
	case Retire:
		return "R"
	default:
		return "?"
	}
}

// Substate refines State for timeline rendering (spec §3). The scheduler
// also reads it: a Dispatch instance in WaitData is not a port candidate,
// and a memory instruction consults the cache only while its Substate is
// None.
type Substate int

const (
	None Substate = iota
	WaitData
	WaitResource
	WaitBandwidth
	WaitRetire
	WaitCacheMiss
	WaitCacheSecond
)

func (s Substate) String() string {
	switch s {
	case WaitData:
		return "."
	case WaitResource, WaitBandwidth:
		return "*"
	case WaitRetire:
		return "-"
	case WaitCacheMiss:
		return "!"
	case WaitCacheSecond:
		return "2"
	default:
		return " "
	}
}

// Instance is a short-lived record created on dispatch and discarded on
// retire (spec §3 "Dynamic instruction instance").
type Instance struct {
	DynamicIndex int
	StaticIndex  int

	State    State
	Substate Substate

	PortUsed string

	DispCycle int
	ExecCycle int

	RemainingLatency int64
	ExecLatAccum     int64

	MemKind instruction.MemKind
	MemAddr int64
}
