package portassign

// Candidate is a dispatch-ready instance competing for a port this cycle.
// Pos is its window position, used both as the window-order iteration key
// and as the optimal strategy's tie-break weight.
type Candidate struct {
	Pos   int
	Ports []string
}

// Outcome is the per-candidate result of a port-assignment pass. Assigned
// is false when Pos is not issued this cycle; BandwidthLimited then
// distinguishes WAIT_BANDWIDTH (the execute width was already exhausted)
// from WAIT_RESOURCE (no free port), mirroring scheduler.py's next_cycle
// dispatch loop.
type Outcome struct {
	Pos      int
	Port     string
	Assigned bool

	// BandwidthLimited is true when Pos went unassigned because the
	// execute-width budget was already exhausted by earlier candidates
	// (window order), as opposed to a port simply being unavailable.
	// Scheduler callers use this to pick WAIT_BANDWIDTH vs WAIT_RESOURCE.
	BandwidthLimited bool
}
