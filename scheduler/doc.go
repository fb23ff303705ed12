// Package scheduler implements the cycle-accurate reorder-window
// scheduler (spec §4.5): the per-cycle retire/write-back, dispatch,
// port-assignment and dispatch-in passes, optional cache integration for
// memory instructions, and per-static memory-stride address generation.
// It drives an execgraph.Graph in lockstep so a completed run can yield
// both aggregate statistics and the critical path.
package scheduler
