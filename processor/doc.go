// Package processor models the abstract out-of-order core's static
// configuration: dispatch/execute/retire widths, per-instruction-type
// latency and execution-port tables, and an optional cache handle (spec §3 "Processor", §4.2, §6).
//
// GetResource implements the hierarchical fallback resolution policy: a
// dotted TYPE tag such as "MEM.L.D" is looked up as-is, then with its last
// ".segment" stripped, repeating until a match is found or no dot remains,
// falling back to (latency 1, the lexicographically first declared port)
// so that unrecognized instruction types never abort analysis (spec §4.2,
// §7 UnknownInstructionType).
package processor
