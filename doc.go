// Package rvcat is the root of the Reorder-Window Cycle Analysis Toolkit: a
// static and dynamic performance analyzer for straight-line loop programs
// run on an abstract out-of-order superscalar pipeline.
//
// The toolkit is organized as a set of focused packages rather than a
// single monolith:
//
//	instruction/    — static Instruction value type, memory-access descriptor
//	program/        — dependence analyzer: Program, cyclic-path enumeration
//	processor/      — hierarchical resource resolution (latency, ports)
//	staticanalyzer/ — latency-bound / throughput-bound static performance model
//	window/         — fixed-capacity reorder window (ROB) of dynamic instances
//	portassign/     — greedy and optimal execution-port assignment
//	execgraph/      — per-run dispatch/execute/retire dependency graph, critical path
//	cache/          — LRU-replacement write-back cache collaborator
//	scheduler/      — cycle-accurate reorder-window simulator
//	session/        — one Program + one Processor + the Scheduler bound to them
//	report/         — text/JSON renderers for static and dynamic analysis, timeline, Graphviz
//	cmd/rvcat/      — non-interactive CLI front-end over session
//
// This package itself holds no code; see the subpackages above.
package rvcat
