// Package execgraph builds the 3·M-node execution DAG the scheduler
// annotates cycle by cycle and extracts the critical path from once a run
// completes (spec §4.7 "Execution graph and critical path").
//
// Each dynamic instruction i contributes three nodes, at indices 3i
// (dispatch), 3i+1 (execute) and 3i+2 (retire). Edges point from a later
// stage to the earlier stage it depends on, weighted by the number of
// cycles that dependency cost; Update re-weights a dynamic instruction's
// edges once its actual dispatch/execute/retire latencies are known.
// LongestPath performs a backward relaxation over the DAG (node indices
// only ever depend on strictly lower indices) to find the longest
// (critical) path from the very first dispatch to the very last retire.
package execgraph
