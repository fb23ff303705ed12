// Package window implements the reorder window (ROB): a fixed-capacity,
// FIFO-by-dynamic-index ring of in-flight dynamic instruction instances
// (spec §3 "Reorder window", §4.4).
package window
