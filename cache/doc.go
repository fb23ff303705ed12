// Package cache implements the write-back cache the scheduler optionally
// consults for memory instructions (spec §6 "Cache interface consumed by
// the scheduler"). Any block may occupy any line; a miss replaces the
// least recently used line.
//
// The cache is a collaborator, not part of the three core subsystems
// (spec §1), but its contract is core: Access(kind, address, cycle)
// returns (latency, Outcome, memEventCycle) and mutates the cache's LRU,
// valid/tag/modified/data arrays plus its running MEM_last_access clock,
// which bounds main-memory transaction throughput to one transaction per
// MissIssueTime cycles (spec §5 "Resource policy").
//
// The state is kept as parallel O(N) arrays indexed by cache line, with
// LRU recency tracked as an explicit rank per line (spec "Design Notes" —
// any representation preserving LRU-age semantics is acceptable as long as
// access results are bit-identical; this one mirrors the reference
// implementation directly).
package cache
