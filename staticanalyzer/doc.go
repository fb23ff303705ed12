// Package staticanalyzer computes the performance lower bound of a
// program on a processor without running the scheduler (spec §4.3): a
// latency bound from the slowest recurrence among the program's cyclic
// dependence paths, and a throughput bound from dispatch/retire width and
// port contention across every non-empty port subset. All arithmetic is
// done with exact rationals (math/big.Rat) so that bound comparisons and
// tie detection never suffer floating-point rounding.
package staticanalyzer
