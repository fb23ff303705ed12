// Package portassign implements the two port-assignment strategies the
// scheduler chooses between each cycle (spec §4.5 step 3, §4.6):
//
//   - Greedy assigns dispatch-ready candidates to ports in window order,
//     first-fit, bounded by the execute width.
//   - Optimal performs an exhaustive DFS over candidates in window order,
//     choosing the assignment of maximum cardinality and, among ties,
//     minimum sum of assigned candidates' window positions (equivalently:
//     prefer the oldest instructions; a maximum-cardinality assignment
//     also uses the most ports, so the two tie-break statements in spec
//     §4.5 are the same criterion viewed two ways).
//
// Both return per-candidate Outcomes so the scheduler can apply the exact
// same substate bookkeeping (WAIT_RESOURCE vs WAIT_BANDWIDTH) regardless
// of which strategy produced the assignment.
package portassign
