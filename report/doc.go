// Package report renders static and dynamic analysis results as text and
// JSON (spec §6 "Outputs"), plus a timeline text matrix and a Graphviz
// dependence-graph view supplementing the distilled spec with the
// reference implementation's show_graphviz feature.
package report
