package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rvcat/program"
)

var clusterColors = []string{
	"lightblue", "greenyellow", "lightyellow",
	"lightpink", "lightgrey", "lightcyan", "lightcoral",
}

// GraphvizOptions controls how much of the dependence graph Graphviz draws.
type GraphvizOptions struct {
	// Iterations is how many loop-iteration clusters to unroll. Values
	// below the longest cyclic path's iteration span are raised to that
	// span so every recurrence is fully drawn.
	Iterations int
	// ShowInternal draws every instruction, not only the ones that sit on
	// a cyclic path.
	ShowInternal bool
	// ShowLatency annotates each node with its static latency.
	ShowLatency bool
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// Graphviz renders p's dependence graph as a DOT digraph: one cluster per
// unrolled loop iteration, instruction nodes labeled by index and text, and
// edges for the data dependencies between drawn instructions. Edges between
// two cyclic-path instructions are drawn in red; other edges are drawn only
// with ShowInternal; constant and read-only sources get no edge. This
// supplements the distilled spec with the reference implementation's
// show_graphviz view.
func Graphviz(p *program.Program, latencies []int64, opts GraphvizOptions) string {
	isCyclic := make(map[int]bool, len(p.InstrCyclic))
	for _, id := range p.InstrCyclic {
		isCyclic[id] = true
	}

	maxIters := opts.Iterations
	for _, path := range p.CyclicPaths {
		span := 0
		for j := 0; j < len(path)-1; j++ {
			if path[j] >= path[j+1] {
				span++
			}
		}
		if span > maxIters {
			maxIters = span
		}
	}
	if maxIters < 1 {
		maxIters = 1
	}

	var b strings.Builder
	b.WriteString("digraph \"Data Dependence Graph\" {\n  rankdir=\"LR\"; splines=spline; newrank=true;\n")
	b.WriteString("  edge [fontname=\"courier\"; color=black; penwidth=1.5; fontcolor=blue];\n")

	for iter := 1; iter <= maxIters; iter++ {
		color := clusterColors[(iter-1)%len(clusterColors)]
		fmt.Fprintf(&b, " subgraph cluster_%d {\n  style=\"filled,rounded\"; color=blue; tooltip=\"Loop Iteration #%d\"; fillcolor=%s;\n", iter, iter, color)
		b.WriteString("  node [style=filled, shape=rect, fillcolor=lightgrey, margin=\"0.05,0\", fontname=\"courier\"];\n")

		for inst := 0; inst < p.N; inst++ {
			if !opts.ShowInternal && !isCyclic[inst] {
				continue
			}
			txt := escapeHTML(p.Instructions[inst].Text)
			fmt.Fprintf(&b, "  i%ds%d [label=<<B>", iter, inst)
			if opts.ShowLatency && latencies != nil {
				fmt.Fprintf(&b, "<FONT COLOR=\"red\">(%d)</FONT> ", latencies[inst])
			}
			fmt.Fprintf(&b, "%d: %s</B>>,tooltip=\"instruction\"];\n", inst, txt)
		}
		b.WriteString("}\n")
	}

	for iter := 1; iter <= maxIters; iter++ {
		for inst := 0; inst < p.N; inst++ {
			if !opts.ShowInternal && !isCyclic[inst] {
				continue
			}
			for _, dep := range p.DepList[inst] {
				if dep.Producer < 0 {
					continue // constant / read-only source: not drawn by default
				}
				producerID := dep.Producer
				var from string
				loopCarried := producerID >= inst
				if loopCarried {
					if iter == 1 {
						continue // first iteration has no prior producer
					}
					from = fmt.Sprintf("i%ds%d", iter-1, producerID)
				} else {
					from = fmt.Sprintf("i%ds%d", iter, producerID)
				}
				to := fmt.Sprintf("i%ds%d", iter, inst)

				recurrent := isCyclic[inst] && isCyclic[producerID]
				label := ""
				if dep.OperandRef >= 0 && dep.OperandRef < len(p.Variables) {
					label = p.Variables[dep.OperandRef]
				}
				if recurrent {
					fmt.Fprintf(&b, "  %s -> %s [label=\"%s\", color=red, penwidth=2.0, tooltip=\"dependence on cyclical path\"];\n", from, to, label)
				} else if opts.ShowInternal {
					fmt.Fprintf(&b, "  %s -> %s [label=\"%s\", tooltip=\"not on cyclical path\"];\n", from, to, label)
				}
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
