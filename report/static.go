package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/rvcat/staticanalyzer"
)

// StaticText renders a static analysis report as a human-readable summary,
// in the style of the reference implementation's textual analysis dump.
func StaticText(r *staticanalyzer.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Latency bound:     %s cycles/iteration\n", r.LatencyCyclesPerIter.RatString())
	fmt.Fprintf(&b, "Throughput bound:  %s cycles/iteration\n", r.ThroughputCyclesPerIter.RatString())
	fmt.Fprintf(&b, "  dispatch-width:  %s cycles/iteration\n", r.DispatchCycles.RatString())
	fmt.Fprintf(&b, "  retire-width:    %s cycles/iteration\n", r.RetireCycles.RatString())
	fmt.Fprintf(&b, "Classification:    %s\n", r.Classification)
	fmt.Fprintf(&b, "Minimum cycles/iteration: %s\n", r.MinimumCyclesPerIteration.RatString())
	if len(r.Bottlenecks) > 0 {
		b.WriteString("Bottlenecks:\n")
		for _, bn := range r.Bottlenecks {
			if bn.Kind == "PORTS" {
				fmt.Fprintf(&b, "  - PORTS%v: %s cycles/iteration\n", bn.Ports, bn.Cycles.RatString())
			} else {
				fmt.Fprintf(&b, "  - %s: %s cycles/iteration\n", bn.Kind, bn.Cycles.RatString())
			}
		}
	}
	return b.String()
}

type staticBottleneckJSON struct {
	Kind   string   `json:"kind"`
	Ports  []string `json:"ports,omitempty"`
	Cycles string   `json:"cycles_per_iteration"`
}

type staticReportJSON struct {
	LatencyCyclesPerIter      string                  `json:"latency_cycles_per_iteration"`
	ThroughputCyclesPerIter   string                  `json:"throughput_cycles_per_iteration"`
	DispatchCycles            string                  `json:"dispatch_cycles_per_iteration"`
	RetireCycles              string                  `json:"retire_cycles_per_iteration"`
	Classification            string                  `json:"classification"`
	MinimumCyclesPerIteration string                  `json:"minimum_cycles_per_iteration"`
	Bottlenecks               []staticBottleneckJSON  `json:"bottlenecks"`
}

// StaticJSON renders a static analysis report as the wire format spec §6
// describes for "static" output.
func StaticJSON(r *staticanalyzer.Report) ([]byte, error) {
	out := staticReportJSON{
		LatencyCyclesPerIter:      r.LatencyCyclesPerIter.RatString(),
		ThroughputCyclesPerIter:   r.ThroughputCyclesPerIter.RatString(),
		DispatchCycles:            r.DispatchCycles.RatString(),
		RetireCycles:              r.RetireCycles.RatString(),
		Classification:            string(r.Classification),
		MinimumCyclesPerIteration: r.MinimumCyclesPerIteration.RatString(),
	}
	for _, bn := range r.Bottlenecks {
		out.Bottlenecks = append(out.Bottlenecks, staticBottleneckJSON{
			Kind:   bn.Kind,
			Ports:  bn.Ports,
			Cycles: bn.Cycles.RatString(),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
