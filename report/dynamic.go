package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/rvcat/program"
	"github.com/katalvlaran/rvcat/scheduler"
)

// DynamicText renders a scheduler.Result as a human-readable summary: the
// headline counters, per-port utilization, memory bandwidth, cache misses,
// and the critical path's per-instruction breakdown.
func DynamicText(p *program.Program, r *scheduler.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Iterations:    %d\n", r.Iterations)
	fmt.Fprintf(&b, "Instructions:  %d\n", r.Instructions)
	fmt.Fprintf(&b, "Cycles:        %d\n", r.Cycles)
	fmt.Fprintf(&b, "IPC:           %.4f\n", r.IPC)
	if r.Iterations > 0 {
		fmt.Fprintf(&b, "Cycles/iter:   %.4f\n", float64(r.Cycles)/float64(r.Iterations))
	}

	b.WriteString("Port usage:\n")
	ports := make([]string, 0, len(r.PortUsage))
	for port := range r.PortUsage {
		ports = append(ports, port)
	}
	sort.Strings(ports)
	for _, port := range ports {
		fmt.Fprintf(&b, "  %-4s %6.2f%%\n", port, r.PortUsage[port])
	}

	fmt.Fprintf(&b, "Main memory bandwidth:       %.2f%%\n", r.MMTotalBW*100)
	fmt.Fprintf(&b, "Main memory read bandwidth:  %.2f%%\n", r.MMReadBW*100)
	fmt.Fprintf(&b, "Read misses:   %d\n", r.ReadMisses)
	fmt.Fprintf(&b, "Write misses:  %d\n", r.WriteMisses)

	fmt.Fprintf(&b, "Critical path: %d edges, dispatch %.2f%%, retire %.2f%%\n",
		len(r.CriticalPath), r.PathStats.DispatchPct, r.PathStats.RetirePct)
	for i, pct := range r.PathStats.PerInstruction {
		if pct == 0 {
			continue
		}
		fmt.Fprintf(&b, "  [%d] %-20s %6.2f%%\n", i, p.Instructions[i%p.N].Text, pct)
	}
	return b.String()
}

type criticalPathInstrJSON struct {
	ID          int     `json:"id"`
	Instruction string  `json:"instruction"`
	Percentage  float64 `json:"percentage"`
}

type criticalPathJSON struct {
	Instructions []criticalPathInstrJSON `json:"instructions"`
	Dispatch     float64                 `json:"dispatch"`
	Retire       float64                 `json:"retire"`
}

type dynamicReportJSON struct {
	TotalIterations   int                `json:"total_iterations"`
	TotalInstructions int                `json:"total_instructions"`
	TotalCycles       int                `json:"total_cycles"`
	IPC               float64            `json:"ipc"`
	CyclesPerIter     float64            `json:"cycles_per_iteration"`
	Ports             map[string]float64 `json:"ports"`
	MMUsage           float64            `json:"MM_usage"`
	MMReadUsage       float64            `json:"MM_read_usage"`
	ReadMisses        int                `json:"read_misses"`
	WriteMisses       int                `json:"write_misses"`
	CriticalPath      criticalPathJSON   `json:"critical_path"`
}

// DynamicJSON renders a scheduler.Result as the wire format spec §6
// describes for "run" output.
func DynamicJSON(p *program.Program, r *scheduler.Result) ([]byte, error) {
	out := dynamicReportJSON{
		TotalIterations:   r.Iterations,
		TotalInstructions: r.Instructions,
		TotalCycles:       r.Cycles,
		IPC:               r.IPC,
		Ports:             r.PortUsage,
		MMUsage:           r.MMTotalBW,
		MMReadUsage:       r.MMReadBW,
		ReadMisses:        r.ReadMisses,
		WriteMisses:       r.WriteMisses,
	}
	if r.Iterations > 0 {
		out.CyclesPerIter = float64(r.Cycles) / float64(r.Iterations)
	}
	out.CriticalPath.Dispatch = r.PathStats.DispatchPct
	out.CriticalPath.Retire = r.PathStats.RetirePct
	for i, pct := range r.PathStats.PerInstruction {
		if pct == 0 {
			continue
		}
		out.CriticalPath.Instructions = append(out.CriticalPath.Instructions, criticalPathInstrJSON{
			ID:          i,
			Instruction: p.Instructions[i%p.N].Text,
			Percentage:  pct,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
