package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rvcat/program"
	"github.com/katalvlaran/rvcat/scheduler"
)

// TimelineText renders one row per dynamic instruction, one column per
// cycle, with the recorded state letter in each cell the instruction was
// present for and '.' elsewhere — mirroring the reference implementation's
// format_timeline grid. Rows on the critical path are marked with '*' in
// a leading column.
func TimelineText(p *program.Program, tl *scheduler.Timeline) string {
	var b strings.Builder

	onPath := make(map[int]bool, len(tl.CriticalPath))
	for _, e := range tl.CriticalPath {
		onPath[e.To/3] = true
	}

	fmt.Fprintf(&b, "%-4s %-20s %-3s", "#", "instruction", "")
	for c := 0; c < tl.TotalCycles; c++ {
		fmt.Fprintf(&b, "%d", c%10)
	}
	b.WriteString("\n")

	for dyn, events := range tl.Events {
		grid := make([]byte, tl.TotalCycles)
		for i := range grid {
			grid[i] = '.'
		}
		for _, ev := range events {
			if ev.Cycle >= 0 && ev.Cycle < len(grid) {
				grid[ev.Cycle] = ev.Letter
			}
		}

		marker := " "
		if onPath[dyn] {
			marker = "*"
		}
		fmt.Fprintf(&b, "%-4d %-20s %-3s", dyn, p.At(dyn).Text, marker)
		b.Write(grid)
		b.WriteString("\n")
	}

	b.WriteString("\nMain memory:   ")
	mm := make([]byte, tl.TotalCycles)
	for i := range mm {
		mm[i] = '.'
	}
	for _, c := range tl.MMEvents {
		if c >= 0 && c < len(mm) {
			mm[c] = '!'
		}
	}
	b.Write(mm)
	b.WriteString("\n")

	for _, port := range sortedPorts(tl.PortBusy) {
		fmt.Fprintf(&b, "Port %-6s ", port)
		busy := tl.PortBusy[port]
		row := make([]byte, len(busy))
		for i, isBusy := range busy {
			if isBusy {
				row[i] = '#'
			} else {
				row[i] = '.'
			}
		}
		fmt.Fprintf(&b, "%s\n", string(row))
	}

	return b.String()
}

func sortedPorts(m map[string][]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
