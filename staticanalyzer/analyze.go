package staticanalyzer

import (
	"math/big"
	"math/bits"

	"github.com/katalvlaran/rvcat/processor"
	"github.com/katalvlaran/rvcat/program"
)

// Bound names the classification spec §4.3 assigns to a program/processor
// pair.
type Bound string

const (
	LatencyBound           Bound = "LATENCY-BOUND"
	ThroughputBound        Bound = "THROUGHPUT-BOUND"
	LatencyThroughputBound Bound = "LATENCY+THROUGHPUT-BOUND"
)

// Bottleneck is one candidate that attained the overall throughput bound:
// either a pipeline stage (dispatch/retire) or a non-empty port subset.
type Bottleneck struct {
	Kind   string // "DISPATCH", "RETIRE", or "PORTS"
	Ports  []string
	Cycles *big.Rat
}

// Report is the complete static performance analysis of one program
// against one processor.
type Report struct {
	LatencyCyclesPerIter      *big.Rat
	ThroughputCyclesPerIter   *big.Rat
	DispatchCycles            *big.Rat
	RetireCycles              *big.Rat
	Classification            Bound
	MinimumCyclesPerIteration *big.Rat
	Bottlenecks               []Bottleneck // every candidate tied with ThroughputCyclesPerIter
}

// Analyze computes the static performance report for p on proc.
func Analyze(p *program.Program, proc *processor.Processor) *Report {
	latencies := make([]int64, p.N)
	masks := make([]uint64, p.N)

	portOrder := proc.PortOrder
	nPorts := len(portOrder)
	portIndex := make(map[string]int, nPorts)
	for i, port := range portOrder {
		portIndex[port] = i
	}

	for i := 0; i < p.N; i++ {
		lat, ports := proc.GetResource(p.Instructions[i].Type)
		latencies[i] = lat
		var mask uint64
		for _, port := range ports {
			if idx, ok := portIndex[port]; ok {
				mask |= 1 << uint(idx)
			}
		}
		masks[i] = mask
	}

	latencyBound := latencyBoundOf(p.CyclicPaths, latencies)

	dwCycles := big.NewRat(int64(p.N), int64(proc.DispatchWidth))
	rwCycles := big.NewRat(int64(p.N), int64(proc.RetireWidth))

	candidates := []Bottleneck{
		{Kind: "DISPATCH", Cycles: dwCycles},
		{Kind: "RETIRE", Cycles: rwCycles},
	}

	if nPorts > 0 {
		for mask := uint64(1); mask < (uint64(1) << uint(nPorts)); mask++ {
			uses := 0
			for _, instrMask := range masks {
				if mask&instrMask == instrMask {
					uses++
				}
			}
			pw := bits.OnesCount64(mask)
			cycles := big.NewRat(int64(uses), int64(pw))
			candidates = append(candidates, Bottleneck{
				Kind:   "PORTS",
				Ports:  subsetPorts(mask, portOrder),
				Cycles: cycles,
			})
		}
	}

	throughputBound := new(big.Rat)
	for _, c := range candidates {
		if c.Cycles.Cmp(throughputBound) > 0 {
			throughputBound = c.Cycles
		}
	}

	var bottlenecks []Bottleneck
	for _, c := range candidates {
		if c.Cycles.Cmp(throughputBound) == 0 {
			bottlenecks = append(bottlenecks, c)
		}
	}

	report := &Report{
		LatencyCyclesPerIter:    latencyBound,
		ThroughputCyclesPerIter: throughputBound,
		DispatchCycles:          dwCycles,
		RetireCycles:            rwCycles,
		Bottlenecks:             bottlenecks,
	}

	switch latencyBound.Cmp(throughputBound) {
	case 1:
		report.Classification = LatencyBound
		report.MinimumCyclesPerIteration = latencyBound
	case -1:
		report.Classification = ThroughputBound
		report.MinimumCyclesPerIteration = throughputBound
	default:
		report.Classification = LatencyThroughputBound
		report.MinimumCyclesPerIteration = latencyBound
	}
	return report
}

func latencyBoundOf(paths [][]int, latencies []int64) *big.Rat {
	max := new(big.Rat)
	for _, path := range paths {
		var latSum int64
		var iters int64
		for j := 0; j < len(path)-1; j++ {
			latSum += latencies[path[j]]
			if path[j] >= path[j+1] {
				iters++
			}
		}
		if iters == 0 {
			continue
		}
		r := big.NewRat(latSum, iters)
		if r.Cmp(max) > 0 {
			max = r
		}
	}
	return max
}

func subsetPorts(mask uint64, portOrder []string) []string {
	var out []string
	for i, port := range portOrder {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, port)
		}
	}
	return out
}
