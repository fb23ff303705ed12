package execgraph

// Stats is the critical path broken down by where its cycles were spent:
// per-static-instruction execute time, plus dispatch and retire overhead,
// each as a percentage of the path's total weight.
type Stats struct {
	PerInstruction []float64 // indexed by static instruction
	DispatchPct    float64
	RetirePct      float64
}

// PathStats attributes the critical path's weight to the static
// instructions whose execute stage it passed through, plus dispatch and
// retire overhead. staticN is the program's static instruction count
// (program.Program.N); a path edge's target node index mod 3 selects the
// bucket (1 = execute, 0 = dispatch, 2 = retire) and its target index / 3
// mod staticN selects which static instruction an execute edge belongs
// to.
func PathStats(path []Edge, staticN int) Stats {
	histogram := make([]int64, staticN)
	var dispatchLat, retireLat, total int64

	for _, e := range path {
		stage := e.To % 3
		staticIdx := (e.To / 3) % staticN
		switch stage {
		case 1:
			histogram[staticIdx] += e.Weight
		case 0:
			dispatchLat += e.Weight
		default:
			retireLat += e.Weight
		}
		total += e.Weight
	}

	out := Stats{PerInstruction: make([]float64, staticN)}
	if total == 0 {
		return out
	}
	for i, v := range histogram {
		out.PerInstruction[i] = 100 * float64(v) / float64(total)
	}
	out.DispatchPct = 100 * float64(dispatchLat) / float64(total)
	out.RetirePct = 100 * float64(retireLat) / float64(total)
	return out
}
