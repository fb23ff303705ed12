package portassign

// Greedy assigns candidates to ports in window order, first-fit: each
// candidate takes the first port in its allowed list that is not already
// used this cycle, as long as the execute width budget is not exhausted.
// Candidates are processed in the order given — callers must supply them
// oldest-first for the result to match the reference scheduler.
func Greedy(candidates []Candidate, executeWidth int) []Outcome {
	out := make([]Outcome, 0, len(candidates))
	used := make(map[string]bool, len(candidates))
	budget := executeWidth

	for _, c := range candidates {
		if budget <= 0 {
			out = append(out, Outcome{Pos: c.Pos, BandwidthLimited: true})
			continue
		}
		port := ""
		for _, p := range c.Ports {
			if !used[p] {
				port = p
				break
			}
		}
		if port == "" {
			out = append(out, Outcome{Pos: c.Pos})
			continue
		}
		used[port] = true
		budget--
		out = append(out, Outcome{Pos: c.Pos, Port: port, Assigned: true})
	}
	return out
}
