package portassign

import "math"

// Optimal performs an exhaustive DFS over candidates in window order
// (ported from issue_algs.py's old_priority): at each candidate it
// branches over every allowed port not yet used by an earlier branch
// assignment, and only falls through to skipping the candidate when none
// of its ports are free. Among all leaves it keeps the one with the
// highest assignment cardinality, breaking ties by the lowest sum of
// assigned candidates' window positions (i.e. preferring to assign the
// oldest instructions).
//
// executeWidth bounds how many of the winning assignment's candidates are
// issued this cycle. The search itself runs without that bound; Optimal
// then walks the candidates in window order, issues assigned ones until
// executeWidth is spent, and reports every later candidate as
// Outcome{Assigned: false, BandwidthLimited: true}.
func Optimal(candidates []Candidate, executeWidth int) []Outcome {
	n := len(candidates)

	bestCard := -1
	bestSum := math.MaxInt
	var bestAssign map[int]string

	used := make(map[string]bool, n)
	cur := make(map[int]string, n)

	var dfs func(i, card, sum int)
	dfs = func(i, card, sum int) {
		if i == n {
			if card > bestCard || (card == bestCard && sum < bestSum) {
				bestCard = card
				bestSum = sum
				bestAssign = make(map[int]string, len(cur))
				for k, v := range cur {
					bestAssign[k] = v
				}
			}
			return
		}
		c := candidates[i]
		assignedAny := false
		for _, p := range c.Ports {
			if used[p] {
				continue
			}
			used[p] = true
			cur[c.Pos] = p
			assignedAny = true
			dfs(i+1, card+1, sum+c.Pos)
			delete(cur, c.Pos)
			used[p] = false
		}
		if !assignedAny {
			dfs(i+1, card, sum)
		}
	}
	dfs(0, 0, 0)

	out := make([]Outcome, 0, n)
	budget := executeWidth
	for _, c := range candidates {
		if budget <= 0 {
			out = append(out, Outcome{Pos: c.Pos, BandwidthLimited: true})
			continue
		}
		port, ok := bestAssign[c.Pos]
		if !ok {
			out = append(out, Outcome{Pos: c.Pos})
			continue
		}
		budget--
		out = append(out, Outcome{Pos: c.Pos, Port: port, Assigned: true})
	}
	return out
}
