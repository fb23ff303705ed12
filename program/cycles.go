package program

import "strconv"

// enumerateCyclicPaths discovers every simple cyclic dependence path in the
// combined intra-iteration/loop-carried dependence graph (spec §4.1).
//
// The walk mirrors the reference implementation exactly: a DFS (explicit
// stack, last-in-first-out) over the reverse ("successor") adjacency, each
// node remembering which successor edges it has already expanded so a
// repeated edge signals closure rather than being re-walked forever. A
// cycle is recorded only when the path being extended already revisits
// some vertex; it is then truncated to start at the first occurrence of
// the current tail, which — by construction — is also the path's last
// element, giving a closed walk like [a, b, c, a].
func (p *Program) enumerateCyclicPaths() {
	succ := make([][]int, p.N)
	for i, deps := range p.DepList {
		for _, dep := range deps {
			if dep.Producer >= 0 {
				succ[dep.Producer] = append(succ[dep.Producer], i)
			}
		}
	}

	var starts []int
	for i := 0; i < p.N; i++ {
		hasEarlierDep := false
		for _, dep := range p.DepList[i] {
			if dep.Producer >= 0 && dep.Producer < i {
				hasEarlierDep = true
				break
			}
		}
		if !hasEarlierDep {
			starts = append(starts, i)
		}
	}

	visited := make([]map[int]bool, p.N)
	for i := range visited {
		visited[i] = make(map[int]bool)
	}

	var stack [][]int
	for _, s := range starts {
		stack = append(stack, []int{s})
	}

	seenCycle := make(map[string]bool)
	var cycles [][]int

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		last := path[len(path)-1]

		for _, consumer := range succ[last] {
			if !visited[last][consumer] {
				visited[last][consumer] = true
				next := make([]int, len(path)+1)
				copy(next, path)
				next[len(path)] = consumer
				stack = append(stack, next)
				continue
			}

			if !hasDuplicate(path) {
				continue
			}
			idx := indexOf(path, last)
			cyc := append([]int{}, path[idx:]...)
			key := cycleKey(cyc)
			if !seenCycle[key] {
				seenCycle[key] = true
				cycles = append(cycles, cyc)
			}
		}
	}

	p.CyclicPaths = make([][]int, 0, len(cycles))
	for _, cyc := range cycles {
		cyc = cyc[:len(cyc)-1] // drop the repeated closing element
		minVal, minIdx := cyc[0], 0
		for i, v := range cyc {
			if v < minVal {
				minVal, minIdx = v, i
			}
		}
		rotated := make([]int, 0, len(cyc)+1)
		rotated = append(rotated, cyc[minIdx:]...)
		rotated = append(rotated, cyc[:minIdx+1]...)
		p.CyclicPaths = append(p.CyclicPaths, rotated)
	}
}

func hasDuplicate(path []int) bool {
	seen := make(map[int]bool, len(path))
	for _, v := range path {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}

func indexOf(path []int, v int) int {
	for i, x := range path {
		if x == v {
			return i
		}
	}
	return -1
}

func cycleKey(cyc []int) string {
	out := make([]byte, 0, len(cyc)*4)
	for _, v := range cyc {
		out = append(out, []byte(strconv.Itoa(v))...)
		out = append(out, ',')
	}
	return string(out)
}
