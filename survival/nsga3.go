// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"github.com/cpmech/gosl/graph"
	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/linalg"
	"github.com/cpmech/moo/nsort"
	"github.com/cpmech/moo/rng"
)

// NSGA3 is the reference-point niching survivor of spec 4.5.6. Its
// splitting logic does not go through FrontsAndScoreSurvival: the niching
// loop picks survivors from the overflowing front one at a time, consulting
// niche counts built from the fronts already kept, which the generic
// per-front scalar-score shell cannot express.
type NSGA3 struct {
	// ReferenceDirections is the fixed set R of points on (or near) the unit
	// simplex, typically produced by refpoints.Generate. Aspirational
	// (user-provided, off-simplex) points are accepted unchanged.
	ReferenceDirections [][]float64

	// Balanced, when true, fills the overflowing front's remaining slots by
	// one-shot min-cost bipartite matching (candidates against under-filled
	// niche slots) instead of the standard niche-count-then-random-pick
	// loop. It trades a stronger even-spread guarantee for one Munkres
	// solve per generation.
	Balanced bool
}

// Operate implements Survivor.
func (o NSGA3) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	fronts := nsort.FastNonDominatedSort(combined, n)
	nsort.AssignRanks(combined, fronts)

	var kept []int
	splitIdx := len(fronts)
	for i, f := range fronts {
		if len(kept)+len(f) <= n {
			kept = append(kept, f...)
			continue
		}
		splitIdx = i
		break
	}
	if len(kept) == n || splitIdx >= len(fronts) {
		return combined.Selected(kept), nil
	}
	splitFront := fronts[splitIdx]

	var s []int
	for i := 0; i <= splitIdx; i++ {
		s = append(s, fronts[i]...)
	}
	normalized := normalizeForNSGA3(combined, s)

	assoc := make(map[int]int, len(s)) // population index -> reference index
	dist := make(map[int]float64, len(s))
	for _, idx := range s {
		r, d := nearestDirection(normalized[idx], o.ReferenceDirections)
		assoc[idx] = r
		dist[idx] = d
	}

	nicheCount := make([]int, len(o.ReferenceDirections))
	for _, idx := range kept {
		nicheCount[assoc[idx]]++
	}

	remaining := append([]int{}, splitFront...)

	if o.Balanced {
		chosen := balancedNicheMatch(splitFront, normalized, o.ReferenceDirections, nicheCount, n-len(kept))
		return combined.Selected(append(kept, chosen...)), nil
	}

	for len(kept) < n && len(remaining) > 0 {
		candidatesByRef := make(map[int][]int, len(o.ReferenceDirections))
		for _, idx := range remaining {
			r := assoc[idx]
			candidatesByRef[r] = append(candidatesByRef[r], idx)
		}

		rStar, minCount := -1, -1
		for r := 0; r < len(o.ReferenceDirections); r++ {
			cands := candidatesByRef[r]
			if len(cands) == 0 {
				continue
			}
			if minCount == -1 || nicheCount[r] < minCount {
				minCount = nicheCount[r]
				rStar = r
			}
		}
		if rStar == -1 {
			break
		}
		cands := candidatesByRef[rStar]
		var chosen int
		if nicheCount[rStar] == 0 {
			chosen = cands[0]
			for _, c := range cands[1:] {
				if dist[c] < dist[chosen] {
					chosen = c
				}
			}
		} else {
			chosen = cands[src.Choice(len(cands))]
		}
		kept = append(kept, chosen)
		for i, idx := range remaining {
			if idx == chosen {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
		nicheCount[rStar]++
	}
	return combined.Selected(kept), nil
}

// normalizeForNSGA3 implements spec 4.5.6 step 3: translate by the ideal
// point, find per-axis extreme points via the achievement scalarizing
// function, solve for hyperplane intercepts, and scale.
func normalizeForNSGA3(pop *genetic.Population, s []int) map[int][]float64 {
	m := pop.NumObjectives()
	ideal := make([]float64, m)
	for j := 0; j < m; j++ {
		ideal[j] = pop.Fitness[s[0]][j]
		for _, idx := range s {
			if v := pop.Fitness[idx][j]; v < ideal[j] {
				ideal[j] = v
			}
		}
	}
	translated := make(map[int][]float64, len(s))
	for _, idx := range s {
		row := make([]float64, m)
		for j := 0; j < m; j++ {
			row[j] = pop.Fitness[idx][j] - ideal[j]
		}
		translated[idx] = row
	}

	extreme := make([][]float64, m)
	for j := 0; j < m; j++ {
		w := make([]float64, m)
		for k := range w {
			w[k] = 1e-6
		}
		w[j] = 1
		best := s[0]
		bestASF := asf(translated[best], w)
		for _, idx := range s {
			v := asf(translated[idx], w)
			if v < bestASF {
				bestASF = v
				best = idx
			}
		}
		extreme[j] = translated[best]
	}

	intercepts := solveIntercepts(extreme, m)
	if intercepts == nil {
		intercepts = make([]float64, m)
		for j := 0; j < m; j++ {
			max := translated[s[0]][j]
			for _, idx := range s {
				if v := translated[idx][j]; v > max {
					max = v
				}
			}
			if max <= 0 {
				max = 1
			}
			intercepts[j] = max
		}
	}

	out := make(map[int][]float64, len(s))
	for _, idx := range s {
		row := make([]float64, m)
		for j := 0; j < m; j++ {
			if intercepts[j] != 0 {
				row[j] = translated[idx][j] / intercepts[j]
			}
		}
		out[idx] = row
	}
	return out
}

func asf(f, w []float64) float64 {
	max := f[0] / w[0]
	for j := 1; j < len(f); j++ {
		if v := f[j] / w[j]; v > max {
			max = v
		}
	}
	return max
}

// solveIntercepts solves the MxM system sum_j (extreme[i][j] / a_j) = 1 for
// a, returning nil if the system is (near-)singular.
func solveIntercepts(extreme [][]float64, m int) []float64 {
	a := make([][]float64, m)
	for i := 0; i < m; i++ {
		a[i] = append([]float64{}, extreme[i]...)
	}
	b := make([]float64, m)
	for i := range b {
		b[i] = 1
	}
	w, ok := gaussianSolve(a, b)
	if !ok {
		return nil
	}
	intercepts := make([]float64, m)
	for j, wj := range w {
		if wj == 0 {
			return nil
		}
		intercepts[j] = 1 / wj
	}
	return intercepts
}

// gaussianSolve solves A x = b via Gaussian elimination with partial
// pivoting. It reports ok=false if A is (near-)singular.
func gaussianSolve(a [][]float64, b []float64) (x []float64, ok bool) {
	n := len(b)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = append(append([]float64{}, a[i]...), b[i])
	}
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if absF(mat[r][col]) > absF(mat[pivot][col]) {
				pivot = r
			}
		}
		if absF(mat[pivot][col]) < 1e-12 {
			return nil, false
		}
		mat[col], mat[pivot] = mat[pivot], mat[col]
		for r := col + 1; r < n; r++ {
			factor := mat[r][col] / mat[col][col]
			for c := col; c <= n; c++ {
				mat[r][c] -= factor * mat[col][c]
			}
		}
	}
	x = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := mat[i][n]
		for j := i + 1; j < n; j++ {
			sum -= mat[i][j] * x[j]
		}
		x[i] = sum / mat[i][i]
	}
	return x, true
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// nearestDirection returns the index of the reference direction closest to f
// by perpendicular distance, along with that distance.
func nearestDirection(f []float64, refs [][]float64) (int, float64) {
	best, bestDist := 0, -1.0
	for r, v := range refs {
		d := perpendicularDistance(f, v)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = r
		}
	}
	return best, bestDist
}

func perpendicularDistance(f, v []float64) float64 {
	vv := linalg.Dot(v, v)
	if vv == 0 {
		return linalg.Norm(f)
	}
	t := linalg.Dot(f, v) / vv
	perp := make([]float64, len(f))
	for i := range f {
		perp[i] = f[i] - t*v[i]
	}
	return linalg.Norm(perp)
}

// balancedNicheMatch fills `needed` remaining slots by solving a min-cost
// bipartite assignment between splitFront candidates and under-filled niche
// slots, using gosl/graph.Munkres the same way the teacher's tournament
// step matches parents to offspring by mutual distance (island.go's
// update_crowding). Niche targets are distributed as evenly as possible
// across reference directions; a slot's cost for a candidate is its
// perpendicular distance to that slot's reference direction.
func balancedNicheMatch(splitFront []int, normalized map[int][]float64, refs [][]float64, nicheCount []int, needed int) []int {
	if needed <= 0 || len(splitFront) == 0 || len(refs) == 0 {
		return nil
	}
	target := make([]int, len(refs))
	base := needed / len(refs)
	extra := needed % len(refs)
	for r := range target {
		target[r] = nicheCount[r] + base
		if r < extra {
			target[r]++
		}
	}

	var slotRefs []int
	for r, t := range target {
		for k := 0; k < t-nicheCount[r] && len(slotRefs) < needed; k++ {
			slotRefs = append(slotRefs, r)
		}
	}
	for r := 0; len(slotRefs) < needed; r = (r + 1) % len(refs) {
		slotRefs = append(slotRefs, r)
	}
	slotRefs = slotRefs[:needed]

	rows := len(splitFront)
	cols := len(slotRefs)
	cost := make([][]float64, rows)
	for i, idx := range splitFront {
		cost[i] = make([]float64, cols)
		for j, r := range slotRefs {
			cost[i][j] = perpendicularDistance(normalized[idx], refs[r])
		}
	}

	var m graph.Munkres
	m.Init(rows, cols)
	m.SetCostMatrix(cost)
	m.Run()

	var chosen []int
	for i, idx := range splitFront {
		if m.Links[i] >= 0 {
			chosen = append(chosen, idx)
		}
	}
	if len(chosen) > needed {
		chosen = chosen[:needed]
	}
	return chosen
}

var _ Survivor = NSGA3{}
