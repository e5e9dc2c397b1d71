// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"math"
	"sort"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/rng"
)

// NSGA2 is the crowding-distance survivor of spec 4.5.2.
type NSGA2 struct{}

// CrowdingDistance computes the per-front crowding-distance score (spec
// 4.5.2): for each objective, boundary individuals get +Inf; interior
// individuals accumulate the normalized gap to their neighbors; a
// degenerate objective (max == min) contributes 0.
func CrowdingDistance(pop *genetic.Population, front []int) []float64 {
	l := len(front)
	dist := make([]float64, l)
	if l == 0 {
		return dist
	}
	m := pop.NumObjectives()
	for obj := 0; obj < m; obj++ {
		order := make([]int, l)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return pop.Fitness[front[order[a]]][obj] < pop.Fitness[front[order[b]]][obj]
		})
		fmin := pop.Fitness[front[order[0]]][obj]
		fmax := pop.Fitness[front[order[l-1]]][obj]
		dist[order[0]] = math.Inf(1)
		dist[order[l-1]] = math.Inf(1)
		span := fmax - fmin
		if span == 0 {
			continue
		}
		for k := 1; k < l-1; k++ {
			prev := pop.Fitness[front[order[k-1]]][obj]
			next := pop.Fitness[front[order[k+1]]][obj]
			if math.IsInf(dist[order[k]], 1) {
				continue
			}
			dist[order[k]] += (next - prev) / span
		}
	}
	return dist
}

// Operate implements Survivor.
func (NSGA2) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	return FrontsAndScoreSurvival(combined, n, Maximize, CrowdingDistance), nil
}

var _ Survivor = NSGA2{}
