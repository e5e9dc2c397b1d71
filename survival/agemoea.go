// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"math"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/linalg"
	"github.com/cpmech/moo/nsort"
	"github.com/cpmech/moo/rng"
)

// AGEMOEA is the adaptive-geometry survivor of spec 4.5.4: the first front's
// curvature sets an Lp norm used both as a convergence measure (distance to
// the translated ideal point) and, via a greedy furthest-point walk, as a
// diversity measure inside the splitting front.
type AGEMOEA struct{}

// estimateCurvature performs a bounded 1-D search for the p that makes the
// Lp unit-norm surface best fit front (already translated so the ideal
// point is the origin), per spec 4.5.4 step 2. p is searched in [0.1, 20];
// p=1 (a linear hyperplane) is returned directly if it already fits well,
// matching the spec's special case.
func estimateCurvature(front [][]float64) float64 {
	if len(front) == 0 {
		return 1
	}
	fitError := func(p float64) float64 {
		var sse float64
		for _, pt := range front {
			n := linalg.LpNorm(pt, p)
			d := n - 1
			sse += d * d
		}
		return sse
	}
	if fitError(1) < 1e-9 {
		return 1
	}
	lo, hi := 0.1, 20.0
	for iter := 0; iter < 60; iter++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if fitError(m1) < fitError(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return (lo + hi) / 2
}

// Operate implements Survivor.
func (AGEMOEA) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	ideal, _ := linalg.ColumnMinMax(combined.Fitness)
	translated := linalg.Translate(combined.Fitness, ideal)

	fronts := nsort.FastNonDominatedSort(combined, n)
	var firstFront [][]float64
	if len(fronts) > 0 {
		for _, i := range fronts[0] {
			firstFront = append(firstFront, translated[i])
		}
	}
	p := estimateCurvature(firstFront)

	score := func(pop *genetic.Population, front []int) []float64 {
		l := len(front)
		conv := make([]float64, l)
		for i, idx := range front {
			conv[i] = linalg.LpNorm(translated[idx], p)
		}
		// greedy walk: best convergence first, then iteratively the point
		// maximizing the minimum Lp distance to the already-picked set.
		order := make([]int, 0, l)
		picked := make([]bool, l)
		best := 0
		for i := range conv {
			if conv[i] < conv[best] {
				best = i
			}
		}
		order = append(order, best)
		picked[best] = true
		for len(order) < l {
			pick := -1
			bestMinDist := -1.0
			for cand := 0; cand < l; cand++ {
				if picked[cand] {
					continue
				}
				minDist := math.Inf(1)
				for _, chosen := range order {
					d := linalg.LpDistance(translated[front[cand]], translated[front[chosen]], p)
					if d < minDist {
						minDist = d
					}
				}
				if minDist > bestMinDist {
					bestMinDist = minDist
					pick = cand
				}
			}
			order = append(order, pick)
			picked[pick] = true
		}
		scores := make([]float64, l)
		for pos, idx := range order {
			scores[idx] = float64(l - pos)
		}
		return scores
	}

	return FrontsAndScoreSurvival(combined, n, Maximize, score), nil
}

var _ Survivor = AGEMOEA{}
