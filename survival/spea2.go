// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"math"
	"sort"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/linalg"
	"github.com/cpmech/moo/nsort"
	"github.com/cpmech/moo/rng"
)

// SPEA2 is the strength/density survivor of spec 4.5.5. Unlike NSGA-II,
// R-NSGA-II and AGE-MOEA it does not go through FrontsAndScoreSurvival: its fill rule
// operates on strength/raw-fitness/density directly, not on fronts.
type SPEA2 struct{}

// Operate implements Survivor.
func (SPEA2) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	m := combined.Len()
	dom := make([][]bool, m)
	for i := 0; i < m; i++ {
		dom[i] = make([]bool, m)
		for j := 0; j < m; j++ {
			if i != j {
				dom[i][j] = nsort.Dominates(combined, i, j)
			}
		}
	}
	strength := make([]int, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if dom[i][j] {
				strength[i]++
			}
		}
	}
	rawFitness := make([]float64, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if dom[j][i] {
				rawFitness[i] += float64(strength[j])
			}
		}
	}

	distances := linalg.CrossEuclideanDistances(combined.Fitness, combined.Fitness)
	k := int(math.Floor(math.Sqrt(float64(2 * n))))
	if k < 1 {
		k = 1
	}
	density := make([]float64, m)
	for i := 0; i < m; i++ {
		others := make([]float64, 0, m-1)
		for j := 0; j < m; j++ {
			if j != i {
				others = append(others, distances[i][j])
			}
		}
		sort.Float64s(others)
		kk := k
		if kk > len(others) {
			kk = len(others)
		}
		sigma := 0.0
		if kk > 0 {
			sigma = others[kk-1]
		}
		density[i] = 1.0 / (sigma + 2.0)
	}

	finalFitness := make([]float64, m)
	for i := 0; i < m; i++ {
		finalFitness[i] = rawFitness[i] + density[i]
	}

	var e []int
	var dominated []int
	for i := 0; i < m; i++ {
		if finalFitness[i] < 1 {
			e = append(e, i)
		} else {
			dominated = append(dominated, i)
		}
	}

	var survivors []int
	switch {
	case len(e) == n:
		survivors = e
	case len(e) < n:
		sort.Slice(dominated, func(a, b int) bool { return finalFitness[dominated[a]] < finalFitness[dominated[b]] })
		survivors = append(e, dominated[:n-len(e)]...)
	default:
		survivors = truncateByNearestNeighbor(e, distances, n)
	}

	fronts := nsort.FastNonDominatedSort(combined, 0)
	nsort.AssignRanks(combined, fronts)
	if combined.Score == nil {
		combined.Score = make([]float64, m)
	}
	for i := 0; i < m; i++ {
		combined.Score[i] = finalFitness[i]
	}

	return combined.Selected(survivors), nil
}

// truncateByNearestNeighbor iteratively removes, from set, the individual
// whose distance to its nearest remaining neighbor is smallest (ties broken
// by comparing the next-nearest distance, and so on), until len(set) == n.
func truncateByNearestNeighbor(set []int, distances [][]float64, n int) []int {
	alive := append([]int{}, set...)
	for len(alive) > n {
		sortedDist := make([][]float64, len(alive))
		for a, i := range alive {
			row := make([]float64, 0, len(alive)-1)
			for b, j := range alive {
				if a != b {
					row = append(row, distances[i][j])
				}
			}
			sort.Float64s(row)
			sortedDist[a] = row
		}
		worst := 0
		for a := 1; a < len(alive); a++ {
			if lexSmaller(sortedDist[a], sortedDist[worst]) {
				worst = a
			}
		}
		alive = append(alive[:worst], alive[worst+1:]...)
	}
	return alive
}

// lexSmaller reports whether a's sorted distance vector is lexicographically
// smaller than b's, i.e. a's nearest neighbor is closer, with ties broken by
// successively farther neighbors.
func lexSmaller(a, b []float64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

var _ Survivor = SPEA2{}
