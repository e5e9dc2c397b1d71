// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package survival implements the seven interchangeable survivor operators
// (NSGA-II, R-NSGA-II, AGE-MOEA, SPEA-2, NSGA-III, REVEA, IBEA) plus the
// single-objective lexicographic survivor. Each consumes a combined
// population of size 2N (parents union offspring) and returns exactly N
// survivors. NSGA-II, R-NSGA-II, AGE-MOEA, SPEA-2 and IBEA populate both Rank
// and Score; NSGA-III and the single-objective survivor populate Rank only;
// REVEA populates neither.
package survival

import (
	"sort"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/nsort"
	"github.com/cpmech/moo/operators"
	"github.com/cpmech/moo/rng"
)

// Direction re-exports operators.Direction so survival operator
// implementations do not need to import operators just for this one type.
type Direction = operators.Direction

const (
	Minimize = operators.Minimize
	Maximize = operators.Maximize
)

// Context carries the driver's generational state into survival operators
// that need it (REVEA's t/T schedule; everyone else ignores the fields they
// don't use, so one Survivor interface serves all seven operators).
type Context struct {
	CurrentIteration int
	NumIterations    int
	PopulationSize   int
	NumOffsprings    int
}

// Survivor is the contract every survival algorithm implements.
type Survivor interface {
	Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error)
}

// ScoreFunc computes a per-front survival score. It receives the population
// and the indices making up one front, and must return one score per index
// in the same order.
type ScoreFunc func(pop *genetic.Population, front []int) []float64

// FrontsAndScoreSurvival implements the shared shell of spec 4.5.1: sort
// into fronts, score each front, fill whole fronts, and split the
// overflowing front by score. It is reused by NSGA-II, R-NSGA-II, and
// AGE-MOEA. SPEA-2 does not use it: SPEA-2's algorithm does not partition
// into fronts before filling (see spea2.go).
func FrontsAndScoreSurvival(pop *genetic.Population, n int, direction Direction, score ScoreFunc) *genetic.Population {
	fronts := nsort.FastNonDominatedSort(pop, n)
	nsort.AssignRanks(pop, fronts)
	if pop.Score == nil {
		pop.Score = make([]float64, pop.Len())
	}

	var survivors []int
	for _, front := range fronts {
		scores := score(pop, front)
		for i, idx := range front {
			pop.Score[idx] = scores[i]
		}
		if len(survivors)+len(front) <= n {
			survivors = append(survivors, front...)
			continue
		}
		remaining := n - len(survivors)
		order := make([]int, len(front))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			if direction == Maximize {
				return scores[order[a]] > scores[order[b]]
			}
			return scores[order[a]] < scores[order[b]]
		})
		for _, pos := range order[:remaining] {
			survivors = append(survivors, front[pos])
		}
		break
	}
	return pop.Selected(survivors)
}
