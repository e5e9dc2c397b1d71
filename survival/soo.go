// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"sort"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/rng"
)

// SOOFitness is the single-objective survivor of spec 4.5.9: lexicographic
// sort by (constraint violation ascending, fitness ascending), keep the
// first n. Rank is the position in the sorted order.
type SOOFitness struct{}

// Operate implements Survivor.
func (SOOFitness) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	size := combined.Len()
	order := make([]int, size)
	for i := range order {
		order[i] = i
	}
	cv := make([]float64, size)
	for i := 0; i < size; i++ {
		cv[i] = combined.ConstraintViolation(i)
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if cv[i] != cv[j] {
			return cv[i] < cv[j]
		}
		return combined.Fitness[i][0] < combined.Fitness[j][0]
	})
	if n > size {
		n = size
	}
	survivors := order[:n]

	rank := make([]int, size)
	for pos, idx := range order {
		rank[idx] = pos
	}
	combined.Rank = rank

	return combined.Selected(survivors), nil
}

var _ Survivor = SOOFitness{}
