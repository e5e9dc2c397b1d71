// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

import (
	"errors"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/rng"
)

// ErrEmptyMating is returned when Evolve exhausts MaxIter batches without
// producing a single offspring. The driver treats this as a non-fatal
// early-termination signal, not a fatal error.
var ErrEmptyMating = errors.New("moo: evolution loop produced no offspring")

// Evolve is the shared offspring-generation loop (spec C5): selection,
// crossover, mutation, clamping, and deduplication, batched until either
// numOffsprings unique rows are produced or MaxIter batches are exhausted.
type Evolve struct {
	Selection         Selection
	Crossover         Crossover
	Mutation          Mutation
	DuplicatesCleaner DuplicatesCleaner // nil means no deduplication

	CrossoverRate float64
	MutationRate  float64

	LowerBound *float64
	UpperBound *float64

	MaxIter int
}

// Offspring runs the batch loop and returns up to numOffsprings unique rows.
// If fewer than requested were produced, the shortfall is returned alongside
// a nil error (the caller is expected to log a warning); if zero were
// produced, it returns ErrEmptyMating.
func (e *Evolve) Offspring(pop *genetic.Population, numOffsprings int, src rng.Source) ([][]float64, error) {
	var accumulated [][]float64
	maxIter := e.MaxIter
	if maxIter <= 0 {
		maxIter = 200
	}
	for iter := 0; iter < maxIter && len(accumulated) < numOffsprings; iter++ {
		remaining := numOffsprings - len(accumulated)
		crossoverNeeded := remaining/2 + 1
		parentsA, parentsB := e.Selection.Operate(pop, crossoverNeeded, src)

		batch := e.matingBatch(parentsA.Genes, parentsB.Genes, src)
		batch = e.clean(batch, nil)
		batch = e.clean(batch, pop.Genes)
		if len(accumulated) > 0 {
			batch = e.clean(batch, accumulated)
		}
		if len(batch) > remaining {
			batch = batch[:remaining]
		}
		accumulated = append(accumulated, batch...)
	}
	if len(accumulated) == 0 {
		return nil, ErrEmptyMating
	}
	return accumulated, nil
}

func (e *Evolve) matingBatch(parentsA, parentsB [][]float64, src rng.Source) [][]float64 {
	children := make([][]float64, 0, 2*len(parentsA))
	for k := range parentsA {
		a, b := parentsA[k], parentsB[k]
		var childA, childB []float64
		if src.Bool(e.CrossoverRate) {
			childA, childB = e.Crossover.Cross(a, b, src)
		} else {
			childA = append([]float64{}, a...)
			childB = append([]float64{}, b...)
		}
		if src.Bool(e.MutationRate) {
			e.Mutation.Mutate(childA, src)
		}
		if src.Bool(e.MutationRate) {
			e.Mutation.Mutate(childB, src)
		}
		e.clamp(childA)
		e.clamp(childB)
		children = append(children, childA, childB)
	}
	return children
}

func (e *Evolve) clamp(row []float64) {
	if e.LowerBound == nil && e.UpperBound == nil {
		return
	}
	for i, x := range row {
		if e.LowerBound != nil && x < *e.LowerBound {
			row[i] = *e.LowerBound
		}
		if e.UpperBound != nil && x > *e.UpperBound {
			row[i] = *e.UpperBound
		}
	}
}

func (e *Evolve) clean(candidates, reference [][]float64) [][]float64 {
	if e.DuplicatesCleaner == nil {
		return candidates
	}
	return e.DuplicatesCleaner.Clean(candidates, reference)
}
