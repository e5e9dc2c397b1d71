// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operators holds the interfaces the evolutionary engine consumes
// for sampling, crossover, mutation, duplicate removal, and selection, plus
// the shared evolution loop that drives them each generation.
//
// Concrete crossover, mutation, sampling, and duplicate-cleaner
// implementations are deliberately not part of this library: callers supply
// their own, matching the encoding of their problem (real-valued, integer,
// binary, permutation). Only the contracts and the loop that wires them
// together live here.
package operators

import "github.com/cpmech/moo/rng"

// Sampler draws an initial genes matrix of shape n x d.
type Sampler interface {
	Sample(n, d int, src rng.Source) [][]float64
}

// Crossover produces two children from two parents. Implementations decide
// internally whether/how many cut points to use; the loop calls Crossover
// once per parent pair and always receives exactly two children back.
type Crossover interface {
	Cross(parentA, parentB []float64, src rng.Source) (childA, childB []float64)
}

// Mutation mutates one individual in place.
type Mutation interface {
	Mutate(individual []float64, src rng.Source)
}

// DuplicatesCleaner removes duplicate rows from candidates. When reference is
// nil, it dedupes within candidates; when reference is non-nil, it also
// drops any candidate row matching a reference row.
type DuplicatesCleaner interface {
	Clean(candidates [][]float64, reference [][]float64) [][]float64
}
