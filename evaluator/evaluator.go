// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evaluator applies the user's fitness and constraint functions to a
// genes matrix and filters out infeasible individuals.
package evaluator

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/moo/genetic"
)

// ErrNoFeasibleIndividuals is returned by Evaluate when keep_infeasible is
// false and every row was filtered out, either by the constraints or by the
// box bounds.
var ErrNoFeasibleIndividuals = errors.New("moo: no feasible individuals after evaluation")

// Fitness computes F(G): R^{N x D} -> R^{N x M}.
type Fitness func(genes [][]float64) [][]float64

// Constraints computes G(G): R^{N x D} -> R^{N x K}, with the convention
// that a value <= 0 is satisfied.
type Constraints func(genes [][]float64) [][]float64

// Evaluator applies Fn and optionally Cn to a genes matrix, and can drop
// infeasible or out-of-bounds individuals.
type Evaluator struct {
	Fn Fitness
	Cn Constraints // nil if the problem has no constraints

	// KeepInfeasible, when true, retains every row regardless of
	// constraints or bounds.
	KeepInfeasible bool

	// LowerBound and UpperBound are optional, independently nilable box
	// bounds applied element-wise to every gene.
	LowerBound *float64
	UpperBound *float64
}

// Evaluate computes fitness (and constraints, if configured) for genes,
// builds a Population, and -- unless KeepInfeasible is set -- filters out
// any row that violates a constraint or falls outside the configured
// bounds. Returns ErrNoFeasibleIndividuals if filtering leaves nothing.
//
// A mismatch between len(genes) and the row count F or G returns is a
// programming error and panics, per the shape-mismatch policy.
func (e *Evaluator) Evaluate(genes [][]float64) (*genetic.Population, error) {
	n := len(genes)
	fitness := e.Fn(genes)
	if len(fitness) != n {
		chk.Panic("evaluator: fitness function returned %d rows, want %d", len(fitness), n)
	}
	var constraints [][]float64
	if e.Cn != nil {
		constraints = e.Cn(genes)
		if len(constraints) != n {
			chk.Panic("evaluator: constraints function returned %d rows, want %d", len(constraints), n)
		}
	}
	pop := genetic.New(genes, fitness, constraints)
	if e.KeepInfeasible {
		return pop, nil
	}

	var keep []int
	for i := 0; i < n; i++ {
		if constraints != nil && !pop.IsFeasible(i) {
			continue
		}
		if !e.withinBounds(genes[i]) {
			continue
		}
		keep = append(keep, i)
	}
	if len(keep) == 0 {
		return nil, ErrNoFeasibleIndividuals
	}
	return pop.Selected(keep), nil
}

func (e *Evaluator) withinBounds(row []float64) bool {
	for _, x := range row {
		if e.LowerBound != nil && x < *e.LowerBound {
			return false
		}
		if e.UpperBound != nil && x > *e.UpperBound {
			return false
		}
	}
	return true
}
