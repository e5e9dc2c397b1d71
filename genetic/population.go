// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genetic holds the population data model shared by every stage of
// the evolutionary engine: genes, fitness, optional constraints, rank, and
// survival score.
package genetic

import "github.com/cpmech/gosl/chk"

// Population owns the genes/fitness/constraints/rank/score arrays for a set
// of individuals. All arrays share the same leading dimension N. Rank and
// Score are optional and nil when not yet computed. Constraints is optional
// and nil when the problem has none.
//
// A Population never mutates itself in place across a generation boundary:
// every stage that "replaces" the population (evaluation, survival) builds a
// new Population and returns it.
type Population struct {
	Genes       [][]float64 // N x D
	Fitness     [][]float64 // N x M (M == 1 for single-objective)
	Constraints [][]float64 // N x K, nil if the problem has no constraints
	Rank        []int       // N, nil until assigned
	Score       []float64   // N, nil until assigned
}

// New builds a Population from genes and fitness, validating that every
// array shares a leading dimension N and that fitness rows all have the same
// width. constraints may be nil. It panics (via chk.Panic) on shape
// mismatches: those are programming errors, not runtime conditions a caller
// can recover from, per the shape-mismatch policy of the engine.
func New(genes, fitness, constraints [][]float64) *Population {
	n := len(genes)
	if len(fitness) != n {
		chk.Panic("genetic: fitness row count %d does not match genes row count %d", len(fitness), n)
	}
	if constraints != nil && len(constraints) != n {
		chk.Panic("genetic: constraints row count %d does not match genes row count %d", len(constraints), n)
	}
	if n > 0 {
		m := len(fitness[0])
		for i, row := range fitness {
			if len(row) != m {
				chk.Panic("genetic: fitness row %d has width %d, want %d", i, len(row), m)
			}
		}
		if constraints != nil {
			k := len(constraints[0])
			for i, row := range constraints {
				if len(row) != k {
					chk.Panic("genetic: constraints row %d has width %d, want %d", i, len(row), k)
				}
			}
		}
	}
	return &Population{Genes: genes, Fitness: fitness, Constraints: constraints}
}

// Len returns the number of individuals N.
func (p *Population) Len() int {
	return len(p.Genes)
}

// NumVars returns D, the number of decision variables.
func (p *Population) NumVars() int {
	if len(p.Genes) == 0 {
		return 0
	}
	return len(p.Genes[0])
}

// NumObjectives returns M, the width of the fitness matrix.
func (p *Population) NumObjectives() int {
	if len(p.Fitness) == 0 {
		return 0
	}
	return len(p.Fitness[0])
}

// HasConstraints reports whether this population carries a constraints
// matrix.
func (p *Population) HasConstraints() bool {
	return p.Constraints != nil
}

// ConstraintViolation returns CV(i) = sum_k max(0, c_{i,k}). It is 0 when the
// population has no constraints.
func (p *Population) ConstraintViolation(i int) float64 {
	if !p.HasConstraints() {
		return 0
	}
	var cv float64
	for _, c := range p.Constraints[i] {
		if c > 0 {
			cv += c
		}
	}
	return cv
}

// IsFeasible reports whether individual i satisfies every constraint.
func (p *Population) IsFeasible(i int) bool {
	return p.ConstraintViolation(i) == 0
}

// Selected returns a new Population containing only the rows named by
// indices, in that order. Every present optional field (Constraints, Rank,
// Score) is carried over consistently; absent fields stay absent.
func (p *Population) Selected(indices []int) *Population {
	n := len(indices)
	genes := make([][]float64, n)
	fitness := make([][]float64, n)
	var constraints [][]float64
	if p.HasConstraints() {
		constraints = make([][]float64, n)
	}
	var rank []int
	if p.Rank != nil {
		rank = make([]int, n)
	}
	var score []float64
	if p.Score != nil {
		score = make([]float64, n)
	}
	for newIdx, oldIdx := range indices {
		genes[newIdx] = p.Genes[oldIdx]
		fitness[newIdx] = p.Fitness[oldIdx]
		if constraints != nil {
			constraints[newIdx] = p.Constraints[oldIdx]
		}
		if rank != nil {
			rank[newIdx] = p.Rank[oldIdx]
		}
		if score != nil {
			score[newIdx] = p.Score[oldIdx]
		}
	}
	return &Population{Genes: genes, Fitness: fitness, Constraints: constraints, Rank: rank, Score: score}
}

// Merge concatenates p and q row-wise. It panics if the same optional field
// is present in one population and absent in the other, or if constraint
// widths differ -- both are programming errors, matching the original
// source's merge-time invariant checks.
func Merge(p, q *Population) *Population {
	if (p.Rank == nil) != (q.Rank == nil) {
		chk.Panic("genetic: mismatched rank: one population has it set and the other does not")
	}
	if (p.Score == nil) != (q.Score == nil) {
		chk.Panic("genetic: mismatched survival score: one population has it set and the other does not")
	}
	if p.HasConstraints() != q.HasConstraints() {
		chk.Panic("genetic: mismatched constraints: one population has them and the other does not")
	}
	if p.HasConstraints() && p.NumVars() >= 0 && len(p.Constraints) > 0 && len(q.Constraints) > 0 {
		if len(p.Constraints[0]) != len(q.Constraints[0]) {
			chk.Panic("genetic: mismatched constraint width: %d vs %d", len(p.Constraints[0]), len(q.Constraints[0]))
		}
	}
	genes := append(append([][]float64{}, p.Genes...), q.Genes...)
	fitness := append(append([][]float64{}, p.Fitness...), q.Fitness...)
	var constraints [][]float64
	if p.HasConstraints() {
		constraints = append(append([][]float64{}, p.Constraints...), q.Constraints...)
	}
	var rank []int
	if p.Rank != nil {
		rank = append(append([]int{}, p.Rank...), q.Rank...)
	}
	var score []float64
	if p.Score != nil {
		score = append(append([]float64{}, p.Score...), q.Score...)
	}
	return &Population{Genes: genes, Fitness: fitness, Constraints: constraints, Rank: rank, Score: score}
}

// Clone performs a deep copy.
func (p *Population) Clone() *Population {
	c := p.Selected(allIndices(p.Len()))
	for i := range c.Genes {
		c.Genes[i] = append([]float64{}, c.Genes[i]...)
		c.Fitness[i] = append([]float64{}, c.Fitness[i]...)
		if c.Constraints != nil {
			c.Constraints[i] = append([]float64{}, c.Constraints[i]...)
		}
	}
	return c
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
