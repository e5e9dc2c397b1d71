// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nsort implements constrained Pareto dominance and fast
// non-dominated sorting, the partitioning step every multi-objective
// survival operator starts from.
package nsort

import "github.com/cpmech/moo/genetic"

// Dominates reports whether individual i constrainedly dominates individual
// j in p:
//  1. both feasible and i Pareto-dominates j, or
//  2. i feasible and j infeasible, or
//  3. both infeasible and CV(i) < CV(j).
func Dominates(p *genetic.Population, i, j int) bool {
	feasI, feasJ := p.IsFeasible(i), p.IsFeasible(j)
	if feasI && !feasJ {
		return true
	}
	if !feasI && feasJ {
		return false
	}
	if !feasI && !feasJ {
		return p.ConstraintViolation(i) < p.ConstraintViolation(j)
	}
	return paretoDominates(p.Fitness[i], p.Fitness[j])
}

// paretoDominates reports whether a dominates b: a <= b componentwise and a
// < b in at least one component (minimization).
func paretoDominates(a, b []float64) bool {
	atLeastOneStrict := false
	for k := range a {
		if a[k] > b[k] {
			return false
		}
		if a[k] < b[k] {
			atLeastOneStrict = true
		}
	}
	return atLeastOneStrict
}

// FastNonDominatedSort partitions every individual in p into Pareto fronts
// using constrained dominance, the standard O(M*N^2) algorithm. Fronts are
// returned as lists of indices into p, front 0 first.
//
// nTarget, when positive, lets the caller stop materializing new fronts once
// the cumulative front size reaches nTarget; the front that causes the
// overflow (the "splitting front") is still fully materialized so the caller
// can inspect or score it. A non-positive nTarget materializes every front.
func FastNonDominatedSort(p *genetic.Population, nTarget int) [][]int {
	n := p.Len()
	dominatedBy := make([][]int, n) // individuals that i dominates
	dominationCount := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(p, i, j) {
				dominatedBy[i] = append(dominatedBy[i], j)
			} else if Dominates(p, j, i) {
				dominationCount[i]++
			}
		}
	}

	var fronts [][]int
	current := make([]int, 0)
	for i := 0; i < n; i++ {
		if dominationCount[i] == 0 {
			current = append(current, i)
		}
	}

	total := 0
	for len(current) > 0 {
		fronts = append(fronts, current)
		total += len(current)
		var next []int
		for _, i := range current {
			for _, j := range dominatedBy[i] {
				dominationCount[j]--
				if dominationCount[j] == 0 {
					next = append(next, j)
				}
			}
		}
		if nTarget > 0 && total >= nTarget {
			break
		}
		current = next
	}
	return fronts
}

// AssignRanks sets p.Rank[i] = front index of i for every individual covered
// by fronts. Individuals not covered (because sorting stopped early) are left
// untouched.
func AssignRanks(p *genetic.Population, fronts [][]int) {
	if p.Rank == nil {
		p.Rank = make([]int, p.Len())
	}
	for r, front := range fronts {
		for _, i := range front {
			p.Rank[i] = r
		}
	}
}
