// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/linalg"
	"github.com/cpmech/moo/nsort"
	"github.com/cpmech/moo/rng"
)

// IBEA is the indicator-based survivor of spec 4.5.8. Kappa is the
// selection-pressure hyperparameter and must be positive.
type IBEA struct {
	Kappa float64
}

// hvSingle returns HV({a}) w.r.t. reference r (minimization): the volume of
// the box between a and r.
func hvSingle(a, r []float64) float64 {
	v := 1.0
	for d := range a {
		v *= r[d] - a[d]
	}
	return v
}

// hvPair returns HV({a, b}) w.r.t. reference r.
func hvPair(a, b, r []float64) float64 {
	joint := 1.0
	for d := range a {
		m := a[d]
		if b[d] > m {
			m = b[d]
		}
		joint *= r[d] - m
	}
	return hvSingle(a, r) + hvSingle(b, r) - joint
}

// hvIndicator returns I_HV(a, b) = HV({a,b}) - HV({b}).
func hvIndicator(a, b, r []float64) float64 {
	return hvPair(a, b, r) - hvSingle(b, r)
}

// referencePoint returns a point that every row of f strictly dominates (for
// minimization): the per-axis max plus a positive margin.
func referencePoint(f [][]float64) []float64 {
	min, max := linalg.ColumnMinMax(f)
	r := make([]float64, len(max))
	for j := range max {
		span := max[j] - min[j]
		margin := span*0.1 + 1e-6
		r[j] = max[j] + margin
	}
	return r
}

// Operate implements Survivor.
func (o IBEA) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	if o.Kappa <= 0 {
		chk.Panic("survival: IBEA kappa must be positive, got %v", o.Kappa)
	}
	size := combined.Len()
	r := referencePoint(combined.Fitness)

	mat := make([][]float64, size)
	fitness := make([]float64, size)
	for i := 0; i < size; i++ {
		mat[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			if i == j {
				continue
			}
			mat[i][j] = -math.Exp(-hvIndicator(combined.Fitness[i], combined.Fitness[j], r) / o.Kappa)
			fitness[j] += mat[i][j]
		}
	}

	active := make([]bool, size)
	for i := range active {
		active[i] = true
	}
	toRemove := size - n
	for removed := 0; removed < toRemove; removed++ {
		k := -1
		for i := 0; i < size; i++ {
			if !active[i] {
				continue
			}
			if k == -1 || fitness[i] < fitness[k] {
				k = i
			}
		}
		active[k] = false
		for j := 0; j < size; j++ {
			if active[j] {
				fitness[j] -= mat[k][j]
			}
		}
		fitness[k] = math.Inf(1)
	}

	var survivors []int
	for i := 0; i < size; i++ {
		if active[i] {
			survivors = append(survivors, i)
		}
	}

	fronts := nsort.FastNonDominatedSort(combined, 0)
	nsort.AssignRanks(combined, fronts)
	combined.Score = fitness

	return combined.Selected(survivors), nil
}

var _ Survivor = IBEA{}
