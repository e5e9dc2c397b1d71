// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"testing"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/nsort"
	"github.com/cpmech/moo/rng"
)

func TestSPEA2RawFitnessZeroIffNonDominated(t *testing.T) {
	genes := [][]float64{{0}, {0}, {0}, {0}}
	fitness := [][]float64{{0, 1}, {1, 0}, {2, 2}, {0.5, 0.5}}
	pop := genetic.New(genes, fitness, nil)

	size := pop.Len()
	dom := make([][]bool, size)
	for i := 0; i < size; i++ {
		dom[i] = make([]bool, size)
		for j := 0; j < size; j++ {
			if i != j {
				dom[i][j] = nsort.Dominates(pop, i, j)
			}
		}
	}
	strength := make([]int, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if dom[i][j] {
				strength[i]++
			}
		}
	}
	rawFitness := make([]float64, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if dom[j][i] {
				rawFitness[i] += float64(strength[j])
			}
		}
	}

	nonDominated := func(i int) bool {
		for j := 0; j < size; j++ {
			if j != i && nsort.Dominates(pop, j, i) {
				return false
			}
		}
		return true
	}

	for i := 0; i < size; i++ {
		if nonDominated(i) && rawFitness[i] != 0 {
			t.Fatalf("individual %d is non-dominated but has raw fitness %v", i, rawFitness[i])
		}
		if !nonDominated(i) && rawFitness[i] == 0 {
			t.Fatalf("individual %d is dominated but has raw fitness 0", i)
		}
	}
}

func TestSPEA2OperateReturnsN(t *testing.T) {
	src := rng.NewGoslSource(4)
	genes := make([][]float64, 10)
	fitness := make([][]float64, 10)
	for i := 0; i < 10; i++ {
		x := float64(i) / 9
		genes[i] = []float64{x}
		fitness[i] = []float64{x, 1 - x}
	}
	pop := genetic.New(genes, fitness, nil)
	surv := SPEA2{}
	result, err := surv.Operate(pop, 5, src, &Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Len() != 5 {
		t.Fatalf("expected 5 survivors, got %d", result.Len())
	}
}
