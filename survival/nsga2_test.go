// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"math"
	"testing"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/rng"
)

func TestCrowdingDistanceBoundaryIsInfinite(t *testing.T) {
	pop := genetic.New(
		[][]float64{{0}, {0}, {0}, {0}},
		[][]float64{{0, 1}, {1, 0}, {0.3, 0.7}, {0.6, 0.4}},
		nil,
	)
	front := []int{0, 1, 2, 3}
	dist := CrowdingDistance(pop, front)
	min, max := 0, 0
	for i := 1; i < len(dist); i++ {
		if pop.Fitness[front[i]][0] < pop.Fitness[front[min]][0] {
			min = i
		}
		if pop.Fitness[front[i]][0] > pop.Fitness[front[max]][0] {
			max = i
		}
	}
	if !math.IsInf(dist[min], 1) || !math.IsInf(dist[max], 1) {
		t.Fatalf("boundary points should have infinite crowding distance, got %v", dist)
	}
}

func TestNSGA2OperateReturnsN(t *testing.T) {
	src := rng.NewGoslSource(1)
	genes := make([][]float64, 8)
	fitness := make([][]float64, 8)
	for i := 0; i < 8; i++ {
		x := float64(i) / 7
		genes[i] = []float64{x}
		fitness[i] = []float64{x, 1 - x}
	}
	pop := genetic.New(genes, fitness, nil)
	surv := NSGA2{}
	result, err := surv.Operate(pop, 4, src, &Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Len() != 4 {
		t.Fatalf("expected 4 survivors, got %d", result.Len())
	}
	if result.Rank == nil {
		t.Fatal("expected rank to be populated")
	}
}
