// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

import (
	"fmt"
	"testing"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/rng"
)

// exactCleaner is a hash-based exact-duplicate remover used only to exercise
// the evolution loop's dedupe contract; concrete duplicate cleaners are not
// part of the library's public surface.
type exactCleaner struct{}

func key(row []float64) string {
	return fmt.Sprint(row)
}

func (exactCleaner) Clean(candidates, reference [][]float64) [][]float64 {
	seen := make(map[string]bool)
	for _, r := range reference {
		seen[key(r)] = true
	}
	var out [][]float64
	for _, c := range candidates {
		k := key(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

// averageCrossover returns the midpoint of the two parents as the first child
// and a copy of the first parent as the second; simple and deterministic,
// good enough to exercise the loop's plumbing.
type averageCrossover struct{}

func (averageCrossover) Cross(a, b []float64, src rng.Source) (childA, childB []float64) {
	childA = make([]float64, len(a))
	childB = make([]float64, len(a))
	for i := range a {
		childA[i] = (a[i] + b[i]) / 2
		childB[i] = a[i]
	}
	return
}

type noopMutation struct{}

func (noopMutation) Mutate(individual []float64, src rng.Source) {}

type jitterMutation struct{ amount float64 }

func (j jitterMutation) Mutate(individual []float64, src rng.Source) {
	for i := range individual {
		individual[i] += src.Float64(-j.amount, j.amount)
	}
}

func testPopulation() *genetic.Population {
	genes := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	fitness := [][]float64{{0}, {1}, {2}, {3}}
	return genetic.New(genes, fitness, nil)
}

func TestEvolveProducesOffspring(t *testing.T) {
	src := rng.NewGoslSource(1)
	e := &Evolve{
		Selection:         &TournamentSelection{},
		Crossover:         averageCrossover{},
		Mutation:          jitterMutation{amount: 0.01},
		DuplicatesCleaner: exactCleaner{},
		CrossoverRate:     1.0,
		MutationRate:      1.0,
		MaxIter:           50,
	}
	offspring, err := e.Offspring(testPopulation(), 4, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offspring) == 0 {
		t.Fatal("expected some offspring")
	}
	if len(offspring) > 4 {
		t.Fatalf("expected at most 4 offspring, got %d", len(offspring))
	}
}

func TestEvolveClampsToBounds(t *testing.T) {
	src := rng.NewGoslSource(2)
	lb, ub := 0.0, 1.0
	e := &Evolve{
		Selection:     &TournamentSelection{},
		Crossover:     averageCrossover{},
		Mutation:      jitterMutation{amount: 5},
		CrossoverRate: 1.0,
		MutationRate:  1.0,
		LowerBound:    &lb,
		UpperBound:    &ub,
		MaxIter:       20,
	}
	offspring, err := e.Offspring(testPopulation(), 4, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range offspring {
		for _, x := range row {
			if x < lb || x > ub {
				t.Fatalf("gene %v out of bounds [%v, %v]", x, lb, ub)
			}
		}
	}
}

func TestEvolveEmptyMatingWhenDedupeKillsEverything(t *testing.T) {
	src := rng.NewGoslSource(3)
	e := &Evolve{
		Selection:         &TournamentSelection{},
		Crossover:         averageCrossover{},
		Mutation:          noopMutation{},
		DuplicatesCleaner: exactCleaner{},
		CrossoverRate:     1.0,
		MutationRate:      0.0,
		MaxIter:           5,
	}
	// degenerate population where crossover of any pair reproduces a genome
	// already present, and no mutation perturbs anything -- every candidate
	// collides with the reference population and gets cleaned away.
	genes := [][]float64{{1, 1}, {1, 1}}
	fitness := [][]float64{{0}, {0}}
	pop := genetic.New(genes, fitness, nil)
	_, err := e.Offspring(pop, 2, src)
	if err != ErrEmptyMating {
		t.Fatalf("expected ErrEmptyMating, got %v", err)
	}
}
