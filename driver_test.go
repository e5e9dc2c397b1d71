// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moo

import (
	"errors"
	"testing"

	"github.com/cpmech/moo/evaluator"
	"github.com/cpmech/moo/operators"
	"github.com/cpmech/moo/rng"
	"github.com/cpmech/moo/survival"
)

type gridSampler struct{}

func (gridSampler) Sample(n, d int, src rng.Source) [][]float64 {
	genes := make([][]float64, n)
	for i := range genes {
		row := make([]float64, d)
		for j := range row {
			row[j] = src.Float64(0, 1)
		}
		genes[i] = row
	}
	return genes
}

type avgCrossover struct{}

func (avgCrossover) Cross(a, b []float64, src rng.Source) (childA, childB []float64) {
	childA = make([]float64, len(a))
	childB = make([]float64, len(a))
	for i := range a {
		childA[i] = 0.5 * (a[i] + b[i])
		childB[i] = 0.5 * (a[i] + b[i])
	}
	return
}

type smallJitter struct{}

func (smallJitter) Mutate(individual []float64, src rng.Source) {
	for i := range individual {
		individual[i] += src.Float64(-0.02, 0.02)
	}
}

func circleFitness(genes [][]float64) [][]float64 {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		out[i] = []float64{x[0], x[1]}
	}
	return out
}

func newCircleDriver(seed int) *Driver {
	lo, hi := 0.0, 1.0
	params := new(Parameters)
	params.Default()
	params.NumVars = 2
	params.PopulationSize = 20
	params.NumOffsprings = 20
	params.NumIterations = 5
	params.Seed = seed
	params.LowerBound = &lo
	params.UpperBound = &hi

	src := rng.NewGoslSource(seed)
	return &Driver{
		Params:  params,
		Sampler: gridSampler{},
		Evaluator: &evaluator.Evaluator{
			Fn:         circleFitness,
			LowerBound: &lo,
			UpperBound: &hi,
		},
		Evolve: &operators.Evolve{
			Selection:     &operators.TournamentSelection{UseRank: true, UseScore: true, ScoreDirection: operators.Maximize},
			Crossover:     avgCrossover{},
			Mutation:      smallJitter{},
			CrossoverRate: 0.9,
			MutationRate:  0.3,
			LowerBound:    &lo,
			UpperBound:    &hi,
			MaxIter:       200,
		},
		Survivor: survival.NSGA2{},
		Source:   src,
	}
}

func TestDriverPopulationBeforeRunReturnsErrNotInitialized(t *testing.T) {
	d := newCircleDriver(1)
	if _, err := d.Population(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestDriverRunKeepsPopulationSizeConstant(t *testing.T) {
	d := newCircleDriver(2)
	if err := d.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pop, err := d.Population()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pop.Len() != d.Params.PopulationSize {
		t.Fatalf("expected population size %d, got %d", d.Params.PopulationSize, pop.Len())
	}
}

func TestDriverBoundsAreRespectedThroughoutEvolution(t *testing.T) {
	d := newCircleDriver(3)
	if err := d.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pop, _ := d.Population()
	for _, row := range pop.Genes {
		for _, x := range row {
			if x < 0 || x > 1 {
				t.Fatalf("gene %v out of bounds [0,1]", row)
			}
		}
	}
}

func TestDriverDeterministicUnderSameSeed(t *testing.T) {
	// gosl/rnd keeps its state at package level (rng.GoslSource's doc
	// comment), so each driver must be constructed AND run before the next
	// one re-seeds: interleaving construction would make the second run
	// continue from wherever the first run left the shared generator.
	d1 := newCircleDriver(42)
	if err := d1.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p1, _ := d1.Population()

	d2 := newCircleDriver(42)
	if err := d2.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, _ := d2.Population()
	if p1.Len() != p2.Len() {
		t.Fatalf("population sizes differ: %d vs %d", p1.Len(), p2.Len())
	}
	for i := range p1.Genes {
		for j := range p1.Genes[i] {
			if p1.Genes[i][j] != p2.Genes[i][j] {
				t.Fatalf("genes diverged at [%d][%d]: %v vs %v", i, j, p1.Genes[i][j], p2.Genes[i][j])
			}
		}
	}
}

func TestDriverNoFeasibleIndividualsIsFatal(t *testing.T) {
	lo, hi := 0.0, 1.0
	params := new(Parameters)
	params.Default()
	params.NumVars = 2
	params.PopulationSize = 10
	params.NumOffsprings = 10
	params.NumIterations = 1
	params.LowerBound = &lo
	params.UpperBound = &hi

	src := rng.NewGoslSource(5)
	d := &Driver{
		Params:  params,
		Sampler: gridSampler{},
		Evaluator: &evaluator.Evaluator{
			Fn: circleFitness,
			Cn: func(genes [][]float64) [][]float64 {
				out := make([][]float64, len(genes))
				for i := range genes {
					out[i] = []float64{1} // always infeasible
				}
				return out
			},
		},
		Evolve: &operators.Evolve{
			Selection: &operators.TournamentSelection{UseRank: true},
			Crossover: avgCrossover{},
			Mutation:  smallJitter{},
			MaxIter:   200,
		},
		Survivor: survival.NSGA2{},
		Source:   src,
	}
	err := d.Run()
	if !errors.Is(err, evaluator.ErrNoFeasibleIndividuals) {
		t.Fatalf("expected ErrNoFeasibleIndividuals, got %v", err)
	}
}
