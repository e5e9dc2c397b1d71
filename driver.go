// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package moo is a multi-objective (and single-objective) evolutionary
// optimization library: given a fitness function and optional constraints,
// Driver evolves a population toward a well-spread approximation of the
// Pareto front.
package moo

import (
	"bytes"
	"errors"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/moo/evaluator"
	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/nsort"
	"github.com/cpmech/moo/operators"
	"github.com/cpmech/moo/rng"
	"github.com/cpmech/moo/survival"
)

// ErrNotInitialized is returned by Population when it is called before Run.
var ErrNotInitialized = errors.New("moo: Population called before Run")

// Driver owns the evolutionary loop (spec 4.7): initialize, iterate,
// early-stop on empty mating, and expose the final population.
type Driver struct {
	Params *Parameters

	Sampler   operators.Sampler
	Evaluator *evaluator.Evaluator
	Evolve    *operators.Evolve
	Survivor  survival.Survivor
	Source    rng.Source

	population  *genetic.Population
	initialized bool

	// Report accumulates the verbose per-iteration minima printer output,
	// in the style of the teacher's Island.Report.
	Report bytes.Buffer
}

// Population returns the current population. It returns ErrNotInitialized
// if called before Run.
func (d *Driver) Population() (*genetic.Population, error) {
	if !d.initialized {
		return nil, ErrNotInitialized
	}
	return d.population, nil
}

// Run executes the full evolutionary loop described in spec 4.7:
//
//	initialize: sample, evaluate, sort into fronts
//	loop: evolve -> concatenate -> evaluate -> survive
//
// A NoFeasibleIndividuals error from evaluation is fatal and is returned
// immediately, both during initialization and mid-run. An EmptyMating error
// from the evolution loop is not fatal: it is logged and the loop breaks
// early, returning the last valid population with a nil error.
func (d *Driver) Run() error {
	genes := d.Sampler.Sample(d.Params.PopulationSize, d.Params.NumVars, d.Source)
	pop, err := d.Evaluator.Evaluate(genes)
	if err != nil {
		return err
	}
	nsort.AssignRanks(pop, nsort.FastNonDominatedSort(pop, 0))
	d.population = pop
	d.initialized = true

	ctx := &survival.Context{
		NumIterations:  d.Params.NumIterations,
		PopulationSize: d.Params.PopulationSize,
		NumOffsprings:  d.Params.NumOffsprings,
	}

	for t := 0; t < d.Params.NumIterations; t++ {
		offspring, err := d.Evolve.Offspring(d.population, d.Params.NumOffsprings, d.Source)
		if err != nil {
			if errors.Is(err, operators.ErrEmptyMating) {
				if d.Params.Verbose {
					io.Ff(&d.Report, "time=%d: empty mating, stopping early\n", t)
				}
				break
			}
			return err
		}

		combinedGenes := append(append([][]float64{}, d.population.Genes...), offspring...)
		combined, err := d.Evaluator.Evaluate(combinedGenes)
		if err != nil {
			return err
		}

		ctx.CurrentIteration = t
		survivors, err := d.Survivor.Operate(combined, d.Params.PopulationSize, d.Source, ctx)
		if err != nil {
			return err
		}
		d.population = survivors

		if d.Params.Verbose {
			d.writeIterationReport(t)
		}
	}
	return nil
}

// writeIterationReport prints the minimum of each objective column across
// the current population, in the teacher's WritePopToReport style.
func (d *Driver) writeIterationReport(t int) {
	m := d.population.NumObjectives()
	if m == 0 || d.population.Len() == 0 {
		return
	}
	min := append([]float64{}, d.population.Fitness[0]...)
	for _, row := range d.population.Fitness[1:] {
		for j, v := range row {
			if v < min[j] {
				min[j] = v
			}
		}
	}
	io.Ff(&d.Report, "time=%d min=%v\n", t, min)
}
