// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// Parameters holds the library's configuration values (spec 6,
// "Configuration"). Driver reads NumVars, PopulationSize, NumOffsprings,
// NumIterations and Verbose from it; the other fields are not read by Driver
// and take effect only where the caller copies them into the Evaluator,
// Evolve, Source and Survivor it builds. Unlike the teacher's Parameters, which panics on bad
// configuration in CalcDerived, Validate returns an error: invalid
// configuration is a runtime condition a caller can recover from, matching
// the original source's validate_* functions rather than the panic-for-bugs
// convention used elsewhere in this package.
type Parameters struct {

	// sizes
	NumVars        int // D, number of decision variables
	PopulationSize int // N
	NumOffsprings  int
	NumIterations  int

	// crossover and mutation rates
	MutationRate  float64
	CrossoverRate float64

	// constraint/bounds handling
	KeepInfeasible bool
	LowerBound     *float64
	UpperBound     *float64

	// options
	Seed    int // 0 lets gosl/rnd pick a time-based seed
	Verbose bool

	// BalancedNiching, when set, tells a caller constructing an
	// survival.NSGA3 survivor to set its Balanced field: the overflowing
	// front's remaining slots are filled by one min-cost bipartite match
	// instead of the default niche-count-then-random-pick tie-break.
	BalancedNiching bool

	// evolution loop
	MaxMatingIter int
}

// Default sets the library's sane defaults.
func (p *Parameters) Default() {
	p.PopulationSize = 100
	p.NumOffsprings = 100
	p.NumIterations = 100
	p.MutationRate = 0.1
	p.CrossoverRate = 0.9
	p.KeepInfeasible = false
	p.Seed = 0
	p.Verbose = false
	p.MaxMatingIter = 200
}

// Read loads parameters from a JSON file. Default is applied first so any
// field missing from the file keeps its default value.
func (p *Parameters) Read(filenamepath string) error {
	p.Default()
	b, err := io.ReadFile(filenamepath)
	if err != nil {
		return fmt.Errorf("moo: cannot read parameters file %q: %w", filenamepath, err)
	}
	if err := json.Unmarshal(b, p); err != nil {
		return fmt.Errorf("moo: cannot unmarshal parameters file %q: %w", filenamepath, err)
	}
	return nil
}

// Validate checks every construction-time invariant and returns an error on
// the first violation. It never panics: bad configuration is a runtime
// condition the caller supplied, not a programming bug in this library.
func (p *Parameters) Validate() error {
	if p.NumVars <= 0 {
		return errors.New("moo: NumVars must be positive")
	}
	if p.PopulationSize <= 0 {
		return errors.New("moo: PopulationSize must be positive")
	}
	if p.NumOffsprings <= 0 {
		return errors.New("moo: NumOffsprings must be positive")
	}
	if p.NumIterations < 0 {
		return errors.New("moo: NumIterations must be non-negative")
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return errors.New("moo: MutationRate must be in [0, 1]")
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return errors.New("moo: CrossoverRate must be in [0, 1]")
	}
	if p.LowerBound != nil && p.UpperBound != nil && *p.LowerBound >= *p.UpperBound {
		return errors.New("moo: LowerBound must be strictly less than UpperBound")
	}
	if p.MaxMatingIter <= 0 {
		return errors.New("moo: MaxMatingIter must be positive")
	}
	return nil
}
