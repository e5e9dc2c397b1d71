// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides the random-number abstraction consumed by every
// stochastic operator in the moo engine.
package rng

import "github.com/cpmech/gosl/rnd"

// Source is the RNG contract every operator goes through. No operator may
// call gosl/rnd (or any other global RNG) directly; every stochastic
// decision routes through a Source so that runs are deterministic under a
// seed and mockable in tests.
type Source interface {
	// Float64 draws a uniform float in [lo, hi).
	Float64(lo, hi float64) float64

	// Int draws a uniform integer in [lo, hi].
	Int(lo, hi int) int

	// Bool returns true with probability p.
	Bool(p float64) bool

	// Perm returns a random permutation of [0, n).
	Perm(n int) []int

	// Shuffle shuffles a slice of length n in place using swap(i, j).
	Shuffle(n int, swap func(i, j int))

	// UniqueInts draws k distinct integers from [lo, hi).
	UniqueInts(lo, hi, k int) []int

	// Choice returns a uniformly random index in [0, n).
	Choice(n int) int
}

// GoslSource is the production Source, backed by gosl/rnd. gosl/rnd keeps its
// state at package level, so constructing more than one GoslSource in the
// same process re-seeds the shared generator. A Driver uses the single
// Source it is given and never constructs one itself.
type GoslSource struct{}

// NewGoslSource seeds the global gosl/rnd generator and returns a Source
// bound to it. seed == 0 lets gosl/rnd pick a time-based seed.
func NewGoslSource(seed int) *GoslSource {
	rnd.Init(seed)
	return &GoslSource{}
}

func (*GoslSource) Float64(lo, hi float64) float64 {
	return rnd.Float64(lo, hi)
}

func (*GoslSource) Int(lo, hi int) int {
	return rnd.Int(lo, hi)
}

func (*GoslSource) Bool(p float64) bool {
	return rnd.FlipCoin(p)
}

func (*GoslSource) Perm(n int) []int {
	return rnd.IntGetShuffled(IntRange(n))
}

func (*GoslSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rnd.Int(0, i)
		swap(i, j)
	}
}

func (*GoslSource) UniqueInts(lo, hi, k int) []int {
	return rnd.IntGetUniqueN(lo, hi, k)
}

func (*GoslSource) Choice(n int) int {
	return rnd.Int(0, n-1)
}

var _ Source = (*GoslSource)(nil)

// IntRange returns [0, 1, ..., n-1].
func IntRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}
