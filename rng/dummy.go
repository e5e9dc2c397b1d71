// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import "github.com/cpmech/gosl/chk"

// Dummy is a Source that panics on every method. Tests that embed Dummy and
// override only the methods they need get a loud failure the moment a code
// path under test consults randomness the test didn't anticipate, instead of
// silently returning zero values that could mask non-determinism.
type Dummy struct{}

func (Dummy) Float64(lo, hi float64) float64 {
	chk.Panic("rng.Dummy.Float64 not stubbed")
	return 0
}

func (Dummy) Int(lo, hi int) int {
	chk.Panic("rng.Dummy.Int not stubbed")
	return 0
}

func (Dummy) Bool(p float64) bool {
	chk.Panic("rng.Dummy.Bool not stubbed")
	return false
}

func (Dummy) Perm(n int) []int {
	chk.Panic("rng.Dummy.Perm not stubbed")
	return nil
}

func (Dummy) Shuffle(n int, swap func(i, j int)) {
	chk.Panic("rng.Dummy.Shuffle not stubbed")
}

func (Dummy) UniqueInts(lo, hi, k int) []int {
	chk.Panic("rng.Dummy.UniqueInts not stubbed")
	return nil
}

func (Dummy) Choice(n int) int {
	chk.Panic("rng.Dummy.Choice not stubbed")
	return 0
}

var _ Source = Dummy{}
