// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refpoints generates reference-point/reference-direction lattices
// on the unit simplex, used by NSGA-III's niching and as REVEA's initial
// reference-vector set.
package refpoints

import "github.com/cpmech/gosl/chk"

// DasDennis enumerates every non-negative integer M-tuple (h_1, ..., h_M)
// with sum h_j = h, scaled by 1/h -- the classic Das-Dennis / normal
// boundary intersection simplex lattice. The number of points produced is
// C(h+M-1, M-1).
func DasDennis(numObjectives, h int) [][]float64 {
	if numObjectives < 2 {
		chk.Panic("refpoints: numObjectives must be >= 2, got %d", numObjectives)
	}
	if h < 0 {
		chk.Panic("refpoints: h must be >= 0, got %d", h)
	}
	var points [][]float64
	tuple := make([]int, numObjectives)
	var generate func(remaining, pos int)
	generate = func(remaining, pos int) {
		if pos == numObjectives-1 {
			tuple[pos] = remaining
			point := make([]float64, numObjectives)
			for i, t := range tuple {
				point[i] = float64(t) / float64(h)
			}
			points = append(points, point)
			return
		}
		for v := 0; v <= remaining; v++ {
			tuple[pos] = v
			generate(remaining-v, pos+1)
		}
	}
	if h == 0 {
		// every coordinate is 0/0; by convention treat as a single centroid
		// point so callers never see an empty lattice for h=0.
		point := make([]float64, numObjectives)
		for i := range point {
			point[i] = 1.0 / float64(numObjectives)
		}
		return [][]float64{point}
	}
	generate(h, 0)
	return points
}

// BinomialCoefficient returns C(n, k).
func BinomialCoefficient(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// ChooseDivisions returns the smallest h such that DasDennis(numObjectives,
// h) produces at least target points.
func ChooseDivisions(numObjectives, target int) int {
	for h := 1; ; h++ {
		if BinomialCoefficient(h+numObjectives-1, numObjectives-1) >= target {
			return h
		}
	}
}

// Generate returns a Das-Dennis lattice with at least target points, picking
// the smallest sufficient division count via ChooseDivisions.
func Generate(numObjectives, target int) [][]float64 {
	h := ChooseDivisions(numObjectives, target)
	return DasDennis(numObjectives, h)
}

// TwoLayer concatenates an outer lattice at outerH divisions with an inner
// lattice at innerH divisions, the inner one shrunk towards the centroid by
// innerShrink (typically 0.5), as recommended for M >= 6 objectives where a
// single-layer lattice concentrates too many points on the simplex boundary.
func TwoLayer(numObjectives, outerH, innerH int, innerShrink float64) [][]float64 {
	outer := DasDennis(numObjectives, outerH)
	inner := DasDennis(numObjectives, innerH)
	centroid := 1.0 / float64(numObjectives)
	shrunk := make([][]float64, len(inner))
	for i, p := range inner {
		row := make([]float64, numObjectives)
		for j, v := range p {
			row[j] = innerShrink*v + (1-innerShrink)*centroid
		}
		shrunk[i] = row
	}
	return append(outer, shrunk...)
}
