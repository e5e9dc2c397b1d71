// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moo

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/moo/rng"
)

// GenerateCutPoints randomly computes the end positions of cuts in a
// chromosome of the given size, for callers writing their own operators.Crossover
// implementations. Concrete crossover operators are not part of this
// library (callers supply their own, matching the encoding of their
// problem), but the cut-point arithmetic they need is common enough to
// share.
//
// ends is a sorted list of cut boundaries where the last entry equals size,
// e.g. size=8, ncuts=2 might yield ends=[3, 5, 8] meaning segments
// [0:3), [3:5), [5:8).
func GenerateCutPoints(size, ncuts int, src rng.Source) (ends []int) {
	if size < 2 {
		return nil
	}
	if size == 2 {
		return []int{1, size}
	}
	if ncuts < 1 {
		ncuts = 1
	}
	if ncuts >= size {
		ncuts = size - 1
	}
	pool := src.UniqueInts(1, size, ncuts)
	if len(pool) != ncuts {
		chk.Panic("GenerateCutPoints: rng.Source.UniqueInts returned %d values, want %d", len(pool), ncuts)
	}
	sort.Ints(pool)
	ends = make([]int, ncuts+1)
	copy(ends, pool)
	ends[ncuts] = size
	return ends
}

// ApplyCutPoints copies segments of A and B into a and b alternately at each
// boundary in ends, the classic two-parent segment-swap crossover pattern:
//
//	0 1 2 3 4 5 6 7
//	A = a b c d e f g h    size = 8
//	B = * . . . . * * *    ends = [3, 5, 8]
//	a = a b c . . f g h
//	b = * . . d e * * *
func ApplyCutPoints(a, b, A, B []float64, ends []int) {
	swap := false
	start := 0
	for _, end := range ends {
		if swap {
			for j := start; j < end; j++ {
				a[j], b[j] = B[j], A[j]
			}
		} else {
			for j := start; j < end; j++ {
				a[j], b[j] = A[j], B[j]
			}
		}
		start = end
		swap = !swap
	}
}
