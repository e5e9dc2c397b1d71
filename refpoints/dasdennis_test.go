// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refpoints

import (
	"math"
	"testing"
)

func TestDasDennisCardinality(t *testing.T) {
	cases := []struct{ m, h int }{
		{2, 4}, {3, 4}, {3, 6}, {4, 3},
	}
	for _, c := range cases {
		pts := DasDennis(c.m, c.h)
		want := BinomialCoefficient(c.h+c.m-1, c.m-1)
		if len(pts) != want {
			t.Fatalf("M=%d H=%d: expected %d points, got %d", c.m, c.h, want, len(pts))
		}
		for _, p := range pts {
			sum := 0.0
			for _, v := range p {
				sum += v
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("point %v does not sum to 1 (got %v)", p, sum)
			}
		}
	}
}

func TestChooseDivisionsMonotone(t *testing.T) {
	h := ChooseDivisions(3, 91)
	pts := DasDennis(3, h)
	if len(pts) < 91 {
		t.Fatalf("expected at least 91 points, got %d", len(pts))
	}
	if h > 1 {
		smaller := DasDennis(3, h-1)
		if len(smaller) >= 91 {
			t.Fatalf("h=%d should not have been enough", h-1)
		}
	}
}

func TestTwoLayerCombinesBothLattices(t *testing.T) {
	pts := TwoLayer(6, 3, 2, 0.5)
	wantOuter := BinomialCoefficient(3+6-1, 6-1)
	wantInner := BinomialCoefficient(2+6-1, 6-1)
	if len(pts) != wantOuter+wantInner {
		t.Fatalf("expected %d points, got %d", wantOuter+wantInner, len(pts))
	}
}
