// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg holds the small numeric kernels the survival operators
// share: pairwise distances, per-column extrema, and norms over objective
// matrices.
package linalg

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// ColumnMinMax returns, for every column of m (an N x D matrix), the minimum
// and maximum value observed across rows.
func ColumnMinMax(m [][]float64) (min, max []float64) {
	if len(m) == 0 {
		return nil, nil
	}
	d := len(m[0])
	min = make([]float64, d)
	max = make([]float64, d)
	for j := 0; j < d; j++ {
		col := make([]float64, len(m))
		for i := range m {
			col[i] = m[i][j]
		}
		min[j], max[j] = la.VecMinMax(col)
	}
	return min, max
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b []float64) float64 {
	return LpDistance(a, b, 2)
}

// LpDistance returns the Lp distance between a and b for p > 0.
func LpDistance(a, b []float64, p float64) float64 {
	var sum float64
	for k := range a {
		d := math.Abs(a[k] - b[k])
		sum += math.Pow(d, p)
	}
	return math.Pow(sum, 1/p)
}

// CrossEuclideanDistances returns the full pairwise L2 distance matrix
// between rows of a (size Na x D) and rows of b (size Nb x D).
func CrossEuclideanDistances(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b))
		for j := range b {
			out[i][j] = EuclideanDistance(a[i], b[j])
		}
	}
	return out
}

// Norm returns the L2 norm of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// LpNorm returns the Lp norm of v for p > 0.
func LpNorm(v []float64, p float64) float64 {
	var sum float64
	for _, x := range v {
		sum += math.Pow(math.Abs(x), p)
	}
	return math.Pow(sum, 1/p)
}

// Dot returns the dot product of a and b.
func Dot(a, b []float64) float64 {
	var sum float64
	for k := range a {
		sum += a[k] * b[k]
	}
	return sum
}

// CosineAngle returns the angle in radians between vectors a and b.
func CosineAngle(a, b []float64) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	cos := Dot(a, b) / (na * nb)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Translate returns a new matrix with origin subtracted from every row.
func Translate(m [][]float64, origin []float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, x := range row {
			out[i][j] = x - origin[j]
		}
	}
	return out
}
