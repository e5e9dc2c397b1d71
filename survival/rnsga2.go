// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/linalg"
	"github.com/cpmech/moo/rng"
)

// RNSGA2 is the reference-point survivor of spec 4.5.3. ReferencePoints are
// user-supplied targets in objective space; Epsilon controls the clustering
// radius (in normalized objective space) beyond which two individuals
// compete for the same niche. Per the open-question resolution in spec 9,
// epsilon-equivalent individuals are handled by perturbing (penalizing) the
// score of every cluster member but the closest one, so the fill-and-split
// shell naturally favors one per cluster.
type RNSGA2 struct {
	ReferencePoints [][]float64
	Epsilon         float64
}

// nearestReferenceDistance returns, for row f (already normalized), the
// Euclidean distance to the closest reference point.
func nearestReferenceDistance(f []float64, refs [][]float64) float64 {
	best := -1.0
	for _, r := range refs {
		d := linalg.EuclideanDistance(f, r)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// Operate implements Survivor.
func (o RNSGA2) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	min, max := linalg.ColumnMinMax(combined.Fitness)
	span := make([]float64, len(min))
	for j := range span {
		span[j] = max[j] - min[j]
		if span[j] == 0 {
			span[j] = 1
		}
	}
	normalize := func(f []float64) []float64 {
		out := make([]float64, len(f))
		for j, v := range f {
			out[j] = (v - min[j]) / span[j]
		}
		return out
	}
	normRefs := make([][]float64, len(o.ReferencePoints))
	for i, r := range o.ReferencePoints {
		normRefs[i] = normalize(r)
	}

	score := func(pop *genetic.Population, front []int) []float64 {
		l := len(front)
		normalized := make([][]float64, l)
		dist := make([]float64, l)
		for i, idx := range front {
			normalized[i] = normalize(pop.Fitness[idx])
			dist[i] = nearestReferenceDistance(normalized[i], normRefs)
		}
		penalized := append([]float64{}, dist...)
		const bigPenalty = 1e6
		visited := make([]bool, l)
		for i := 0; i < l; i++ {
			if visited[i] {
				continue
			}
			cluster := []int{i}
			visited[i] = true
			for j := i + 1; j < l; j++ {
				if visited[j] {
					continue
				}
				if linalg.EuclideanDistance(normalized[i], normalized[j]) <= o.Epsilon {
					cluster = append(cluster, j)
					visited[j] = true
				}
			}
			if len(cluster) <= 1 {
				continue
			}
			best := cluster[0]
			for _, c := range cluster[1:] {
				if dist[c] < dist[best] {
					best = c
				}
			}
			for _, c := range cluster {
				if c != best {
					penalized[c] += bigPenalty
				}
			}
		}
		return penalized
	}

	return FrontsAndScoreSurvival(combined, n, Minimize, score), nil
}

var _ Survivor = RNSGA2{}
