// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"math"
	"sort"

	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/linalg"
	"github.com/cpmech/moo/rng"
)

// REVEA is the reference-vector-guided survivor of spec 4.5.7. It carries
// state (the current reference vector set Vt) across generations, so one
// REVEA value must be reused for the whole run rather than reconstructed
// per iteration.
type REVEA struct {
	V0       [][]float64 // initial unit-normalized reference vectors
	Vt       [][]float64 // current; lazily initialized from V0
	Alpha    float64
	FRefresh float64 // fraction of T between reference-vector refreshes
}

func normalizeVec(v []float64) []float64 {
	n := linalg.Norm(v)
	if n == 0 {
		return append([]float64{}, v...)
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64{}, row...)
	}
	return out
}

// Operate implements Survivor.
func (o *REVEA) Operate(combined *genetic.Population, n int, src rng.Source, ctx *Context) (*genetic.Population, error) {
	if o.Vt == nil {
		o.Vt = cloneMatrix(o.V0)
	}

	ideal, _ := linalg.ColumnMinMax(combined.Fitness)
	translated := linalg.Translate(combined.Fitness, ideal)

	t, T := float64(ctx.CurrentIteration), float64(ctx.NumIterations)
	if T == 0 {
		T = 1
	}
	m := combined.NumObjectives()

	gamma := make([]float64, len(o.Vt))
	for r, v := range o.Vt {
		gamma[r] = math.Inf(1)
		for s, other := range o.Vt {
			if s == r {
				continue
			}
			if a := linalg.CosineAngle(v, other); a < gamma[r] {
				gamma[r] = a
			}
		}
		if math.IsInf(gamma[r], 1) {
			gamma[r] = math.Pi
		}
	}

	type pick struct {
		idx int
		apd float64
	}
	bestByRef := make(map[int]pick)
	for i := 0; i < combined.Len(); i++ {
		r, theta := nearestAngleRef(translated[i], o.Vt)
		apd := (1 + float64(m)*math.Pow(t/T, o.Alpha)*theta/gamma[r]) * linalg.Norm(translated[i])
		if cur, ok := bestByRef[r]; !ok || apd < cur.apd {
			bestByRef[r] = pick{idx: i, apd: apd}
		}
	}

	survivors := make([]pick, 0, len(bestByRef))
	for r := 0; r < len(o.Vt); r++ {
		if p, ok := bestByRef[r]; ok {
			survivors = append(survivors, p)
		}
	}
	sort.Slice(survivors, func(a, b int) bool {
		if survivors[a].apd != survivors[b].apd {
			return survivors[a].apd < survivors[b].apd
		}
		return survivors[a].idx < survivors[b].idx
	})

	var indices []int
	switch {
	case len(survivors) == n:
		for _, p := range survivors {
			indices = append(indices, p.idx)
		}
	case len(survivors) > n:
		for _, p := range survivors[:n] {
			indices = append(indices, p.idx)
		}
	default:
		for i := 0; len(indices) < n; i++ {
			indices = append(indices, survivors[i%len(survivors)].idx)
		}
	}

	refreshPeriod := int(math.Ceil(o.FRefresh * T))
	if refreshPeriod > 0 && ctx.CurrentIteration > 0 && ctx.CurrentIteration%refreshPeriod == 0 {
		extent := make([]float64, m)
		for j := 0; j < m; j++ {
			maxV := translated[0][j]
			for _, row := range translated {
				if row[j] > maxV {
					maxV = row[j]
				}
			}
			extent[j] = maxV
		}
		next := make([][]float64, len(o.V0))
		for r, v := range o.V0 {
			scaled := make([]float64, m)
			for j := 0; j < m; j++ {
				scaled[j] = v[j] * extent[j]
			}
			next[r] = normalizeVec(scaled)
		}
		o.Vt = next
	}

	result := combined.Selected(indices)
	return result, nil
}

func nearestAngleRef(f []float64, refs [][]float64) (int, float64) {
	best, bestAngle := 0, math.Inf(1)
	for r, v := range refs {
		a := linalg.CosineAngle(f, v)
		if a < bestAngle {
			bestAngle = a
			best = r
		}
	}
	return best, bestAngle
}

var _ Survivor = (*REVEA)(nil)
