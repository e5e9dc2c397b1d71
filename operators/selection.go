// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

import (
	"github.com/cpmech/moo/genetic"
	"github.com/cpmech/moo/rng"
)

// Direction declares whether a survival score is better when larger
// (Maximize) or smaller (Minimize). Each survival operator declares its own
// direction; the tournament selector consults it when UseScore is set.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Selection picks 2*numPairs parents from pop and splits them into two equal
// halves, one parent per crossover call.
type Selection interface {
	Operate(pop *genetic.Population, numPairs int, src rng.Source) (parentsA, parentsB *genetic.Population)
}

// TournamentSelection is the feasibility-aware binary tournament of spec
// C6: feasibility always decides first; rank and survival score are
// optional tie-breaking stages, in that order.
type TournamentSelection struct {
	UseRank        bool
	UseScore       bool
	ScoreDirection Direction
}

// selectParticipants draws total candidate indices from [0, n). When
// total > n, it concatenates successive shuffled permutations of [0, n) and
// truncates, so every individual competes roughly the same number of times
// (mirrors the original source's handling of "total_needed >
// population_size"). Indices inside one permutation are distinct; a pair
// that straddles two permutations may name the same index twice.
func selectParticipants(n, total int, src rng.Source) []int {
	out := make([]int, 0, total)
	for len(out) < total {
		out = append(out, src.Perm(n)...)
	}
	return out[:total]
}

func (s *TournamentSelection) duel(pop *genetic.Population, i, j int) int {
	feasI, feasJ := pop.IsFeasible(i), pop.IsFeasible(j)
	if feasI != feasJ {
		if feasI {
			return i
		}
		return j
	}
	if !feasI && !feasJ {
		if cvi, cvj := pop.ConstraintViolation(i), pop.ConstraintViolation(j); cvi != cvj {
			if cvi < cvj {
				return i
			}
			return j
		}
	}
	if s.UseRank && pop.Rank != nil && pop.Rank[i] != pop.Rank[j] {
		if pop.Rank[i] < pop.Rank[j] {
			return i
		}
		return j
	}
	if s.UseScore && pop.Score != nil && pop.Score[i] != pop.Score[j] {
		if (s.ScoreDirection == Maximize) == (pop.Score[i] > pop.Score[j]) {
			return i
		}
		return j
	}
	return j
}

// Operate implements Selection.
func (s *TournamentSelection) Operate(pop *genetic.Population, numPairs int, src rng.Source) (parentsA, parentsB *genetic.Population) {
	n := pop.Len()
	total := 2 * 2 * numPairs // two participants per duel, two duels per pair
	participants := selectParticipants(n, total, src)

	winnersA := make([]int, numPairs)
	winnersB := make([]int, numPairs)
	pos := 0
	for k := 0; k < numPairs; k++ {
		winnersA[k] = s.duel(pop, participants[pos], participants[pos+1])
		pos += 2
		winnersB[k] = s.duel(pop, participants[pos], participants[pos+1])
		pos += 2
	}
	return pop.Selected(winnersA), pop.Selected(winnersB)
}

// RandomSelection skips rank/score comparison entirely: feasibility still
// decides first, but a feasibility tie is broken by a fair coin flip. It is
// used by NSGA-III and REVEA, which handle niching internally rather than
// relying on a pre-ranked score.
type RandomSelection struct{}

func (RandomSelection) duel(pop *genetic.Population, i, j int, src rng.Source) int {
	feasI, feasJ := pop.IsFeasible(i), pop.IsFeasible(j)
	if feasI != feasJ {
		if feasI {
			return i
		}
		return j
	}
	if src.Bool(0.5) {
		return i
	}
	return j
}

// Operate implements Selection.
func (r RandomSelection) Operate(pop *genetic.Population, numPairs int, src rng.Source) (parentsA, parentsB *genetic.Population) {
	n := pop.Len()
	total := 4 * numPairs
	participants := selectParticipants(n, total, src)

	winnersA := make([]int, numPairs)
	winnersB := make([]int, numPairs)
	pos := 0
	for k := 0; k < numPairs; k++ {
		winnersA[k] = r.duel(pop, participants[pos], participants[pos+1], src)
		pos += 2
		winnersB[k] = r.duel(pop, participants[pos], participants[pos+1], src)
		pos += 2
	}
	return pop.Selected(winnersA), pop.Selected(winnersB)
}

var _ Selection = (*TournamentSelection)(nil)
var _ Selection = RandomSelection{}
