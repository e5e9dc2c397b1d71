// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"testing"

	"github.com/cpmech/moo/refpoints"
	"github.com/cpmech/moo/rng"
)

func TestREVEAOperateReturnsN(t *testing.T) {
	src := rng.NewGoslSource(8)
	pop := dtlz2Like(20)
	refs := refpoints.Generate(3, 10)
	surv := &REVEA{V0: refs, Alpha: 2, FRefresh: 0.1}
	result, err := surv.Operate(pop, len(refs), src, &Context{CurrentIteration: 0, NumIterations: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Len() != len(refs) {
		t.Fatalf("expected %d survivors, got %d", len(refs), result.Len())
	}
}

func TestREVEARefreshesVectorsOnSchedule(t *testing.T) {
	src := rng.NewGoslSource(9)
	pop := dtlz2Like(20)
	refs := refpoints.Generate(3, 10)
	surv := &REVEA{V0: refs, Alpha: 2, FRefresh: 0.5}
	ctx := &Context{CurrentIteration: 5, NumIterations: 10}
	_, err := surv.Operate(pop, len(refs), src, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if surv.Vt == nil {
		t.Fatal("expected Vt to be initialized")
	}
	// iteration 5 with period ceil(0.5*10) = 5 triggers a refresh, which
	// rescales V0 by the population's extent, so Vt no longer equals V0
	changed := false
	for r := range refs {
		for j := range refs[r] {
			if surv.Vt[r][j] != refs[r][j] {
				changed = true
			}
		}
	}
	if !changed {
		t.Fatal("expected Vt to be refreshed away from V0 at iteration 5")
	}
}
