// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moo

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/moo/genetic"
)

// WritePopulationReport generates a table with one row per individual:
// rank, survival score, constraint violation, and the fitness vector. Column
// widths are computed from the widest formatted value in each column, the
// same two-pass approach as the teacher's table printer.
func WritePopulationReport(pop *genetic.Population) *bytes.Buffer {
	buf := new(bytes.Buffer)
	n := pop.Len()
	if n < 1 {
		return buf
	}

	nRank, nScore, nCV := len("Rank"), len("Score"), len("CV")
	for i := 0; i < n; i++ {
		nRank = imax(nRank, len(io.Sf("%d", rankOf(pop, i))))
	}
	rowFitness := make([]string, n)
	nFit := len("Fitness")
	for i := 0; i < n; i++ {
		rowFitness[i] = io.Sf("%v", pop.Fitness[i])
		nFit = imax(nFit, len(rowFitness[i]))
		nScore = imax(nScore, len(io.Sf("%g", scoreOf(pop, i))))
		nCV = imax(nCV, len(io.Sf("%g", pop.ConstraintViolation(i))))
	}

	fmtRank := io.Sf("%%%ds", nRank+1)
	fmtScore := io.Sf("%%%d.6g", nScore+1)
	fmtCV := io.Sf("%%%d.6g", nCV+1)
	fmtFit := io.Sf(" %%%ds\n", nFit)

	total := nRank + 1 + nScore + 1 + nCV + 1 + nFit + 1
	io.Ff(buf, printThickLine(total))
	io.Ff(buf, fmtRank, "Rank")
	io.Ff(buf, fmtScore, "Score")
	io.Ff(buf, fmtCV, "CV")
	io.Ff(buf, fmtFit, "Fitness")
	io.Ff(buf, printThinLine(total))
	for i := 0; i < n; i++ {
		io.Ff(buf, fmtRank, io.Sf("%d", rankOf(pop, i)))
		io.Ff(buf, fmtScore, scoreOf(pop, i))
		io.Ff(buf, fmtCV, pop.ConstraintViolation(i))
		io.Ff(buf, fmtFit, rowFitness[i])
	}
	io.Ff(buf, printThickLine(total))
	return buf
}

func rankOf(pop *genetic.Population, i int) int {
	if pop.Rank == nil {
		return -1
	}
	return pop.Rank[i]
}

func scoreOf(pop *genetic.Population, i int) float64 {
	if pop.Score == nil {
		return 0
	}
	return pop.Score[i]
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func printThickLine(n int) string {
	return io.Sf("%s\n", repeat('=', n))
}

func printThinLine(n int) string {
	return io.Sf("%s\n", repeat('-', n))
}

func repeat(ch byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}
