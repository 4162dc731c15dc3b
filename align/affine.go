// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"errors"
	"math"
)

var (
	// ErrCostArrayLength is returned when the substitution cost array does
	// not have exactly one entry per query symbol.
	ErrCostArrayLength = errors.New("align: substitution cost array length does not match query length")
	// ErrNegativeCost is returned when a gap cost or a substitution cost
	// entry is negative.
	ErrNegativeCost = errors.New("align: gap and substitution costs must be non-negative")
)

// infCost never wins a minimum against a reachable alignment, and adding a
// gap cost to it cannot wrap.
const infCost int64 = math.MaxInt64 / 4

// checkCosts validates a cost model against a query length. It runs before
// any cell of the dynamic program is touched.
func checkCosts(queryLen int, subCosts []int64, gapOpen, gapExtend int64) error {
	if len(subCosts) != queryLen {
		return ErrCostArrayLength
	}
	if gapOpen < 0 || gapExtend < 0 {
		return ErrNegativeCost
	}
	for _, c := range subCosts {
		if c < 0 {
			return ErrNegativeCost
		}
	}
	return nil
}

// gapRunCost returns the cost of a single insertion or deletion run covering
// length symbols.
func gapRunCost(length int, gapOpen, gapExtend int64) int64 {
	if length == 0 {
		return 0
	}
	return gapOpen + int64(length-1)*gapExtend
}

// AffineGapCost returns the minimum total cost of an alignment transforming
// query into ref.
//
// Aligning query[i] against a differing reference symbol costs subCosts[i];
// aligning it against an equal symbol costs 0. A run of L consecutive
// insertions or deletions costs gapOpen + (L-1)*gapExtend. subCosts must
// hold exactly one entry per query symbol, and all costs must be
// non-negative; violations return ErrCostArrayLength or ErrNegativeCost
// before any alignment work is done.
//
// The cost is computed with the three-state affine-gap recurrence over two
// rolling row pairs, so scratch space is proportional to len(ref) and is
// reused across calls on the same Aligner. Inputs are never written to.
func (a *Aligner) AffineGapCost(query, ref []byte, subCosts []int64, gapOpen, gapExtend int64) (int64, error) {
	if err := checkCosts(len(query), subCosts, gapOpen, gapExtend); err != nil {
		return 0, err
	}
	n, m := len(query), len(ref)
	if n == 0 || m == 0 {
		// One sequence empty: a single gap run spanning the other.
		return gapRunCost(n+m, gapOpen, gapExtend), nil
	}

	// prevD[j] and prevX[j] hold the overall and the gap-consuming-query
	// optima for the previous query position; curD/curX are the row being
	// filled. The gap-consuming-ref state only ever needs the cell to the
	// left, so it lives in the scalar y.
	prevD, curD, prevX, curX := a.costRows(m + 1)
	prevD[0] = 0
	prevX[0] = infCost
	for j := 1; j <= m; j++ {
		prevD[j] = gapRunCost(j, gapOpen, gapExtend)
		prevX[j] = infCost
	}
	for i := 1; i <= n; i++ {
		qi := query[i-1]
		sub := subCosts[i-1]
		curD[0] = gapRunCost(i, gapOpen, gapExtend)
		curX[0] = infCost
		y := infCost
		for j := 1; j <= m; j++ {
			mc := prevD[j-1]
			if qi != ref[j-1] {
				mc += sub
			}
			x := prevD[j] + gapOpen
			if v := prevX[j] + gapExtend; v < x {
				x = v
			}
			y += gapExtend
			if v := curD[j-1] + gapOpen; v < y {
				y = v
			}
			d := mc
			if x < d {
				d = x
			}
			if y < d {
				d = y
			}
			curX[j] = x
			curD[j] = d
		}
		prevD, curD = curD, prevD
		prevX, curX = curX, prevX
	}
	return prevD[m], nil
}

// AffineGapCost runs on fresh scratch space; callers scoring many pairs
// should reuse an Aligner instead.
func AffineGapCost(query, ref []byte, subCosts []int64, gapOpen, gapExtend int64) (int64, error) {
	var a Aligner
	return a.AffineGapCost(query, ref, subCosts, gapOpen, gapExtend)
}

// AffineGapCostString runs on fresh scratch space; callers scoring many
// pairs should reuse an Aligner instead.
func AffineGapCostString(query, ref string, subCosts []int64, gapOpen, gapExtend int64) (int64, error) {
	var a Aligner
	return a.AffineGapCostString(query, ref, subCosts, gapOpen, gapExtend)
}
