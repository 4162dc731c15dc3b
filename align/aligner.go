// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	gunsafe "github.com/grailbio/base/unsafe"
)

// An Aligner owns the rolling rows used by the dynamic programs in this
// package and keeps them across calls, so a caller scoring many pairs
// back-to-back allocates only at the high-water mark. The zero value is
// ready to use.
//
// An Aligner must not be used from more than one goroutine at a time; give
// each worker its own.
type Aligner struct {
	d0, d1 []int64 // overall optimum, previous and current row
	x0, x1 []int64 // gap-consuming-query state, previous and current row
	e0, e1 []int   // unit-cost rows
}

// NewAligner returns an empty Aligner. Equivalent to new(Aligner).
func NewAligner() *Aligner {
	return &Aligner{}
}

// costRows returns the four affine-gap rows, each of the given width,
// growing the backing arrays if needed. Contents are unspecified.
func (a *Aligner) costRows(width int) (prevD, curD, prevX, curX []int64) {
	if cap(a.d0) < width {
		a.d0 = make([]int64, width)
		a.d1 = make([]int64, width)
		a.x0 = make([]int64, width)
		a.x1 = make([]int64, width)
	}
	return a.d0[:width], a.d1[:width], a.x0[:width], a.x1[:width]
}

// distRows returns the two unit-cost rows of the given width, growing the
// backing arrays if needed. Contents are unspecified.
func (a *Aligner) distRows(width int) (prev, cur []int) {
	if cap(a.e0) < width {
		a.e0 = make([]int, width)
		a.e1 = make([]int, width)
	}
	return a.e0[:width], a.e1[:width]
}

// AffineGapCostString is AffineGapCost over string inputs. The conversion
// does not copy; the kernel never writes to its inputs.
func (a *Aligner) AffineGapCostString(query, ref string, subCosts []int64, gapOpen, gapExtend int64) (int64, error) {
	return a.AffineGapCost(gunsafe.StringToBytes(query), gunsafe.StringToBytes(ref), subCosts, gapOpen, gapExtend)
}

// EditDistanceString is EditDistance over string inputs. The conversion
// does not copy.
func (a *Aligner) EditDistanceString(s, t string) int {
	return a.EditDistance(gunsafe.StringToBytes(s), gunsafe.StringToBytes(t))
}
