// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"math"

	"github.com/grailbio/base/simd"
)

// EditDistance returns the Levenshtein distance between s and t: the number
// of single-symbol insertions, deletions, and substitutions needed to
// transform one into the other. It equals AffineGapCost with all-ones
// substitution costs and gapOpen == gapExtend == 1, without that call's
// validation overhead.
func (a *Aligner) EditDistance(s, t []byte) int {
	// A shared prefix or suffix never changes the unit-cost optimum. The
	// same is not true of the affine kernel, whose substitution costs are
	// tied to absolute query positions.
	limit := len(s)
	if len(t) < limit {
		limit = len(t)
	}
	start := simd.FirstUnequal8(s[:limit], t[:limit], 0)
	s, t = s[start:], t[start:]
	for len(s) > 0 && len(t) > 0 && s[len(s)-1] == t[len(t)-1] {
		s, t = s[:len(s)-1], t[:len(t)-1]
	}
	if len(t) > len(s) {
		s, t = t, s
	}
	n, m := len(s), len(t)
	if m == 0 {
		return n
	}
	prev, cur := a.distRows(m + 1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		si := s[i-1]
		cur[0] = i
		for j := 1; j <= m; j++ {
			c := prev[j-1]
			if si != t[j-1] {
				c++
			}
			if v := prev[j] + 1; v < c {
				c = v
			}
			if v := cur[j-1] + 1; v < c {
				c = v
			}
			cur[j] = c
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// distInf marks cells outside the band. It survives the +1 updates without
// wrapping.
const distInf = math.MaxInt32

// EditDistanceBanded is EditDistance restricted to the diagonal band
// |i-j| <= maxDiff. The result is exact whenever the true distance is at
// most maxDiff; otherwise it is some value greater than maxDiff, not
// necessarily the true distance. maxDiff < 0 disables the band, as does any
// maxDiff no smaller than the length of the shorter sequence.
func (a *Aligner) EditDistanceBanded(s, t []byte, maxDiff int) int {
	if maxDiff < 0 {
		return a.EditDistance(s, t)
	}
	if len(t) > len(s) {
		s, t = t, s
	}
	n, m := len(s), len(t)
	if maxDiff >= m {
		// The plain kernel is exact and avoids overflow of i+maxDiff
		// for very large bounds.
		return a.EditDistance(s, t)
	}
	if n-m > maxDiff {
		return n - m
	}
	prev, cur := a.distRows(m + 1)
	for j := 0; j <= m; j++ {
		if j <= maxDiff {
			prev[j] = j
		} else {
			prev[j] = distInf
		}
	}
	for i := 1; i <= n; i++ {
		lo, hi := i-maxDiff, i+maxDiff
		if lo < 1 {
			lo = 1
		}
		if hi > m {
			hi = m
		}
		if lo > 1 {
			cur[lo-1] = distInf
		} else {
			cur[0] = i
		}
		si := s[i-1]
		for j := lo; j <= hi; j++ {
			c := prev[j-1]
			if si != t[j-1] {
				c++
			}
			if v := prev[j] + 1; v < c {
				c = v
			}
			if v := cur[j-1] + 1; v < c {
				c = v
			}
			cur[j] = c
		}
		// The next row reads one cell past the band on each side.
		if hi < m {
			cur[hi+1] = distInf
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// EditDistance runs on fresh scratch space; callers scoring many pairs
// should reuse an Aligner instead.
func EditDistance(s, t []byte) int {
	var a Aligner
	return a.EditDistance(s, t)
}

// EditDistanceString runs on fresh scratch space; callers scoring many
// pairs should reuse an Aligner instead.
func EditDistanceString(s, t string) int {
	var a Aligner
	return a.EditDistanceString(s, t)
}

// EditDistanceBanded runs on fresh scratch space; callers scoring many
// pairs should reuse an Aligner instead.
func EditDistanceBanded(s, t []byte, maxDiff int) int {
	var a Aligner
	return a.EditDistanceBanded(s, t, maxDiff)
}
