// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package align computes minimum alignment costs between symbol sequences.
//
// AffineGapCost is the core operation: a weighted edit distance where each
// query position carries its own substitution cost (typically derived from
// base-call confidence) and a run of insertions or deletions is charged an
// affine open+extend penalty. EditDistance is the classic unit-cost special
// case. Only the scalar cost is computed; no alignment path is recovered.
package align
