// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"math/rand"
	"testing"

	"github.com/antzucaro/matchr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditDistanceExamples(t *testing.T) {
	tests := []struct {
		s, u string
		want int
	}{
		{"", "", 0},
		{"", "ACGT", 4},
		{"ACGT", "", 4},
		{"ACGT", "ACGT", 0},
		{"kitten", "sitting", 3},
		{"ACAATTGG", "AXAAXTGX", 3},
		{"GCGTATGC", "GCTATGCG", 2},
		{"AAAA", "TTTT", 4},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, EditDistanceString(test.s, test.u), "EditDistance(%q, %q)", test.s, test.u)
		assert.Equal(t, test.want, EditDistanceString(test.u, test.s), "EditDistance(%q, %q)", test.u, test.s)
		assert.Equal(t, test.want, EditDistance([]byte(test.s), []byte(test.u)), "EditDistance(%q, %q) as bytes", test.s, test.u)
	}
}

// TestEditDistanceOracles checks the unit-cost distance against matchr's
// Levenshtein and against the affine kernel with all-ones costs across the
// whole corpus.
func TestEditDistanceOracles(t *testing.T) {
	var a Aligner
	for _, pair := range stringPairs {
		s, u := pair[0], pair[1]
		got := a.EditDistanceString(s, u)
		assert.Equal(t, matchr.Levenshtein(s, u), got, "EditDistance(%q, %q)", s, u)
		affine, err := a.AffineGapCostString(s, u, uniformCosts(len(s), 1), 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(got), affine, "all-ones affine cost of (%q, %q)", s, u)
	}
}

// TestEditDistanceSharedEnds exercises the common prefix/suffix skip with
// sequences that differ only in the middle.
func TestEditDistanceSharedEnds(t *testing.T) {
	for iter := 0; iter < 200; iter++ {
		prefix := string(randDNASeq(rand.Intn(30)))
		suffix := string(randDNASeq(rand.Intn(30)))
		s := prefix + string(randDNASeq(rand.Intn(8))) + suffix
		u := prefix + string(randDNASeq(rand.Intn(8))) + suffix
		assert.Equal(t, matchr.Levenshtein(s, u), EditDistanceString(s, u), "EditDistance(%q, %q)", s, u)
	}
}

func TestEditDistanceBanded(t *testing.T) {
	var a Aligner
	for _, pair := range stringPairs {
		s, u := []byte(pair[0]), []byte(pair[1])
		full := a.EditDistance(s, u)
		assert.Equal(t, full, a.EditDistanceBanded(s, u, -1), "unbanded(%q, %q)", s, u)
		for maxDiff := 0; maxDiff <= 12; maxDiff++ {
			got := a.EditDistanceBanded(s, u, maxDiff)
			if full <= maxDiff {
				assert.Equal(t, full, got, "banded(%q, %q, %d)", s, u, maxDiff)
			} else {
				// Beyond the band only "greater than maxDiff" is promised,
				// not the true distance.
				assert.True(t, got > maxDiff, "banded(%q, %q, %d) = %d, want > %d", s, u, maxDiff, got, maxDiff)
			}
		}
	}
}

func TestEditDistanceBandedLengthGap(t *testing.T) {
	s := randDNASeq(40)
	u := randDNASeq(10)
	// The length difference alone exceeds the band.
	for _, maxDiff := range []int{0, 5, 29} {
		got := EditDistanceBanded(s, u, maxDiff)
		assert.True(t, got > maxDiff, "banded(%d) = %d", maxDiff, got)
		assert.Equal(t, got, EditDistanceBanded(u, s, maxDiff))
	}
	assert.Equal(t, EditDistance(s, u), EditDistanceBanded(s, u, 40))
}

// TestEditDistanceBandedWideBand checks that bounds at least as wide as the
// shorter sequence, up to the largest representable int, behave exactly like
// the unbanded kernel.
func TestEditDistanceBandedWideBand(t *testing.T) {
	const hugeDiff = int(^uint(0) >> 1)
	assert.Equal(t, 1, EditDistanceBanded([]byte("AB"), []byte("AC"), hugeDiff))
	for _, pair := range stringPairs[:200] {
		s, u := []byte(pair[0]), []byte(pair[1])
		want := EditDistance(s, u)
		shorter := len(u)
		if len(s) < shorter {
			shorter = len(s)
		}
		for _, maxDiff := range []int{shorter, len(s) + len(u), 1 << 30, hugeDiff - 1, hugeDiff} {
			assert.Equal(t, want, EditDistanceBanded(s, u, maxDiff), "banded(%q, %q, %d)", pair[0], pair[1], maxDiff)
		}
	}
}

func BenchmarkEditDistance(b *testing.B) {
	s := randDNASeq(150)
	u := randDNASeq(160)
	var a Aligner
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.EditDistance(s, u)
	}
}

func BenchmarkEditDistanceBanded(b *testing.B) {
	s := randDNASeq(150)
	u := randDNASeq(160)
	var a Aligner
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.EditDistanceBanded(s, u, 20)
	}
}
