// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"runtime"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/pkg/errors"
)

// Pair is one query/reference pair to score. SubCosts follows the
// AffineGapCost contract: exactly one entry per query symbol.
type Pair struct {
	Query, Ref []byte
	SubCosts   []int64
}

// Opts configures batch scoring.
type Opts struct {
	// GapOpen is the cost of the first symbol of an insertion or deletion
	// run.
	GapOpen int64
	// GapExtend is the cost of each further symbol of the same run. The gap
	// model is a property of the sequencing technology, so it is shared by
	// the whole batch; per-read variation belongs in Pair.SubCosts.
	GapExtend int64
	// Parallelism bounds the number of simultaneous scoring jobs.
	// 0 means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	GapOpen:   1,
	GapExtend: 1,
}

// AffineGapCostAll scores every pair and returns the costs in pair order.
// Pairs are split into contiguous shards, one job per shard, each job
// reusing its own Aligner, so the values never depend on Parallelism. The
// first invalid pair aborts the whole batch; no partial result is returned.
func AffineGapCostAll(pairs []Pair, opts Opts) ([]int64, error) {
	if opts.GapOpen < 0 || opts.GapExtend < 0 {
		return nil, ErrNegativeCost
	}
	costs := make([]int64, len(pairs))
	if len(pairs) == 0 {
		return costs, nil
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(pairs) {
		parallelism = len(pairs)
	}
	log.Debug.Printf("align: scoring %d pairs across %d jobs", len(pairs), parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(pairs)) / parallelism
		endIdx := ((jobIdx + 1) * len(pairs)) / parallelism
		a := NewAligner()
		for i := startIdx; i < endIdx; i++ {
			p := &pairs[i]
			cost, err := a.AffineGapCost(p.Query, p.Ref, p.SubCosts, opts.GapOpen, opts.GapExtend)
			if err != nil {
				return errors.Wrapf(err, "pair %d", i)
			}
			costs[i] = cost
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return costs, nil
}
