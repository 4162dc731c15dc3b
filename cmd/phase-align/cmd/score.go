package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/phase/align"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

type scoreFlags struct {
	gapOpen   *int64
	gapExtend *int64
	subCosts  *string
	subCost   *int64
}

func newCmdScore() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "score",
		Short:    "Compute the affine-gap alignment cost of a query against a reference",
		ArgsName: "query ref",
		Long: `
Score prints the minimum total cost of transforming the query sequence into
the reference sequence. Aligning a query symbol against a differing reference
symbol is charged that position's substitution cost; a run of L consecutive
insertions or deletions is charged gap-open + (L-1)*gap-extend.

Per-position substitution costs (for example, derived from base qualities)
are given with -sub-costs as a comma-separated list with one entry per query
symbol; otherwise -sub-cost is applied uniformly.`,
	}
	flags := scoreFlags{
		gapOpen:   cmd.Flags.Int64("gap-open", 1, "Cost of the first symbol of an insertion or deletion run"),
		gapExtend: cmd.Flags.Int64("gap-extend", 1, "Cost of each further symbol of the same insertion or deletion run"),
		subCosts:  cmd.Flags.String("sub-costs", "", "Comma-separated substitution costs, one per query symbol; overrides -sub-cost"),
		subCost:   cmd.Flags.Int64("sub-cost", 1, "Substitution cost applied at every query position"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("score takes query and ref arguments, but got %v", argv)
		}
		costs, err := subCostVector(len(argv[0]), *flags.subCosts, *flags.subCost)
		if err != nil {
			return err
		}
		cost, err := align.AffineGapCostString(argv[0], argv[1], costs, *flags.gapOpen, *flags.gapExtend)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, cost)
		return nil
	})
	return cmd
}

// subCostVector builds the per-query-position substitution cost vector from
// the comma-separated list, or from the uniform fallback when the list is
// empty.
func subCostVector(queryLen int, csv string, uniform int64) ([]int64, error) {
	if csv == "" {
		costs := make([]int64, queryLen)
		for i := range costs {
			costs[i] = uniform
		}
		return costs, nil
	}
	parts := strings.Split(csv, ",")
	costs := make([]int64, 0, len(parts))
	for _, part := range parts {
		c, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "substitution cost %q", part)
		}
		costs = append(costs, c)
	}
	if len(costs) != queryLen {
		return nil, errors.Errorf("got %d substitution costs for a %d-symbol query", len(costs), queryLen)
	}
	return costs, nil
}
