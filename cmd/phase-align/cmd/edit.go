package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/phase/align"
	"v.io/x/lib/cmdline"
)

func newCmdEdit() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "edit",
		Short:    "Compute the unit-cost edit distance between two sequences",
		ArgsName: "seq1 seq2",
		Long: `
Edit prints the Levenshtein distance between the two sequences: the number of
single-symbol insertions, deletions, and substitutions needed to transform
one into the other.`,
	}
	maxDiff := cmd.Flags.Int("max-diff", -1, "Restrict the computation to the diagonal band for distances up to this bound; the printed value is exact only when it is within the bound. Negative means unbounded")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("edit takes two sequence arguments, but got %v", argv)
		}
		fmt.Fprintln(env.Stdout, align.EditDistanceBanded([]byte(argv[0]), []byte(argv[1]), *maxDiff))
		return nil
	})
	return cmd
}
