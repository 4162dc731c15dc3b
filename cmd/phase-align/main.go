package main

/*
phase-align computes alignment costs between two symbol sequences given on
the command line: the affine-gap cost used for read-to-haplotype scoring, or
the plain unit-cost edit distance.
*/

import (
	"github.com/grailbio/phase/cmd/phase-align/cmd"
)

func main() {
	cmd.Run()
}
