package cmd

import (
	"log"

	"v.io/x/lib/cmdline"
)

func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "phase-align",
			Short:    "Compute alignment costs between symbol sequences",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdScore(),
				newCmdEdit(),
			},
		})
}
