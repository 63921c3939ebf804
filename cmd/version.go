package cmd

import (
	"fmt"
	"runtime"

	"github.com/pacfind/pacfind/pacfind"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func pacfindVersion(_ *commander.Command, _ []string) error {
	fmt.Printf("pacfind version: %s (%s)\n", pacfind.Version, runtime.Version())
	return nil
}

func makeCmdVersion() *commander.Command {
	return &commander.Command{
		Run:       pacfindVersion,
		UsageLine: "version",
		Short:     "display version",
		Long: `
Shows pacfind version.

ex:
  $ pacfind version
`,
		Flag: *flag.NewFlagSet("pacfind-version", flag.ExitOnError),
	}
}
