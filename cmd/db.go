package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdDb() *commander.Command {
	return &commander.Command{
		UsageLine: "db",
		Short:     "manage pacfind's sync database cache",
		Subcommands: []*commander.Command{
			makeCmdDbCleanup(),
			makeCmdDbRecover(),
		},
		Flag: *flag.NewFlagSet("pacfind-db", flag.ExitOnError),
	}
}
