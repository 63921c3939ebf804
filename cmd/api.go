package cmd

import (
	"github.com/smira/commander"
)

func makeCmdAPI() *commander.Command {
	return &commander.Command{
		UsageLine: "api",
		Short:     "start API server",
		Subcommands: []*commander.Command{
			makeCmdAPIServe(),
		},
	}
}
