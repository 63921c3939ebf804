package cmd

import (
	"github.com/pacfind/pacfind/database/goleveldb"
	"github.com/smira/commander"
)

// pacfind db recover
func pacfindDbRecover(cmd *commander.Command, args []string) error {
	var err error

	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	err = context.CloseDatabase()
	if err != nil {
		return err
	}

	context.Progress().Printf("Recovering database...\n")
	err = goleveldb.RecoverDB(context.CacheDBPath())

	return err
}

func makeCmdDbRecover() *commander.Command {
	cmd := &commander.Command{
		Run:       pacfindDbRecover,
		UsageLine: "recover",
		Short:     "recover cache DB after crash",
		Long: `
Database recover does its best to recover the cache database after a crash.
Cache could always be removed instead, it's rebuilt from sync databases.

Example:

  $ pacfind db recover
`,
	}

	return cmd
}
