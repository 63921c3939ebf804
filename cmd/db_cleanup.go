package cmd

import (
	"fmt"

	"github.com/pacfind/pacfind/alpm"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

// pacfind db cleanup
func pacfindDbCleanup(cmd *commander.Command, args []string) error {
	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	conf, err := context.PacmanConfig()
	if err != nil {
		return fmt.Errorf("unable to load pacman configuration: %s", err)
	}

	db, err := context.Database()
	if err != nil {
		return fmt.Errorf("unable to open cache: %s", err)
	}

	collection := alpm.NewPackageCollection(db)

	context.Progress().Printf("Removing cached repositories not in %s...\n", context.Config().PacmanConfig)
	removed, err := collection.Cleanup(conf.Repos)
	if err != nil {
		return fmt.Errorf("unable to cleanup: %s", err)
	}

	context.Progress().Printf("Removed %d cached database(s).\n", removed)

	context.Progress().Printf("Compacting database...\n")
	return db.CompactDB()
}

func makeCmdDbCleanup() *commander.Command {
	cmd := &commander.Command{
		Run:       pacfindDbCleanup,
		UsageLine: "cleanup",
		Short:     "remove cached databases of repositories no longer configured",
		Long: `
Database cleanup removes cached contents of sync databases for repositories
which are not listed in pacman.conf anymore and compacts the cache.

Example:

  $ pacfind db cleanup
`,
		Flag: *flag.NewFlagSet("pacfind-db-cleanup", flag.ExitOnError),
	}

	return cmd
}
