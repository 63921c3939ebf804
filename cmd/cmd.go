// Package cmd implements console commands
package cmd

import (
	"os"

	"github.com/smira/commander"
	"github.com/smira/flag"
)

// RootCommand creates root command in command tree
func RootCommand() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0],
		Short:     "query pacman package databases",
		Long: `
pacfind searches pacman package databases with find(1)-like queries:
predicates over package fields joined by -and, -or, -xor, -not and
grouped with -go ... -gc.

Packages come from the local database of installed packages (-local),
sync repositories listed in pacman.conf (-sync) or package archives
(-file). Relations like depends or requiredby can be followed with
dotted fields: -depends.name, -requiredby%.name.`,
		Flag: *flag.NewFlagSet("pacfind", flag.ExitOnError),
		Subcommands: []*commander.Command{
			makeCmdSearch(),
			makeCmdGraph(),
			makeCmdFields(),
			makeCmdConfig(),
			makeCmdDb(),
			makeCmdAPI(),
			makeCmdVersion(),
		},
	}

	cmd.Flag.String("config", "", "location of configuration file (default locations are ~/.pacfind.conf, /etc/pacfind.conf)")
	cmd.Flag.String("root", "", "installation root, overrides configuration")
	cmd.Flag.String("dbpath", "", "pacman database directory, overrides configuration")

	cmd.Flag.Bool("local", false, "load installed packages (default if no other source is given)")
	cmd.Flag.Bool("sync", false, "load packages from sync repositories listed in pacman.conf")
	cmd.Flag.String("file", "", "load package archives (comma-separated)")
	cmd.Flag.Bool("no-cache", false, "don't cache parsed sync databases")

	cmd.Flag.Bool("explicit", false, "only explicitly installed packages")
	cmd.Flag.Bool("deps", false, "only packages installed as dependencies")
	cmd.Flag.Bool("unrequired", false, "only installed packages not required by other packages")
	cmd.Flag.Bool("foreign", false, "only installed packages not found in sync repositories")
	cmd.Flag.Bool("upgrades", false, "only installed packages with newer version in sync repositories")
	cmd.Flag.String("group", "", "only packages from groups (comma-separated)")
	cmd.Flag.String("repo", "", "only packages from repositories (comma-separated)")
	AddStringOrFileFlag(&cmd.Flag, "names", "", "only packages with names (or repo/name) from the list, @file reads list from file, @- from stdin")

	return cmd
}
