package cmd

import (
	"fmt"

	"github.com/smira/commander"
	"github.com/smira/flag"
)

func pacfindSearch(cmd *commander.Command, args []string) error {
	node := parseQuery(cmd, args)

	result, registry, err := searchPackages(node)
	if err != nil {
		return err
	}

	format := context.Flags().Lookup("format").Value.String()
	if format == "" {
		format = context.Config().DefaultFormat
	}

	printer, err := newPackagePrinter(
		context.Flags().Lookup("quiet").Value.Get().(bool),
		context.Flags().Lookup("info").Value.Get().(int),
		format,
		registry)
	if err != nil {
		return fmt.Errorf("unable to search: %s", err)
	}

	return printer.Print(context.Progress(), result)
}

func makeCmdSearch() *commander.Command {
	cmd := &commander.Command{
		Run:       pacfindSearch,
		UsageLine: "search -- <query>",
		Short:     "search packages with query",
		Long: `
Command search evaluates query against packages and prints matching ones.
Query is a sequence of predicates and combinators, every word of query
is separate argument, so query should follow -- to stop flag parsing.

Predicates:

    <value>                   regexp over name, desc, provides and group
    -<field> [<cmp>] <value>  compare field with value
    -<relation>.<field> ...   any related package matches
    -<relation>%.<field> ...  any package reachable by relation matches

Comparators: -eq ==, -ne !=, -gt <, -ge <=, -lt >, -le >=, -re =~, -nr !~
Combinators: -and &, -or |, -xor ^, -not !, -go ( ... -gc ) for grouping

Example:

  $ pacfind -sync search -- -name '^python-' -and -not -depends.name python

Use 'pacfind fields' to list fields.`,
		Flag: *flag.NewFlagSet("pacfind-search", flag.ExitOnError),
	}

	cmd.Flag.Int("info", 0, "display package information, 2 adds checksums")
	cmd.Flag.Bool("quiet", false, "display package names only")
	cmd.Flag.String("format", "", "custom format for result printing (Go template over package), defaults to defaultFormat from config")
	AddStringOrFileFlag(&cmd.Flag, "query", "", "query string, split into words like shell does, @file reads query from file")

	return cmd
}
