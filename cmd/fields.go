package cmd

import (
	"github.com/pacfind/pacfind/query"
	"github.com/smira/commander"
)

func pacfindFields(cmd *commander.Command, args []string) error {
	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	for _, field := range query.Fields() {
		kind := field.Kind().String()
		if field.IsTraversable() {
			kind = "relation, selector"
		} else if field.IsRelation() {
			kind = "list"
		}
		context.Progress().Printf("  -%-14s %s\n", field, kind)
	}

	return nil
}

func makeCmdFields() *commander.Command {
	return &commander.Command{
		Run:       pacfindFields,
		UsageLine: "fields",
		Short:     "list fields available in queries",
		Long: `
Command fields lists package fields which could be used in queries.
Selectors could be followed by dot and another field to match related
packages: -depends.name, -requiredby%.name.
`,
	}
}
