package cmd

import (
	"fmt"
	"strings"

	"github.com/pacfind/pacfind/alpm"
	ctx "github.com/pacfind/pacfind/context"
	"github.com/pacfind/pacfind/query"
	"github.com/smira/commander"
)

// parseQuery builds query from positional tokens followed by tokens of -query flag
//
// Malformed query aborts with exit code 2.
func parseQuery(cmd *commander.Command, args []string) query.Node {
	tokens := append([]string{}, args...)

	if flag := cmd.Flag.Lookup("query"); flag != nil && flag.Value.String() != "" {
		extra, err := query.Split(flag.Value.String())
		if err != nil {
			ctx.FatalCode(2, fmt.Errorf("unable to split query: %s", err))
		}
		tokens = append(tokens, extra...)
	}

	node, err := query.Parse(tokens)
	if err != nil {
		cmd.Usage()
		ctx.FatalCode(2, err)
	}

	return node
}

// nameFilter parses -names list, nil if it's not set
func nameFilter() (*alpm.NameFilter, error) {
	flag := context.GlobalFlags().Lookup("names")
	if flag == nil || flag.Value.String() == "" {
		return nil, nil
	}

	return alpm.ParseNameFilter(strings.NewReader(strings.ReplaceAll(flag.Value.String(), ",", " ")))
}

// searchPackages evaluates query against packages from the sources and selection
// given by global flags
func searchPackages(node query.Node) (*alpm.PackageList, *alpm.Registry, error) {
	registry, err := context.Registry()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to load packages: %s", err)
	}

	list := registry.Packages()

	filter, err := nameFilter()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read name list: %s", err)
	}
	if filter != nil {
		list = filter.Apply(list)
	}

	selection := context.Selection()
	list = selection.Apply(list, registry)

	evaluator := query.NewEvaluator(registry, context.Reporter())
	return evaluator.Run(node, list), registry, nil
}
