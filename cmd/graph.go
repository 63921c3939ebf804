package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pacfind/pacfind/alpm"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func pacfindGraph(cmd *commander.Command, args []string) error {
	node := parseQuery(cmd, args)

	result, registry, err := searchPackages(node)
	if err != nil {
		return err
	}

	layout := context.Flags().Lookup("layout").Value.String()
	withExternal := context.Flags().Lookup("external").Value.Get().(bool)

	context.Progress().Printf("Generating graph of %d packages...\n", result.Len())
	graph, err := alpm.BuildGraph(result, registry, layout, withExternal)
	if err != nil {
		return fmt.Errorf("unable to build graph: %s", err)
	}

	buf := bytes.NewBufferString(graph.String())

	format := context.Flags().Lookup("format").Value.String()
	output := context.Flags().Lookup("output").Value.String()

	if format == "dot" {
		if output == "" {
			_, err = io.Copy(os.Stdout, buf)
			return err
		}
		return os.WriteFile(output, buf.Bytes(), 0644)
	}

	if filepath.Ext(output) != "" {
		format = filepath.Ext(output)[1:]
	}

	if output == "" {
		tempfile, err := os.CreateTemp("", "pacfind-graph")
		if err != nil {
			return err
		}
		tempfile.Close()
		os.Remove(tempfile.Name())

		output = tempfile.Name() + "." + format
	}

	command := exec.Command("dot", "-T"+format, "-o"+output)
	command.Stderr = os.Stderr

	stdin, err := command.StdinPipe()
	if err != nil {
		return err
	}

	err = command.Start()
	if err != nil {
		return fmt.Errorf("unable to execute dot: %s (is graphviz package installed?)", err)
	}

	_, err = io.Copy(stdin, buf)
	if err != nil {
		return err
	}

	err = stdin.Close()
	if err != nil {
		return err
	}

	err = command.Wait()
	if err != nil {
		return err
	}

	if context.Flags().Lookup("output").Value.String() != "" {
		context.Progress().Printf("Output saved to %s\n", output)
	} else {
		context.Progress().Printf("Rendered to %s file: %s, trying to open it...\n", format, output)
		_ = exec.Command("xdg-open", output).Run()
	}

	return nil
}

func makeCmdGraph() *commander.Command {
	cmd := &commander.Command{
		Run:       pacfindGraph,
		UsageLine: "graph -- <query>",
		Short:     "render dependency graph of matching packages",
		Long: `
Command graph renders dependencies between packages matching the query
using graphviz package. Dependencies are resolved the same way as for
-depends.name queries.

Example:

  $ pacfind -local graph -output=base.svg -- -group base
`,
		Flag: *flag.NewFlagSet("pacfind-graph", flag.ExitOnError),
	}

	cmd.Flag.String("format", "png", "render graph to specified format (png, svg, pdf, etc.), dot prints graph source")
	cmd.Flag.String("output", "", "specify output filename, default is to open result in viewer")
	cmd.Flag.String("layout", "horizontal", "create a more 'vertical' or a more 'horizontal' graph layout")
	cmd.Flag.Bool("external", false, "include dependencies not matching the query")
	AddStringOrFileFlag(&cmd.Flag, "query", "", "query string, split into words like shell does, @file reads query from file")

	return cmd
}
