package cmd

import (
	"fmt"

	"github.com/pacfind/pacfind/utils"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func pacfindConfigShow(cmd *commander.Command, args []string) error {
	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	config := context.Config()
	asYAML := context.Flags().Lookup("yaml").Value.Get().(bool)

	output, err := utils.MarshalConfig(config, asYAML)
	if err != nil {
		return fmt.Errorf("unable to dump the config: %s", err)
	}

	location := context.ConfigLocation()
	if location == "" {
		location = "(defaults)"
	}
	context.Progress().PrintfStdErr("Configuration loaded from %s\n", location)
	context.Progress().Printf("%s\n", output)

	return nil
}

func makeCmdConfigShow() *commander.Command {
	cmd := &commander.Command{
		Run:       pacfindConfigShow,
		UsageLine: "show",
		Short:     "show current pacfind configuration",
		Long: `
Command show displays the current pacfind configuration, with defaults
filled in for settings missing from the configuration file.

Example:

  $ pacfind config show -yaml
`,
		Flag: *flag.NewFlagSet("pacfind-config-show", flag.ExitOnError),
	}

	cmd.Flag.Bool("yaml", false, "show configuration in YAML format")

	return cmd
}
