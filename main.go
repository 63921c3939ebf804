package main

import (
	"os"

	"github.com/pacfind/pacfind/cmd"
	"github.com/pacfind/pacfind/pacfind"
)

// Version variable, filled in at link time
var Version string

func main() {
	if Version == "" {
		Version = "unknown"
	}

	pacfind.Version = Version

	os.Exit(cmd.Run(cmd.RootCommand(), os.Args[1:], true))
}
