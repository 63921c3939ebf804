package console

import (
	"os"

	"golang.org/x/term"
)

// RunningOnTerminal checks whether stdout is terminal
func RunningOnTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
