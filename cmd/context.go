package cmd

import (
	ctx "github.com/pacfind/pacfind/context"
	"github.com/smira/flag"
)

// Common context shared by all commands
var context *ctx.PacfindContext

// InitContext initializes context with default settings
func InitContext(flags *flag.FlagSet) error {
	var err error

	if context != nil {
		panic("context already initialized")
	}

	context, err = ctx.NewContext(flags)

	return err
}

// ShutdownContext shuts context down
func ShutdownContext() {
	context.Shutdown()
	context = nil
}

// GetContext gives access to the context
func GetContext() *ctx.PacfindContext {
	return context
}
