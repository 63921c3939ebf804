package cmd

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/coreos/go-systemd/v22/activation"
	"github.com/pacfind/pacfind/api"
	"github.com/pacfind/pacfind/utils"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func pacfindAPIServe(cmd *commander.Command, args []string) error {
	var (
		err error
	)

	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	// cache directory should be either missing or usable by current user
	if context.Config().EnableCache {
		err = utils.DirIsAccessible(context.Config().GetCacheDir())
		if err != nil {
			return err
		}
	}

	// load packages before accepting connections
	_, err = context.Registry()
	if err != nil {
		return fmt.Errorf("unable to load packages: %s", err)
	}

	// Try to recycle systemd fds for listening
	listeners, err := activation.Listeners()
	if len(listeners) > 1 {
		return fmt.Errorf("got %d listeners from systemd, only one is supported", len(listeners))
	}
	if err == nil && len(listeners) == 1 {
		listener := listeners[0]
		defer listener.Close()
		fmt.Printf("\nTaking over web server at: %s (press Ctrl+C to quit)...\n", listener.Addr().String())
		err = http.Serve(listener, api.Router(context))
		if err != nil {
			return fmt.Errorf("unable to serve: %s", err)
		}
		return nil
	}

	listen := context.Flags().Lookup("listen").Value.String()
	if listen == "" {
		listen = context.Config().ServeListen
	}
	fmt.Printf("\nStarting web server at: %s (press Ctrl+C to quit)...\n", listen)

	listenURL, err := url.Parse(listen)
	if err == nil && listenURL.Scheme == "unix" {
		file := listenURL.Path
		os.Remove(file)

		var listener net.Listener
		listener, err = net.Listen("unix", file)
		if err != nil {
			return fmt.Errorf("failed to listen on: %s\n%s", file, err)
		}
		defer listener.Close()

		err = http.Serve(listener, api.Router(context))
		if err != nil {
			return fmt.Errorf("unable to serve: %s", err)
		}
		return nil
	}

	err = http.ListenAndServe(listen, api.Router(context))
	if err != nil {
		return fmt.Errorf("unable to serve: %s", err)
	}

	return err
}

func makeCmdAPIServe() *commander.Command {
	cmd := &commander.Command{
		Run:       pacfindAPIServe,
		UsageLine: "serve",
		Short:     "start API HTTP service",
		Long: `
Start HTTP server with pacfind REST API. Packages are loaded once on
startup using global source and selection flags, queries are evaluated
against them. The server can listen to either a port or Unix domain
socket, systemd socket activation is supported as well.

Example:

  $ pacfind -sync api serve -listen=:8090
  $ pacfind -local api serve -listen=unix:///run/pacfind.sock
`,
		Flag: *flag.NewFlagSet("pacfind-serve", flag.ExitOnError),
	}

	cmd.Flag.String("listen", "", "host:port for HTTP listening or unix://path to listen on a Unix domain socket (default from config, :8090)")

	return cmd
}
