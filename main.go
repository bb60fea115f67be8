// Command anytype is the command-line entry point for anytype-go, a
// client library and CLI for a personal knowledge-base server: spaces,
// types, properties, tags, objects, members, templates, search, saved
// views, chats, and file transfer, all reachable as cobra subcommands
// rooted at cli.RootCmd.
//
// Exit codes follow the error taxonomy in package errs: 0 on success, 2
// for authentication/keystore failures, 1 for everything else.
package main

import (
	"os"

	"github.com/anytype-sdk/anytype-go/cli"
	"github.com/anytype-sdk/anytype-go/errs"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(errs.ExitCode(err))
	}
}
