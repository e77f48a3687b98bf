package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/talis/babel-go-client/internal/cmd/base"
	"github.com/talis/babel-go-client/internal/cmd/commands/annotations"
	"github.com/talis/babel-go-client/internal/cmd/commands/feeds"
	"github.com/talis/babel-go-client/internal/cmd/commands/version"
)

// Commands is the mapping of all available babel commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"annotations": func() (cli.Command, error) {
			return &annotations.ListCommand{Command: b}, nil
		},
		"create-annotation": func() (cli.Command, error) {
			return &annotations.CreateCommand{Command: b}, nil
		},
		"feeds": func() (cli.Command, error) {
			return &feeds.Command{Command: b}, nil
		},
		"target-feed": func() (cli.Command, error) {
			return &feeds.TargetFeedCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
