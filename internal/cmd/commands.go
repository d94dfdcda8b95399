package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/base"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/commands/convert"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/commands/migrate"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/commands/serve"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"convert": func() (cli.Command, error) {
			return &convert.Command{Command: b}, nil
		},
		"migrate": func() (cli.Command, error) {
			return &migrate.Command{Command: b}, nil
		},
		"serve": func() (cli.Command, error) {
			return &serve.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
