package version

import (
	"fmt"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/base"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of the binary"
}

func (c *Command) Help() string {
	return `Usage: anythink version

  This command prints the version of the binary.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("anythink v%s", version.FullVersion()))
	return 0
}
