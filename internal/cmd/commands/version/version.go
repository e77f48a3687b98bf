package version

import (
	"github.com/talis/babel-go-client/internal/cmd/base"
	"github.com/talis/babel-go-client/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the babel client version"
}

func (c *Command) Help() string {
	return `Usage: babel version

  This command prints the version of the babel client.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
