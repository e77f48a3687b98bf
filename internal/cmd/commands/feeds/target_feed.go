package feeds

import (
	"context"
	"flag"
	"fmt"

	"github.com/talis/babel-go-client/internal/cmd/base"
	"github.com/talis/babel-go-client/pkg/babel"
)

type TargetFeedCommand struct {
	*base.Command

	flagHydrate bool
}

func (c *TargetFeedCommand) Synopsis() string {
	return "Get the annotations feed for a target"
}

func (c *TargetFeedCommand) Help() string {
	return `Usage: babel target-feed [options] TARGET

  This command prints the annotations feed for TARGET as JSON. Without
  -hydrate the feed lists annotation ids only.` + c.Flags().Help()
}

func (c *TargetFeedCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("target-feed", flag.ContinueOnError))
	c.ClientFlags(f)

	f.BoolVar(
		&c.flagHydrate, "hydrate", false,
		"Return the annotations themselves instead of their ids.",
	)

	return f
}

func (c *TargetFeedCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if f.NArg() != 1 {
		c.UI.Error("exactly one TARGET argument is required")
		return 1
	}

	client, token, err := c.Client()
	if err != nil {
		return c.ReportError(err)
	}

	resp, err := client.GetTargetFeed(context.Background(), f.Arg(0), token,
		babel.TargetFeedOptions{Hydrate: c.flagHydrate})
	if err != nil {
		return c.ReportError(err)
	}

	if err := c.OutputJSON(resp.Body); err != nil {
		return c.ReportError(err)
	}
	return 0
}
