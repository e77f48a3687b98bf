package feeds

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/talis/babel-go-client/internal/cmd/base"
	"github.com/talis/babel-go-client/pkg/babel"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Get a merged hydrated feed for several feed ids"
}

func (c *Command) Help() string {
	return `Usage: babel feeds [options] FEED_ID...

  This command merges the given feeds into one hydrated feed and prints it as
  JSON. Arguments containing commas are split into several feed ids.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("feeds", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if f.NArg() == 0 {
		c.UI.Error("at least one FEED_ID argument is required")
		return 1
	}

	ids := babel.FeedIDs{}
	for _, arg := range f.Args() {
		ids = append(ids, strings.Split(arg, ","))
	}

	client, token, err := c.Client()
	if err != nil {
		return c.ReportError(err)
	}

	resp, err := client.GetFeeds(context.Background(), ids, token)
	if err != nil {
		return c.ReportError(err)
	}

	if err := c.OutputJSON(resp.Body); err != nil {
		return c.ReportError(err)
	}
	return 0
}
