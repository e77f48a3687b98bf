package annotations

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/talis/babel-go-client/internal/cmd/base"
	"github.com/talis/babel-go-client/pkg/babel"
)

type ListCommand struct {
	*base.Command

	flagTargetURI   string
	flagAnnotatedBy string
	flagBodyURI     string
	flagBodyType    string
	flagText        string
	flagLimit       int
	flagOffset      int
	flagFilters     filterFlags
}

// filterFlags collects repeated -filter key=value flags.
type filterFlags map[string]string

func (f *filterFlags) String() string {
	return fmt.Sprint(map[string]string(*f))
}

func (f *filterFlags) Set(v string) error {
	key, val, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("filter must be key=value, got %q", v)
	}
	if *f == nil {
		*f = filterFlags{}
	}
	(*f)[key] = val
	return nil
}

func (c *ListCommand) Synopsis() string {
	return "Query annotations"
}

func (c *ListCommand) Help() string {
	return `Usage: babel annotations [options]

  This command queries annotations and prints the result as JSON.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("annotations", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(
		&c.flagTargetURI, "target-uri", "",
		"Restrict to a specific target.",
	)
	f.StringVar(
		&c.flagAnnotatedBy, "annotated-by", "",
		"Restrict to annotations made by a specific user.",
	)
	f.StringVar(
		&c.flagBodyURI, "body-uri", "",
		"Restrict to a specific body uri.",
	)
	f.StringVar(
		&c.flagBodyType, "body-type", "",
		"Restrict to annotations with this body type.",
	)
	f.StringVar(
		&c.flagText, "q", "",
		"Text search on hasBody.chars. Babel then ignores -annotated-by and -target-uri.",
	)
	f.IntVar(
		&c.flagLimit, "limit", 0,
		"Maximum number of results.",
	)
	f.IntVar(
		&c.flagOffset, "offset", 0,
		"Offset of the first result.",
	)
	f.Var(
		&c.flagFilters, "filter",
		"Extra key=value query parameter. May be repeated.",
	)

	return f
}

func (c *ListCommand) Run(args []string) int {
	c.flagFilters = nil

	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagLimit < 0 || c.flagOffset < 0 {
		c.UI.Error("limit and offset must not be negative")
		return 1
	}

	query := babel.NewAnnotationQuery().
		HasTargetURI(c.flagTargetURI).
		AnnotatedBy(c.flagAnnotatedBy).
		HasBodyURI(c.flagBodyURI).
		HasBodyType(c.flagBodyType).
		Text(c.flagText).
		Limit(c.flagLimit).
		Offset(c.flagOffset).
		Query()
	for k, v := range c.flagFilters {
		query[k] = v
	}

	client, token, err := c.Client()
	if err != nil {
		return c.ReportError(err)
	}

	resp, err := client.GetAnnotations(context.Background(), token, query)
	if err != nil {
		return c.ReportError(err)
	}

	if err := c.OutputJSON(resp.Body); err != nil {
		return c.ReportError(err)
	}
	return 0
}
