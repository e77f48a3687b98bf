package annotations

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/spf13/afero"

	"github.com/talis/babel-go-client/internal/cmd/base"
	"github.com/talis/babel-go-client/pkg/babel"
)

// isoMillis matches the timestamps Babel itself writes.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type CreateCommand struct {
	*base.Command

	flagFile        string
	flagBodyFormat  string
	flagBodyType    string
	flagBodyChars   string
	flagBodyURI     string
	flagTargetURIs  stringList
	flagAnnotatedBy string
	flagMotivatedBy string
	flagAnnotatedAt string
	flagSync        bool
}

// stringList collects repeated string flags.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (c *CreateCommand) Synopsis() string {
	return "Create an annotation"
}

func (c *CreateCommand) Help() string {
	return `Usage: babel create-annotation [options]

  This command creates an annotation and prints the stored annotation as
  JSON. The annotation is read from -file (JSON) when given; the other flags
  set or override its fields.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create-annotation", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(
		&c.flagFile, "file", "",
		"Path to a JSON annotation.",
	)
	f.StringVar(
		&c.flagBodyFormat, "body-format", "",
		"hasBody.format, e.g. text/plain.",
	)
	f.StringVar(
		&c.flagBodyType, "body-type", "",
		"hasBody.type, e.g. Text.",
	)
	f.StringVar(
		&c.flagBodyChars, "body-chars", "",
		"hasBody.chars.",
	)
	f.StringVar(
		&c.flagBodyURI, "body-uri", "",
		"hasBody.uri.",
	)
	f.Var(
		&c.flagTargetURIs, "target-uri",
		"hasTarget.uri. Repeat to annotate several targets.",
	)
	f.StringVar(
		&c.flagAnnotatedBy, "annotated-by", "",
		"User making the annotation.",
	)
	f.StringVar(
		&c.flagMotivatedBy, "motivated-by", "",
		"Motivation for the annotation.",
	)
	f.StringVar(
		&c.flagAnnotatedAt, "annotated-at", "",
		"Time of the annotation in any common date format.",
	)
	f.BoolVar(
		&c.flagSync, "sync", false,
		"Ask Babel to ingest the annotation before responding.",
	)

	return f
}

func (c *CreateCommand) Run(args []string) int {
	c.flagTargetURIs = nil

	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	draft, err := c.draft()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, token, err := c.Client()
	if err != nil {
		return c.ReportError(err)
	}

	resp, err := client.CreateAnnotation(context.Background(), token, draft,
		babel.CreateOptions{ForceSynchronousIngest: c.flagSync})
	if err != nil {
		return c.ReportError(err)
	}

	if err := c.OutputJSON(resp.Body); err != nil {
		return c.ReportError(err)
	}
	return 0
}

// draft builds the annotation from -file and the field flags.
func (c *CreateCommand) draft() (*babel.Annotation, error) {
	draft := &babel.Annotation{}

	if c.flagFile != "" {
		src, err := afero.ReadFile(c.Fs(), c.flagFile)
		if err != nil {
			return nil, fmt.Errorf("error reading annotation file: %w", err)
		}
		if err := json.Unmarshal(src, draft); err != nil {
			return nil, fmt.Errorf("error parsing annotation file: %w", err)
		}
	}

	if c.flagBodyFormat != "" || c.flagBodyType != "" ||
		c.flagBodyChars != "" || c.flagBodyURI != "" {
		if draft.HasBody == nil {
			draft.HasBody = &babel.Body{}
		}
		setIfNotEmpty(&draft.HasBody.Format, c.flagBodyFormat)
		setIfNotEmpty(&draft.HasBody.Type, c.flagBodyType)
		setIfNotEmpty(&draft.HasBody.Chars, c.flagBodyChars)
		setIfNotEmpty(&draft.HasBody.URI, c.flagBodyURI)
	}

	switch len(c.flagTargetURIs) {
	case 0:
	case 1:
		draft.HasTarget = babel.SingleTarget(babel.Target{URI: c.flagTargetURIs[0]})
	default:
		targets := make([]babel.Target, len(c.flagTargetURIs))
		for i, uri := range c.flagTargetURIs {
			targets[i] = babel.Target{URI: uri}
		}
		draft.HasTarget = babel.TargetList(targets...)
	}

	setIfNotEmpty(&draft.AnnotatedBy, c.flagAnnotatedBy)
	setIfNotEmpty(&draft.MotivatedBy, c.flagMotivatedBy)

	if c.flagAnnotatedAt != "" {
		at, err := dateparse.ParseAny(c.flagAnnotatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid annotated-at: %w", err)
		}
		draft.AnnotatedAt = at.UTC().Format(isoMillis)
	}

	return draft, nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
