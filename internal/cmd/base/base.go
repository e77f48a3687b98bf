package base

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/talis/babel-go-client/internal/config"
	"github.com/talis/babel-go-client/pkg/babel"
)

// Command is embedded by every babel subcommand.
type Command struct {
	Log    hclog.Logger
	UI     cli.Ui
	Loader *config.Loader

	flagConfig string
	flagHost   string
	flagPort   string
	flagToken  string
	flagDebug  bool
}

// NewCommand returns a Command reading config from the OS.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:    log,
		UI:     ui,
		Loader: config.NewLoader(),
	}
}

// Fs is the filesystem commands read input files from.
func (c *Command) Fs() afero.Fs {
	return c.Loader.Fs
}

// FlagSet wraps flag.FlagSet with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that reports parse errors instead of exiting.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help renders the flags for a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s\n      %s\n", fl.Name, fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}

// ClientFlags registers the connection flags shared by all commands.
func (c *Command) ClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to a babel HCL config file",
	)
	f.StringVar(
		&c.flagHost, "host", "",
		"[BABEL_HOST] Babel host, including http:// or https://",
	)
	f.StringVar(
		&c.flagPort, "port", "",
		"[BABEL_PORT] Babel port",
	)
	f.StringVar(
		&c.flagToken, "token", "",
		"[BABEL_TOKEN] Bearer token sent with each request",
	)
	f.BoolVar(
		&c.flagDebug, "debug", false,
		"Log each request and failure.",
	)
}

// Client builds a babel client from the config file, environment and flags,
// in increasing order of precedence. It also returns the token to use.
func (c *Command) Client() (*babel.Client, string, error) {
	cfg, err := c.Loader.Load(c.flagConfig)
	if err != nil {
		return nil, "", err
	}

	b := cfg.Babel
	if c.flagHost != "" {
		b.Host = c.flagHost
	}
	if c.flagPort != "" {
		b.Port = c.flagPort
	}
	if c.flagToken != "" {
		b.Token = c.flagToken
	}
	if c.flagDebug {
		b.Debug = true
	}

	if err := b.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	logger := c.Log
	if b.Debug {
		logger.SetLevel(hclog.Debug)
	}

	clientCfg, err := b.ClientConfig(logger)
	if err != nil {
		return nil, "", err
	}

	client, err := babel.NewClient(clientCfg)
	if err != nil {
		return nil, "", err
	}

	return client, b.Token, nil
}

// OutputJSON writes v to the UI as indented JSON.
func (c *Command) OutputJSON(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	c.UI.Output(strings.TrimRight(buf.String(), "\n"))
	return nil
}

// ReportError writes err to the UI and returns the exit code for it.
func (c *Command) ReportError(err error) int {
	var svcErr *babel.ServiceError
	if errors.As(err, &svcErr) && svcErr.HTTPCode != 0 {
		c.UI.Error(fmt.Sprintf("babel error (status %d): %s", svcErr.HTTPCode, svcErr.Message))
		return 2
	}
	c.UI.Error(fmt.Sprintf("error: %v", err))
	return 1
}
