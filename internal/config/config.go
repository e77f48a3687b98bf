package config

import (
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/talis/babel-go-client/pkg/babel"
)

// Environment variables that override values from the config file.
const (
	EnvHost  = "BABEL_HOST"
	EnvPort  = "BABEL_PORT"
	EnvToken = "BABEL_TOKEN"
)

var hostPattern = regexp.MustCompile(`^https?://`)

// Config is the babel command line configuration.
//
// Example configuration (HCL):
//
//	babel {
//	  host    = "https://babel.example.com"
//	  port    = 443
//	  token   = env("BABEL_TOKEN")
//	  debug   = false
//	  timeout = "30s"
//	}
type Config struct {
	Babel *Babel `hcl:"babel,block"`
}

// Babel holds the connection settings for a Babel server.
type Babel struct {
	Host string `hcl:"host,optional"`
	Port string `hcl:"port,optional"`

	// Token is the bearer token sent with every request.
	Token string `hcl:"token,optional"`

	Debug bool `hcl:"debug,optional"`

	// Timeout is a duration string applied to the HTTP client. Empty means no
	// timeout.
	Timeout string `hcl:"timeout,optional"`
}

// Loader reads configuration files.
type Loader struct {
	Fs        afero.Fs
	LookupEnv func(key string) (string, bool)
}

// NewLoader returns a Loader for the OS filesystem and environment.
func NewLoader() *Loader {
	return &Loader{
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// Load decodes the HCL file at filename and applies environment overrides.
// An empty filename yields a config built from the environment alone.
func (l *Loader) Load(filename string) (*Config, error) {
	cfg := &Config{Babel: &Babel{}}

	if filename != "" {
		src, err := afero.ReadFile(l.Fs, filename)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := hclsimple.Decode(filename, src, l.evalContext(), cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
		if cfg.Babel == nil {
			cfg.Babel = &Babel{}
		}
	}

	l.applyEnv(cfg.Babel)
	return cfg, nil
}

// evalContext exposes env("NAME") to config files.
func (l *Loader) evalContext() *hcl.EvalContext {
	envFunc := function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			val, _ := l.lookupEnv(args[0].AsString())
			return cty.StringVal(val), nil
		},
	})

	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

func (l *Loader) lookupEnv(key string) (string, bool) {
	if l.LookupEnv == nil {
		return "", false
	}
	return l.LookupEnv(key)
}

func (l *Loader) applyEnv(b *Babel) {
	if val, ok := l.lookupEnv(EnvHost); ok && val != "" {
		b.Host = val
	}
	if val, ok := l.lookupEnv(EnvPort); ok && val != "" {
		b.Port = val
	}
	if val, ok := l.lookupEnv(EnvToken); ok && val != "" {
		b.Token = val
	}
}

// Validate returns every problem with the configuration at once.
func (b *Babel) Validate() error {
	var result *multierror.Error

	if err := validation.Validate(b.Host,
		validation.Required,
		validation.Match(hostPattern).Error("must start with http:// or https://"),
	); err != nil {
		result = multierror.Append(result, fmt.Errorf("host: %w", err))
	}
	if err := validation.Validate(b.Port, validation.Required); err != nil {
		result = multierror.Append(result, fmt.Errorf("port: %w", err))
	}
	if err := validation.Validate(b.Token, validation.Required); err != nil {
		result = multierror.Append(result, fmt.Errorf("token: %w", err))
	}
	if b.Timeout != "" {
		if d, err := time.ParseDuration(b.Timeout); err != nil {
			result = multierror.Append(result, fmt.Errorf("timeout: %w", err))
		} else if d < 0 {
			result = multierror.Append(result, fmt.Errorf("timeout: must not be negative"))
		}
	}

	return result.ErrorOrNil()
}

// ClientConfig converts b into a babel.Config. b should have been validated.
func (b *Babel) ClientConfig(logger hclog.Logger) (babel.Config, error) {
	httpClient := &http.Client{}
	if b.Timeout != "" {
		d, err := time.ParseDuration(b.Timeout)
		if err != nil {
			return babel.Config{}, fmt.Errorf("invalid timeout: %w", err)
		}
		httpClient.Timeout = d
	}

	return babel.Config{
		Host:        b.Host,
		Port:        b.Port,
		EnableDebug: b.Debug,
		Logger:      logger,
		HTTPClient:  httpClient,
	}, nil
}
