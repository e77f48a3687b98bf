package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T, files map[string]string, env map[string]string) *Loader {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return &Loader{
		Fs: fs,
		LookupEnv: func(key string) (string, bool) {
			val, ok := env[key]
			return val, ok
		},
	}
}

func TestLoader_Load(t *testing.T) {
	t.Run("DecodesFile", func(t *testing.T) {
		l := newTestLoader(t, map[string]string{
			"/etc/babel.hcl": `
babel {
  host    = "http://babel"
  port    = 3000
  token   = "secret"
  debug   = true
  timeout = "5s"
}
`,
		}, nil)

		cfg, err := l.Load("/etc/babel.hcl")
		require.NoError(t, err)
		require.NotNil(t, cfg.Babel)

		assert.Equal(t, "http://babel", cfg.Babel.Host)
		assert.Equal(t, "3000", cfg.Babel.Port)
		assert.Equal(t, "secret", cfg.Babel.Token)
		assert.True(t, cfg.Babel.Debug)
		assert.Equal(t, "5s", cfg.Babel.Timeout)
		assert.NoError(t, cfg.Babel.Validate())
	})

	t.Run("EnvFunction", func(t *testing.T) {
		l := newTestLoader(t, map[string]string{
			"babel.hcl": `
babel {
  host  = "https://babel"
  port  = "443"
  token = env("MY_TOKEN")
}
`,
		}, map[string]string{"MY_TOKEN": "from-env"})

		cfg, err := l.Load("babel.hcl")
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Babel.Token)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		l := newTestLoader(t, map[string]string{
			"babel.hcl": `
babel {
  host  = "http://babel"
  port  = 3000
  token = "file-token"
}
`,
		}, map[string]string{
			EnvHost:  "https://other",
			EnvToken: "env-token",
		})

		cfg, err := l.Load("babel.hcl")
		require.NoError(t, err)
		assert.Equal(t, "https://other", cfg.Babel.Host)
		assert.Equal(t, "3000", cfg.Babel.Port)
		assert.Equal(t, "env-token", cfg.Babel.Token)
	})

	t.Run("NoFile", func(t *testing.T) {
		l := newTestLoader(t, nil, map[string]string{
			EnvHost:  "http://babel",
			EnvPort:  "3000",
			EnvToken: "secret",
		})

		cfg, err := l.Load("")
		require.NoError(t, err)
		assert.Equal(t, "http://babel", cfg.Babel.Host)
		assert.NoError(t, cfg.Babel.Validate())
	})

	t.Run("MissingFile", func(t *testing.T) {
		l := newTestLoader(t, nil, nil)

		_, err := l.Load("missing.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("InvalidHCL", func(t *testing.T) {
		l := newTestLoader(t, map[string]string{
			"babel.hcl": `babel { host = }`,
		}, nil)

		_, err := l.Load("babel.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})
}

func TestBabel_Validate(t *testing.T) {
	b := &Babel{Host: "babel", Timeout: "soon"}

	err := b.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), "host: must start with http:// or https://")
	assert.Contains(t, err.Error(), "port: cannot be blank")
	assert.Contains(t, err.Error(), "token: cannot be blank")
	assert.Contains(t, err.Error(), "timeout:")
}

func TestBabel_ClientConfig(t *testing.T) {
	b := &Babel{Host: "http://babel", Port: "3000", Token: "secret", Debug: true, Timeout: "2s"}
	logger := hclog.NewNullLogger()

	cfg, err := b.ClientConfig(logger)
	require.NoError(t, err)

	assert.Equal(t, "http://babel", cfg.Host)
	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.EnableDebug)
	assert.Equal(t, logger, cfg.Logger)

	httpClient, ok := cfg.HTTPClient.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, httpClient.Timeout)
}
