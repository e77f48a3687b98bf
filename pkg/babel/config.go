package babel

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Config contains configuration for the Babel client.
//
// Example configuration (HCL):
//
//	babel {
//	  host  = "https://babel.example.com"
//	  port  = 443
//	  debug = false
//	}
type Config struct {
	// Host is the Babel host including scheme, e.g. "http://babel".
	// It must start with "http".
	Host string `hcl:"host" json:"host"`

	// Port is appended to Host as ":" + Port.
	Port string `hcl:"port" json:"port"`

	// EnableDebug turns on logging of outgoing requests and failed responses.
	EnableDebug bool `hcl:"debug,optional" json:"debug,omitempty"`

	// Logger receives debug and error messages when EnableDebug is set.
	// Defaults to a null logger.
	Logger hclog.Logger `json:"-"`

	// HTTPClient performs requests. Defaults to a plain *http.Client with no
	// timeout.
	HTTPClient HTTPClient `json:"-"`

	// Hasher turns a feed target into a path segment. Defaults to MD5Hasher.
	Hasher Hasher `json:"-"`
}

// HTTPClient is the transport used to send requests to Babel.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Hasher derives a fixed-length, path-safe key from a target identifier.
type Hasher func(s string) string

// MD5Hasher returns the lowercase hex MD5 digest of s, which is how Babel keys
// target feeds.
func MD5Hasher(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// withDefaults returns a copy of c with collaborators filled in.
func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Hasher == nil {
		c.Hasher = MD5Hasher
	}
	return c
}

// baseURL is host and port joined verbatim; a trailing slash on the host is
// kept as is.
func (c Config) baseURL() string {
	return c.Host + ":" + c.Port
}
