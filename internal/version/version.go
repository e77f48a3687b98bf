package version

// Version is the version of the babel client, overridden at build time with
// -ldflags "-X github.com/talis/babel-go-client/internal/version.Version=...".
var Version = "0.1.0-dev"
