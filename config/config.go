// Package config loads the settings the CLI and any embedding process
// need to construct a client.Client: REST base URL, RPC endpoint,
// keystore location, request timeout, and default output format. Values
// come from (in increasing precedence) defaults, a config file, the
// environment, and command-line flags, following the same viper-driven
// precedence the rest of this ecosystem's services use.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/anytype-sdk/anytype-go/transport"
)

// Output selects how the CLI renders results.
type Output string

const (
	OutputJSON   Output = "json"
	OutputPretty Output = "pretty"
	OutputTable  Output = "table"
	OutputQuiet  Output = "quiet"
)

// Config is the resolved set of values a client needs to start.
type Config struct {
	RESTBaseURL string
	RPCEndpoint string
	Timeout     time.Duration

	// KeystorePath is where FileKeyStore persists the bearer token
	// between CLI invocations.
	KeystorePath string

	// Output is the default render format; --output on any command
	// overrides it for that invocation only.
	Output Output
}

// DefaultKeystorePath is used when no keystore path is configured.
const DefaultKeystorePath = "~/.config/anytype-go/token"

func setDefaults(v *viper.Viper) {
	d := transport.DefaultConfig()
	v.SetDefault("rest_base_url", d.RESTBaseURL)
	v.SetDefault("rpc_endpoint", transport.DefaultRPCEndpoint)
	v.SetDefault("timeout", d.Timeout.String())
	v.SetDefault("keystore_path", DefaultKeystorePath)
	v.SetDefault("output", string(OutputPretty))
}

// Load resolves a Config from v, which the caller has already pointed at
// a config file (if any) and primed with AutomaticEnv / BindPFlag calls.
// Load only reads back the resolved values; it does not itself touch the
// filesystem or environment.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		timeout = transport.DefaultConfig().Timeout
	}

	return Config{
		RESTBaseURL:  v.GetString("rest_base_url"),
		RPCEndpoint:  v.GetString("rpc_endpoint"),
		Timeout:      timeout,
		KeystorePath: v.GetString("keystore_path"),
		Output:       Output(v.GetString("output")),
	}, nil
}

// Transport converts c into the transport.Config the client constructor
// expects, carrying over the connection-pool defaults that aren't
// exposed as CLI settings.
func (c Config) Transport() transport.Config {
	tc := transport.DefaultConfig()
	tc.RESTBaseURL = c.RESTBaseURL
	tc.RPCEndpoint = c.RPCEndpoint
	tc.Timeout = c.Timeout
	return tc
}
