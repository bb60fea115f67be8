// Package transport holds the transport duality at the heart of the
// client (C2): one REST channel over HTTPS/JSON, and one long-lived RPC
// channel over HTTP/2 with length-prefixed binary frames. Both attach a
// bearer token to every outbound request from a single keystore; the
// RPC channel additionally requires a session minted from an account
// key, app key, mnemonic, or refresh token before it can be used.
package transport

import "time"

// Config configures both channels. REST and RPC are independent — a
// build that only needs the REST surface can leave RPCEndpoint empty and
// never call NewRPCChannel.
type Config struct {
	// RESTBaseURL is the base URL of the REST/JSON API, e.g.
	// "http://127.0.0.1:31009".
	RESTBaseURL string

	// RPCEndpoint is the gRPC endpoint, e.g. "http://127.0.0.1:31010".
	// NewRPCChannel dials it as given; an empty value is not replaced
	// by a default or by an environment variable at this layer.
	RPCEndpoint string

	// Timeout bounds a single REST round trip. RPC calls are bounded
	// only by the caller's context. It does not bound verification
	// (package verify carries its own timeout) or the chat subscription
	// engine's long-lived stream.
	Timeout time.Duration

	// MaxIdleConns and MaxIdleConnsPerHost configure the REST client's
	// connection pool.
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// DefaultRPCEndpoint is the RPCEndpoint that DefaultConfig fills in.
const DefaultRPCEndpoint = "http://127.0.0.1:31010"

// DefaultConfig returns a Config with sensible defaults for local
// development against a server on localhost.
func DefaultConfig() Config {
	return Config{
		RESTBaseURL:         "http://127.0.0.1:31009",
		RPCEndpoint:         DefaultRPCEndpoint,
		Timeout:             30 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}
}
