package transport

import (
	"context"

	"github.com/anytype-sdk/anytype-go/errs"
)

// Client bundles both channels and the keystore they share. Entity
// repositories and the chat subscription engine are built on top of
// this, never directly on resty or grpc, so they stay agnostic of which
// concrete transport is in play.
type Client struct {
	REST *RESTChannel
	RPC  *RPCChannel
	Keys KeyStore
}

// New wires a Client from cfg and ks. The RPC channel is dialed lazily
// by grpc-go; a misconfigured or unreachable RPCEndpoint only surfaces
// once a streaming call is attempted.
func New(cfg Config, ks KeyStore) (*Client, error) {
	rpc, err := NewRPCChannel(cfg, ks)
	if err != nil {
		return nil, err
	}
	return &Client{
		REST: NewRESTChannel(cfg, ks),
		RPC:  rpc,
		Keys: ks,
	}, nil
}

// Close releases the RPC connection. The REST channel holds no
// long-lived resources beyond pooled idle connections, which the
// standard library reaps on its own.
func (c *Client) Close() error {
	if c.RPC == nil {
		return nil
	}
	return c.RPC.Close()
}

// Login mints a new session from exactly one credential and stores the
// resulting bearer token in the keystore, ready for every subsequent
// call.
func (c *Client) Login(ctx context.Context, source SessionSource, accountKey, appKey, mnemonic, refreshToken string) (Session, error) {
	sess, err := MintSession(ctx, c.REST, source, accountKey, appKey, mnemonic, refreshToken)
	if err != nil {
		return Session{}, err
	}
	if err := c.Keys.Store(ctx, sess.Token); err != nil {
		return Session{}, errs.Wrap(errs.KindKeyStore, "store minted session token", err)
	}
	return sess, nil
}

// Refresh mints a new session from the given refresh token and stores
// the new bearer token, used when a bearer token expires mid-session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	return c.Login(ctx, SourceRefreshToken, "", "", "", refreshToken)
}

// Logout clears the keystore.
func (c *Client) Logout(ctx context.Context) error {
	return c.Keys.Clear(ctx)
}
