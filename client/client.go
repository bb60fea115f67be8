package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/cache"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
	"github.com/anytype-sdk/anytype-go/verify"
)

// Client is the top-level handle a CLI command or library caller holds:
// one transport.Client (REST+RPC+keystore), one cache shared by every
// repository method, and the verification config new writes are checked
// against.
type Client struct {
	Transport *transport.Client
	cache     *cache.Cache
	resolver  *cache.Resolver
	Verify    verify.Config
}

// New wires a Client against cfg and ks.
func New(cfg transport.Config, ks transport.KeyStore) (*Client, error) {
	tr, err := transport.New(cfg, ks)
	if err != nil {
		return nil, err
	}
	c := &Client{
		Transport: tr,
		cache:     cache.New(),
		Verify:    verify.DefaultConfig(),
	}
	c.resolver = cache.NewResolver(c.cache, c, c, c)
	return c, nil
}

// Close releases the RPC connection.
func (c *Client) Close() error { return c.Transport.Close() }

// ClearCache evicts every cached space/type/property list, forcing the
// next resolve or list call to warm from the server.
func (c *Client) ClearCache() { c.cache.Clear() }

// --- cache.SpaceLister / TypeLister / PropertyLister / TagLister ---
// These bypass the cache entirely and always hit the wire; the
// resolver calls them only on a cache miss.

func (c *Client) ListSpacesFromServer(ctx context.Context) ([]model.Space, error) {
	items, _, err := listPage[model.Space](ctx, c.Transport.REST, "/v1/spaces", nil, 0, 1000)
	return items, err
}

func (c *Client) ListTypesFromServer(ctx context.Context, spaceID string) ([]model.Type, error) {
	items, _, err := listPage[model.Type](ctx, c.Transport.REST, "/v1/spaces/"+spaceID+"/types", nil, 0, 1000)
	return items, err
}

func (c *Client) ListPropertiesFromServer(ctx context.Context, spaceID string) ([]model.Property, error) {
	items, _, err := listPage[model.Property](ctx, c.Transport.REST, "/v1/spaces/"+spaceID+"/properties", nil, 0, 1000)
	return items, err
}

func (c *Client) ListTagsFromServer(ctx context.Context, spaceID, propertyID string) ([]model.Tag, error) {
	items, _, err := listPage[model.Tag](ctx, c.Transport.REST, "/v1/spaces/"+spaceID+"/properties/"+propertyID+"/tags", nil, 0, 1000)
	return items, err
}
