package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

// Properties returns a list builder over the properties defined in
// space. An unfiltered, unsorted List() populates the per-space
// properties cache and serves every subsequent unfiltered List() from
// it until evicted.
func (c *Client) Properties(space string) *ListBuilder[model.Property] {
	b := newListBuilder[model.Property](c.Transport.REST, "/v1/spaces/"+space+"/properties")
	b.cache = &cacheSource[model.Property]{
		get: func() ([]model.Property, bool) { return c.cache.Properties(space) },
		set: func(p []model.Property) { c.cache.SetProperties(space, p) },
	}
	return b
}

// GetProperty resolves keyOrID within space and fetches that property.
// A hit in the per-space properties cache (warmed by a prior List() or
// resolve) is returned directly, with no network round-trip.
func (c *Client) GetProperty(ctx context.Context, space, keyOrID string) (model.Property, error) {
	id, err := c.resolver.ResolvePropertyID(ctx, space, keyOrID)
	if err != nil {
		return model.Property{}, err
	}
	if props, ok := c.cache.Properties(space); ok {
		for _, p := range props {
			if p.ID == id {
				return p, nil
			}
		}
	}
	var p model.Property
	resp, err := c.Transport.REST.Request(ctx).SetResult(&p).Get("/v1/spaces/" + space + "/properties/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Property{}, errs.NotFoundAs(err, "property", keyOrID)
	}
	return p, nil
}

// LookupPropertyByKey does a full (cached) list of space's properties
// and selects the one whose Key matches key.
func (c *Client) LookupPropertyByKey(ctx context.Context, space, key string) (model.Property, error) {
	return c.resolver.LookupPropertyByKey(ctx, space, key)
}

// NewPropertyBuilder accumulates fields for a property creation.
type NewPropertyBuilder struct {
	c      *Client
	space  string
	name   string
	key    string
	format model.PropertyFormat
}

// NewProperty starts a property-creation builder in space named name
// with the given format.
func (c *Client) NewProperty(space, name string, format model.PropertyFormat) *NewPropertyBuilder {
	return &NewPropertyBuilder{c: c, space: space, name: name, format: format}
}

// Key sets the stable key the property will be addressed by.
func (b *NewPropertyBuilder) Key(k string) *NewPropertyBuilder {
	b.key = k
	return b
}

// Create issues the write and evicts space's properties cache.
func (b *NewPropertyBuilder) Create(ctx context.Context) (model.Property, error) {
	body := map[string]any{"name": b.name, "key": b.key, "format": b.format}
	var p model.Property
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&p).
		Post("/v1/spaces/" + b.space + "/properties")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Property{}, err
	}
	b.c.cache.ClearProperties(b.space)
	return p, nil
}

// UpdatePropertyBuilder accumulates fields for a property update.
type UpdatePropertyBuilder struct {
	c       *Client
	space   string
	keyOrID string
	name    *string
}

// UpdateProperty starts an update builder for keyOrID within space.
func (c *Client) UpdateProperty(space, keyOrID string) *UpdatePropertyBuilder {
	return &UpdatePropertyBuilder{c: c, space: space, keyOrID: keyOrID}
}

// Name sets a new display name.
func (b *UpdatePropertyBuilder) Name(n string) *UpdatePropertyBuilder {
	b.name = &n
	return b
}

// Update resolves keyOrID, issues the write, and evicts space's
// properties cache.
func (b *UpdatePropertyBuilder) Update(ctx context.Context) (model.Property, error) {
	id, err := b.c.resolver.ResolvePropertyID(ctx, b.space, b.keyOrID)
	if err != nil {
		return model.Property{}, err
	}
	body := map[string]any{}
	if b.name != nil {
		body["name"] = *b.name
	}
	var p model.Property
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&p).
		Put("/v1/spaces/" + b.space + "/properties/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Property{}, err
	}
	b.c.cache.ClearProperties(b.space)
	return p, nil
}

// DeleteProperty resolves keyOrID within space, deletes it, evicts
// space's properties cache, and returns the last-known record.
func (c *Client) DeleteProperty(ctx context.Context, space, keyOrID string) (model.Property, error) {
	id, err := c.resolver.ResolvePropertyID(ctx, space, keyOrID)
	if err != nil {
		return model.Property{}, err
	}
	var p model.Property
	resp, err := c.Transport.REST.Request(ctx).SetResult(&p).
		Delete("/v1/spaces/" + space + "/properties/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Property{}, err
	}
	c.cache.ClearProperties(space)
	return p, nil
}
