package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

// Types returns a list builder over the types defined in space. An
// unfiltered, unsorted List() populates the per-space types cache and
// serves every subsequent unfiltered List() from it until evicted.
func (c *Client) Types(space string) *ListBuilder[model.Type] {
	b := newListBuilder[model.Type](c.Transport.REST, "/v1/spaces/"+space+"/types")
	b.cache = &cacheSource[model.Type]{
		get: func() ([]model.Type, bool) { return c.cache.Types(space) },
		set: func(t []model.Type) { c.cache.SetTypes(space, t) },
	}
	return b
}

// GetType resolves keyOrID within space and fetches that type. A hit in
// the per-space types cache (warmed by a prior List() or resolve) is
// returned directly, with no network round-trip.
func (c *Client) GetType(ctx context.Context, space, keyOrID string) (model.Type, error) {
	id, err := c.resolver.ResolveTypeID(ctx, space, keyOrID)
	if err != nil {
		return model.Type{}, err
	}
	if types, ok := c.cache.Types(space); ok {
		for _, t := range types {
			if t.ID == id {
				return t, nil
			}
		}
	}
	var t model.Type
	resp, err := c.Transport.REST.Request(ctx).SetResult(&t).Get("/v1/spaces/" + space + "/types/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Type{}, errs.NotFoundAs(err, "type", keyOrID)
	}
	return t, nil
}

// LookupTypeByKey does a full (cached) list of space's types and selects
// the one whose Key matches key, warming the cache on a cold call and
// reusing it on every subsequent call until evicted.
func (c *Client) LookupTypeByKey(ctx context.Context, space, key string) (model.Type, error) {
	return c.resolver.LookupTypeByKey(ctx, space, key)
}

// NewTypeBuilder accumulates fields for a type creation.
type NewTypeBuilder struct {
	c      *Client
	space  string
	name   string
	key    string
	plural string
	layout model.Layout
	icon   string
}

// NewType starts a type-creation builder in space named name.
func (c *Client) NewType(space, name string) *NewTypeBuilder {
	return &NewTypeBuilder{c: c, space: space, name: name, layout: model.LayoutBasic}
}

func (b *NewTypeBuilder) Key(k string) *NewTypeBuilder       { b.key = k; return b }
func (b *NewTypeBuilder) Plural(p string) *NewTypeBuilder    { b.plural = p; return b }
func (b *NewTypeBuilder) Layout(l model.Layout) *NewTypeBuilder { b.layout = l; return b }
func (b *NewTypeBuilder) Icon(i string) *NewTypeBuilder      { b.icon = i; return b }

// Create issues the write and evicts space's types cache.
func (b *NewTypeBuilder) Create(ctx context.Context) (model.Type, error) {
	body := map[string]any{
		"name": b.name, "key": b.key, "plural": b.plural,
		"layout": b.layout, "icon": b.icon,
	}
	var t model.Type
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&t).
		Post("/v1/spaces/" + b.space + "/types")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Type{}, err
	}
	b.c.cache.ClearTypes(b.space)
	return t, nil
}

// UpdateTypeBuilder accumulates fields for a type update.
type UpdateTypeBuilder struct {
	c       *Client
	space   string
	keyOrID string
	name    *string
	plural  *string
	icon    *string
}

// UpdateType starts an update builder for keyOrID within space.
func (c *Client) UpdateType(space, keyOrID string) *UpdateTypeBuilder {
	return &UpdateTypeBuilder{c: c, space: space, keyOrID: keyOrID}
}

func (b *UpdateTypeBuilder) Name(n string) *UpdateTypeBuilder   { b.name = &n; return b }
func (b *UpdateTypeBuilder) Plural(p string) *UpdateTypeBuilder { b.plural = &p; return b }
func (b *UpdateTypeBuilder) Icon(i string) *UpdateTypeBuilder   { b.icon = &i; return b }

// Update resolves keyOrID, issues the write, and evicts space's types
// cache.
func (b *UpdateTypeBuilder) Update(ctx context.Context) (model.Type, error) {
	id, err := b.c.resolver.ResolveTypeID(ctx, b.space, b.keyOrID)
	if err != nil {
		return model.Type{}, err
	}
	body := map[string]any{}
	if b.name != nil {
		body["name"] = *b.name
	}
	if b.plural != nil {
		body["plural"] = *b.plural
	}
	if b.icon != nil {
		body["icon"] = *b.icon
	}
	var t model.Type
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&t).
		Put("/v1/spaces/" + b.space + "/types/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Type{}, err
	}
	b.c.cache.ClearTypes(b.space)
	return t, nil
}

// DeleteType resolves keyOrID within space, deletes it, evicts space's
// types cache, and returns the last-known record.
func (c *Client) DeleteType(ctx context.Context, space, keyOrID string) (model.Type, error) {
	id, err := c.resolver.ResolveTypeID(ctx, space, keyOrID)
	if err != nil {
		return model.Type{}, err
	}
	var t model.Type
	resp, err := c.Transport.REST.Request(ctx).SetResult(&t).
		Delete("/v1/spaces/" + space + "/types/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Type{}, err
	}
	c.cache.ClearTypes(space)
	return t, nil
}
