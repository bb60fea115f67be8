package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/pagination"
	"github.com/anytype-sdk/anytype-go/transport"
)

// Spaces returns a list builder over every space the session can see.
// An unfiltered, unsorted List() populates the spaces cache and serves
// every subsequent unfiltered List() from it until evicted.
func (c *Client) Spaces() *ListBuilder[model.Space] {
	b := newListBuilder[model.Space](c.Transport.REST, "/v1/spaces")
	b.cache = &cacheSource[model.Space]{
		get: func() ([]model.Space, bool) { return c.cache.Spaces() },
		set: c.cache.SetSpaces,
	}
	return b
}

// ListSpaces is a convenience wrapper equivalent to
// Spaces().Offset(offset).Limit(limit).List(ctx), kept for callers that
// don't need filtering or sorting over spaces.
func (c *Client) ListSpaces(ctx context.Context, offset, limit int) (*pagination.Result[model.Space], error) {
	b := c.Spaces().Offset(offset)
	if limit > 0 {
		b = b.Limit(limit)
	}
	return b.List(ctx)
}

// GetSpace resolves keyOrID (name or id) and fetches that space. A hit
// in the spaces cache (warmed by a prior List() or resolve) is returned
// directly, with no network round-trip.
func (c *Client) GetSpace(ctx context.Context, keyOrID string) (model.Space, error) {
	id, err := c.resolver.ResolveSpaceID(ctx, keyOrID)
	if err != nil {
		return model.Space{}, err
	}
	if spaces, ok := c.cache.Spaces(); ok {
		for _, s := range spaces {
			if s.ID == id {
				return s, nil
			}
		}
	}
	var space model.Space
	resp, err := c.Transport.REST.Request(ctx).SetResult(&space).Get("/v1/spaces/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Space{}, errs.NotFoundAs(err, "space", keyOrID)
	}
	return space, nil
}

// NewSpaceBuilder accumulates fields for a space creation.
type NewSpaceBuilder struct {
	c           *Client
	name        string
	description string
}

// NewSpace starts a space-creation builder named name.
func (c *Client) NewSpace(name string) *NewSpaceBuilder {
	return &NewSpaceBuilder{c: c, name: name}
}

// Description sets the optional description field.
func (b *NewSpaceBuilder) Description(d string) *NewSpaceBuilder {
	b.description = d
	return b
}

// Create issues the write and invalidates the spaces cache so the next
// ListSpaces/GetSpace observes it.
func (b *NewSpaceBuilder) Create(ctx context.Context) (model.Space, error) {
	body := map[string]string{"name": b.name, "description": b.description}
	var space model.Space
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&space).Post("/v1/spaces")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Space{}, err
	}
	b.c.cache.ClearSpaces()
	return space, nil
}

// UpdateSpaceBuilder accumulates fields for a space rename/re-describe.
type UpdateSpaceBuilder struct {
	c           *Client
	keyOrID     string
	name        *string
	description *string
}

// UpdateSpace starts an update builder for keyOrID (name or id).
func (c *Client) UpdateSpace(keyOrID string) *UpdateSpaceBuilder {
	return &UpdateSpaceBuilder{c: c, keyOrID: keyOrID}
}

// Name sets a new name.
func (b *UpdateSpaceBuilder) Name(n string) *UpdateSpaceBuilder {
	b.name = &n
	return b
}

// Description sets a new description.
func (b *UpdateSpaceBuilder) Description(d string) *UpdateSpaceBuilder {
	b.description = &d
	return b
}

// Update resolves keyOrID, issues the write, and evicts the spaces
// cache so the renamed space is visible on the next list.
func (b *UpdateSpaceBuilder) Update(ctx context.Context) (model.Space, error) {
	id, err := b.c.resolver.ResolveSpaceID(ctx, b.keyOrID)
	if err != nil {
		return model.Space{}, err
	}
	body := map[string]any{}
	if b.name != nil {
		body["name"] = *b.name
	}
	if b.description != nil {
		body["description"] = *b.description
	}
	var space model.Space
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&space).Put("/v1/spaces/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Space{}, err
	}
	b.c.cache.ClearSpaces()
	return space, nil
}
