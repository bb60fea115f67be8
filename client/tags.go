package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/cache"
	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

// Tags returns a list builder over the tags of a select/multi_select
// property. Tag lists are never cached, so every List() call issues a
// fresh request regardless of the resolver's state.
func (c *Client) Tags(space, propertyKeyOrID string) *ListBuilder[model.Tag] {
	path := "/v1/spaces/" + space + "/properties/" + propertyKeyOrID + "/tags"
	return newListBuilder[model.Tag](c.Transport.REST, path)
}

// GetTag resolves propertyKeyOrID and tagKeyOrID and fetches that tag.
func (c *Client) GetTag(ctx context.Context, space, propertyKeyOrID, tagKeyOrID string) (model.Tag, error) {
	propID, err := c.resolver.ResolvePropertyID(ctx, space, propertyKeyOrID)
	if err != nil {
		return model.Tag{}, err
	}
	tagID, err := cache.ResolvePropertyTag(ctx, c, space, propID, tagKeyOrID)
	if err != nil {
		return model.Tag{}, err
	}
	var t model.Tag
	resp, err := c.Transport.REST.Request(ctx).SetResult(&t).
		Get("/v1/spaces/" + space + "/properties/" + propID + "/tags/" + tagID)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Tag{}, errs.NotFoundAs(err, "tag", tagKeyOrID)
	}
	return t, nil
}

// NewTagBuilder accumulates fields for a tag creation. A tag always
// belongs to a single property and carries a name and color.
type NewTagBuilder struct {
	c       *Client
	space   string
	propKey string
	name    string
	color   string
}

// NewTag starts a tag-creation builder on propertyKeyOrID within space,
// named name, with the given color.
func (c *Client) NewTag(space, propertyKeyOrID, name, color string) *NewTagBuilder {
	return &NewTagBuilder{c: c, space: space, propKey: propertyKeyOrID, name: name, color: color}
}

// Create resolves the owning property, issues the write, and returns the
// created tag. Tags are never cached, so there is nothing to evict.
func (b *NewTagBuilder) Create(ctx context.Context) (model.Tag, error) {
	propID, err := b.c.resolver.ResolvePropertyID(ctx, b.space, b.propKey)
	if err != nil {
		return model.Tag{}, err
	}
	body := map[string]string{"property_id": propID, "name": b.name, "color": b.color}
	var t model.Tag
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&t).
		Post("/v1/spaces/" + b.space + "/properties/" + propID + "/tags")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Tag{}, err
	}
	return t, nil
}

// UpdateTagBuilder accumulates fields for a tag update.
type UpdateTagBuilder struct {
	c       *Client
	space   string
	propKey string
	tagKey  string
	name    *string
	color   *string
}

// UpdateTag starts an update builder for tagKeyOrID on propertyKeyOrID
// within space.
func (c *Client) UpdateTag(space, propertyKeyOrID, tagKeyOrID string) *UpdateTagBuilder {
	return &UpdateTagBuilder{c: c, space: space, propKey: propertyKeyOrID, tagKey: tagKeyOrID}
}

// Name sets a new tag name.
func (b *UpdateTagBuilder) Name(n string) *UpdateTagBuilder {
	b.name = &n
	return b
}

// Color sets a new tag color.
func (b *UpdateTagBuilder) Color(col string) *UpdateTagBuilder {
	b.color = &col
	return b
}

// Update resolves the property and tag, issues the write, and returns
// the updated tag.
func (b *UpdateTagBuilder) Update(ctx context.Context) (model.Tag, error) {
	propID, err := b.c.resolver.ResolvePropertyID(ctx, b.space, b.propKey)
	if err != nil {
		return model.Tag{}, err
	}
	tagID, err := cache.ResolvePropertyTag(ctx, b.c, b.space, propID, b.tagKey)
	if err != nil {
		return model.Tag{}, err
	}
	body := map[string]any{}
	if b.name != nil {
		body["name"] = *b.name
	}
	if b.color != nil {
		body["color"] = *b.color
	}
	var t model.Tag
	resp, err := b.c.Transport.REST.Request(ctx).SetBody(body).SetResult(&t).
		Put("/v1/spaces/" + b.space + "/properties/" + propID + "/tags/" + tagID)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Tag{}, err
	}
	return t, nil
}

// DeleteTag resolves propertyKeyOrID and tagKeyOrID, deletes the tag,
// and returns the last-known record.
func (c *Client) DeleteTag(ctx context.Context, space, propertyKeyOrID, tagKeyOrID string) (model.Tag, error) {
	propID, err := c.resolver.ResolvePropertyID(ctx, space, propertyKeyOrID)
	if err != nil {
		return model.Tag{}, err
	}
	tagID, err := cache.ResolvePropertyTag(ctx, c, space, propID, tagKeyOrID)
	if err != nil {
		return model.Tag{}, err
	}
	var t model.Tag
	resp, err := c.Transport.REST.Request(ctx).SetResult(&t).
		Delete("/v1/spaces/" + space + "/properties/" + propID + "/tags/" + tagID)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Tag{}, err
	}
	return t, nil
}
