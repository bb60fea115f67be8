package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

// Templates returns a list builder over the template objects of
// typeKeyOrID within space. Templates are ordinary objects filtered down
// to a specific type; updates and deletes go through the objects API.
func (c *Client) Templates(space, typeKeyOrID string) *ListBuilder[model.Object] {
	path := "/v1/spaces/" + space + "/types/" + typeKeyOrID + "/templates"
	return newListBuilder[model.Object](c.Transport.REST, path)
}

// GetTemplate fetches the template identified by id within space and
// typeKeyOrID.
func (c *Client) GetTemplate(ctx context.Context, space, typeKeyOrID, id string) (model.Object, error) {
	var o model.Object
	path := "/v1/spaces/" + space + "/types/" + typeKeyOrID + "/templates/" + id
	resp, err := c.Transport.REST.Request(ctx).SetResult(&o).Get(path)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Object{}, errs.NotFoundAs(err, "template", id)
	}
	return o, nil
}
