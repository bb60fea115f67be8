package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

// ListViews returns the saved views of a set or collection identified by
// listID within space.
func (c *Client) ListViews(ctx context.Context, space, listID string) ([]model.View, error) {
	var views []model.View
	resp, err := c.Transport.REST.Request(ctx).SetResult(&views).
		Get("/v1/spaces/" + space + "/lists/" + listID + "/views")
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return views, nil
}

// ViewObjectsBuilder lists the objects surfaced by a set or collection,
// optionally scoped to one of its saved views.
type ViewObjectsBuilder struct {
	rc     *transport.RESTChannel
	space  string
	listID string
	viewID string
}

// ViewObjects starts a builder over the objects of listID within space.
func (c *Client) ViewObjects(space, listID string) *ViewObjectsBuilder {
	return &ViewObjectsBuilder{rc: c.Transport.REST, space: space, listID: listID}
}

// View restricts the listing to a single saved view.
func (b *ViewObjectsBuilder) View(viewID string) *ViewObjectsBuilder {
	b.viewID = viewID
	return b
}

// List issues the request and returns a paginated object list.
func (b *ViewObjectsBuilder) List() *ListBuilder[model.Object] {
	path := "/v1/spaces/" + b.space + "/lists/" + b.listID + "/objects"
	if b.viewID != "" {
		path = "/v1/spaces/" + b.space + "/lists/" + b.listID + "/views/" + b.viewID + "/objects"
	}
	return newListBuilder[model.Object](b.rc, path)
}

// ViewAddObjects adds the given object ids to listID within space.
func (c *Client) ViewAddObjects(ctx context.Context, space, listID string, objectIDs []string) error {
	body := map[string]any{"object_ids": objectIDs}
	resp, err := c.Transport.REST.Request(ctx).SetBody(body).
		Post("/v1/spaces/" + space + "/lists/" + listID + "/objects")
	_, err = transport.CheckResponse(resp, err)
	return err
}

// ViewRemoveObject removes a single object id from listID within space.
func (c *Client) ViewRemoveObject(ctx context.Context, space, listID, objectID string) error {
	resp, err := c.Transport.REST.Request(ctx).
		Delete("/v1/spaces/" + space + "/lists/" + listID + "/objects/" + objectID)
	_, err = transport.CheckResponse(resp, err)
	return err
}
