package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

// Members returns a list builder over the members of space. Membership
// changes are server-side only (invite, role change); this client is
// read-only here.
func (c *Client) Members(space string) *ListBuilder[model.Member] {
	return newListBuilder[model.Member](c.Transport.REST, "/v1/spaces/"+space+"/members")
}

// GetMember fetches the member identified by id within space.
func (c *Client) GetMember(ctx context.Context, space, id string) (model.Member, error) {
	var m model.Member
	resp, err := c.Transport.REST.Request(ctx).SetResult(&m).Get("/v1/spaces/" + space + "/members/" + id)
	if _, err = transport.CheckResponse(resp, err); err != nil {
		return model.Member{}, errs.NotFoundAs(err, "member", id)
	}
	return m, nil
}
