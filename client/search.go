package client

import (
	"context"
	"strconv"

	"github.com/anytype-sdk/anytype-go/filter"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/pagination"
	"github.com/anytype-sdk/anytype-go/transport"
)

// SearchBuilder accumulates search criteria before issuing a search,
// shared by SearchGlobal and SearchIn. Unlike ListBuilder, search
// accepts a full filter.Expression tree (and/or, not just a flat AND
// list), so it carries its own query logic instead of embedding
// ListBuilder.
type SearchBuilder struct {
	rc    *transport.RESTChannel
	path  string
	space string // empty for a global search

	text  string
	types []string
	expr  *filter.Expression

	offset int
	limit  int
}

// SearchGlobal starts a search builder scoped to every space the session
// can see.
func (c *Client) SearchGlobal() *SearchBuilder {
	return &SearchBuilder{rc: c.Transport.REST, path: "/v1/search"}
}

// SearchIn starts a search builder scoped to a single space.
func (c *Client) SearchIn(space string) *SearchBuilder {
	return &SearchBuilder{rc: c.Transport.REST, path: "/v1/spaces/" + space + "/search", space: space}
}

// Text sets the free-text query.
func (b *SearchBuilder) Text(q string) *SearchBuilder {
	b.text = q
	return b
}

// Types restricts results to objects whose type key is in typeKeys.
func (b *SearchBuilder) Types(typeKeys []string) *SearchBuilder {
	b.types = typeKeys
	return b
}

// Filters attaches a full filter expression tree.
func (b *SearchBuilder) Filters(expr filter.Expression) *SearchBuilder {
	b.expr = &expr
	return b
}

// Offset sets the starting offset.
func (b *SearchBuilder) Offset(n int) *SearchBuilder {
	b.offset = n
	return b
}

// Limit sets the page size; unset defaults to 100, matching every other
// list-shaped endpoint.
func (b *SearchBuilder) Limit(n int) *SearchBuilder {
	b.limit = n
	return b
}

func (b *SearchBuilder) body() (map[string]any, error) {
	body := map[string]any{}
	if b.text != "" {
		body["text"] = b.text
	}
	if len(b.types) > 0 {
		body["types"] = b.types
	}
	if b.expr != nil {
		if err := b.expr.Validate(); err != nil {
			return nil, err
		}
		body["filters"] = b.expr.ToWire()
	}
	return body, nil
}

func (b *SearchBuilder) fetchPage(ctx context.Context, offset, limit int) ([]model.Object, pagination.Meta, error) {
	reqBody, err := b.body()
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	var env transport.ListEnvelope[model.Object]
	resp, err := b.rc.Request(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetBody(reqBody).SetResult(&env).
		Post(b.path)
	if resp, err = transport.CheckResponse(resp, err); err != nil {
		return nil, pagination.Meta{}, err
	}

	meta := pagination.Meta{
		Total:   env.Pagination.Total,
		Offset:  env.Pagination.Offset,
		Limit:   env.Pagination.Limit,
		HasMore: env.Pagination.HasMore,
	}
	return env.Data, meta, nil
}

// Search issues the request and returns a paginated object result.
func (b *SearchBuilder) Search(ctx context.Context) (*pagination.Result[model.Object], error) {
	limit := b.limit
	if limit <= 0 {
		limit = defaultLimit
	}
	items, meta, err := b.fetchPage(ctx, b.offset, limit)
	if err != nil {
		return nil, err
	}
	return pagination.New(items, meta, b.fetchPage), nil
}
