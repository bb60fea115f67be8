// Package client implements the entity repositories (C5): one builder
// per resource (spaces, types, properties, tags, objects, templates,
// members, views, search, archived), each returning a
// pagination.Result and routing key-or-id arguments through the cache
// resolver before ever touching the wire.
package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/filter"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/pagination"
	"github.com/anytype-sdk/anytype-go/transport"
)

// defaultLimit is used whenever a list builder's Limit is never called.
const defaultLimit = 100

// fullListLimit is the page size used to warm a cacheable resource's
// full list in one round trip, matching the *FromServer resolver-warming
// helpers in client.go.
const fullListLimit = 1000

// listPage issues a single GET against path, decoding the {data,
// pagination} envelope into T. query carries any filter/sort/search
// parameters beyond offset/limit; it may be nil.
func listPage[T any](ctx context.Context, rc *transport.RESTChannel, path string, query url.Values, offset, limit int) ([]T, pagination.Meta, error) {
	req := rc.Request(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	var env transport.ListEnvelope[T]
	resp, err := req.SetResult(&env).Get(path)
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

// rpcListRequest is the request body shape for an RPC-based list call,
// the streaming-transport equivalent of listPage's REST query string.
type rpcListRequest struct {
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
	Filters []string `json:"filters,omitempty"`
	Sort    string   `json:"sort,omitempty"`
}

// rpcListPage is listPage's RPC-channel counterpart, used by resources
// that live on the streaming transport (C9 chats) instead of REST.
func rpcListPage[T any](ctx context.Context, rpc *transport.RPCChannel, method string, filters []filter.Filter, sorts []model.Sort, offset, limit int) ([]T, pagination.Meta, error) {
	req := rpcListRequest{Offset: offset, Limit: limit}
	fs, err := encodeFilters(filters)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	req.Filters = fs
	req.Sort = encodeSort(sorts)

	var env transport.ListEnvelope[T]
	if err := rpc.Invoke(ctx, method, req, &env); err != nil {
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

// cacheSource lets a ListBuilder serve a cacheable resource (spaces,
// types, properties) from the shared C6 cache instead of the wire once
// warmed: an unfiltered, unsorted List() call populates it and every
// later unfiltered call returns from it until explicitly evicted.
type cacheSource[T any] struct {
	get func() ([]T, bool)
	set func([]T)
}

// ListBuilder is the shared shape behind every list endpoint: limit/
// offset, a flat (implicit-AND) filter list, and optional sorts. Its
// zero value is not usable; build one with newListBuilder or
// newRPCListBuilder.
type ListBuilder[T any] struct {
	offset   int
	limit    int
	limitSet bool

	filters []filter.Filter
	sorts   []model.Sort
	cache   *cacheSource[T]

	fetch func(ctx context.Context, filters []filter.Filter, sorts []model.Sort, offset, limit int) ([]T, pagination.Meta, error)
}

func newListBuilder[T any](rc *transport.RESTChannel, path string) *ListBuilder[T] {
	return &ListBuilder[T]{
		fetch: func(ctx context.Context, filters []filter.Filter, sorts []model.Sort, offset, limit int) ([]T, pagination.Meta, error) {
			q, err := encodeListQuery(filters, sorts)
			if err != nil {
				return nil, pagination.Meta{}, err
			}
			return listPage[T](ctx, rc, path, q, offset, limit)
		},
	}
}

// newRPCListBuilder is newListBuilder's counterpart for resources
// listed over the RPC channel (C9 chats) rather than REST.
func newRPCListBuilder[T any](rpc *transport.RPCChannel, method string) *ListBuilder[T] {
	return &ListBuilder[T]{
		fetch: func(ctx context.Context, filters []filter.Filter, sorts []model.Sort, offset, limit int) ([]T, pagination.Meta, error) {
			return rpcListPage[T](ctx, rpc, method, filters, sorts, offset, limit)
		},
	}
}

// Limit sets the page size. Passing 0 explicitly is a validation error
// at List() time, distinguishing "never called" (defaults to 100) from
// "called with zero" (rejected).
func (b *ListBuilder[T]) Limit(n int) *ListBuilder[T] {
	b.limit = n
	b.limitSet = true
	return b
}

// Offset sets the starting offset.
func (b *ListBuilder[T]) Offset(n int) *ListBuilder[T] {
	b.offset = n
	return b
}

// Filter appends one leaf filter; multiple calls compose as an implicit
// AND, matching the flat-list contract list endpoints accept.
func (b *ListBuilder[T]) Filter(f filter.Filter) *ListBuilder[T] {
	b.filters = append(b.filters, f)
	return b
}

// Filters appends every filter in fs.
func (b *ListBuilder[T]) Filters(fs []filter.Filter) *ListBuilder[T] {
	b.filters = append(b.filters, fs...)
	return b
}

// SortAsc appends an ascending sort on key.
func (b *ListBuilder[T]) SortAsc(key string) *ListBuilder[T] {
	b.sorts = append(b.sorts, model.Sort{PropertyKey: key, Direction: model.SortAsc})
	return b
}

// SortDesc appends a descending sort on key.
func (b *ListBuilder[T]) SortDesc(key string) *ListBuilder[T] {
	b.sorts = append(b.sorts, model.Sort{PropertyKey: key, Direction: model.SortDesc})
	return b
}

// encodeListQuery encodes the accumulated filters/sorts into the query
// string shape the REST surface expects: one repeated "filter"
// parameter per leaf in its "KEY[COND]=VALUE" text form, and a single
// comma-joined "sort" parameter with a "-" prefix for descending keys.
func encodeListQuery(filters []filter.Filter, sorts []model.Sort) (url.Values, error) {
	q := url.Values{}
	fs, err := encodeFilters(filters)
	if err != nil {
		return nil, err
	}
	for _, f := range fs {
		q.Add("filter", f)
	}
	if s := encodeSort(sorts); s != "" {
		q.Set("sort", s)
	}
	return q, nil
}

// encodeFilters validates and renders each leaf filter into its
// "KEY[COND]=VALUE" text form, shared by the REST query string and the
// RPC request body.
func encodeFilters(filters []filter.Filter) ([]string, error) {
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		out = append(out, filter.Format(f))
	}
	return out, nil
}

// encodeSort renders sorts into a single comma-joined string with a "-"
// prefix for descending keys, shared by the REST query string and the
// RPC request body.
func encodeSort(sorts []model.Sort) string {
	if len(sorts) == 0 {
		return ""
	}
	parts := make([]string, len(sorts))
	for i, s := range sorts {
		if s.Direction == model.SortDesc {
			parts[i] = "-" + s.PropertyKey
		} else {
			parts[i] = s.PropertyKey
		}
	}
	return strings.Join(parts, ",")
}

// List issues the request and returns a pagination.Result positioned at
// the builder's offset, with a fetcher closure that replays the same
// filters/sorts at later offsets for CollectAll/Stream.
//
// When the builder was constructed against a cacheable resource and no
// filter/sort was applied, List instead serves from (and, on a miss,
// warms) the shared cache: the first unfiltered call fetches the whole
// resource once at fullListLimit and stores it, every later unfiltered
// call slices the cached slice with no network round-trip.
func (b *ListBuilder[T]) List(ctx context.Context) (*pagination.Result[T], error) {
	if b.limitSet && b.limit == 0 {
		return nil, errs.Validation("limit must be greater than zero")
	}
	limit := b.limit
	if limit <= 0 {
		limit = defaultLimit
	}

	if b.cache != nil && len(b.filters) == 0 && len(b.sorts) == 0 {
		all, ok := b.cache.get()
		if !ok {
			fetched, _, err := b.fetch(ctx, nil, nil, 0, fullListLimit)
			if err != nil {
				return nil, err
			}
			b.cache.set(fetched)
			all = fetched
		}
		return pagination.FromSlice(all, b.offset, limit), nil
	}

	items, meta, err := b.fetch(ctx, b.filters, b.sorts, b.offset, limit)
	if err != nil {
		return nil, err
	}
	fetch := func(ctx context.Context, offset, limit int) ([]T, pagination.Meta, error) {
		return b.fetch(ctx, b.filters, b.sorts, offset, limit)
	}
	return pagination.New(items, meta, fetch), nil
}
