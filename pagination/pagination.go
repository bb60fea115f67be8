// Package pagination implements the list/streaming iteration contract
// shared by every list endpoint (C3): a page plus metadata, a
// collect-all helper that re-issues requests until exhausted, and a
// lazy, finite, non-restartable stream for one-at-a-time consumption.
package pagination

import "context"

// Meta is the pagination metadata a list response carries alongside its
// page of items.
type Meta struct {
	Total    int
	Offset   int
	Limit    int
	HasMore  bool
}

// Fetcher re-issues the original list request at a new offset. Entity
// repositories supply a closure over their own builder state; Result
// never needs to know what kind of request it is replaying.
type Fetcher[T any] func(ctx context.Context, offset, limit int) ([]T, Meta, error)

// Result is a single page of T plus enough state to replay the request
// at subsequent offsets via CollectAll or Stream.
type Result[T any] struct {
	Items      []T
	Pagination Meta

	fetch Fetcher[T]
}

// New wraps a page and its fetcher into a Result.
func New[T any](items []T, meta Meta, fetch Fetcher[T]) *Result[T] {
	return &Result[T]{Items: items, Pagination: meta, fetch: fetch}
}

// FromSlice builds a Result over an already-fully-fetched in-memory
// slice, slicing out the page at offset/limit and replaying further
// pages from the same slice rather than the wire. Used by callers that
// cache a resource's full list (C6) and want List()/CollectAll/Stream
// to behave identically whether the data came from cache or network.
func FromSlice[T any](all []T, offset, limit int) *Result[T] {
	fetch := func(_ context.Context, offset, limit int) ([]T, Meta, error) {
		page, meta := sliceAt(all, offset, limit)
		return page, meta, nil
	}
	page, meta := sliceAt(all, offset, limit)
	return &Result[T]{Items: page, Pagination: meta, fetch: fetch}
}

func sliceAt[T any](all []T, offset, limit int) ([]T, Meta) {
	total := len(all)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []T{}, Meta{Total: total, Offset: offset, Limit: limit, HasMore: false}
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := append([]T(nil), all[offset:end]...)
	return page, Meta{Total: total, Offset: offset, Limit: limit, HasMore: end < total}
}

// CollectAll re-issues the request, advancing offset by limit, until the
// server reports no more items — either HasMore is false or a page comes
// back shorter than the requested limit — and returns every item
// concatenated in arrival order. Two calls with identical parameters
// over a quiescent server return identical items by id; under
// concurrent mutation, items may be duplicated or skipped across pages.
func (r *Result[T]) CollectAll(ctx context.Context) ([]T, error) {
	all := make([]T, 0, r.Pagination.Total)
	all = append(all, r.Items...)

	offset := r.Pagination.Offset + len(r.Items)
	limit := r.Pagination.Limit
	hasMore := r.Pagination.HasMore && len(r.Items) == limit

	for hasMore {
		items, meta, err := r.fetch(ctx, offset, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		offset += len(items)
		hasMore = meta.HasMore && len(items) == limit && len(items) > 0
	}
	return all, nil
}

// Stream returns a lazy, finite sequence of T built from the same
// request-replay logic as CollectAll, yielding one item at a time
// instead of materializing the whole list. It is not restartable: once
// drained (or canceled via ctx), a new Stream call is required. An error
// on any page terminates the stream with that error, delivered as the
// final receive on the returned error channel.
func (r *Result[T]) Stream(ctx context.Context) (<-chan T, <-chan error) {
	items := make(chan T)
	errc := make(chan error, 1)

	go func() {
		defer close(items)
		defer close(errc)

		for _, it := range r.Items {
			select {
			case items <- it:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}

		offset := r.Pagination.Offset + len(r.Items)
		limit := r.Pagination.Limit
		hasMore := r.Pagination.HasMore && len(r.Items) == limit

		for hasMore {
			page, meta, err := r.fetch(ctx, offset, limit)
			if err != nil {
				errc <- err
				return
			}
			for _, it := range page {
				select {
				case items <- it:
				case <-ctx.Done():
					errc <- ctx.Err()
					return
				}
			}
			offset += len(page)
			hasMore = meta.HasMore && len(page) == limit && len(page) > 0
		}
	}()

	return items, errc
}
