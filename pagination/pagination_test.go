package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer hands out ids [0, total) in pages of page.limit, mimicking
// a quiescent server: two identical enumerations return identical ids.
type fakeServer struct {
	total   int
	pageReq int
}

func (s *fakeServer) fetch(ctx context.Context, offset, limit int) ([]int, Meta, error) {
	s.pageReq++
	end := offset + limit
	if end > s.total {
		end = s.total
	}
	if offset >= s.total {
		return nil, Meta{Total: s.total, Offset: offset, Limit: limit, HasMore: false}, nil
	}
	items := make([]int, 0, end-offset)
	for i := offset; i < end; i++ {
		items = append(items, i)
	}
	return items, Meta{Total: s.total, Offset: offset, Limit: limit, HasMore: end < s.total}, nil
}

func firstPage(srv *fakeServer, limit int) *Result[int] {
	items, meta, _ := srv.fetch(context.Background(), 0, limit)
	return New(items, meta, srv.fetch)
}

func TestCollectAll_IssuesExpectedRequestCount(t *testing.T) {
	srv := &fakeServer{total: 5}
	r := firstPage(srv, 2)

	all, err := r.CollectAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, all)
	// first page (during firstPage) + 2 more pages via CollectAll = 3 total
	assert.Equal(t, 3, srv.pageReq)
}

func TestCollectAll_EmptyResult(t *testing.T) {
	srv := &fakeServer{total: 0}
	r := firstPage(srv, 10)
	all, err := r.CollectAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCollectAll_RepeatedCallsAreIdempotent(t *testing.T) {
	srv := &fakeServer{total: 5}
	r1 := firstPage(srv, 2)
	all1, err := r1.CollectAll(context.Background())
	require.NoError(t, err)

	r2 := firstPage(srv, 2)
	all2, err := r2.CollectAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, all1, all2)
}

func TestCollectAll_PropagatesFetchError(t *testing.T) {
	boom := errors.New("boom")
	r := New([]int{1, 2}, Meta{Total: 5, Offset: 0, Limit: 2, HasMore: true},
		func(ctx context.Context, offset, limit int) ([]int, Meta, error) {
			return nil, Meta{}, boom
		})
	_, err := r.CollectAll(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStream_MatchesCollectAll(t *testing.T) {
	srv := &fakeServer{total: 5}
	r := firstPage(srv, 2)
	all, err := r.CollectAll(context.Background())
	require.NoError(t, err)

	srv2 := &fakeServer{total: 5}
	r2 := firstPage(srv2, 2)
	items, errc := r2.Stream(context.Background())

	var streamed []int
	for it := range items {
		streamed = append(streamed, it)
	}
	require.NoError(t, <-errc)
	assert.Equal(t, all, streamed)
}

func TestStream_TerminatesOnError(t *testing.T) {
	boom := errors.New("boom")
	r := New([]int{1}, Meta{Total: 5, Offset: 0, Limit: 1, HasMore: true},
		func(ctx context.Context, offset, limit int) ([]int, Meta, error) {
			return nil, Meta{}, boom
		})
	items, errc := r.Stream(context.Background())

	var got []int
	for it := range items {
		got = append(got, it)
	}
	assert.Equal(t, []int{1}, got)
	assert.ErrorIs(t, <-errc, boom)
}
