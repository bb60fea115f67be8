package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/filter"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

type space = model.Space

func newTestRESTChannel(t *testing.T, handler http.HandlerFunc) *transport.RESTChannel {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ks := transport.NewMemoryKeyStore()
	require.NoError(t, ks.Store(context.Background(), "test-token"))

	cfg := transport.DefaultConfig()
	cfg.RESTBaseURL = srv.URL
	return transport.NewRESTChannel(cfg, ks)
}

func TestListBuilder_AttachesBearerTokenAndDecodesEnvelope(t *testing.T) {
	var gotAuth string
	rc := newTestRESTChannel(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []space{{ID: "s1", Name: "Personal"}},
			"pagination": map[string]any{
				"total": 1, "offset": 0, "limit": 100, "has_more": false,
			},
		})
	})

	b := newListBuilder[space](rc, "/v1/spaces")
	result, err := b.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "s1", result.Items[0].ID)
	assert.Equal(t, 1, result.Pagination.Total)
}

func TestListBuilder_LimitZeroIsValidationError(t *testing.T) {
	rc := newTestRESTChannel(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("must not reach the server when limit=0 is rejected at the builder")
	})
	b := newListBuilder[space](rc, "/v1/spaces").Limit(0)
	_, err := b.List(context.Background())
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindValidation, e.Kind)
}

func TestListBuilder_EncodesFiltersAndSorts(t *testing.T) {
	var gotFilters []string
	var gotSort string
	rc := newTestRESTChannel(t, func(w http.ResponseWriter, r *http.Request) {
		gotFilters = r.URL.Query()["filter"]
		gotSort = r.URL.Query().Get("sort")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data":       []space{},
			"pagination": map[string]any{"total": 0, "offset": 0, "limit": 100, "has_more": false},
		})
	})

	b := newListBuilder[space](rc, "/v1/spaces").
		Filter(filter.Checkbox("archived", false)).
		SortDesc("created_at")
	_, err := b.List(context.Background())
	require.NoError(t, err)

	require.Len(t, gotFilters, 1)
	assert.Equal(t, "archived[eq]=false", gotFilters[0])
	assert.Equal(t, "-created_at", gotSort)
}

func TestListBuilder_CollectAllAcrossPages(t *testing.T) {
	calls := 0
	rc := newTestRESTChannel(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		offset := r.URL.Query().Get("offset")
		w.Header().Set("Content-Type", "application/json")
		switch offset {
		case "0":
			json.NewEncoder(w).Encode(map[string]any{
				"data":       []space{{ID: "s1"}, {ID: "s2"}},
				"pagination": map[string]any{"total": 3, "offset": 0, "limit": 2, "has_more": true},
			})
		default:
			json.NewEncoder(w).Encode(map[string]any{
				"data":       []space{{ID: "s3"}},
				"pagination": map[string]any{"total": 3, "offset": 2, "limit": 2, "has_more": false},
			})
		}
	})

	result, err := newListBuilder[space](rc, "/v1/spaces").Limit(2).List(context.Background())
	require.NoError(t, err)

	all, err := result.CollectAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2, calls)
}

func TestListBuilder_SurfacesNotFoundOn404(t *testing.T) {
	rc := newTestRESTChannel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"code": 404, "message": "space not found"})
	})

	_, err := newListBuilder[space](rc, "/v1/spaces/missing").List(context.Background())
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindNotFound, e.Kind, "a 404 must classify as NotFound so verify.Do treats it as retryable")
	assert.True(t, errs.Retryable(err))
}

func TestListBuilder_SurfacesAPIErrorOnNon404StructuredBody(t *testing.T) {
	rc := newTestRESTChannel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"code": 500, "message": "internal error"})
	})

	_, err := newListBuilder[space](rc, "/v1/spaces").List(context.Background())
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindAPIError, e.Kind)
	assert.Equal(t, 500, e.Code)
}
