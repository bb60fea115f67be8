package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
)

type fakeLister struct {
	spaces     []model.Space
	types      []model.Type
	props      []model.Property
	tags       []model.Tag
	spaceCalls int
	typeCalls  int
	propCalls  int
	tagCalls   int
}

func (f *fakeLister) ListSpacesFromServer(ctx context.Context) ([]model.Space, error) {
	f.spaceCalls++
	return f.spaces, nil
}

func (f *fakeLister) ListTypesFromServer(ctx context.Context, spaceID string) ([]model.Type, error) {
	f.typeCalls++
	return f.types, nil
}

func (f *fakeLister) ListPropertiesFromServer(ctx context.Context, spaceID string) ([]model.Property, error) {
	f.propCalls++
	return f.props, nil
}

func (f *fakeLister) ListTagsFromServer(ctx context.Context, spaceID, propertyID string) ([]model.Tag, error) {
	f.tagCalls++
	return f.tags, nil
}

const objectID = "abcdef0123456789abcdef01" // 24 lowercase-hex chars, satisfies IsObjectID

func TestResolver_IDInputNeverCallsServer(t *testing.T) {
	f := &fakeLister{}
	r := NewResolver(New(), f, f, f)

	id, err := r.ResolveSpaceID(context.Background(), objectID)
	require.NoError(t, err)
	assert.Equal(t, objectID, id)
	assert.Zero(t, f.spaceCalls)
}

func TestResolver_ResolveSpaceID_WarmsOnceThenCachesHit(t *testing.T) {
	f := &fakeLister{spaces: []model.Space{{ID: "s1", Name: "Personal"}}}
	r := NewResolver(New(), f, f, f)

	id, err := r.ResolveSpaceID(context.Background(), "Personal")
	require.NoError(t, err)
	assert.Equal(t, "s1", id)
	assert.Equal(t, 1, f.spaceCalls)

	_, err = r.ResolveSpaceID(context.Background(), "Personal")
	require.NoError(t, err)
	assert.Equal(t, 1, f.spaceCalls, "second resolve must hit the warmed cache")
}

func TestResolver_ResolveSpaceID_NotFound(t *testing.T) {
	f := &fakeLister{}
	r := NewResolver(New(), f, f, f)
	_, err := r.ResolveSpaceID(context.Background(), "nope")
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindNotFound, e.Kind)
}

func TestResolver_ResolveTypeID_ScopedPerSpace(t *testing.T) {
	f := &fakeLister{types: []model.Type{{ID: "t1", Key: "page"}}}
	c := New()
	r := NewResolver(c, f, f, f)

	id, err := r.ResolveTypeID(context.Background(), "space-a", "page")
	require.NoError(t, err)
	assert.Equal(t, "t1", id)
	assert.Equal(t, 1, f.typeCalls)

	// a different space is a fresh cache miss, even for the same key
	_, err = r.ResolveTypeID(context.Background(), "space-b", "page")
	require.NoError(t, err)
	assert.Equal(t, 2, f.typeCalls)
}

func TestResolver_LookupTypeByKey_WarmsAndScans(t *testing.T) {
	f := &fakeLister{types: []model.Type{{ID: "t1", Key: "page"}, {ID: "t2", Key: "note"}}}
	r := NewResolver(New(), f, f, f)

	got, err := r.LookupTypeByKey(context.Background(), "s1", "note")
	require.NoError(t, err)
	assert.Equal(t, "t2", got.ID)
	assert.Equal(t, 1, f.typeCalls)

	_, err = r.LookupTypeByKey(context.Background(), "s1", "missing")
	require.Error(t, err)
	assert.Equal(t, 1, f.typeCalls, "a miss on an already-warmed cache must not re-list")
}

func TestResolvePropertyTag_NeverCached(t *testing.T) {
	f := &fakeLister{tags: []model.Tag{{ID: "tag1", Key: "urgent"}}}

	_, err := ResolvePropertyTag(context.Background(), f, "s1", "p1", "urgent")
	require.NoError(t, err)
	_, err = ResolvePropertyTag(context.Background(), f, "s1", "p1", "urgent")
	require.NoError(t, err)
	// tags are never cached: both calls must hit the server
	assert.Equal(t, 2, f.tagCalls)
}
