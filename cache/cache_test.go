package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anytype-sdk/anytype-go/model"
)

func TestCache_SpacesRoundTrip(t *testing.T) {
	c := New()
	_, ok := c.Spaces()
	assert.False(t, ok, "empty cache has no spaces entry")

	c.SetSpaces([]model.Space{{ID: "s1", Name: "Personal"}})
	got, ok := c.Spaces()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)

	c.ClearSpaces()
	_, ok = c.Spaces()
	assert.False(t, ok)
}

func TestCache_TypesScopedPerSpace(t *testing.T) {
	c := New()
	c.SetTypes("space-a", []model.Type{{ID: "t1", Key: "page"}})
	c.SetTypes("space-b", []model.Type{{ID: "t2", Key: "note"}})

	a, ok := c.Types("space-a")
	require.True(t, ok)
	assert.Equal(t, "t1", a[0].ID)

	b, ok := c.Types("space-b")
	require.True(t, ok)
	assert.Equal(t, "t2", b[0].ID)

	// a mutation-driven eviction of one space must not affect the other
	c.ClearTypes("space-a")
	_, ok = c.Types("space-a")
	assert.False(t, ok)
	_, ok = c.Types("space-b")
	assert.True(t, ok, "space-b untouched by space-a's eviction")
}

func TestCache_ClearTypesEmptyStringClearsEverySpace(t *testing.T) {
	c := New()
	c.SetTypes("space-a", []model.Type{{ID: "t1"}})
	c.SetTypes("space-b", []model.Type{{ID: "t2"}})

	c.ClearTypes("")

	_, ok := c.Types("space-a")
	assert.False(t, ok)
	_, ok = c.Types("space-b")
	assert.False(t, ok)
}

func TestCache_ClearSpaceLeavesGlobalSpacesAlone(t *testing.T) {
	c := New()
	c.SetSpaces([]model.Space{{ID: "s1"}})
	c.SetTypes("s1", []model.Type{{ID: "t1"}})
	c.SetProperties("s1", []model.Property{{ID: "p1"}})

	c.ClearSpace("s1")

	_, ok := c.Types("s1")
	assert.False(t, ok)
	_, ok = c.Properties("s1")
	assert.False(t, ok)

	_, ok = c.Spaces()
	assert.True(t, ok, "ClearSpace must not evict the global spaces list")
}

func TestCache_ReturnsCopiesNotAliases(t *testing.T) {
	c := New()
	c.SetTypes("s1", []model.Type{{ID: "t1", Key: "page"}})

	got, _ := c.Types("s1")
	got[0].Key = "mutated"

	got2, _ := c.Types("s1")
	assert.Equal(t, "page", got2[0].Key, "mutating a returned slice must not alter the cache")
}
