package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpression_ToWire_Leaf(t *testing.T) {
	e := Leaf(Text("name", Contains, "Meeting"))
	w := e.ToWire()
	assert.Equal(t, "name", w["property_key"])
	assert.Equal(t, "contains", w["condition"])
	assert.Equal(t, "Meeting", w["value"])
}

func TestExpression_ToWire_OrOfContains(t *testing.T) {
	e := Or(
		Leaf(Text("name", Contains, "Meeting")),
		Leaf(Text("name", Contains, "Notes")),
	)
	w := e.ToWire()
	sub, ok := w["or"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, sub, 2)
	assert.Equal(t, "Meeting", sub[0]["value"])
	assert.Equal(t, "Notes", sub[1]["value"])
}

func TestExpression_ToExprAND_FlattensFilterList(t *testing.T) {
	e := ToExprAND([]Filter{
		Checkbox("archived", false),
		Text("name", Equal, "X"),
	})
	require.Len(t, e.And, 2)
	assert.Nil(t, e.Or)
	assert.Nil(t, e.Filter)
}

func TestExpression_Validate_PropagatesLeafError(t *testing.T) {
	bad := Filter{PropertyKey: "done", Kind: KindCheckbox, Condition: Contains}
	err := And(Leaf(Checkbox("ok", true)), Leaf(bad)).Validate()
	require.Error(t, err)
}

func TestSortBuilder_AccumulatesInOrder(t *testing.T) {
	var b SortBuilder
	b.Asc("name").Desc("created_at")
	sorts := b.Sorts()
	require.Len(t, sorts, 2)
	assert.Equal(t, "name", sorts[0].PropertyKey)
	assert.Equal(t, "created_at", sorts[1].PropertyKey)
}
