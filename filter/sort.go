package filter

import "github.com/anytype-sdk/anytype-go/model"

// SortBuilder accumulates Sort entries for a list/search builder's
// sort_asc/sort_desc chain.
type SortBuilder struct {
	sorts []model.Sort
}

// Asc appends an ascending sort on key.
func (b *SortBuilder) Asc(key string) *SortBuilder {
	b.sorts = append(b.sorts, model.Sort{PropertyKey: key, Direction: model.SortAsc})
	return b
}

// Desc appends a descending sort on key.
func (b *SortBuilder) Desc(key string) *SortBuilder {
	b.sorts = append(b.sorts, model.Sort{PropertyKey: key, Direction: model.SortDesc})
	return b
}

// Sorts returns the accumulated sort list.
func (b *SortBuilder) Sorts() []model.Sort { return b.sorts }
