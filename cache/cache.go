// Package cache implements the space/type/property cache and the
// key-or-id resolver helpers built on top of it (C6). Three maps, each
// guarded by its own short-held mutex: a global spaces list, and
// per-space types/properties lists. There is no TTL and no background
// refresh; entries live until an explicit Clear* call or until a
// mutation performed through this client evicts the affected map.
package cache

import (
	"sync"

	"github.com/anytype-sdk/anytype-go/model"
)

// Cache holds spaces, per-space types, and per-space properties behind
// independent locks. The zero value is not usable; use New.
type Cache struct {
	spacesMu sync.Mutex
	spaces   []model.Space
	haveAll  bool // spaces list has been fully populated by ListSpaces

	typesMu sync.Mutex
	types   map[string][]model.Type

	propsMu sync.Mutex
	props   map[string][]model.Property
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{
		types: make(map[string][]model.Type),
		props: make(map[string][]model.Property),
	}
}

// Spaces returns the cached spaces list and whether it has been
// populated by a prior SetSpaces call.
func (c *Cache) Spaces() ([]model.Space, bool) {
	c.spacesMu.Lock()
	defer c.spacesMu.Unlock()
	if !c.haveAll {
		return nil, false
	}
	out := make([]model.Space, len(c.spaces))
	copy(out, c.spaces)
	return out, true
}

// SetSpaces populates the spaces map, as done after ListSpaces.
func (c *Cache) SetSpaces(spaces []model.Space) {
	c.spacesMu.Lock()
	defer c.spacesMu.Unlock()
	c.spaces = append([]model.Space(nil), spaces...)
	c.haveAll = true
}

// ClearSpaces evicts the spaces map.
func (c *Cache) ClearSpaces() {
	c.spacesMu.Lock()
	defer c.spacesMu.Unlock()
	c.spaces = nil
	c.haveAll = false
}

// Types returns the cached type list for spaceID and whether it has been
// populated.
func (c *Cache) Types(spaceID string) ([]model.Type, bool) {
	c.typesMu.Lock()
	defer c.typesMu.Unlock()
	t, ok := c.types[spaceID]
	if !ok {
		return nil, false
	}
	out := make([]model.Type, len(t))
	copy(out, t)
	return out, true
}

// SetTypes populates the type list for spaceID. Concurrent warming is
// safe: if two callers miss at once, both may fetch and the later write
// simply overwrites the earlier, which is acceptable because the
// results are equivalent.
func (c *Cache) SetTypes(spaceID string, types []model.Type) {
	c.typesMu.Lock()
	defer c.typesMu.Unlock()
	c.types[spaceID] = append([]model.Type(nil), types...)
}

// ClearTypes evicts the type list for spaceID, or every space's type
// list if spaceID is empty.
func (c *Cache) ClearTypes(spaceID string) {
	c.typesMu.Lock()
	defer c.typesMu.Unlock()
	if spaceID == "" {
		c.types = make(map[string][]model.Type)
		return
	}
	delete(c.types, spaceID)
}

// Properties returns the cached property list for spaceID and whether
// it has been populated.
func (c *Cache) Properties(spaceID string) ([]model.Property, bool) {
	c.propsMu.Lock()
	defer c.propsMu.Unlock()
	p, ok := c.props[spaceID]
	if !ok {
		return nil, false
	}
	out := make([]model.Property, len(p))
	copy(out, p)
	return out, true
}

// SetProperties populates the property list for spaceID.
func (c *Cache) SetProperties(spaceID string, props []model.Property) {
	c.propsMu.Lock()
	defer c.propsMu.Unlock()
	c.props[spaceID] = append([]model.Property(nil), props...)
}

// ClearProperties evicts the property list for spaceID, or every
// space's property list if spaceID is empty.
func (c *Cache) ClearProperties(spaceID string) {
	c.propsMu.Lock()
	defer c.propsMu.Unlock()
	if spaceID == "" {
		c.props = make(map[string][]model.Property)
		return
	}
	delete(c.props, spaceID)
}

// ClearSpace evicts every map entry scoped to spaceID (types and
// properties), leaving the global spaces list untouched. Mutations on
// one space must never invalidate another's cache.
func (c *Cache) ClearSpace(spaceID string) {
	c.ClearTypes(spaceID)
	c.ClearProperties(spaceID)
}

// Clear evicts every map: spaces, and every space's types and
// properties.
func (c *Cache) Clear() {
	c.ClearSpaces()
	c.ClearTypes("")
	c.ClearProperties("")
}
