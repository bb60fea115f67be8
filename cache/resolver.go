package cache

import (
	"context"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/model"
)

// SpaceLister, TypeLister, and PropertyLister are the minimal
// server-calling capabilities the resolver needs to warm a cold cache.
// The client package supplies implementations backed by the REST
// channel; tests supply fakes.
type SpaceLister interface {
	ListSpacesFromServer(ctx context.Context) ([]model.Space, error)
}

type TypeLister interface {
	ListTypesFromServer(ctx context.Context, spaceID string) ([]model.Type, error)
}

type PropertyLister interface {
	ListPropertiesFromServer(ctx context.Context, spaceID string) ([]model.Property, error)
}

// Resolver wraps a Cache with "resolve key-or-id, falling back to a
// full list" helpers. Each resolve function checks model.IsObjectID
// first; on a miss it warms (if necessary) and
// scans the relevant cache map.
type Resolver struct {
	cache *Cache
	sl    SpaceLister
	tl    TypeLister
	pl    PropertyLister
}

// NewResolver builds a Resolver over cache using sl/tl/pl to warm cold
// maps.
func NewResolver(cache *Cache, sl SpaceLister, tl TypeLister, pl PropertyLister) *Resolver {
	return &Resolver{cache: cache, sl: sl, tl: tl, pl: pl}
}

// ResolveSpaceID resolves keyOrID to a space id. If keyOrID already
// looks like an id, it is returned unchanged with no network call.
// Otherwise the spaces cache is warmed (if empty) and scanned by Name.
func (r *Resolver) ResolveSpaceID(ctx context.Context, keyOrID string) (string, error) {
	if model.IsObjectID(keyOrID) {
		return keyOrID, nil
	}
	spaces, ok := r.cache.Spaces()
	if !ok {
		list, err := r.sl.ListSpacesFromServer(ctx)
		if err != nil {
			return "", err
		}
		r.cache.SetSpaces(list)
		spaces = list
	}
	for _, s := range spaces {
		if s.Name == keyOrID {
			return s.ID, nil
		}
	}
	return "", errs.NotFound("space", keyOrID)
}

// ResolveTypeID resolves keyOrID to a space-local type id, warming and
// scanning the per-space types cache on a miss.
func (r *Resolver) ResolveTypeID(ctx context.Context, spaceID, keyOrID string) (string, error) {
	if model.IsObjectID(keyOrID) {
		return keyOrID, nil
	}
	types, ok := r.cache.Types(spaceID)
	if !ok {
		list, err := r.tl.ListTypesFromServer(ctx, spaceID)
		if err != nil {
			return "", err
		}
		r.cache.SetTypes(spaceID, list)
		types = list
	}
	for _, t := range types {
		if t.Key == keyOrID {
			return t.ID, nil
		}
	}
	return "", errs.NotFound("type", keyOrID)
}

// ResolvePropertyID resolves keyOrID to a space-local property id,
// warming and scanning the per-space properties cache on a miss.
func (r *Resolver) ResolvePropertyID(ctx context.Context, spaceID, keyOrID string) (string, error) {
	if model.IsObjectID(keyOrID) {
		return keyOrID, nil
	}
	props, ok := r.cache.Properties(spaceID)
	if !ok {
		list, err := r.pl.ListPropertiesFromServer(ctx, spaceID)
		if err != nil {
			return "", err
		}
		r.cache.SetProperties(spaceID, list)
		props = list
	}
	for _, p := range props {
		if p.Key == keyOrID {
			return p.ID, nil
		}
	}
	return "", errs.NotFound("property", keyOrID)
}

// TagLister fetches the (uncached) tag list for a property, used by
// ResolvePropertyTag.
type TagLister interface {
	ListTagsFromServer(ctx context.Context, spaceID, propertyID string) ([]model.Tag, error)
}

// ResolvePropertyTag resolves keyOrID to a tag id belonging to property
// prop. Tags are never cached (too small and too volatile to be worth
// it), so a miss always issues a network call via tl.
func ResolvePropertyTag(ctx context.Context, tl TagLister, spaceID, propertyID, keyOrID string) (string, error) {
	if model.IsObjectID(keyOrID) {
		return keyOrID, nil
	}
	tags, err := tl.ListTagsFromServer(ctx, spaceID, propertyID)
	if err != nil {
		return "", err
	}
	for _, t := range tags {
		if t.Key == keyOrID {
			return t.ID, nil
		}
	}
	return "", errs.NotFound("tag", keyOrID)
}

// LookupTypeByKey does a full (cached) list and selects the type whose
// Key matches key, surfacing NotFound if absent.
func (r *Resolver) LookupTypeByKey(ctx context.Context, spaceID, key string) (model.Type, error) {
	types, ok := r.cache.Types(spaceID)
	if !ok {
		list, err := r.tl.ListTypesFromServer(ctx, spaceID)
		if err != nil {
			return model.Type{}, err
		}
		r.cache.SetTypes(spaceID, list)
		types = list
	}
	for _, t := range types {
		if t.Key == key {
			return t, nil
		}
	}
	return model.Type{}, errs.NotFound("type", key)
}

// LookupPropertyByKey does a full (cached) list and selects the
// property whose Key matches key, surfacing NotFound if absent.
func (r *Resolver) LookupPropertyByKey(ctx context.Context, spaceID, key string) (model.Property, error) {
	props, ok := r.cache.Properties(spaceID)
	if !ok {
		list, err := r.pl.ListPropertiesFromServer(ctx, spaceID)
		if err != nil {
			return model.Property{}, err
		}
		r.cache.SetProperties(spaceID, list)
		props = list
	}
	for _, p := range props {
		if p.Key == key {
			return p, nil
		}
	}
	return model.Property{}, errs.NotFound("property", key)
}
