package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/robbyt/go-polybridge/platform/constants"
)

// ContextProvider keeps per-call data on the context under one key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{contextKey: contextKey}
}

var errEmptyContextKey = errors.New("context key is empty")

// GetData returns the map stored on ctx, or an empty map when nothing is stored.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, errEmptyContextKey
	}

	switch stored := ctx.Value(p.contextKey).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return stored, nil
	default:
		return nil, fmt.Errorf("%w: expected map[string]any, got %T", ErrUnexpectedType, stored)
	}
}

// AddDataToContext returns a child of ctx whose map is the parent's map with
// data merged in. Nested maps merge recursively and later values win; the
// parent's map and the caller's maps are never written to. Entries under an
// empty key are skipped and reported in the joined error, and everything
// else is still stored.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, errEmptyContextKey
	}

	store := map[string]any{}
	if parent, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(store, parent)
	}

	var errz []error
	for _, m := range data {
		for key, value := range m {
			if key == "" {
				errz = append(errz, ErrEmptyKey)
				continue
			}
			owned, err := ownedCopy(value)
			if err != nil {
				errz = append(errz, fmt.Errorf("processing value for key '%s': %w", key, err))
				continue
			}
			mergeInto(store, key, owned)
		}
	}

	return context.WithValue(ctx, p.contextKey, store), errors.Join(errz...)
}

// ownedCopy deep-copies nested maps and rejects empty keys inside them.
func ownedCopy(value any) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return value, nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == "" {
			return nil, fmt.Errorf("%w in nested maps", ErrEmptyKey)
		}
		c, err := ownedCopy(v)
		if err != nil {
			return nil, fmt.Errorf("processing nested value for key '%s': %w", k, err)
		}
		out[k] = c
	}
	return out, nil
}

// mergeInto sets store[key] to value, merging into an existing map at that
// key through a copy so earlier contexts keep their view.
func mergeInto(store map[string]any, key string, value any) {
	incoming, inMap := value.(map[string]any)
	existing, exMap := store[key].(map[string]any)
	if !inMap || !exMap {
		store[key] = value
		return
	}

	merged := maps.Clone(existing)
	for k, v := range incoming {
		mergeInto(merged, k, v)
	}
	store[key] = merged
}
