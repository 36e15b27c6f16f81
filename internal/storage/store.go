// Package storage keeps the tracker's JSON state in a scoped key-value store.
package storage

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is a plain get/set key-value contract. Backends are interchangeable.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type scopedStore struct {
	inner Store
	scope string
}

// Scoped prefixes every key with scope so several trackers can share one backend.
func Scoped(inner Store, scope string) Store {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return inner
	}
	return &scopedStore{inner: inner, scope: scope}
}

func (store *scopedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return store.inner.Get(ctx, store.scopedKey(key))
}

func (store *scopedStore) Set(ctx context.Context, key string, value []byte) error {
	return store.inner.Set(ctx, store.scopedKey(key), value)
}

func (store *scopedStore) scopedKey(key string) string {
	return store.scope + ":" + key
}
