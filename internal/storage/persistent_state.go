package storage

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// PersistentState is a JSON value kept under one key. Failures never reach the
// caller: reads fall back to the initial value, writes report false, and both
// are logged.
type PersistentState[T any] struct {
	store  Store
	key    string
	logger *zap.Logger
}

func NewPersistentState[T any](store Store, key string, logger *zap.Logger) *PersistentState[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersistentState[T]{
		store:  store,
		key:    key,
		logger: logger.With(zap.String("state_key", key)),
	}
}

func (state *PersistentState[T]) Key() string {
	return state.key
}

func (state *PersistentState[T]) Load(ctx context.Context, initial T) T {
	raw, err := state.store.Get(ctx, state.key)
	if errors.Is(err, ErrNotFound) {
		return initial
	}
	if err != nil {
		state.logger.Error("read persisted state failed", zap.Error(err))
		return initial
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		state.logger.Error("decode persisted state failed", zap.Error(err))
		return initial
	}
	return value
}

func (state *PersistentState[T]) Save(ctx context.Context, value T) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		state.logger.Error("encode state failed", zap.Error(err))
		return false
	}
	if err := state.store.Set(ctx, state.key, raw); err != nil {
		state.logger.Error("write persisted state failed", zap.Error(err))
		return false
	}
	return true
}
