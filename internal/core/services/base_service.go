package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/pkg/logger"
	"go.uber.org/zap"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context, tagged with the request id when present
func (s *BaseService) GetLogger(ctx context.Context) *zap.Logger {
	return logger.WithContext(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, fields ...zap.Field) {
	s.GetLogger(ctx).Error(msg, append([]zap.Field{zap.Error(err)}, fields...)...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, fields ...zap.Field) {
	s.GetLogger(ctx).Warn(msg, fields...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, fields ...zap.Field) {
	s.GetLogger(ctx).Debug(msg, fields...)
}

// dispatcher is the part of a store the phase helpers drive.
type dispatcher[T store.Entity] interface {
	Apply(store.Action[T])
	BeginFetchOne(id domain.ID) uint64
}

// runFetchAll wraps a list call in the pending/fulfilled/rejected phases and
// replaces the cached list on success.
func runFetchAll[T store.Entity](ctx context.Context, st dispatcher[T], what string, call func(context.Context) ([]T, error)) ([]T, error) {
	log := logger.WithContext(ctx)
	st.Apply(store.Begin[T]())
	items, err := call(ctx)
	if err != nil {
		st.Apply(store.Failed[T](err))
		log.Error("Failed to fetch "+what, zap.Error(err))
		return nil, fmt.Errorf("failed to fetch %s: %w", what, err)
	}
	st.Apply(store.FetchedAll(items))
	log.Debug("Fetched "+what, zap.Int("count", len(items)))
	return items, nil
}

// runFetchOne fills the current slot. Results of superseded fetches for the
// same id are discarded by the store.
func runFetchOne[T store.Entity](ctx context.Context, st dispatcher[T], what string, id domain.ID, call func(context.Context) (T, error)) (T, error) {
	log := logger.WithContext(ctx)
	seq := st.BeginFetchOne(id)
	st.Apply(store.Begin[T]())
	item, err := call(ctx)
	if err != nil {
		failed := store.Failed[T](err)
		failed.ID, failed.Seq = id, seq
		st.Apply(failed)
		log.Error("Failed to fetch "+what, zap.Error(err), zap.Int64("id", int64(id)))
		var zero T
		return zero, fmt.Errorf("failed to fetch %s %d: %w", what, id, err)
	}
	fetched := store.FetchedOne(item, seq)
	fetched.ID = id
	st.Apply(fetched)
	return item, nil
}

// runCreate validates input, then creates. Validation failures are returned
// without touching the store. A record that came back without an id is not
// cached; the caller decides how to find it.
func runCreate[T store.Entity](ctx context.Context, st dispatcher[T], what string, input any, call func(context.Context) (T, error)) (T, error) {
	log := logger.WithContext(ctx)
	var zero T
	if err := validateStruct(input); err != nil {
		log.Debug("Rejected invalid "+what, zap.Error(err))
		return zero, err
	}
	st.Apply(store.Begin[T]())
	item, err := call(ctx)
	if err != nil {
		st.Apply(store.Failed[T](err))
		log.Error("Failed to create "+what, zap.Error(err))
		return zero, fmt.Errorf("failed to create %s: %w", what, err)
	}
	if item.GetID() == 0 {
		st.Apply(store.Settle[T]())
		log.Warn("Created " + what + " without an id in the response")
		return item, nil
	}
	st.Apply(store.Created(item))
	log.Debug("Created "+what, zap.Int64("id", int64(item.GetID())))
	return item, nil
}

// runUpdate validates patch with required checks relaxed, then updates. call
// is expected to merge a non-echoed response onto the cached record.
func runUpdate[T store.Entity](ctx context.Context, st dispatcher[T], what string, id domain.ID, patch any, call func(context.Context) (T, error)) (T, error) {
	log := logger.WithContext(ctx)
	var zero T
	if err := validatePatch(patch); err != nil {
		log.Debug("Rejected invalid "+what+" update", zap.Error(err))
		return zero, err
	}
	st.Apply(store.Begin[T]())
	item, err := call(ctx)
	if err != nil {
		st.Apply(store.Failed[T](err))
		log.Error("Failed to update "+what, zap.Error(err), zap.Int64("id", int64(id)))
		return zero, fmt.Errorf("failed to update %s %d: %w", what, id, err)
	}
	updated := store.Updated(item)
	updated.ID = id
	st.Apply(updated)
	log.Debug("Updated "+what, zap.Int64("id", int64(id)))
	return item, nil
}

func runDelete[T store.Entity](ctx context.Context, st dispatcher[T], what string, id domain.ID, call func(context.Context) error) error {
	log := logger.WithContext(ctx)
	st.Apply(store.Begin[T]())
	if err := call(ctx); err != nil {
		st.Apply(store.Failed[T](err))
		log.Error("Failed to delete "+what, zap.Error(err), zap.Int64("id", int64(id)))
		return fmt.Errorf("failed to delete %s %d: %w", what, id, err)
	}
	st.Apply(store.Deleted[T](id))
	log.Debug("Deleted "+what, zap.Int64("id", int64(id)))
	return nil
}
