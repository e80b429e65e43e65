package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// tableStore is the repository shape shared by the id-keyed tables.
type tableStore[T, In any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id int64, in In) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// tableService runs a single store call per mutation and then re-lists the
// table, so callers always render the store's view. Concurrent editors are
// last-write-wins; there is no version column.
type tableService[T, In any] struct {
	store  tableStore[T, In]
	entity string
	logger zerolog.Logger
}

func newTableService[T, In any](store tableStore[T, In], entity string, logger zerolog.Logger) *tableService[T, In] {
	return &tableService[T, In]{
		store:  store,
		entity: entity,
		logger: logger.With().Str("service", entity).Logger(),
	}
}

func (s *tableService[T, In]) List(ctx context.Context) ([]T, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list rows")
		return nil, fmt.Errorf("failed to list %s: %w", s.entity, err)
	}

	s.logger.Debug().Int("count", len(rows)).Msg("listed rows")

	return rows, nil
}

func (s *tableService[T, In]) Create(ctx context.Context, in In) ([]T, error) {
	if _, err := s.store.Create(ctx, in); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.entity, err)
	}
	return s.List(ctx)
}

func (s *tableService[T, In]) Update(ctx context.Context, id int64, in In) ([]T, error) {
	if _, err := s.store.Update(ctx, id, in); err != nil {
		return nil, fmt.Errorf("failed to update %s %d: %w", s.entity, id, err)
	}
	return s.List(ctx)
}

func (s *tableService[T, In]) Delete(ctx context.Context, id int64) ([]T, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete %s %d: %w", s.entity, id, err)
	}
	return s.List(ctx)
}
