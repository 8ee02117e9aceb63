package history

import (
	"context"
	"log/slog"
)

// Service serves the joined product/supplier history view through a
// versioned read-through cache. A failing cache degrades to a direct query
// so the endpoint's behavior never depends on Redis being up.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
}

// NewService constructs a history service. cache may be nil.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// List returns every product expanded with its supplier.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}
	key, err := s.cache.BuildKey(ctx, "history", "all")
	if err != nil {
		s.logger.Warn("history cache key", slog.Any("error", err))
		return s.repo.List(ctx)
	}
	var entries []Entry
	err = s.cache.FetchJSON(ctx, key, &entries, func(ctx context.Context) (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		s.logger.Warn("history cache fetch", slog.Any("error", err))
		return s.repo.List(ctx)
	}
	if entries == nil {
		entries = make([]Entry, 0)
	}
	return entries, nil
}

// Warm pre-populates the cache with the current view.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.List(ctx)
	return err
}
