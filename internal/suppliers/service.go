package suppliers

import (
	"context"
	"log/slog"
)

// CacheInvalidator bumps derived read models after supplier writes.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

// Service orchestrates supplier operations.
type Service struct {
	repo        Repository
	invalidator CacheInvalidator
	logger      *slog.Logger
}

// NewService constructs a supplier service.
func NewService(repo Repository, invalidator CacheInvalidator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, invalidator: invalidator, logger: logger}
}

// List returns every supplier.
func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}

// Get returns one supplier by id.
func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the payload and inserts a supplier.
func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error) {
	if err := validateCreate(req); err != nil {
		return Supplier{}, err
	}
	created, err := s.repo.Create(ctx, Supplier{
		Name:  req.Name,
		CNPJ:  req.CNPJ,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return Supplier{}, err
	}
	s.bump(ctx)
	return created, nil
}

// Update checks existence first, then applies the partial update.
// A missing supplier yields a distinct not-found error before any mutation.
func (s *Service) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (Supplier, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Supplier{}, err
	}
	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return Supplier{}, err
	}
	s.bump(ctx)
	return updated, nil
}

// Delete removes a supplier without pre-checking existence; the store's own
// error surfaces when the row is missing or still referenced by products.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Service) bump(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Bump(ctx); err != nil {
		s.logger.Warn("bump history cache", slog.Any("error", err))
	}
}
