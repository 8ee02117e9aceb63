package products

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rossilindo/estoque/internal/platform/db"
)

// CacheInvalidator bumps derived read models after product writes.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

// Service orchestrates product operations.
type Service struct {
	repo        Repository
	invalidator CacheInvalidator
	logger      *slog.Logger
}

// NewService constructs a product service.
func NewService(repo Repository, invalidator CacheInvalidator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, invalidator: invalidator, logger: logger}
}

// List returns every product.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a product linked to a supplier by id. The link is not
// pre-checked; an unknown supplier fails the insert with the store's own
// foreign-key error.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	created, err := s.repo.Create(ctx, Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		SupplierID:  req.SupplierID,
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return Product{}, fmt.Errorf("supplier %d does not exist: %w", req.SupplierID, err)
		}
		return Product{}, err
	}
	s.bump(ctx)
	return created, nil
}

// Update checks existence first, then applies the partial update. An absent
// supplierId keeps the current supplier link.
func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Product{}, err
	}
	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if db.IsForeignKeyViolation(err) && req.SupplierID != nil {
			return Product{}, fmt.Errorf("supplier %d does not exist: %w", *req.SupplierID, err)
		}
		return Product{}, err
	}
	s.bump(ctx)
	return updated, nil
}

// Delete removes a product without pre-checking existence.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

// ListLowStock returns products at or below the given quantity threshold.
func (s *Service) ListLowStock(ctx context.Context, threshold int) ([]Product, error) {
	return s.repo.ListLowStock(ctx, threshold)
}

func (s *Service) bump(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Bump(ctx); err != nil {
		s.logger.Warn("bump history cache", slog.Any("error", err))
	}
}
