package suppliers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rossilindo/estoque/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for suppliers.
type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id int64) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	Update(ctx context.Context, id int64, req UpdateSupplierRequest) (Supplier, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a repository over the given pool.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Supplier, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, cnpj, email, phone FROM suppliers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("suppliers: list: %w", err)
	}
	defer rows.Close()

	result := make([]Supplier, 0)
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.CNPJ, &s.Email, &s.Phone); err != nil {
			return nil, fmt.Errorf("suppliers: scan: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Supplier, error) {
	var s Supplier
	err := r.db.QueryRow(ctx, `SELECT id, name, cnpj, email, phone FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.CNPJ, &s.Email, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Supplier{}, fmt.Errorf("supplier %d: %w", id, httpx.ErrNotFound)
		}
		return Supplier{}, fmt.Errorf("suppliers: get %d: %w", id, err)
	}
	return s, nil
}

func (r *repository) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO suppliers (name, cnpj, email, phone) VALUES ($1, $2, $3, $4) RETURNING id`,
		supplier.Name, supplier.CNPJ, supplier.Email, supplier.Phone,
	).Scan(&supplier.ID)
	if err != nil {
		return Supplier{}, fmt.Errorf("suppliers: create: %w", err)
	}
	return supplier, nil
}

func (r *repository) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (Supplier, error) {
	var s Supplier
	err := r.db.QueryRow(ctx,
		`UPDATE suppliers SET
			name  = COALESCE($1, name),
			cnpj  = COALESCE($2, cnpj),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone)
		WHERE id = $5
		RETURNING id, name, cnpj, email, phone`,
		req.Name, req.CNPJ, req.Email, req.Phone, id,
	).Scan(&s.ID, &s.Name, &s.CNPJ, &s.Email, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Supplier{}, fmt.Errorf("supplier %d: %w", id, httpx.ErrNotFound)
		}
		return Supplier{}, fmt.Errorf("suppliers: update %d: %w", id, err)
	}
	return s, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("suppliers: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		// The store raises on deleting a missing row; the handler surfaces
		// this as a store error, not a 404.
		return fmt.Errorf("suppliers: delete %d: no rows affected", id)
	}
	return nil
}
