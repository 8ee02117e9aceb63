package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rossilindo/estoque/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for products.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id int64) error
	ListLowStock(ctx context.Context, threshold int) ([]Product, error)
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a repository over the given pool.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, quantity, supplier_id`

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.SupplierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, fmt.Errorf("product %d: %w", id, httpx.ErrNotFound)
		}
		return Product{}, fmt.Errorf("products: get %d: %w", id, err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, quantity, supplier_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		product.Name, product.Description, product.Price, product.Quantity, product.SupplierID,
	).Scan(&product.ID)
	if err != nil {
		return Product{}, fmt.Errorf("products: create: %w", err)
	}
	return product, nil
}

func (r *repository) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	var p Product
	err := r.db.QueryRow(ctx,
		`UPDATE products SET
			name        = COALESCE($1, name),
			description = COALESCE($2, description),
			price       = COALESCE($3, price),
			quantity    = COALESCE($4, quantity),
			supplier_id = COALESCE($5, supplier_id)
		WHERE id = $6
		RETURNING `+productColumns,
		req.Name, req.Description, req.Price, req.Quantity, req.SupplierID, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.SupplierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, fmt.Errorf("product %d: %w", id, httpx.ErrNotFound)
		}
		return Product{}, fmt.Errorf("products: update %d: %w", id, err)
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("products: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		// The store raises on deleting a missing row; the handler surfaces
		// this as a store error, not a 404.
		return fmt.Errorf("products: delete %d: no rows affected", id)
	}
	return nil
}

func (r *repository) ListLowStock(ctx context.Context, threshold int) ([]Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE quantity <= $1 ORDER BY quantity, id`, threshold)
	if err != nil {
		return nil, fmt.Errorf("products: list low stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	result := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.SupplierID); err != nil {
			return nil, fmt.Errorf("products: scan: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
