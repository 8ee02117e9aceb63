package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the joined product/supplier view.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a repository over the given pool.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.description, p.price, p.quantity, p.supplier_id,
		        s.id, s.name, s.cnpj, s.email, s.phone
		 FROM products p
		 JOIN suppliers s ON s.id = p.supplier_id
		 ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	result := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Price, &e.Quantity, &e.SupplierID,
			&e.Supplier.ID, &e.Supplier.Name, &e.Supplier.CNPJ, &e.Supplier.Email, &e.Supplier.Phone,
		); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
