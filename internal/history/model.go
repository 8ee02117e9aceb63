package history

import "github.com/rossilindo/estoque/internal/suppliers"

// Entry is a product row expanded with its supplier.
type Entry struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Quantity    int                `json:"quantity"`
	SupplierID  int64              `json:"supplierId"`
	Supplier    suppliers.Supplier `json:"supplier"`
}
