package products

// Product represents an inventory item linked to one supplier.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SupplierID  int64   `json:"supplierId"`
}
