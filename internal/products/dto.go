package products

// CreateProductRequest carries the payload for product creation. The
// supplier link is resolved by the store's foreign key at write time; there
// is no application-level pre-check.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SupplierID  int64   `json:"supplierId"`
}

// UpdateProductRequest carries a partial update. Absent fields leave the
// stored value unchanged; in particular an absent supplierId keeps the
// existing supplier link.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	SupplierID  *int64   `json:"supplierId,omitempty"`
}
