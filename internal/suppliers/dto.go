package suppliers

// CreateSupplierRequest carries the payload for supplier creation.
// All four fields are mandatory.
type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required"`
	CNPJ  string `json:"cnpj" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// UpdateSupplierRequest carries a partial update. Absent fields leave the
// stored value unchanged.
type UpdateSupplierRequest struct {
	Name  *string `json:"name,omitempty"`
	CNPJ  *string `json:"cnpj,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}
