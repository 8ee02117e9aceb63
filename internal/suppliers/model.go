package suppliers

// Supplier represents a vendor supplying products.
type Supplier struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
