package entity

import "time"

// Client representa um cliente da loja.
// CPF e Email são únicos quando presentes.
type Client struct {
	ID        int64
	Name      string
	CPF       *string
	Email     *string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
