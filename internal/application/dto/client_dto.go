package dto

import "time"

// CreateClientRequest entrada para criar um cliente.
type CreateClientRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	CPF     *string `json:"cpf"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
}

// UpdateClientRequest entrada para atualizar um cliente (campos opcionais).
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	CPF     *string `json:"cpf"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CPF       *string   `json:"cpf,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
