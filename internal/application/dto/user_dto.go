package dto

import "time"

// RegisterRequest entrada para registro (password em texto, hasheada no use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin Funcionario"`
}

// UserResponse saída de um usuário (sem senha).
type UserResponse struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Locked         bool       `json:"locked"`
	FailedAttempts int        `json:"failed_attempts"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com token JWT e identidade mínima.
type LoginResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ChangePasswordRequest troca de senha autenticada.
type ChangePasswordRequest struct {
	Current string `json:"current" validate:"required"`
	Next    string `json:"next" validate:"required,min=8"`
}

// ResetRequestRequest pedido de redefinição de senha por email.
type ResetRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest conclusão da redefinição com o token recebido.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserListResponse lista paginada de usuários.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
