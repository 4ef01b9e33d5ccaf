package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin       = "Admin"
	RoleFuncionario = "Funcionario"
)

// MaxLoginAttempts tentativas consecutivas de login antes do bloqueio da conta.
const MaxLoginAttempts = 3

// User representa um usuário do sistema.
// PasswordHash guarda apenas o hash bcrypt; a senha em texto nunca é persistida.
type User struct {
	ID               int64
	Username         string
	PasswordHash     string
	Email            string
	Role             string // Admin, Funcionario
	FailedAttempts   int    // zera a cada autenticação bem-sucedida
	Locked           bool   // true a partir da terceira falha consecutiva
	LastLogin        *time.Time
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Identity registro mínimo devolvido por uma autenticação bem-sucedida.
type Identity struct {
	ID       int64
	Username string
	Role     string
}
