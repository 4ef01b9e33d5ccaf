package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrClientNotFound      = errors.New("cliente não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("registro duplicado")
	ErrInvalidCredentials  = errors.New("usuário ou senha incorretos")
	ErrAccountLocked       = errors.New("conta bloqueada")
	ErrAccountLockedNow    = errors.New("conta bloqueada após tentativas consecutivas")
	ErrForbidden           = errors.New("acesso negado")
	ErrConflict            = errors.New("conflito com o estado atual")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
	ErrInsufficientPayment = errors.New("valor pago inferior ao total")
	ErrInvalidResetToken   = errors.New("token de redefinição inválido ou expirado")
)

// ValidationError falha de política (senha, email, campo obrigatório) com
// motivo legível. Sempre recuperável pelo chamador.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// StorageError encapsula uma falha do armazenamento subjacente. Op descreve a
// forma da operação (nunca valores de parâmetros, que podem conter segredos).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError constrói o erro de armazenamento com a causa nativa.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError informa se err é (ou embrulha) uma falha de armazenamento.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
