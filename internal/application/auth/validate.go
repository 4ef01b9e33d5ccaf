package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
)

// Conjunto de caracteres especiais aceitos na política de senha.
const passwordSpecialSet = `!@#$%^&*(),.?":{}|<>`

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidatePassword aplica a política de senha na ordem de prioridade fixa:
// comprimento, maiúscula, minúscula, dígito, caractere especial.
// A primeira regra violada decide o motivo devolvido. As classes de letra e
// dígito são ASCII: letras acentuadas não contam para nenhuma regra.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return &domain.ValidationError{Field: "senha", Reason: "deve ter pelo menos 8 caracteres"}
	}
	if !containsFunc(password, func(r rune) bool { return 'A' <= r && r <= 'Z' }) {
		return &domain.ValidationError{Field: "senha", Reason: "deve conter pelo menos uma letra maiúscula"}
	}
	if !containsFunc(password, func(r rune) bool { return 'a' <= r && r <= 'z' }) {
		return &domain.ValidationError{Field: "senha", Reason: "deve conter pelo menos uma letra minúscula"}
	}
	if !containsFunc(password, func(r rune) bool { return '0' <= r && r <= '9' }) {
		return &domain.ValidationError{Field: "senha", Reason: "deve conter pelo menos um dígito"}
	}
	if !strings.ContainsAny(password, passwordSpecialSet) {
		return &domain.ValidationError{Field: "senha", Reason: "deve conter pelo menos um caractere especial (" + passwordSpecialSet + ")"}
	}
	return nil
}

// ValidateEmail verifica o formato local-part@domínio.tld, com TLD de pelo
// menos duas letras.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &domain.ValidationError{Field: "email", Reason: "formato de email inválido"}
	}
	return nil
}

// ValidateUsername exige nome de usuário com pelo menos 3 caracteres.
// A unicidade final é garantida pela constraint do banco.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return &domain.ValidationError{Field: "username", Reason: "deve ter pelo menos 3 caracteres"}
	}
	return nil
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
