package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
)

func reasonOf(t *testing.T, err error) string {
	t.Helper()
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Reason
}

func TestValidatePassword_Aceita(t *testing.T) {
	assert.NoError(t, ValidatePassword("Senha@123"))
	assert.NoError(t, ValidatePassword(`Abcdef1"`))
}

// A primeira regra violada na ordem fixa decide o motivo: comprimento,
// maiúscula, minúscula, dígito, especial.
func TestValidatePassword_PrioridadeDasRegras(t *testing.T) {
	// Curta E sem dígito: o motivo é o comprimento.
	err := ValidatePassword("Ab@")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "8 caracteres")

	// Longa, sem maiúscula nem dígito: o motivo é a maiúscula.
	err = ValidatePassword("abcdefgh@")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "maiúscula")

	// Sem minúscula.
	err = ValidatePassword("ABCDEFG1@")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "minúscula")

	// Sem dígito.
	err = ValidatePassword("Abcdefgh@")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "dígito")

	// Sem caractere especial.
	err = ValidatePassword("Abcdefg1")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "especial")
}

// As classes são ASCII e o comprimento conta caracteres, não bytes.
func TestValidatePassword_ClassesASCII(t *testing.T) {
	// "Á" não satisfaz a regra de maiúscula: só A-Z conta.
	err := ValidatePassword("Ábcdefg1!")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "maiúscula")

	// 7 caracteres acentuados ocupam 14 bytes; o motivo é o comprimento.
	err = ValidatePassword("Áéíóúçã")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "8 caracteres")

	// Dígitos fora de 0-9 (ex.: o árabe "٣") não contam.
	err = ValidatePassword("Abcdefg٣!")
	require.Error(t, err)
	assert.Contains(t, reasonOf(t, err), "dígito")
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("maria@example.com"))
	assert.NoError(t, ValidateEmail("jo.ao+loja@sub.example.com.br"))

	for _, bad := range []string{
		"",
		"sem-arroba.com",
		"a@b",          // sem TLD
		"a@b.c",        // TLD de uma letra
		"a b@test.com", // espaço no local-part
	} {
		assert.Error(t, ValidateEmail(bad), "email %q deveria ser rejeitado", bad)
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("ana"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername(""))
}
