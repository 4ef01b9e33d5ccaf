package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
)

// captureLog redireciona o logger global para um buffer durante o teste.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondDomainError(c, err)
	})
	return app
}

// Falha de armazenamento: o cliente recebe um 500 genérico e a operação com a
// causa nativa ficam no log.
func TestRespondDomainError_FalhaDeArmazenamentoVaiParaOLog(t *testing.T) {
	buf := captureLog(t)
	storageErr := domain.NewStorageError("insert venda", errors.New("conexão perdida"))

	resp, err := errorApp(storageErr).Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "conexão perdida", "causa nativa não vaza para o cliente")

	logged := buf.String()
	assert.Contains(t, logged, "insert venda", "forma da operação logada")
	assert.Contains(t, logged, "conexão perdida", "causa nativa logada")
	assert.Contains(t, logged, "falha de armazenamento")
}

// Erro sem mapeamento também é logado antes do 500.
func TestRespondDomainError_ErroNaoMapeadoVaiParaOLog(t *testing.T) {
	buf := captureLog(t)

	resp, err := errorApp(errors.New("surpresa")).Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "surpresa")
}

// Erros de domínio mapeados não poluem o log de erro.
func TestRespondDomainError_ErroDeDominioNaoLoga(t *testing.T) {
	buf := captureLog(t)

	resp, err := errorApp(domain.ErrProductNotFound).Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, buf.String())
}
