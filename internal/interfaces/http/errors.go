package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
)

// respondDomainError traduz erros de domínio em status HTTP com mensagem
// curta localizada. Erros de armazenamento nunca vazam texto cru.
func respondDomainError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Reason})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro já existe: " + err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "registro referenciado por outros dados"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	case errors.Is(err, domain.ErrClientNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
	case errors.Is(err, domain.ErrInsufficientPayment):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_PAYMENT", Message: "valor pago menor que o total"})
	case errors.Is(err, domain.ErrInvalidResetToken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token de redefinição inválido ou expirado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permissão insuficiente"})
	}

	// Falha de armazenamento: a forma da operação e a causa nativa vão para o
	// log; o cliente recebe só o 500 genérico.
	var se *domain.StorageError
	if errors.As(err, &se) {
		log.Error().Err(se.Err).
			Str("op", se.Op).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("falha de armazenamento")
	} else {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("erro não mapeado")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
}
