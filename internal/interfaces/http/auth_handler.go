package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/auth"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
)

// AuthHandler trata registro, login e redefinição de senha.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password, email"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username e password são obrigatórios"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		// Usuário inexistente e senha errada respondem igual; bloqueio é
		// distinguível para a tela avisar o usuário.
		switch {
		case errors.Is(err, domain.ErrAccountLockedNow):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_LOCKED", Message: "conta bloqueada por excesso de tentativas"})
		case errors.Is(err, domain.ErrAccountLocked):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_LOCKED", Message: "conta bloqueada; contate um administrador"})
		case auth.IsAuthFailure(err):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
		}
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Trocar a própria senha
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ChangePasswordRequest  true  "senha atual e nova"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	err := h.uc.ChangePassword(c.UserContext(), GetUserID(c), in.Current, in.Next)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "senha atual incorreta"})
		}
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RequestPasswordReset godoc
// @Summary      Solicitar redefinição de senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetRequestRequest  true  "email cadastrado"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/password/reset-request [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var in dto.ResetRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	token, err := h.uc.RequestPasswordReset(c.UserContext(), in.Email)
	if err != nil {
		return respondDomainError(c, err)
	}
	// Sem serviço de email no backend: o token volta na resposta e a entrega
	// fica a cargo da interface.
	return c.JSON(fiber.Map{"token": token})
}

// ResetPassword godoc
// @Summary      Concluir redefinição de senha
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.ResetPasswordRequest  true  "token e nova senha"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/password/reset [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ResetPassword(c.UserContext(), in.Token, in.Password); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
