package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/auth"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/usecase"
)

// UserHandler operações administrativas sobre usuários (apenas Admin).
type UserHandler struct {
	uc     *usecase.UserUseCase
	authUC *auth.AuthUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase, authUC *auth.AuthUseCase) *UserHandler {
	return &UserHandler{uc: uc, authUC: authUC}
}

// List godoc
// @Summary      Listar usuários
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.UserListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Unlock godoc
// @Summary      Desbloquear usuário
// @Tags         users
// @Security     Bearer
// @Param        id  path  int  true  "ID do usuário"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/unlock [post]
func (h *UserHandler) Unlock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.authUC.Unlock(c.UserContext(), GetUserID(c), int64(id)); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateRole godoc
// @Summary      Trocar papel de usuário
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID do usuário"
// @Param        body  body  object{role=string}  true  "Admin ou Funcionario"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.UpdateRole(c.UserContext(), GetUserID(c), int64(id), in.Role); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Remover usuário
// @Tags         users
// @Security     Bearer
// @Param        id  path  int  true  "ID do usuário"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), int64(id)); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
