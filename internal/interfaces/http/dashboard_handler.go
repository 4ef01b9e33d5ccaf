package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/analytics"
)

// DashboardHandler resumo da tela inicial (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
