package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/reports"
)

// ReportHandler exportação de relatórios (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesPDF godoc
// @Summary      Relatório de vendas em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  true  "Início do período (RFC 3339 ou 2006-01-02)"
// @Param        to    query  string  true  "Fim do período (RFC 3339 ou 2006-01-02)"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	from, err := parseDateParam(c.Query("from"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro from inválido"})
	}
	to, err := parseDateParam(c.Query("to"), true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro to inválido"})
	}
	pdfBytes, err := h.uc.SalesReportPDF(c.UserContext(), from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := fmt.Sprintf("vendas_%s_%s.pdf",
		from.Format("20060102"), to.Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
