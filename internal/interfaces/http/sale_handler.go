package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/sales"
)

// SaleHandler trata o registro e a listagem de vendas (protegido).
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venda
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Dados da venda"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.uc.RecordSale(c.UserContext(), sales.RecordSaleInput{
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		ClientID:      in.ClientID,
		PaymentMethod: in.PaymentMethod,
		Tendered:      in.Tendered,
		ActorID:       actorID(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	out := sales.ToSaleResponse(&result.Sale, result.Change)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vendas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int     false  "Limite de vendas recentes"  default(20)
// @Param        from   query  string  false  "Início do período (RFC 3339 ou 2006-01-02)"
// @Param        to     query  string  false  "Fim do período (RFC 3339 ou 2006-01-02)"
// @Success      200    {object}  dto.SaleListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw != "" || toRaw != "" {
		from, to, err := parsePeriod(fromRaw, toRaw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido: use from/to em RFC 3339 ou 2006-01-02"})
		}
		out, err := h.uc.ListByPeriod(c.UserContext(), from, to)
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(out)
	}

	limit := c.QueryInt("limit", 20)
	out, err := h.uc.ListRecent(c.UserContext(), limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// parsePeriod interpreta o intervalo da query. Limites vazios são abertos:
// from vazio vira o início dos tempos e to vazio vira agora.
func parsePeriod(fromRaw, toRaw string) (from, to time.Time, err error) {
	if fromRaw != "" {
		if from, err = parseDateParam(fromRaw, false); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toRaw == "" {
		return from, time.Now(), nil
	}
	if to, err = parseDateParam(toRaw, true); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// parseDateParam aceita RFC 3339 ou data simples (2006-01-02). Com endOfDay,
// uma data simples vira o último instante do dia.
func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
