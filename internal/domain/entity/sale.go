package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas.
const (
	PaymentDinheiro = "Dinheiro"
	PaymentCredito  = "Cartão de Crédito"
	PaymentDebito   = "Cartão de Débito"
	PaymentPix      = "PIX"
)

// ValidPaymentMethod informa se a forma de pagamento é uma das aceitas.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentDinheiro, PaymentCredito, PaymentDebito, PaymentPix:
		return true
	}
	return false
}

// Sale representa uma venda concluída. Imutável após criada: o preço unitário
// é capturado no momento da venda e Total = Quantity × UnitPrice para sempre.
type Sale struct {
	ID            int64
	ProductID     int64
	Quantity      int64
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	ClientID      *int64 // opcional; fica nulo se o cliente for removido
	PaymentMethod string
	OccurredAt    time.Time
}
