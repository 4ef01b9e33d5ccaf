// Package pdf implementa a renderização do relatório de vendas em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: IntegrePlus — Relatório de Vendas │ Período        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Produto | Cliente | Qtd | P.Unit | Pgto |   │
//	│          Total                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GERAL                                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport gera o PDF do relatório e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(
	_ context.Context,
	from, to time.Time,
	lines []reports.ReportLine,
	grandTotal decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Vendas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to, len(lines)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(grandTotal))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (esq) e período + contagem (dir).
func headerRow(from, to time.Time, count int) core.Row {
	periodo := fmt.Sprintf("Período: %s a %s",
		from.Format("02/01/2006"), to.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(7).Add(
			text.New("IntegrePlus", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de Vendas", props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("%d venda(s)", count), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de vendas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Produto", 3, align.Left),
		h("Cliente", 2, align.Left),
		h("Qtd", 1, align.Center),
		h("P.Unit", 1, align.Right),
		h("Pagamento", 2, align.Left),
		h("Total", 1, align.Right),
	)
}

// tableLineRows: uma fila por venda.
func tableLineRows(lines []reports.ReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				l.OccurredAt.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				l.ProductName,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.ClientName, "—"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				"R$ "+l.UnitPrice.StringFixed(2),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				l.PaymentMethod,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				"R$ "+l.Total.StringFixed(2),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total geral alinhado à direita.
func totalRow(grandTotal decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL GERAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New("R$ "+grandTotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
