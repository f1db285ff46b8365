// Package pdf implementa la generación del comprobante PDF de una orden de
// impresión con Maroto v2: encabezado con número de orden y fecha, datos del
// cliente, configuración del trabajo, y el desglose de la cotización.
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/printhub-api/internal/application/usecase"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

var _ usecase.ReceiptGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera el comprobante de orden usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator {
	return &ReceiptGenerator{}
}

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(_ context.Context, order *entity.Order, user *entity.User) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de orden de impresión", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(user))
	m.AddRows(jobConfigRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(breakdownHeaderRow())
	for _, r := range breakdownRows(order) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + número de orden (izq) y estado + fecha (der).
func headerRow(order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE IMPRESIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+order.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Estado: "+order.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(user *entity.User) core.Row {
	name, phone, profile := "—", "—", "—"
	if user != nil {
		name, phone, profile = user.Name, user.Phone, user.ProfileType
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Tel: %s   |   Perfil: %s", phone, profile),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// jobConfigRow: documento y configuración de impresión.
func jobConfigRow(order *entity.Order) core.Row {
	pageRange := order.PageRange
	if pageRange == "" {
		pageRange = "all"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TRABAJO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.FileName, props.Text{Size: 9, Top: 6}),
			text.New(fmt.Sprintf("Páginas: %d (rango %s)   |   %s / %s   |   %d pág/hoja   |   %d copia(s)",
				order.TotalPages, pageRange, order.ColorType, order.SideType,
				order.PagesPerSheet, order.Copies,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// breakdownHeaderRow: cabecera de la tabla del desglose.
func breakdownHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 8, align.Left),
		h("Monto", 4, align.Right),
	)
}

// breakdownRows: una fila por concepto de la cotización congelada.
func breakdownRows(order *entity.Order) []core.Row {
	item := func(label string, amount decimal.Decimal) core.Row {
		return row.New(6).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(amount.Round(2).StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		)
	}
	rows := []core.Row{
		item(fmt.Sprintf("Impresión: %d hoja(s) × %s", order.SheetsNeeded, order.PricePerSheet.Round(2).StringFixed(2)), order.PrintSubtotal),
	}
	if order.BindingName != "" {
		rows = append(rows, item("Encuadernación: "+order.BindingName, order.BindingSubtotal))
	}
	rows = append(rows, item("Subtotal por copia", order.PerCopySubtotal))
	return rows
}

// totalRow: total a pagar con copias incluidas.
func totalRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New(fmt.Sprintf("TOTAL (%d copia(s))", order.Copies), props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2,
		})),
		col.New(4).Add(text.New(order.GrandTotal.Round(2).StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}
