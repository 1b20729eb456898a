// Package pdf implementa la generación del comprobante de cuenta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del restaurante  │  N° Factura + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  REFERENCIA: pedido asociado y estado de pago               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MONTOS: Subtotal / Impuestos / Propina / Descuento / TOTAL │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGOS: método | referencia | monto | fecha                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	restaurantName string
}

// NewMarotoPDFGenerator construye el generador con el nombre a imprimir en el header.
func NewMarotoPDFGenerator(restaurantName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{restaurantName: restaurantName}
}

// Generate genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(invoice *entity.Invoice, payments []*entity.Payment) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cuenta", true).
		WithAuthor(g.restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(referenceRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	if len(payments) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(paymentsHeaderRow())
		for _, p := range payments {
			m.AddRows(paymentRow(p))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del restaurante (izq) y N° factura + fecha (der).
func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	number := "—"
	if invoice.InvoiceNumber != nil {
		number = *invoice.InvoiceNumber
	}
	fecha := invoice.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.restaurantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cuenta de consumo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// referenceRow: pedido asociado y estado de pago.
func referenceRow(invoice *entity.Invoice) core.Row {
	orderRef := "sin pedido asociado"
	if invoice.OrderID != nil {
		orderRef = "Pedido: " + *invoice.OrderID
	}
	paidLabel := "PENDIENTE DE PAGO"
	if invoice.Paid {
		paidLabel = "PAGADA"
	}
	return row.New(10).Add(
		col.New(8).Add(
			text.New(orderRef, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(paidLabel, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

// totalsRow: bloque de montos alineado a la derecha.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(34).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Impuestos:"),
			label("Propina:"),
			label("Descuento:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value("$"+invoice.Subtotal.StringFixed(2)),
			value("$"+invoice.TaxTotal.StringFixed(2)),
			value("$"+invoice.TipAmount.StringFixed(2)),
			value("-$"+invoice.DiscountAmount.StringFixed(2)),
			grandValue("$"+invoice.Total.StringFixed(2)),
		),
	)
}

// paymentsHeaderRow: cabecera de la tabla de pagos.
func paymentsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Método", 3, align.Left),
		h("Referencia", 4, align.Left),
		h("Monto", 2, align.Right),
		h("Fecha", 3, align.Right),
	)
}

// paymentRow: una fila por pago aplicado.
func paymentRow(p *entity.Payment) core.Row {
	ref := "—"
	if p.TransactionRef != nil {
		ref = *p.TransactionRef
	}
	return row.New(7).Add(
		col.New(3).Add(text.New(p.Method, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(ref, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New("$"+p.Amount.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(3).Add(text.New(p.PaidAt.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
		})),
	)
}
