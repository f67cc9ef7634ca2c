// Package pdf implementa la representación impresa de facturas y devis con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + ICE        │  FACTURE/DEVIS N° + fechas   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT: Nombre + ICE + contacto                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Désignation | Qté | P.U. HT | TVA | Total HT          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TVA por tasa            │  Total HT / TVA / Total TTC       │
//	│  Monto en letras                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

	appbilling "github.com/jhoicas/Facturation-api/internal/application/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

var _ appbilling.DocumentRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer implementa billing.DocumentRenderer usando Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render dibuja el documento con el tema de su plantilla y devuelve los bytes del PDF.
func (g *MarotoRenderer) Render(ctx context.Context, doc *appbilling.RenderModel) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("pdf: documento vacío")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	th := themeFor(doc.Template)
	nf := newFrenchNumbers()

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("%s %s", doc.Title, doc.Number), true).
		WithAuthor(nonEmpty(doc.Company.Name, "Facturation"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, th))
	m.AddRows(line.NewRow(2, props.Line{Color: th.primary, Thickness: 0.5}))
	m.AddRows(clientRow(doc, th))
	m.AddRows(line.NewRow(4))

	m.AddRows(tableHeaderRow(th))
	m.AddRows(itemRows(doc, th, nf)...)
	m.AddRows(line.NewRow(2, props.Line{Color: th.primary, Thickness: 0.3}))

	m.AddRows(summaryRows(doc, th, nf)...)
	m.AddRows(line.NewRow(4))
	m.AddRows(wordsRow(doc, th))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) y título + número + fechas (der).
func headerRow(doc *appbilling.RenderModel, th theme) core.Row {
	muted := props.Text{Size: 8, Color: th.muted}
	at := func(top float64) props.Text { p := muted; p.Top = top; return p }

	right := props.Text{Size: 8, Color: th.muted, Align: th.titleAlign}
	rat := func(top float64) props.Text { p := right; p.Top = top; return p }

	return row.New(30).Add(
		col.New(7).Add(
			text.New(nonEmpty(doc.Company.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: th.primary, Top: 1,
			}),
			text.New(partyLine("ICE", doc.Company.ICE), at(9)),
			text.New(nonEmpty(doc.Company.Address, ""), at(14)),
			text.New(contactLine(doc.Company), at(19)),
		),
		col.New(5).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: th.primary, Align: th.titleAlign, Top: 1,
			}),
			text.New("N° "+doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: th.titleAlign, Top: 9,
			}),
			text.New("Date : "+doc.Date, rat(16)),
			text.New(fmt.Sprintf("%s : %s", doc.DateLabel, doc.DateExtra), rat(21)),
		),
	)
}

// clientRow: destinatario del documento.
func clientRow(doc *appbilling.RenderModel, th theme) core.Row {
	return row.New(24).Add(
		col.New(6),
		col.New(6).Add(
			text.New("CLIENT", props.Text{Style: fontstyle.Bold, Size: 8, Color: th.primary, Top: 2}),
			text.New(nonEmpty(doc.Client.Name, "—"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 7}),
			text.New(partyLine("ICE", doc.Client.ICE), props.Text{Size: 8, Color: th.muted, Top: 13}),
			text.New(strings.TrimSpace(doc.Client.Address+"  "+contactLine(doc.Client)), props.Text{Size: 8, Color: th.muted, Top: 18}),
		),
	)
}

var tableCols = []struct {
	label string
	size  int
	align align.Type
}{
	{"Désignation", 5, align.Left},
	{"Qté", 1, align.Center},
	{"Unité", 1, align.Center},
	{"P.U. HT", 2, align.Right},
	{"TVA", 1, align.Center},
	{"Total HT", 2, align.Right},
}

func tableHeaderRow(th theme) core.Row {
	cols := make([]core.Col, 0, len(tableCols))
	color := th.primary
	if th.filledHeader {
		color = colorWhite
	}
	for _, c := range tableCols {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: color, Top: 2, Left: 1, Right: 1,
		})))
	}
	r := row.New(8).Add(cols...)
	if th.filledHeader {
		r = r.WithStyle(&props.Cell{BackgroundColor: th.primary})
	}
	return r
}

// itemRows: una fila por línea, en el orden del documento.
func itemRows(doc *appbilling.RenderModel, th theme, nf frenchNumbers) []core.Row {
	rows := make([]core.Row, 0, len(doc.Items))
	for i, it := range doc.Items {
		values := []string{
			it.Description,
			nf.quantity(it.Quantity),
			it.Unit,
			nf.money(it.UnitPrice),
			nf.rate(it.VatRate),
			nf.money(it.Total),
		}
		cols := make([]core.Col, 0, len(tableCols))
		for j, c := range tableCols {
			cols = append(cols, col.New(c.size).Add(text.New(values[j], props.Text{
				Size: 8, Align: c.align, Top: 1.5, Left: 1, Right: 1,
			})))
		}
		r := row.New(7).Add(cols...)
		if th.stripe != nil && i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: th.stripe})
		}
		rows = append(rows, r)
	}
	return rows
}

// summaryRows: detalle de IVA por tasa (izq) y totales (der).
// Con una sola tasa no se listan los productos del grupo.
func summaryRows(doc *appbilling.RenderModel, th theme, nf frenchNumbers) []core.Row {
	label := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}
	value := props.Text{Size: 9, Align: align.Right, Right: 1}
	grandLabel := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Color: th.primary}
	grandValue := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Color: th.primary}
	cur := " " + doc.Currency

	var vat []core.Component
	top := 1.0
	vat = append(vat, text.New("Détail TVA", props.Text{Style: fontstyle.Bold, Size: 8, Color: th.primary, Top: top}))
	for _, g := range doc.VatGroups {
		top += 5
		vat = append(vat, text.New(
			fmt.Sprintf("TVA %s : %s%s", nf.rate(g.Rate), nf.money(g.VatAmount), cur),
			props.Text{Size: 8, Top: top},
		))
		if doc.ShowVatMembers && len(g.Members) > 0 {
			top += 4
			vat = append(vat, text.New(strings.Join(g.Members, ", "), props.Text{Size: 7, Color: th.muted, Top: top, Left: 3}))
		}
	}
	height := top + 6
	if height < 20 {
		height = 20
	}

	at := func(p props.Text, t float64) props.Text { p.Top = t; return p }
	return []core.Row{
		row.New(height).Add(
			col.New(6).Add(vat...),
			col.New(3).Add(
				text.New("Total HT :", at(label, 1)),
				text.New("TVA :", at(label, 7)),
				text.New("Total TTC :", at(grandLabel, 13)),
			),
			col.New(3).Add(
				text.New(nf.money(doc.Subtotal)+cur, at(value, 1)),
				text.New(nf.money(doc.TotalVat)+cur, at(value, 7)),
				text.New(nf.money(doc.TotalTTC)+cur, at(grandValue, 13)),
			),
		),
	}
}

// wordsRow: "Arrêtée la présente facture à la somme de : ...".
func wordsRow(doc *appbilling.RenderModel, th theme) core.Row {
	lead := "Arrêtée la présente facture à la somme de :"
	if doc.Kind == entity.DocumentQuote {
		lead = "Arrêté le présent devis à la somme de :"
	}
	return row.New(16).Add(col.New(12).Add(
		text.New(lead, props.Text{Size: 8, Color: th.muted, Top: 1}),
		text.New(doc.AmountInWords, props.Text{Style: fontstyle.BoldItalic, Size: 9, Top: 6}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func partyLine(label, value string) string {
	if value == "" {
		return ""
	}
	return label + " : " + value
}

func contactLine(p appbilling.RenderParty) string {
	parts := make([]string, 0, 2)
	if p.Phone != "" {
		parts = append(parts, "Tél : "+p.Phone)
	}
	if p.Email != "" {
		parts = append(parts, p.Email)
	}
	return strings.Join(parts, "  |  ")
}
