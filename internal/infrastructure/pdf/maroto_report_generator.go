// Package pdf genera el reporte PDF de una validación de identificaciones por lote.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + servicio   │  Lote + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total / Válidos / Inválidos + conteo por tipo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Número | Tipo | Estado | Detalle                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el id del lote + leyenda                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/validador-ec/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorValid   = &props.Color{Red: 0, Green: 128, Blue: 0}
	colorInvalid = &props.Color{Red: 180, Green: 0, Blue: 0}
)

// typeLabels nombres legibles de los tipos de documento.
var typeLabels = map[string]string{
	"cedula":      "Cédula",
	"ruc_natural": "RUC persona natural",
	"ruc_private": "RUC sociedad privada",
	"ruc_public":  "RUC sociedad pública",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	service string
}

// NewMarotoReportGenerator construye el generador; service aparece en la cabecera.
func NewMarotoReportGenerator(service string) *MarotoReportGenerator {
	return &MarotoReportGenerator{service: service}
}

// GenerateBatchReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateBatchReport(_ context.Context, batch *dto.BatchResponse) ([]byte, error) {
	if batch == nil {
		return nil, fmt.Errorf("pdf: lote nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de validación de identificaciones", true).
		WithAuthor(g.service, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.service, batch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(batch)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(batch.Items)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(batch))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + servicio (izq) y lote + fecha (der).
func headerRow(service string, batch *dto.BatchResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("VALIDACIÓN DE CÉDULAS Y RUC", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(service, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LOTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(batch.BatchID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+batch.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// summaryRows: contadores del lote y conteo de válidos por tipo.
func summaryRows(batch *dto.BatchResponse) []core.Row {
	counter := func(label string, n int, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(n), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	rows := []core.Row{
		row.New(14).Add(
			counter("Total", batch.Total, colorPrimary),
			counter("Válidos", batch.ValidCount, colorValid),
			counter("Inválidos", batch.InvalidCount, colorInvalid),
		),
	}

	types := make([]string, 0, len(batch.ByType))
	for t := range batch.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(nonEmpty(typeLabels[t], t), props.Text{Size: 8, Align: align.Right, Right: 2})),
			col.New(4).Add(text.New(strconv.Itoa(batch.ByType[t]), props.Text{Style: fontstyle.Bold, Size: 8})),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla con fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Número", 3, align.Left),
		h("Tipo", 3, align.Left),
		h("Estado", 1, align.Center),
		h("Detalle", 4, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableItemRows: una fila por identificación del lote.
func tableItemRows(items []dto.ValidationResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		status, c := "OK", colorValid
		if !it.Valid {
			status, c = "ERROR", colorInvalid
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(nonEmpty(it.Number, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(typeLabels[it.DocumentType], "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(status, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: c, Top: 1})),
			col.New(4).Add(text.New(it.Error, props.Text{Size: 7, Color: colorGray, Top: 1, Left: 1})),
		))
	}
	return result
}

// footerRow: QR con el id del lote para rastrear el reporte + leyenda.
func footerRow(batch *dto.BatchResponse) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(batch.BatchID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Validación local de formato y dígito verificador según las reglas del SRI.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("No constituye una consulta al catastro de contribuyentes.", props.Text{
				Size: 8, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
