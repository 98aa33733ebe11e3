// Package pdf genera el reporte PDF del inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario + fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / unidades / valor total / bajo stock    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: categoría | items | unidades | valor | precio prom.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: producto | severidad | actual/mínimo | faltante    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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

	"github.com/jhoicas/manufactura-api/internal/application/dto"
	"github.com/jhoicas/manufactura-api/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	summary dto.InventorySummary,
	rollups []dto.CategoryRollup,
	alerts []dto.LowStockAlert,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(categoryHeaderRow())
	for _, r := range categoryRows(rollups) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(alertHeaderRow(len(alerts)))
	for _, r := range alertRows(alerts) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: KPIs globales en una franja.
func summaryRow(s dto.InventorySummary) core.Row {
	kpi := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return row.New(14).Add(
		kpi("Productos", fmt.Sprintf("%d", s.ProductCount), 3),
		kpi("Unidades en stock", fmt.Sprintf("%d", s.TotalStock), 3),
		kpi("Valor total", "$"+s.TotalValue.StringFixed(2), 3),
		kpi("En bajo stock", fmt.Sprintf("%d", s.LowStockCount), 3),
	)
}

func categoryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 4, align.Left),
		h("Items", 2, align.Center),
		h("Unidades", 2, align.Center),
		h("Valor", 2, align.Right),
		h("Precio prom.", 2, align.Right),
	)
}

func categoryRows(rollups []dto.CategoryRollup) []core.Row {
	result := make([]core.Row, 0, len(rollups))
	for _, r := range rollups {
		avg := "—"
		if r.Stock > 0 {
			avg = "$" + r.AvgPrice.StringFixed(2)
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(r.Category, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", r.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", r.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+r.Value.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(avg, props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func alertHeaderRow(total int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("ALERTAS DE BAJO STOCK (%d)", total), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorDanger, Top: 2,
			}),
		),
	)
}

func alertRows(alerts []dto.LowStockAlert) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		p := a.Product
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.ProductID, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(strings.ToUpper(strings.ReplaceAll(a.Tier, "_", " ")), props.Text{
				Size: 7, Style: fontstyle.Bold, Color: colorDanger, Top: 1,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d / %d %s", p.CurrentStock, p.MinStock, p.Unit), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("faltan %d", a.Shortage), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			})),
		))
	}
	return result
}
