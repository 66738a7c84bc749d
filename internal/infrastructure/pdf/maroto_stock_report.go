// Package pdf implementa el reporte PDF de stock y capacidad por bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada bodega:                                           │
//	│    Nombre + ubicación + capacidad usada/máxima (% ocupado)  │
//	│    TABLA: SKU | Nombre | Cant | Vol/unidad | Vol total      │
//	│  ─────────────────────────────────────────────────────────  │
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

	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure MarotoStockReport implements report.StockPDFGenerator.
var _ report.StockPDFGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa report.StockPDFGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, sections []report.StockSection) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock por bodega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range sections {
		m.AddRows(warehouseRow(section.Warehouse, len(section.Items)))
		m.AddRows(tableHeaderRow())
		for _, r := range itemRows(section.Items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte + fecha de generación.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE STOCK Y CAPACIDAD", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// warehouseRow: nombre, ubicación y ocupación de la bodega. La ocupación se
// pinta en rojo si supera el umbral de alerta.
func warehouseRow(w *entity.Warehouse, itemCount int) core.Row {
	usage := fmt.Sprintf("%s / %s (%s%%)",
		w.CurrentCapacity.String(), w.MaxCapacity.String(), w.UsagePercent().StringFixed(1))
	usageColor := colorGray
	if w.OverAlertThreshold() {
		usageColor = colorAlert
	}
	status := ""
	if !w.IsActive {
		status = "   [INACTIVA]"
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New(w.Name+status, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 2,
			}),
			text.New(fmt.Sprintf("%s   |   %d ítems", w.Location, itemCount), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Capacidad", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(usage, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: usageColor,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Nombre", 5, align.Left),
		h("Cant.", 1, align.Right),
		h("Vol/unid.", 2, align.Right),
		h("Vol. total", 2, align.Right),
	)
}

// itemRows: una fila por registro de inventario.
func itemRows(items []*entity.Item) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(it.Name, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(it.VolumePerUnit.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(it.TotalVolume().String(),
				props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}
