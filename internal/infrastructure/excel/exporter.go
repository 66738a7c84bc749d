// Package excel exporta reportes XLSX del libro de actividad y del stock por
// bodega usando excelize. Solo lectura: consume entidades ya consultadas.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Ensure Exporter implements report.WorkbookExporter.
var _ report.WorkbookExporter = (*Exporter)(nil)

// Exporter genera libros XLSX.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ActivityWorkbook genera un libro con una hoja "Actividad": un asiento por fila.
func (e *Exporter) ActivityWorkbook(entries []*entity.ActivityEntry) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Actividad"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "SKU", "Tipo", "Delta", "Cantidad anterior", "Cantidad nueva",
		"Fecha", "Operador", "Bodega origen", "Bodega destino", "Notas"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, entry := range entries {
		values := []any{
			entry.ID, entry.SKU, entry.Type, entry.QuantityChange,
			entry.PreviousQuantity, entry.NewQuantity,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.PerformedBy,
			deref(entry.SourceWarehouseID), deref(entry.DestinationWarehouseID),
			entry.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir XLSX de actividad: %w", err)
	}
	return buf.Bytes(), nil
}

// StockWorkbook genera un libro con una hoja por bodega más una hoja resumen de
// capacidades.
func (e *Exporter) StockWorkbook(sections []report.StockSection) ([]byte, error) {
	f := excelize.NewFile()
	const summary = "Resumen"
	f.SetSheetName("Sheet1", summary)

	summaryHeaders := []string{"Bodega", "Ubicación", "Capacidad máxima", "Capacidad usada",
		"% ocupación", "Activa", "Ítems"}
	for col, h := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(summary, cell, h); err != nil {
			return nil, err
		}
	}

	for i, section := range sections {
		w := section.Warehouse
		summaryRow := []any{
			w.Name, w.Location,
			w.MaxCapacity.String(), w.CurrentCapacity.String(),
			w.UsagePercent().StringFixed(2), w.IsActive, len(section.Items),
		}
		for col, v := range summaryRow {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(summary, cell, v); err != nil {
				return nil, err
			}
		}

		sheet := sheetName(w.Name, i)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		itemHeaders := []string{"SKU", "Nombre", "Categoría", "Marca", "Cantidad",
			"Volumen/unidad", "Volumen total", "Punto de reorden"}
		for col, h := range itemHeaders {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return nil, err
			}
		}
		for row, item := range section.Items {
			reorder := ""
			if item.ReorderLevel != nil {
				reorder = fmt.Sprintf("%d", *item.ReorderLevel)
			}
			values := []any{
				item.SKU, item.Name, item.Category, item.Brand, item.Quantity,
				item.VolumePerUnit.String(), item.TotalVolume().String(), reorder,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir XLSX de stock: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName recorta el nombre de la bodega al límite de excel (31 caracteres).
func sheetName(name string, idx int) string {
	if name == "" {
		return fmt.Sprintf("Bodega %d", idx+1)
	}
	if len(name) > 31 {
		return name[:31]
	}
	return name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
