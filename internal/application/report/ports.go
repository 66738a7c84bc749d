package report

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockSection agrupa una bodega con sus ítems para los reportes.
type StockSection struct {
	Warehouse *entity.Warehouse
	Items     []*entity.Item
}

// StockPDFGenerator puerto de generación del reporte PDF de stock y capacidad.
type StockPDFGenerator interface {
	GenerateStockReport(ctx context.Context, sections []StockSection) ([]byte, error)
}

// WorkbookExporter puerto de exportación XLSX (libro de actividad y stock).
type WorkbookExporter interface {
	ActivityWorkbook(entries []*entity.ActivityEntry) ([]byte, error)
	StockWorkbook(sections []StockSection) ([]byte, error)
}
