package report

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Límites internos para reportes completos (sin paginación expuesta).
const (
	maxReportWarehouses     = 500
	maxReportItemsPerBodega = 10000
	maxReportEntries        = 50000
)

// ReportUseCase arma reportes de solo lectura sobre el stock y el libro de
// actividad. Nunca escribe: consume los repositorios igual que cualquier otro
// colaborador externo de lectura.
type ReportUseCase struct {
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.ItemRepository
	activityRepo  repository.ActivityRepository
	pdfGen        StockPDFGenerator
	exporter      WorkbookExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.ItemRepository,
	activityRepo repository.ActivityRepository,
	pdfGen StockPDFGenerator,
	exporter WorkbookExporter,
) *ReportUseCase {
	return &ReportUseCase{
		warehouseRepo: warehouseRepo,
		itemRepo:      itemRepo,
		activityRepo:  activityRepo,
		pdfGen:        pdfGen,
		exporter:      exporter,
	}
}

// ActivityXLSX exporta el libro de actividad filtrado como XLSX.
func (uc *ReportUseCase) ActivityXLSX(ctx context.Context, in dto.ActivityQueryRequest) ([]byte, error) {
	entries, err := uc.activityRepo.List(repository.ActivityFilter{
		ItemID:      in.ItemID,
		SKU:         in.SKU,
		Type:        in.Type,
		PerformedBy: in.PerformedBy,
		WarehouseID: in.WarehouseID,
		From:        in.From,
		To:          in.To,
	}, maxReportEntries, 0)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ActivityWorkbook(entries)
}

// StockXLSX exporta el stock por bodega como XLSX.
func (uc *ReportUseCase) StockXLSX(ctx context.Context) ([]byte, error) {
	sections, err := uc.collectSections()
	if err != nil {
		return nil, err
	}
	return uc.exporter.StockWorkbook(sections)
}

// StockPDF genera el reporte PDF de stock y capacidad por bodega.
func (uc *ReportUseCase) StockPDF(ctx context.Context) ([]byte, error) {
	sections, err := uc.collectSections()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockReport(ctx, sections)
}

func (uc *ReportUseCase) collectSections() ([]StockSection, error) {
	warehouses, err := uc.warehouseRepo.List(maxReportWarehouses, 0)
	if err != nil {
		return nil, err
	}
	sections := make([]StockSection, 0, len(warehouses))
	for _, w := range warehouses {
		items, err := uc.itemRepo.ListByWarehouse(w.ID, maxReportItemsPerBodega, 0)
		if err != nil {
			return nil, err
		}
		sections = append(sections, StockSection{Warehouse: w, Items: items})
	}
	return sections, nil
}
