package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ActivityUseCase consultas de solo lectura sobre el libro de actividad.
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// List consulta asientos con los filtros presentes combinados con AND,
// ordenados del más reciente al más antiguo.
func (uc *ActivityUseCase) List(in dto.ActivityQueryRequest) (*dto.ActivityListResponse, error) {
	if in.Type != "" && !entity.ValidActivityType(in.Type) {
		return nil, &domain.InvalidOperationError{Reason: "tipo de actividad desconocido: " + in.Type}
	}
	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(repository.ActivityFilter{
		ItemID:      in.ItemID,
		SKU:         in.SKU,
		Type:        in.Type,
		PerformedBy: in.PerformedBy,
		WarehouseID: in.WarehouseID,
		From:        in.From,
		To:          in.To,
	}, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toActivityResponse(e))
	}
	return &dto.ActivityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toActivityResponse(e *entity.ActivityEntry) dto.ActivityEntryResponse {
	return dto.ActivityEntryResponse{
		ID:                     e.ID,
		ItemID:                 e.ItemID,
		SKU:                    e.SKU,
		Type:                   e.Type,
		QuantityChange:         e.QuantityChange,
		PreviousQuantity:       e.PreviousQuantity,
		NewQuantity:            e.NewQuantity,
		Timestamp:              e.Timestamp,
		PerformedBy:            e.PerformedBy,
		SourceWarehouseID:      e.SourceWarehouseID,
		DestinationWarehouseID: e.DestinationWarehouseID,
		Notes:                  e.Notes,
	}
}
