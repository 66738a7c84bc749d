package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemCounter cuenta los ítems registrados en una bodega. Lo satisface
// repository.ItemRepository.
type ItemCounter interface {
	CountByWarehouse(warehouseID string) (int64, error)
}

// WarehouseUseCase casos de uso de aprovisionamiento de bodegas. La baja (soft o
// hard) exige bodega vacía: sin ítems registrados y con current_capacity en
// cero. Ambas condiciones se verifican porque un ítem con volumen unitario
// cero ocupa capacidad cero pero sigue referenciando la bodega.
type WarehouseUseCase struct {
	repo  repository.WarehouseRepository
	items ItemCounter
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, items ItemCounter) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, items: items}
}

// Create aprovisiona una nueva bodega. El nombre es único en el sistema.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, &domain.InvalidOperationError{Reason: "el nombre de la bodega es obligatorio"}
	}
	if in.MaxCapacity.IsNegative() {
		return nil, &domain.InvalidOperationError{Reason: "max_capacity no puede ser negativa"}
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Entity: "bodega", Key: in.Name}
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:                     uuid.New().String(),
		Name:                   in.Name,
		Location:               in.Location,
		MaxCapacity:            in.MaxCapacity,
		CapacityAlertThreshold: in.CapacityAlertThreshold,
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, &domain.NotFoundError{Entity: "bodega", Key: id}
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza metadatos de una bodega. No permite bajar max_capacity por
// debajo del volumen ya ocupado.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, &domain.NotFoundError{Entity: "bodega", Key: id}
	}
	if in.Name != nil && *in.Name != warehouse.Name {
		clash, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if clash != nil {
			return nil, &domain.DuplicateError{Entity: "bodega", Key: *in.Name}
		}
		warehouse.Name = *in.Name
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
	}
	if in.MaxCapacity != nil {
		if in.MaxCapacity.LessThan(warehouse.CurrentCapacity) {
			return nil, &domain.InvalidOperationError{
				Reason: "max_capacity no puede quedar por debajo del volumen ocupado",
			}
		}
		warehouse.MaxCapacity = *in.MaxCapacity
	}
	if in.CapacityAlertThreshold != nil {
		warehouse.CapacityAlertThreshold = *in.CapacityAlertThreshold
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Deactivate da de baja lógica (is_active=false) una bodega vacía.
func (uc *WarehouseUseCase) Deactivate(id string) error {
	warehouse, err := uc.emptyWarehouse(id)
	if err != nil {
		return err
	}
	warehouse.IsActive = false
	warehouse.UpdatedAt = time.Now()
	return uc.repo.Update(warehouse)
}

// Delete elimina físicamente una bodega vacía.
func (uc *WarehouseUseCase) Delete(id string) error {
	if _, err := uc.emptyWarehouse(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// Capacity devuelve el estado de ocupación de la bodega.
func (uc *WarehouseUseCase) Capacity(id string) (*dto.WarehouseCapacityResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, &domain.NotFoundError{Entity: "bodega", Key: id}
	}
	return &dto.WarehouseCapacityResponse{
		WarehouseID:    warehouse.ID,
		Name:           warehouse.Name,
		MaxCapacity:    warehouse.MaxCapacity,
		UsedCapacity:   warehouse.CurrentCapacity,
		AvailableSpace: warehouse.AvailableCapacity(),
		UsagePercent:   warehouse.UsagePercent(),
		OverThreshold:  warehouse.OverAlertThreshold(),
	}, nil
}

// emptyWarehouse obtiene la bodega y verifica la precondición de baja (vacía).
func (uc *WarehouseUseCase) emptyWarehouse(id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, &domain.NotFoundError{Entity: "bodega", Key: id}
	}
	if !warehouse.CurrentCapacity.IsZero() {
		return nil, &domain.InvalidOperationError{
			Reason: "la bodega " + warehouse.Name + " no está vacía",
		}
	}
	count, err := uc.items.CountByWarehouse(id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &domain.InvalidOperationError{
			Reason: "la bodega " + warehouse.Name + " aún almacena ítems",
		}
	}
	return warehouse, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:                     w.ID,
		Name:                   w.Name,
		Location:               w.Location,
		MaxCapacity:            w.MaxCapacity,
		CurrentCapacity:        w.CurrentCapacity,
		CapacityAlertThreshold: w.CapacityAlertThreshold,
		IsActive:               w.IsActive,
		CreatedAt:              w.CreatedAt,
		UpdatedAt:              w.UpdatedAt,
	}
}
