package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemUseCase cubre las mutaciones de un solo ítem (alta, edición, baja y ajuste
// manual de cantidad) con su contabilidad de capacidad. Cada operación corre en
// una transacción propia vía TxRunner y deja el asiento correspondiente en el
// libro de actividad (la baja es la excepción: revierte volumen sin asiento).
type ItemUseCase struct {
	txRunner             TxRunner
	itemRepo             repository.ItemRepository
	warehouseRepo        repository.WarehouseRepository
	defaultVolumePerUnit decimal.Decimal
}

// NewItemUseCase construye el caso de uso. defaultVolumePerUnit aplica cuando el
// alta no especifica volumen por unidad (configurable, por defecto 1).
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	defaultVolumePerUnit decimal.Decimal,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:             txRunner,
		itemRepo:             itemRepo,
		warehouseRepo:        warehouseRepo,
		defaultVolumePerUnit: defaultVolumePerUnit,
	}
}

// Create da de alta un registro de inventario en una bodega. Rechaza SKU duplicado
// en la misma bodega y volumen que exceda la capacidad disponible; si todo pasa,
// persiste el ítem, suma quantity × volume_per_unit a la bodega y deja un asiento
// RECEIVE.
func (uc *ItemUseCase) Create(ctx context.Context, performedBy string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.WarehouseID == "" || in.Name == "" {
		return nil, &domain.InvalidOperationError{Reason: "sku, warehouse_id y name son obligatorios"}
	}
	if in.Quantity < 0 {
		return nil, &domain.InvalidOperationError{Reason: "la cantidad inicial no puede ser negativa"}
	}
	volumePerUnit := uc.defaultVolumePerUnit
	if in.VolumePerUnit != nil {
		if in.VolumePerUnit.IsNegative() {
			return nil, &domain.InvalidOperationError{Reason: "volume_per_unit no puede ser negativo"}
		}
		volumePerUnit = *in.VolumePerUnit
	}

	now := time.Now()
	var created *entity.Item

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.ActivityRepository,
	) error {
		// Bloquea la bodega para que el chequeo de capacidad y la suma sean atómicos
		wh, err := warehouseRepo.GetForUpdate(in.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return &domain.NotFoundError{Entity: "bodega", Key: in.WarehouseID}
		}
		if !wh.IsActive {
			return &domain.InvalidOperationError{Reason: "bodega inactiva: " + wh.Name}
		}
		existing, err := itemRepo.GetBySKUAndWarehouse(in.SKU, in.WarehouseID)
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.DuplicateError{Entity: "ítem", Key: in.SKU + "@" + wh.Name}
		}

		volume := decimal.NewFromInt(in.Quantity).Mul(volumePerUnit)
		if volume.GreaterThan(wh.AvailableCapacity()) {
			return &domain.CapacityExceededError{
				WarehouseName:   wh.Name,
				AvailableVolume: wh.AvailableCapacity(),
				RequestedVolume: volume,
			}
		}

		item := &entity.Item{
			ID:              uuid.New().String(),
			SKU:             in.SKU,
			WarehouseID:     in.WarehouseID,
			Name:            in.Name,
			Description:     in.Description,
			Category:        in.Category,
			Brand:           in.Brand,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			VolumePerUnit:   volumePerUnit,
			ReorderLevel:    in.ReorderLevel,
			WarrantyEndDate: in.WarrantyEndDate,
			ExpirationDate:  in.ExpirationDate,
			Barcode:         in.Barcode,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if err := warehouseRepo.AddCapacity(in.WarehouseID, volume); err != nil {
			return err
		}

		entry := &entity.ActivityEntry{
			ID:                     uuid.New().String(),
			ItemID:                 &item.ID,
			SKU:                    item.SKU,
			Type:                   entity.ActivityRECEIVE,
			QuantityChange:         item.Quantity,
			PreviousQuantity:       0,
			NewQuantity:            item.Quantity,
			Timestamp:              now,
			PerformedBy:            performedBy,
			DestinationWarehouseID: &wh.ID,
			Notes:                  "alta de inventario en " + wh.Name,
		}
		if err := activityRepo.Append(entry); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(created), nil
}

// Update edita un ítem recalculando el delta de volumen y, aparte, la reubicación
// de bodega: resta la contribución anterior en la bodega vieja y valida/suma la
// nueva en la bodega destino. Cualquier incremento de volumen que no quepa aborta
// con capacidad excedida. Deja un asiento UPDATE cuyas notas resumen solo lo que
// cambió (reubicación y/o cambio de volumen), como diff legible, no estructurado.
func (uc *ItemUseCase) Update(ctx context.Context, performedBy, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	now := time.Now()
	var updated *entity.Item

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.ActivityRepository,
	) error {
		item, err := itemRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return &domain.NotFoundError{Entity: "ítem", Key: id}
		}

		oldQty := item.Quantity
		oldWarehouseID := item.WarehouseID
		oldVolume := item.TotalVolume()

		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Description != nil {
			item.Description = *in.Description
		}
		if in.Category != nil {
			item.Category = *in.Category
		}
		if in.Brand != nil {
			item.Brand = *in.Brand
		}
		if in.UnitPrice != nil {
			item.UnitPrice = in.UnitPrice
		}
		if in.ReorderLevel != nil {
			item.ReorderLevel = in.ReorderLevel
		}
		if in.WarrantyEndDate != nil {
			item.WarrantyEndDate = in.WarrantyEndDate
		}
		if in.ExpirationDate != nil {
			item.ExpirationDate = in.ExpirationDate
		}
		if in.Barcode != nil {
			item.Barcode = *in.Barcode
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return &domain.InvalidOperationError{Reason: "la cantidad no puede ser negativa"}
			}
			item.Quantity = *in.Quantity
		}
		if in.VolumePerUnit != nil {
			if in.VolumePerUnit.IsNegative() {
				return &domain.InvalidOperationError{Reason: "volume_per_unit no puede ser negativo"}
			}
			item.VolumePerUnit = *in.VolumePerUnit
		}

		newVolume := item.TotalVolume()
		var noteParts []string

		if in.WarehouseID != nil && *in.WarehouseID != oldWarehouseID {
			// Reubicación: el volumen completo sale de la bodega vieja y el
			// volumen nuevo debe caber en la bodega destino
			target, err := warehouseRepo.GetForUpdate(*in.WarehouseID)
			if err != nil {
				return err
			}
			if target == nil {
				return &domain.NotFoundError{Entity: "bodega", Key: *in.WarehouseID}
			}
			if !target.IsActive {
				return &domain.InvalidOperationError{Reason: "bodega destino inactiva: " + target.Name}
			}
			clash, err := itemRepo.GetBySKUAndWarehouse(item.SKU, target.ID)
			if err != nil {
				return err
			}
			if clash != nil && clash.ID != item.ID {
				return &domain.DuplicateError{Entity: "ítem", Key: item.SKU + "@" + target.Name}
			}
			if newVolume.GreaterThan(target.AvailableCapacity()) {
				return &domain.CapacityExceededError{
					WarehouseName:   target.Name,
					AvailableVolume: target.AvailableCapacity(),
					RequestedVolume: newVolume,
				}
			}
			if err := warehouseRepo.AddCapacity(oldWarehouseID, oldVolume.Neg()); err != nil {
				return err
			}
			if err := warehouseRepo.AddCapacity(target.ID, newVolume); err != nil {
				return err
			}
			item.WarehouseID = target.ID
			noteParts = append(noteParts, "reubicado a bodega "+target.Name)
		} else {
			volumeDelta := newVolume.Sub(oldVolume)
			if volumeDelta.IsPositive() {
				wh, err := warehouseRepo.GetForUpdate(oldWarehouseID)
				if err != nil {
					return err
				}
				if wh == nil {
					return &domain.NotFoundError{Entity: "bodega", Key: oldWarehouseID}
				}
				if volumeDelta.GreaterThan(wh.AvailableCapacity()) {
					return &domain.CapacityExceededError{
						WarehouseName:   wh.Name,
						AvailableVolume: wh.AvailableCapacity(),
						RequestedVolume: volumeDelta,
					}
				}
			}
			if !volumeDelta.IsZero() {
				if err := warehouseRepo.AddCapacity(oldWarehouseID, volumeDelta); err != nil {
					return err
				}
			}
		}
		if !newVolume.Equal(oldVolume) {
			noteParts = append(noteParts,
				fmt.Sprintf("volumen %s -> %s", oldVolume.String(), newVolume.String()))
		}
		if len(noteParts) == 0 {
			noteParts = append(noteParts, "edición de atributos descriptivos")
		}

		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}

		var srcRef *string
		if item.WarehouseID != oldWarehouseID {
			srcRef = &oldWarehouseID
		}
		entry := &entity.ActivityEntry{
			ID:                     uuid.New().String(),
			ItemID:                 &item.ID,
			SKU:                    item.SKU,
			Type:                   entity.ActivityUPDATE,
			QuantityChange:         item.Quantity - oldQty,
			PreviousQuantity:       oldQty,
			NewQuantity:            item.Quantity,
			Timestamp:              now,
			PerformedBy:            performedBy,
			SourceWarehouseID:      srcRef,
			DestinationWarehouseID: &item.WarehouseID,
			Notes:                  strings.Join(noteParts, "; "),
		}
		if err := activityRepo.Append(entry); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// Delete elimina el registro revirtiendo su contribución de volumen a la bodega.
// La baja no deja asiento; los asientos previos del SKU sobreviven desnormalizados.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		_ repository.ActivityRepository,
	) error {
		item, err := itemRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return &domain.NotFoundError{Entity: "ítem", Key: id}
		}
		if err := warehouseRepo.AddCapacity(item.WarehouseID, item.TotalVolume().Neg()); err != nil {
			return err
		}
		return itemRepo.Delete(id)
	})
}

// AdjustQuantity aplica un delta manual a la cantidad. Rechaza resultados
// negativos y deltas positivos cuyo volumen no quepa en la bodega; si pasa,
// muta cantidad y capacidad juntas y deja un asiento ADJUSTMENT.
func (uc *ItemUseCase) AdjustQuantity(ctx context.Context, performedBy, id string, delta int64, notes string) (*dto.ItemResponse, error) {
	if delta == 0 {
		return nil, &domain.InvalidOperationError{Reason: "el ajuste debe ser distinto de cero"}
	}
	now := time.Now()
	var adjusted *entity.Item

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.ActivityRepository,
	) error {
		item, err := itemRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return &domain.NotFoundError{Entity: "ítem", Key: id}
		}
		prev := item.Quantity
		next := prev + delta
		if next < 0 {
			return &domain.InvalidOperationError{
				Reason: fmt.Sprintf("el ajuste dejaría cantidad negativa (%d%+d)", prev, delta),
			}
		}

		volumeDelta := decimal.NewFromInt(delta).Mul(item.VolumePerUnit)
		if volumeDelta.IsPositive() {
			wh, err := warehouseRepo.GetForUpdate(item.WarehouseID)
			if err != nil {
				return err
			}
			if wh == nil {
				return &domain.NotFoundError{Entity: "bodega", Key: item.WarehouseID}
			}
			if volumeDelta.GreaterThan(wh.AvailableCapacity()) {
				return &domain.CapacityExceededError{
					WarehouseName:   wh.Name,
					AvailableVolume: wh.AvailableCapacity(),
					RequestedVolume: volumeDelta,
				}
			}
		}

		item.Quantity = next
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		if !volumeDelta.IsZero() {
			if err := warehouseRepo.AddCapacity(item.WarehouseID, volumeDelta); err != nil {
				return err
			}
		}

		note := fmt.Sprintf("ajuste manual de %+d unidades", delta)
		if notes != "" {
			note += ": " + notes
		}
		entry := &entity.ActivityEntry{
			ID:                     uuid.New().String(),
			ItemID:                 &item.ID,
			SKU:                    item.SKU,
			Type:                   entity.ActivityADJUSTMENT,
			QuantityChange:         delta,
			PreviousQuantity:       prev,
			NewQuantity:            next,
			Timestamp:              now,
			PerformedBy:            performedBy,
			DestinationWarehouseID: &item.WarehouseID,
			Notes:                  note,
		}
		if err := activityRepo.Append(entry); err != nil {
			return err
		}
		adjusted = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(adjusted), nil
}

// GetByID consulta un ítem (fuera de transacción, solo lectura).
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.NotFoundError{Entity: "ítem", Key: id}
	}
	return toItemResponse(item), nil
}

// ListByWarehouse lista los ítems de una bodega con paginación.
func (uc *ItemUseCase) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemList(list, limit, offset), nil
}

// ListLowStock lista los ítems en o por debajo de su punto de reorden.
// warehouseID vacío consulta todas las bodegas.
func (uc *ItemUseCase) ListLowStock(ctx context.Context, warehouseID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.ListLowStock(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemList(list, limit, offset), nil
}

func toItemList(list []*entity.Item, limit, offset int) *dto.ItemListResponse {
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              i.ID,
		SKU:             i.SKU,
		WarehouseID:     i.WarehouseID,
		Name:            i.Name,
		Description:     i.Description,
		Category:        i.Category,
		Brand:           i.Brand,
		Quantity:        i.Quantity,
		UnitPrice:       i.UnitPrice,
		VolumePerUnit:   i.VolumePerUnit,
		ReorderLevel:    i.ReorderLevel,
		WarrantyEndDate: i.WarrantyEndDate,
		ExpirationDate:  i.ExpirationDate,
		Barcode:         i.Barcode,
		TotalVolume:     i.TotalVolume(),
		LowStock:        i.LowStock(),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
