package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransferUseCase ejecuta traslados de stock entre bodegas de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) sobre los registros de inventario y
// Commit/Rollback vía TxRunner. Es el único escritor de asientos TRANSFER del libro:
// no existe logging automático a nivel de base de datos.
type TransferUseCase struct {
	txRunner TxRunner
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner}
}

// TransferInput entrada de un traslado. PerformedBy es la identidad ya resuelta
// del operador; el caso de uso nunca la busca en un contexto ambiente.
type TransferInput struct {
	SKU                    string
	SourceWarehouseID      string
	DestinationWarehouseID string
	Quantity               int64
	PerformedBy            string
	Notes                  string
}

// Transfer valida y ejecuta el traslado. El orden de validación es fijo y cada
// rechazo aborta sin efecto alguno:
//  1. bodega origen != bodega destino
//  2. ambas bodegas existen y están activas
//  3. existe registro del SKU en la bodega origen
//  4. cantidad disponible >= cantidad solicitada
//
// Las validaciones 2 a 4 corren dentro de la transacción, con las filas de
// ambas bodegas bloqueadas (SELECT FOR UPDATE), para que una baja concurrente
// de la bodega no pueda colarse entre la validación y el commit.
//
// El efecto completo (restar origen, sumar/crear destino, mover volumen entre
// bodegas, dos asientos TRANSFER simétricos) es una sola transacción. La bodega
// destino no re-valida capacidad: un traslado no crea inventario nuevo, así que
// no hay control de admisión del lado receptor.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*dto.TransferResult, error) {
	if input.Quantity <= 0 {
		return nil, &domain.InvalidOperationError{Reason: "la cantidad a trasladar debe ser mayor que cero"}
	}
	if input.SourceWarehouseID == input.DestinationWarehouseID {
		return nil, &domain.InvalidOperationError{Reason: "bodega origen y destino no pueden ser la misma"}
	}

	now := time.Now()
	var result *dto.TransferResult

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.ActivityRepository,
	) error {
		// Bloquea ambas bodegas en orden estable de ID para evitar
		// interbloqueos entre traslados cruzados
		var srcWh, dstWh *entity.Warehouse
		first, second := input.SourceWarehouseID, input.DestinationWarehouseID
		if second < first {
			first, second = second, first
		}
		for _, id := range []string{first, second} {
			wh, err := warehouseRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if wh == nil {
				return &domain.NotFoundError{Entity: "bodega", Key: id}
			}
			if id == input.SourceWarehouseID {
				srcWh = wh
			} else {
				dstWh = wh
			}
		}
		if !srcWh.IsActive {
			return &domain.InvalidOperationError{Reason: "bodega origen inactiva: " + srcWh.Name}
		}
		if !dstWh.IsActive {
			return &domain.InvalidOperationError{Reason: "bodega destino inactiva: " + dstWh.Name}
		}

		// Bloquea la fila del registro origen (SELECT FOR UPDATE)
		source, err := itemRepo.GetBySKUAndWarehouseForUpdate(input.SKU, input.SourceWarehouseID)
		if err != nil {
			return err
		}
		if source == nil {
			return &domain.NotFoundError{Entity: "ítem", Key: input.SKU + "@" + srcWh.Name}
		}
		if source.Quantity < input.Quantity {
			return &domain.InsufficientStockError{
				SKU:       input.SKU,
				Available: source.Quantity,
				Requested: input.Quantity,
			}
		}

		volume := decimal.NewFromInt(input.Quantity).Mul(source.VolumePerUnit)
		srcPrev := source.Quantity

		// Resta en origen
		source.Quantity -= input.Quantity
		source.UpdatedAt = now
		if err := itemRepo.Update(source); err != nil {
			return err
		}
		if err := warehouseRepo.AddCapacity(input.SourceWarehouseID, volume.Neg()); err != nil {
			return err
		}

		// Suma en destino; si el SKU no existe allí, se crea copiando los
		// atributos descriptivos del registro origen
		dest, err := itemRepo.GetBySKUAndWarehouseForUpdate(input.SKU, input.DestinationWarehouseID)
		if err != nil {
			return err
		}
		destPrev := int64(0)
		if dest == nil {
			dest = &entity.Item{
				ID:          uuid.New().String(),
				WarehouseID: input.DestinationWarehouseID,
				Quantity:    input.Quantity,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			source.CopyDescriptiveTo(dest)
			if err := itemRepo.Create(dest); err != nil {
				return err
			}
		} else {
			destPrev = dest.Quantity
			dest.Quantity += input.Quantity
			dest.UpdatedAt = now
			if err := itemRepo.Update(dest); err != nil {
				return err
			}
		}
		if err := warehouseRepo.AddCapacity(input.DestinationWarehouseID, volume); err != nil {
			return err
		}

		// Dos asientos simétricos: salida en origen y entrada en destino,
		// ambos referenciando las dos bodegas
		departure := &entity.ActivityEntry{
			ID:                     uuid.New().String(),
			ItemID:                 &source.ID,
			SKU:                    source.SKU,
			Type:                   entity.ActivityTRANSFER,
			QuantityChange:         -input.Quantity,
			PreviousQuantity:       srcPrev,
			NewQuantity:            source.Quantity,
			Timestamp:              now,
			PerformedBy:            input.PerformedBy,
			SourceWarehouseID:      &srcWh.ID,
			DestinationWarehouseID: &dstWh.ID,
			Notes:                  input.Notes,
		}
		if err := activityRepo.Append(departure); err != nil {
			return err
		}
		arrival := &entity.ActivityEntry{
			ID:                     uuid.New().String(),
			ItemID:                 &dest.ID,
			SKU:                    dest.SKU,
			Type:                   entity.ActivityTRANSFER,
			QuantityChange:         input.Quantity,
			PreviousQuantity:       destPrev,
			NewQuantity:            dest.Quantity,
			Timestamp:              now,
			PerformedBy:            input.PerformedBy,
			SourceWarehouseID:      &srcWh.ID,
			DestinationWarehouseID: &dstWh.ID,
			Notes:                  input.Notes,
		}
		if err := activityRepo.Append(arrival); err != nil {
			return err
		}

		result = &dto.TransferResult{
			ActivityID:               arrival.ID,
			SKU:                      source.SKU,
			ItemName:                 source.Name,
			QuantityTransferred:      input.Quantity,
			PreviousQuantity:         srcPrev,
			NewQuantity:              source.Quantity,
			SourceWarehouseName:      srcWh.Name,
			DestinationWarehouseName: dstWh.Name,
			Timestamp:                now,
			PerformedBy:              input.PerformedBy,
			Notes:                    input.Notes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
