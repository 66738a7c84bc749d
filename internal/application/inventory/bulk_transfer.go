package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// BulkTransferUseCase ejecuta lotes de traslados en modo mejor-esfuerzo: cada
// traslado corre de forma secuencial con su propia transacción independiente.
// La falla del traslado i se registra y la ejecución continúa con el i+1; nunca
// aborta el lote ni revierte los éxitos anteriores.
type BulkTransferUseCase struct {
	transfer *TransferUseCase
}

// NewBulkTransferUseCase construye el caso de uso.
func NewBulkTransferUseCase(transfer *TransferUseCase) *BulkTransferUseCase {
	return &BulkTransferUseCase{transfer: transfer}
}

// BulkTransfer ejecuta los traslados en el orden recibido y devuelve el sobre de
// resultados. El sobre siempre se construye: las fallas individuales viajan en
// Errors con su índice original y succeeded + failed == total.
func (uc *BulkTransferUseCase) BulkTransfer(ctx context.Context, performedBy string, requests []dto.TransferRequest) *dto.BulkTransferResult {
	out := &dto.BulkTransferResult{
		Total:   len(requests),
		Results: make([]dto.TransferResult, 0, len(requests)),
		Errors:  make([]dto.BulkTransferError, 0),
	}
	for i, req := range requests {
		res, err := uc.transfer.Transfer(ctx, TransferInput{
			SKU:                    req.SKU,
			SourceWarehouseID:      req.SourceWarehouseID,
			DestinationWarehouseID: req.DestinationWarehouseID,
			Quantity:               req.Quantity,
			PerformedBy:            performedBy,
			Notes:                  req.Notes,
		})
		if err != nil {
			out.Failed++
			out.Errors = append(out.Errors, dto.BulkTransferError{
				Index:   i,
				SKU:     req.SKU,
				Message: err.Error(),
			})
			continue
		}
		out.Succeeded++
		out.Results = append(out.Results, *res)
	}
	return out
}
