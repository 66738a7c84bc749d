package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/infrastructure/metrics"
)

// maxBulkTransfers límite de traslados por lote, para acotar el tamaño del request.
const maxBulkTransfers = 500

// TransferHandler expone traslados individuales y por lote.
type TransferHandler struct {
	transfer *inventory.TransferUseCase
	bulk     *inventory.BulkTransferUseCase
}

// NewTransferHandler construye el handler de traslados.
func NewTransferHandler(transfer *inventory.TransferUseCase, bulk *inventory.BulkTransferUseCase) *TransferHandler {
	return &TransferHandler{transfer: transfer, bulk: bulk}
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas
// @Description  Resta en la bodega origen, suma (o crea el registro) en la destino y
// @Description  asienta dos movimientos TRANSFER simétricos, todo en una transacción.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "sku, bodegas y cantidad"
// @Success      200  {object}  dto.TransferResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/transfers [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.transfer.Transfer(c.Context(), inventory.TransferInput{
		SKU:                    in.SKU,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Quantity:               in.Quantity,
		PerformedBy:            GetUserID(c),
		Notes:                  in.Notes,
	})
	if err != nil {
		metrics.TransfersTotal.WithLabelValues("error").Inc()
		return respondError(c, err)
	}
	metrics.TransfersTotal.WithLabelValues("ok").Inc()
	return c.JSON(out)
}

// BulkTransfer godoc
// @Summary      Trasladar stock por lote (mejor esfuerzo)
// @Description  Procesa los traslados en orden; cada uno es su propia transacción.
// @Description  Las fallas individuales no abortan el lote ni revierten los anteriores.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkTransferRequest  true  "lista de traslados"
// @Success      200  {object}  dto.BulkTransferResult
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/transfers/bulk [post]
func (h *TransferHandler) BulkTransfer(c *fiber.Ctx) error {
	var in dto.BulkTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if len(in.Transfers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote no contiene traslados"})
	}
	if len(in.Transfers) > maxBulkTransfers {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote excede el máximo de traslados permitidos"})
	}
	out := h.bulk.BulkTransfer(c.Context(), GetUserID(c), in.Transfers)
	metrics.BulkTransfersTotal.Inc()
	metrics.BulkTransferRequestsTotal.WithLabelValues("ok").Add(float64(out.Succeeded))
	metrics.BulkTransferRequestsTotal.WithLabelValues("error").Add(float64(out.Failed))
	return c.JSON(out)
}
