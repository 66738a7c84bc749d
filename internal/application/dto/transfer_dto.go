package dto

import "time"

// TransferRequest body para POST /api/transfers (y elemento de un lote).
type TransferRequest struct {
	SKU                    string `json:"sku"`
	SourceWarehouseID      string `json:"source_warehouse_id"`
	DestinationWarehouseID string `json:"destination_warehouse_id"`
	Quantity               int64  `json:"quantity"`
	Notes                  string `json:"notes,omitempty"`
}

// TransferResult resultado de un traslado exitoso. PreviousQuantity/NewQuantity
// describen la transición del registro en la bodega origen.
type TransferResult struct {
	ActivityID               string    `json:"activity_id"`
	SKU                      string    `json:"sku"`
	ItemName                 string    `json:"item_name"`
	QuantityTransferred      int64     `json:"quantity_transferred"`
	PreviousQuantity         int64     `json:"previous_quantity"`
	NewQuantity              int64     `json:"new_quantity"`
	SourceWarehouseName      string    `json:"source_warehouse_name"`
	DestinationWarehouseName string    `json:"destination_warehouse_name"`
	Timestamp                time.Time `json:"timestamp"`
	PerformedBy              string    `json:"performed_by"`
	Notes                    string    `json:"notes,omitempty"`
}

// BulkTransferRequest body para POST /api/transfers/bulk.
type BulkTransferRequest struct {
	Transfers []TransferRequest `json:"transfers"`
}

// BulkTransferError describe la falla de un traslado individual dentro del lote.
type BulkTransferError struct {
	Index   int    `json:"index"` // posición en la lista original
	SKU     string `json:"sku"`
	Message string `json:"message"`
}

// BulkTransferResult sobre de respuesta del lote: el lote en sí nunca "falla",
// las fallas individuales viajan en Errors.
type BulkTransferResult struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []TransferResult    `json:"results"`
	Errors    []BulkTransferError `json:"errors"`
}
