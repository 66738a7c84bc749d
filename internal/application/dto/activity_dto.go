package dto

import "time"

// ActivityQueryRequest filtros de GET /api/activity (query params, combinados con AND).
type ActivityQueryRequest struct {
	ItemID      string     `query:"item_id"`
	SKU         string     `query:"sku"`
	Type        string     `query:"type"`
	PerformedBy string     `query:"performed_by"`
	WarehouseID string     `query:"warehouse_id"`
	From        *time.Time `query:"from"`
	To          *time.Time `query:"to"`
	Limit       int        `query:"limit"`
	Offset      int        `query:"offset"`
}

// ActivityEntryResponse proyección de un asiento del libro de actividad.
type ActivityEntryResponse struct {
	ID                     string    `json:"id"`
	ItemID                 *string   `json:"item_id,omitempty"`
	SKU                    string    `json:"sku"`
	Type                   string    `json:"type"`
	QuantityChange         int64     `json:"quantity_change"`
	PreviousQuantity       int64     `json:"previous_quantity"`
	NewQuantity            int64     `json:"new_quantity"`
	Timestamp              time.Time `json:"timestamp"`
	PerformedBy            string    `json:"performed_by"`
	SourceWarehouseID      *string   `json:"source_warehouse_id,omitempty"`
	DestinationWarehouseID *string   `json:"destination_warehouse_id,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
}

// ActivityListResponse listado paginado de asientos.
type ActivityListResponse struct {
	Items []ActivityEntryResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
