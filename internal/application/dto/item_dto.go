package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items (alta de inventario en una bodega).
// VolumePerUnit nil usa el valor por defecto configurado en la aplicación.
type CreateItemRequest struct {
	SKU             string           `json:"sku"`
	WarehouseID     string           `json:"warehouse_id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Category        string           `json:"category,omitempty"`
	Brand           string           `json:"brand,omitempty"`
	Quantity        int64            `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	VolumePerUnit   *decimal.Decimal `json:"volume_per_unit,omitempty"`
	ReorderLevel    *int64           `json:"reorder_level,omitempty"`
	WarrantyEndDate *time.Time       `json:"warranty_end_date,omitempty"`
	ExpirationDate  *time.Time       `json:"expiration_date,omitempty"`
	Barcode         string           `json:"barcode,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
// WarehouseID distinto reubica el ítem moviendo su contribución de volumen.
type UpdateItemRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Brand           *string          `json:"brand,omitempty"`
	Quantity        *int64           `json:"quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	VolumePerUnit   *decimal.Decimal `json:"volume_per_unit,omitempty"`
	ReorderLevel    *int64           `json:"reorder_level,omitempty"`
	WarrantyEndDate *time.Time       `json:"warranty_end_date,omitempty"`
	ExpirationDate  *time.Time       `json:"expiration_date,omitempty"`
	Barcode         *string          `json:"barcode,omitempty"`
	WarehouseID     *string          `json:"warehouse_id,omitempty"`
}

// AdjustQuantityRequest body para POST /api/items/:id/adjust.
type AdjustQuantityRequest struct {
	QuantityChange int64  `json:"quantity_change"` // delta con signo
	Notes          string `json:"notes,omitempty"`
}

// ItemResponse proyección de un registro de inventario.
type ItemResponse struct {
	ID              string           `json:"id"`
	SKU             string           `json:"sku"`
	WarehouseID     string           `json:"warehouse_id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Category        string           `json:"category,omitempty"`
	Brand           string           `json:"brand,omitempty"`
	Quantity        int64            `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	VolumePerUnit   decimal.Decimal  `json:"volume_per_unit"`
	ReorderLevel    *int64           `json:"reorder_level,omitempty"`
	WarrantyEndDate *time.Time       `json:"warranty_end_date,omitempty"`
	ExpirationDate  *time.Time       `json:"expiration_date,omitempty"`
	Barcode         string           `json:"barcode,omitempty"`
	TotalVolume     decimal.Decimal  `json:"total_volume"`
	LowStock        bool             `json:"low_stock"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
