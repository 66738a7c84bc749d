package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name                   string          `json:"name"`
	Location               string          `json:"location"`
	MaxCapacity            decimal.Decimal `json:"max_capacity"`
	CapacityAlertThreshold decimal.Decimal `json:"capacity_alert_threshold"` // porcentaje
}

// UpdateWarehouseRequest body para PUT /api/warehouses/:id. Campos nil no se tocan.
type UpdateWarehouseRequest struct {
	Name                   *string          `json:"name,omitempty"`
	Location               *string          `json:"location,omitempty"`
	MaxCapacity            *decimal.Decimal `json:"max_capacity,omitempty"`
	CapacityAlertThreshold *decimal.Decimal `json:"capacity_alert_threshold,omitempty"`
}

// WarehouseResponse proyección de bodega en respuestas.
type WarehouseResponse struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Location               string          `json:"location"`
	MaxCapacity            decimal.Decimal `json:"max_capacity"`
	CurrentCapacity        decimal.Decimal `json:"current_capacity"`
	CapacityAlertThreshold decimal.Decimal `json:"capacity_alert_threshold"`
	IsActive               bool            `json:"is_active"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// WarehouseListResponse listado paginado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// WarehouseCapacityResponse estado de ocupación de una bodega.
type WarehouseCapacityResponse struct {
	WarehouseID    string          `json:"warehouse_id"`
	Name           string          `json:"name"`
	MaxCapacity    decimal.Decimal `json:"max_capacity"`
	UsedCapacity   decimal.Decimal `json:"used_capacity"`
	AvailableSpace decimal.Decimal `json:"available_space"`
	UsagePercent   decimal.Decimal `json:"usage_percent"`
	OverThreshold  bool            `json:"over_alert_threshold"`
}
