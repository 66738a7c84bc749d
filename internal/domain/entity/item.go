package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa el registro de inventario de un SKU en una bodega concreta.
// La pareja (SKU, WarehouseID) es única: el mismo SKU en otra bodega es otro registro.
type Item struct {
	ID              string
	SKU             string
	WarehouseID     string
	Name            string
	Description     string
	Category        string
	Brand           string
	Quantity        int64            // unidades físicas, nunca negativo
	UnitPrice       *decimal.Decimal // precio unitario, opcional
	VolumePerUnit   decimal.Decimal  // volumen que ocupa una unidad
	ReorderLevel    *int64           // punto de reorden, opcional
	WarrantyEndDate *time.Time
	ExpirationDate  *time.Time
	Barcode         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalVolume devuelve el volumen total que ocupa el registro (quantity × volume_per_unit).
func (i *Item) TotalVolume() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.VolumePerUnit)
}

// LowStock indica si la cantidad está en o por debajo del punto de reorden.
func (i *Item) LowStock() bool {
	return i.ReorderLevel != nil && i.Quantity <= *i.ReorderLevel
}

// CopyDescriptiveTo copia los atributos descriptivos (no cantidad ni bodega) a dst.
// Se usa al crear el registro destino de un traslado por primera vez.
func (i *Item) CopyDescriptiveTo(dst *Item) {
	dst.SKU = i.SKU
	dst.Name = i.Name
	dst.Description = i.Description
	dst.Category = i.Category
	dst.Brand = i.Brand
	dst.UnitPrice = i.UnitPrice
	dst.VolumePerUnit = i.VolumePerUnit
	dst.ReorderLevel = i.ReorderLevel
	dst.WarrantyEndDate = i.WarrantyEndDate
	dst.ExpirationDate = i.ExpirationDate
	dst.Barcode = i.Barcode
}
