package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega física con control de capacidad volumétrica.
// CurrentCapacity debe ser exactamente la suma de quantity × volume_per_unit de
// todos los ítems almacenados; las rutas de mutación mantienen esa igualdad.
type Warehouse struct {
	ID                     string
	Name                   string // único en el sistema
	Location               string
	MaxCapacity            decimal.Decimal // volumen máximo admisible
	CurrentCapacity        decimal.Decimal // volumen ocupado actual (>= 0)
	CapacityAlertThreshold decimal.Decimal // porcentaje (ej. 80 = alerta al 80% de uso)
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// AvailableCapacity devuelve el volumen libre (max - current).
func (w *Warehouse) AvailableCapacity() decimal.Decimal {
	return w.MaxCapacity.Sub(w.CurrentCapacity)
}

// UsagePercent devuelve el porcentaje de ocupación (0 si MaxCapacity es cero).
func (w *Warehouse) UsagePercent() decimal.Decimal {
	if w.MaxCapacity.IsZero() {
		return decimal.Zero
	}
	return w.CurrentCapacity.Div(w.MaxCapacity).Mul(decimal.NewFromInt(100))
}

// OverAlertThreshold indica si la ocupación alcanza el umbral de alerta configurado.
func (w *Warehouse) OverAlertThreshold() bool {
	if w.CapacityAlertThreshold.IsZero() {
		return false
	}
	return w.UsagePercent().GreaterThanOrEqual(w.CapacityAlertThreshold)
}
