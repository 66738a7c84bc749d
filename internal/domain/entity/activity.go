package entity

import "time"

// Tipos de actividad del libro de movimientos.
const (
	ActivityRECEIVE    = "RECEIVE"    // alta de inventario (creación de ítem)
	ActivityADJUSTMENT = "ADJUSTMENT" // ajuste manual de cantidad
	ActivityTRANSFER   = "TRANSFER"   // traslado entre bodegas
	ActivityUPDATE     = "UPDATE"     // edición de ítem con efecto en volumen/bodega
)

// ValidActivityType verifica si s es un tipo de actividad conocido.
func ValidActivityType(s string) bool {
	switch s {
	case ActivityRECEIVE, ActivityADJUSTMENT, ActivityTRANSFER, ActivityUPDATE:
		return true
	}
	return false
}

// ActivityEntry es un asiento inmutable del libro de actividad. Solo se inserta:
// no existe update ni delete. SKU va desnormalizado para que el asiento sobreviva
// a la eliminación del ítem. Invariante: NewQuantity == PreviousQuantity + QuantityChange.
type ActivityEntry struct {
	ID                     string
	ItemID                 *string // referencia al ítem; NULL si el ítem fue eliminado
	SKU                    string
	Type                   string
	QuantityChange         int64 // delta con signo
	PreviousQuantity       int64
	NewQuantity            int64
	Timestamp              time.Time
	PerformedBy            string  // ID del usuario que ejecutó la operación
	SourceWarehouseID      *string // bodega origen (traslados)
	DestinationWarehouseID *string // bodega destino (traslados y altas)
	Notes                  string
}
