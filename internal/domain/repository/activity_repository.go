package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ActivityFilter agrupa los filtros de consulta del libro de actividad.
// Los filtros presentes se combinan con AND; los ausentes no restringen.
type ActivityFilter struct {
	ItemID      string     // por ítem
	SKU         string     // por SKU, sin distinguir mayúsculas
	Type        string     // RECEIVE, ADJUSTMENT, TRANSFER, UPDATE
	PerformedBy string     // ID o username del operador
	WarehouseID string     // coincide como origen o como destino
	From        *time.Time // timestamp >= From
	To          *time.Time // timestamp <= To
}

// ActivityRepository define el puerto de persistencia del libro de actividad.
// Append es el único mutador: los asientos jamás se actualizan ni se borran.
type ActivityRepository interface {
	Append(entry *entity.ActivityEntry) error
	GetByID(id string) (*entity.ActivityEntry, error)
	List(filter ActivityFilter, limit, offset int) ([]*entity.ActivityEntry, error)
}
