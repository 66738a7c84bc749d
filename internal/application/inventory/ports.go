package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza la unidad de trabajo atómica del motor de inventario:
// las lecturas de cantidad/capacidad y todas las escrituras resultantes (ítem,
// bodega, asiento del libro) se confirman o se revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.ActivityRepository,
	) error) error
}
