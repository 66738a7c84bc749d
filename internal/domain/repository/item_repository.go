package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para registros de inventario.
// Los métodos *ForUpdate bloquean la fila (SELECT FOR UPDATE) y solo tienen
// sentido dentro de una transacción.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKUAndWarehouse(sku, warehouseID string) (*entity.Item, error)
	GetByIDForUpdate(id string) (*entity.Item, error)
	GetBySKUAndWarehouseForUpdate(sku, warehouseID string) (*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Item, error)
	ListLowStock(warehouseID string, limit, offset int) ([]*entity.Item, error)
	CountByWarehouse(warehouseID string) (int64, error)
}
