package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para bodegas (DIP).
// GetForUpdate y AddCapacity solo tienen sentido dentro de una transacción.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
	// GetForUpdate bloquea la fila de la bodega (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Warehouse, error)
	// AddCapacity suma delta (puede ser negativo) a current_capacity de forma relativa.
	AddCapacity(id string, delta decimal.Decimal) error
}
