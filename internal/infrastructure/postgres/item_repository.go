package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
// La unicidad (sku, warehouse_id) la respalda un constraint único en la tabla.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, sku, warehouse_id, name, description, category, brand,
	quantity, unit_price, volume_per_unit, reorder_level,
	warranty_end_date, expiration_date, barcode, created_at, updated_at`

// Create persiste un nuevo registro de inventario.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.WarehouseID, item.Name, item.Description,
		item.Category, item.Brand, item.Quantity, item.UnitPrice, item.VolumePerUnit,
		item.ReorderLevel, item.WarrantyEndDate, item.ExpirationDate, item.Barcode,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: "ítem", Key: item.SKU + "@" + item.WarehouseID}
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene un ítem por ID y bloquea la fila (SELECT FOR UPDATE).
func (r *ItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// GetBySKUAndWarehouse obtiene el registro de un SKU en una bodega.
func (r *ItemRepo) GetBySKUAndWarehouse(sku, warehouseID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE sku = $1 AND warehouse_id = $2`
	return r.scanOne(query, sku, warehouseID)
}

// GetBySKUAndWarehouseForUpdate igual que GetBySKUAndWarehouse pero bloqueando la fila.
func (r *ItemRepo) GetBySKUAndWarehouseForUpdate(sku, warehouseID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE sku = $1 AND warehouse_id = $2 FOR UPDATE`
	return r.scanOne(query, sku, warehouseID)
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.SKU, &i.WarehouseID, &i.Name, &i.Description, &i.Category, &i.Brand,
		&i.Quantity, &i.UnitPrice, &i.VolumePerUnit, &i.ReorderLevel,
		&i.WarrantyEndDate, &i.ExpirationDate, &i.Barcode, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update actualiza un registro existente (incluida su bodega en reubicaciones).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET sku = $2, warehouse_id = $3, name = $4, description = $5, category = $6,
		    brand = $7, quantity = $8, unit_price = $9, volume_per_unit = $10,
		    reorder_level = $11, warranty_end_date = $12, expiration_date = $13,
		    barcode = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.WarehouseID, item.Name, item.Description, item.Category,
		item.Brand, item.Quantity, item.UnitPrice, item.VolumePerUnit,
		item.ReorderLevel, item.WarrantyEndDate, item.ExpirationDate,
		item.Barcode, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: "ítem", Key: item.SKU + "@" + item.WarehouseID}
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID. Los asientos del libro que lo referencian
// quedan con item_id en NULL (ON DELETE SET NULL) y conservan el SKU desnormalizado.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// ListByWarehouse lista los ítems de una bodega con paginación.
func (r *ItemRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE warehouse_id = $1 ORDER BY sku LIMIT $2 OFFSET $3`
	return r.scanList(query, warehouseID, limit, offset)
}

// ListLowStock lista ítems en o por debajo de su punto de reorden.
// warehouseID vacío consulta todas las bodegas.
func (r *ItemRepo) ListLowStock(warehouseID string, limit, offset int) ([]*entity.Item, error) {
	if warehouseID == "" {
		query := `
			SELECT ` + itemColumns + ` FROM items
			WHERE reorder_level IS NOT NULL AND quantity <= reorder_level
			ORDER BY sku LIMIT $1 OFFSET $2`
		return r.scanList(query, limit, offset)
	}
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE warehouse_id = $1 AND reorder_level IS NOT NULL AND quantity <= reorder_level
		ORDER BY sku LIMIT $2 OFFSET $3`
	return r.scanList(query, warehouseID, limit, offset)
}

// CountByWarehouse cuenta los registros de una bodega.
func (r *ItemRepo) CountByWarehouse(warehouseID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM items WHERE warehouse_id = $1`, warehouseID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *ItemRepo) scanList(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.SKU, &i.WarehouseID, &i.Name, &i.Description,
			&i.Category, &i.Brand, &i.Quantity, &i.UnitPrice, &i.VolumePerUnit,
			&i.ReorderLevel, &i.WarrantyEndDate, &i.ExpirationDate, &i.Barcode,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
