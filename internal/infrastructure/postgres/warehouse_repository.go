package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL
// (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, name, location, max_capacity, current_capacity, capacity_alert_threshold, is_active, created_at, updated_at`

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Location,
		warehouse.MaxCapacity, warehouse.CurrentCapacity, warehouse.CapacityAlertThreshold,
		warehouse.IsActive, warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: "bodega", Key: warehouse.Name}
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene una bodega por nombre (único).
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE name = $1`
	return r.scanOne(query, name)
}

// GetForUpdate obtiene la bodega y bloquea la fila (SELECT FOR UPDATE).
func (r *WarehouseRepo) GetForUpdate(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *WarehouseRepo) scanOne(query string, arg any) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&w.ID, &w.Name, &w.Location,
		&w.MaxCapacity, &w.CurrentCapacity, &w.CapacityAlertThreshold,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// List lista bodegas con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + ` FROM warehouses
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location,
			&w.MaxCapacity, &w.CurrentCapacity, &w.CapacityAlertThreshold,
			&w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza metadatos y estado de una bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, location = $3, max_capacity = $4, capacity_alert_threshold = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Location,
		warehouse.MaxCapacity, warehouse.CapacityAlertThreshold,
		warehouse.IsActive, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: "bodega", Key: warehouse.Name}
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// AddCapacity suma delta (positivo o negativo) a current_capacity de forma
// relativa y atómica; el motor de inventario la usa dentro de transacciones.
func (r *WarehouseRepo) AddCapacity(id string, delta decimal.Decimal) error {
	query := `
		UPDATE warehouses
		SET current_capacity = current_capacity + $2, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("add capacity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "bodega", Key: id}
	}
	return nil
}

// Delete elimina físicamente una bodega por ID.
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
