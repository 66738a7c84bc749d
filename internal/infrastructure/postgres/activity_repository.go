package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del libro de actividad sobre PostgreSQL (usable con
// pool o tx). Solo inserta y consulta: la tabla no tiene rutas de UPDATE/DELETE.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

const activityColumns = `id, item_id, sku, type, quantity_change, previous_quantity,
	new_quantity, timestamp, performed_by, source_warehouse_id, destination_warehouse_id, notes`

// Append inserta un asiento. Es el único mutador del libro.
func (r *ActivityRepo) Append(entry *entity.ActivityEntry) error {
	query := `
		INSERT INTO activity_entries (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemID, entry.SKU, entry.Type,
		entry.QuantityChange, entry.PreviousQuantity, entry.NewQuantity,
		entry.Timestamp, entry.PerformedBy,
		entry.SourceWarehouseID, entry.DestinationWarehouseID, entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("append activity entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *ActivityRepo) GetByID(id string) (*entity.ActivityEntry, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_entries WHERE id = $1`
	var e entity.ActivityEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ItemID, &e.SKU, &e.Type,
		&e.QuantityChange, &e.PreviousQuantity, &e.NewQuantity,
		&e.Timestamp, &e.PerformedBy,
		&e.SourceWarehouseID, &e.DestinationWarehouseID, &e.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity entry: %w", err)
	}
	return &e, nil
}

// List consulta asientos con los filtros presentes combinados con AND, del más
// reciente al más antiguo. El filtro de bodega coincide como origen o destino;
// el de operador coincide por ID o por nombre de usuario.
func (r *ActivityRepo) List(filter repository.ActivityFilter, limit, offset int) ([]*entity.ActivityEntry, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_entries WHERE 1=1`
	var args []any
	pos := 1

	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.SKU != "" {
		query += fmt.Sprintf(" AND lower(sku) = lower($%d)", pos)
		args = append(args, filter.SKU)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.PerformedBy != "" {
		query += fmt.Sprintf(` AND (performed_by = $%d
			OR EXISTS (SELECT 1 FROM users u WHERE u.id = performed_by AND u.name = $%d))`, pos, pos)
		args = append(args, filter.PerformedBy)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND (source_warehouse_id = $%d OR destination_warehouse_id = $%d)", pos, pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC, id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityEntry
	for rows.Next() {
		var e entity.ActivityEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.SKU, &e.Type,
			&e.QuantityChange, &e.PreviousQuantity, &e.NewQuantity,
			&e.Timestamp, &e.PerformedBy,
			&e.SourceWarehouseID, &e.DestinationWarehouseID, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
