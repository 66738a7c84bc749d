package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repositorios + TxRunner con semántica de rollback
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore guarda el estado compartido entre los repos fake. Los getters
// devuelven copias, como haría un scan de BD: mutar la copia no afecta el
// store hasta llamar Update/Create.
type fakeStore struct {
	items      map[string]*entity.Item
	warehouses map[string]*entity.Warehouse
	entries    []*entity.ActivityEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:      make(map[string]*entity.Item),
		warehouses: make(map[string]*entity.Warehouse),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, it := range s.items {
		c := *it
		cp.items[id] = &c
	}
	for id, wh := range s.warehouses {
		c := *wh
		cp.warehouses[id] = &c
	}
	cp.entries = append([]*entity.ActivityEntry(nil), s.entries...)
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.items = snap.items
	s.warehouses = snap.warehouses
	s.entries = snap.entries
}

func (s *fakeStore) addWarehouse(name string, maxCapacity, currentCapacity int64) *entity.Warehouse {
	wh := &entity.Warehouse{
		ID:              uuid.New().String(),
		Name:            name,
		MaxCapacity:     decimal.NewFromInt(maxCapacity),
		CurrentCapacity: decimal.NewFromInt(currentCapacity),
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	s.warehouses[wh.ID] = wh
	return wh
}

func (s *fakeStore) addItem(sku, warehouseID string, quantity, volumePerUnit int64) *entity.Item {
	it := &entity.Item{
		ID:            uuid.New().String(),
		SKU:           sku,
		WarehouseID:   warehouseID,
		Name:          "Ítem " + sku,
		Quantity:      quantity,
		VolumePerUnit: decimal.NewFromInt(volumePerUnit),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	s.items[it.ID] = it
	return it
}

func (s *fakeStore) itemBySKU(sku, warehouseID string) *entity.Item {
	for _, it := range s.items {
		if strings.EqualFold(it.SKU, sku) && it.WarehouseID == warehouseID {
			return it
		}
	}
	return nil
}

func (s *fakeStore) entriesOfType(typ string) []*entity.ActivityEntry {
	var out []*entity.ActivityEntry
	for _, e := range s.entries {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// ─── ItemRepository fake ─────────────────────────────────────────────────────

type fakeItemRepo struct{ store *fakeStore }

func copyItem(it *entity.Item) *entity.Item {
	if it == nil {
		return nil
	}
	c := *it
	return &c
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	if _, ok := r.store.items[item.ID]; ok {
		return &domain.DuplicateError{Entity: "ítem", Key: item.ID}
	}
	r.store.items[item.ID] = copyItem(item)
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return copyItem(r.store.items[id]), nil
}

func (r *fakeItemRepo) GetBySKUAndWarehouse(sku, warehouseID string) (*entity.Item, error) {
	return copyItem(r.store.itemBySKU(sku, warehouseID)), nil
}

func (r *fakeItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) GetBySKUAndWarehouseForUpdate(sku, warehouseID string) (*entity.Item, error) {
	return r.GetBySKUAndWarehouse(sku, warehouseID)
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.store.items[item.ID]; !ok {
		return &domain.NotFoundError{Entity: "ítem", Key: item.ID}
	}
	r.store.items[item.ID] = copyItem(item)
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	if _, ok := r.store.items[id]; !ok {
		return &domain.NotFoundError{Entity: "ítem", Key: id}
	}
	delete(r.store.items, id)
	return nil
}

func (r *fakeItemRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.store.items {
		if it.WarehouseID == warehouseID {
			out = append(out, copyItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return page(out, limit, offset), nil
}

func (r *fakeItemRepo) ListLowStock(warehouseID string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.store.items {
		if warehouseID != "" && it.WarehouseID != warehouseID {
			continue
		}
		if it.LowStock() {
			out = append(out, copyItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return page(out, limit, offset), nil
}

func (r *fakeItemRepo) CountByWarehouse(warehouseID string) (int64, error) {
	var n int64
	for _, it := range r.store.items {
		if it.WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

// ─── WarehouseRepository fake ────────────────────────────────────────────────

type fakeWarehouseRepo struct{ store *fakeStore }

func copyWarehouse(wh *entity.Warehouse) *entity.Warehouse {
	if wh == nil {
		return nil
	}
	c := *wh
	return &c
}

func (r *fakeWarehouseRepo) Create(wh *entity.Warehouse) error {
	if existing, _ := r.GetByName(wh.Name); existing != nil {
		return &domain.DuplicateError{Entity: "bodega", Key: wh.Name}
	}
	r.store.warehouses[wh.ID] = copyWarehouse(wh)
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return copyWarehouse(r.store.warehouses[id]), nil
}

func (r *fakeWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, wh := range r.store.warehouses {
		if wh.Name == name {
			return copyWarehouse(wh), nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, wh := range r.store.warehouses {
		out = append(out, copyWarehouse(wh))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *fakeWarehouseRepo) Update(wh *entity.Warehouse) error {
	if _, ok := r.store.warehouses[wh.ID]; !ok {
		return &domain.NotFoundError{Entity: "bodega", Key: wh.ID}
	}
	r.store.warehouses[wh.ID] = copyWarehouse(wh)
	return nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	if _, ok := r.store.warehouses[id]; !ok {
		return &domain.NotFoundError{Entity: "bodega", Key: id}
	}
	delete(r.store.warehouses, id)
	return nil
}

func (r *fakeWarehouseRepo) GetForUpdate(id string) (*entity.Warehouse, error) {
	return r.GetByID(id)
}

func (r *fakeWarehouseRepo) AddCapacity(id string, delta decimal.Decimal) error {
	wh, ok := r.store.warehouses[id]
	if !ok {
		return &domain.NotFoundError{Entity: "bodega", Key: id}
	}
	wh.CurrentCapacity = wh.CurrentCapacity.Add(delta)
	return nil
}

// ─── ActivityRepository fake ─────────────────────────────────────────────────

type fakeActivityRepo struct{ store *fakeStore }

func (r *fakeActivityRepo) Append(entry *entity.ActivityEntry) error {
	c := *entry
	r.store.entries = append(r.store.entries, &c)
	return nil
}

func (r *fakeActivityRepo) GetByID(id string) (*entity.ActivityEntry, error) {
	for _, e := range r.store.entries {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeActivityRepo) List(filter repository.ActivityFilter, limit, offset int) ([]*entity.ActivityEntry, error) {
	var out []*entity.ActivityEntry
	for _, e := range r.store.entries {
		if filter.ItemID != "" && (e.ItemID == nil || *e.ItemID != filter.ItemID) {
			continue
		}
		if filter.SKU != "" && !strings.EqualFold(e.SKU, filter.SKU) {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if filter.PerformedBy != "" && e.PerformedBy != filter.PerformedBy {
			continue
		}
		if filter.WarehouseID != "" {
			src := e.SourceWarehouseID != nil && *e.SourceWarehouseID == filter.WarehouseID
			dst := e.DestinationWarehouseID != nil && *e.DestinationWarehouseID == filter.WarehouseID
			if !src && !dst {
				continue
			}
		}
		c := *e
		out = append(out, &c)
	}
	return page(out, limit, offset), nil
}

// ─── TxRunner fake ───────────────────────────────────────────────────────────

// fakeTxRunner emula la unidad de trabajo: si fn retorna error, el store vuelve
// al estado previo (rollback); si no, los cambios quedan (commit).
type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeItemRepo{store: r.store},
		&fakeWarehouseRepo{store: r.store},
		&fakeActivityRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}
