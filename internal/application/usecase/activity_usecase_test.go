package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// memActivityRepo fake solo-append del libro de actividad. List devuelve todo
// lo que pase el filtro recibido; el filtrado fino se prueba contra Postgres.
type memActivityRepo struct {
	entries    []*entity.ActivityEntry
	lastFilter repository.ActivityFilter
	lastLimit  int
	lastOffset int
}

func (r *memActivityRepo) Append(e *entity.ActivityEntry) error {
	c := *e
	r.entries = append(r.entries, &c)
	return nil
}

func (r *memActivityRepo) GetByID(id string) (*entity.ActivityEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memActivityRepo) List(filter repository.ActivityFilter, limit, offset int) ([]*entity.ActivityEntry, error) {
	r.lastFilter = filter
	r.lastLimit = limit
	r.lastOffset = offset
	return r.entries, nil
}

func TestActivityList_TipoDesconocido_Rechazado(t *testing.T) {
	uc := usecase.NewActivityUseCase(&memActivityRepo{})

	_, err := uc.List(dto.ActivityQueryRequest{Type: "MOVIMIENTO"})
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestActivityList_TiposValidos(t *testing.T) {
	uc := usecase.NewActivityUseCase(&memActivityRepo{})

	for _, typ := range []string{
		entity.ActivityRECEIVE,
		entity.ActivityADJUSTMENT,
		entity.ActivityTRANSFER,
		entity.ActivityUPDATE,
	} {
		_, err := uc.List(dto.ActivityQueryRequest{Type: typ})
		assert.NoError(t, err, "tipo %s debe aceptarse", typ)
	}
}

func TestActivityList_PropagaFiltrosYDefaults(t *testing.T) {
	repo := &memActivityRepo{}
	uc := usecase.NewActivityUseCase(repo)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.List(dto.ActivityQueryRequest{
		SKU:         "sku-x",
		PerformedBy: "op-1",
		WarehouseID: "wh-1",
		From:        &from,
	})
	require.NoError(t, err)

	assert.Equal(t, "sku-x", repo.lastFilter.SKU)
	assert.Equal(t, "op-1", repo.lastFilter.PerformedBy)
	assert.Equal(t, "wh-1", repo.lastFilter.WarehouseID)
	require.NotNil(t, repo.lastFilter.From)
	assert.True(t, from.Equal(*repo.lastFilter.From))
	assert.Equal(t, 50, repo.lastLimit, "límite por defecto")
	assert.Equal(t, 0, repo.lastOffset)
}

func TestActivityList_ProyectaAsientos(t *testing.T) {
	repo := &memActivityRepo{}
	itemID := "item-1"
	whSrc, whDst := "wh-a", "wh-b"
	require.NoError(t, repo.Append(&entity.ActivityEntry{
		ID:                     "e-1",
		ItemID:                 &itemID,
		SKU:                    "SKU-X",
		Type:                   entity.ActivityTRANSFER,
		QuantityChange:         -10,
		PreviousQuantity:       50,
		NewQuantity:            40,
		Timestamp:              time.Now(),
		PerformedBy:            "op-1",
		SourceWarehouseID:      &whSrc,
		DestinationWarehouseID: &whDst,
		Notes:                  "salida",
	}))
	uc := usecase.NewActivityUseCase(repo)

	out, err := uc.List(dto.ActivityQueryRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	got := out.Items[0]
	assert.Equal(t, "e-1", got.ID)
	assert.Equal(t, "SKU-X", got.SKU)
	assert.Equal(t, int64(-10), got.QuantityChange)
	assert.Equal(t, int64(50), got.PreviousQuantity)
	assert.Equal(t, int64(40), got.NewQuantity)
	require.NotNil(t, got.SourceWarehouseID)
	assert.Equal(t, whSrc, *got.SourceWarehouseID)
}
