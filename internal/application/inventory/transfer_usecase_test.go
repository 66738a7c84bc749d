package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// buildTransferUC arma el caso de uso de traslados sobre un store fake.
func buildTransferUC(store *fakeStore) *inventory.TransferUseCase {
	return inventory.NewTransferUseCase(&fakeTxRunner{store: store})
}

// Escenario base: bodega A (max 1000, ocupada 500) con SKU-X qty 50 y volumen 2
// por unidad; bodega B (max 2000, ocupada 800) sin el SKU.
func transferFixture() (*fakeStore, *entity.Warehouse, *entity.Warehouse, *entity.Item) {
	store := newFakeStore()
	whA := store.addWarehouse("Bodega A", 1000, 500)
	whB := store.addWarehouse("Bodega B", 2000, 800)
	item := store.addItem("SKU-X", whA.ID, 50, 2)
	item.Description = "repuesto hidráulico"
	item.Category = "repuestos"
	item.Brand = "ACME"
	return store, whA, whB, item
}

func TestTransfer_CreaRegistroDestino(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	uc := buildTransferUC(store)

	res, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               10,
		PerformedBy:            "op-1",
	})
	require.NoError(t, err)

	// Resultado describe la transición del registro origen
	assert.Equal(t, int64(10), res.QuantityTransferred)
	assert.Equal(t, int64(50), res.PreviousQuantity)
	assert.Equal(t, int64(40), res.NewQuantity)
	assert.Equal(t, "Bodega A", res.SourceWarehouseName)
	assert.Equal(t, "Bodega B", res.DestinationWarehouseName)

	// Origen: cantidad y volumen restados
	src := store.itemBySKU("SKU-X", whA.ID)
	require.NotNil(t, src)
	assert.Equal(t, int64(40), src.Quantity)
	assert.True(t, store.warehouses[whA.ID].CurrentCapacity.Equal(decimal.NewFromInt(480)),
		"capacidad de A debe bajar 20 (10 unidades × volumen 2)")

	// Destino: registro nuevo con atributos descriptivos copiados
	dst := store.itemBySKU("SKU-X", whB.ID)
	require.NotNil(t, dst, "el registro destino debe crearse en el primer traslado")
	assert.Equal(t, int64(10), dst.Quantity)
	assert.Equal(t, "repuesto hidráulico", dst.Description)
	assert.Equal(t, "repuestos", dst.Category)
	assert.Equal(t, "ACME", dst.Brand)
	assert.True(t, dst.VolumePerUnit.Equal(decimal.NewFromInt(2)))
	assert.NotEqual(t, src.ID, dst.ID, "origen y destino son registros distintos")
	assert.True(t, store.warehouses[whB.ID].CurrentCapacity.Equal(decimal.NewFromInt(820)),
		"capacidad de B debe subir 20")
}

func TestTransfer_SumaSobreRegistroExistente(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	existing := store.addItem("SKU-X", whB.ID, 7, 2)
	uc := buildTransferUC(store)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               5,
		PerformedBy:            "op-1",
	})
	require.NoError(t, err)

	dst := store.items[existing.ID]
	assert.Equal(t, int64(12), dst.Quantity, "debe sumar sobre el registro existente, no crear otro")
	assert.Equal(t, int64(2), int64(len(filterSKU(store, "SKU-X"))), "solo dos registros del SKU")
}

func filterSKU(store *fakeStore, sku string) []*entity.Item {
	var out []*entity.Item
	for _, it := range store.items {
		if it.SKU == sku {
			out = append(out, it)
		}
	}
	return out
}

func TestTransfer_ConservaCantidadYVolumenTotales(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	uc := buildTransferUC(store)

	totalQtyBefore := int64(0)
	for _, it := range store.items {
		totalQtyBefore += it.Quantity
	}
	capSumBefore := store.warehouses[whA.ID].CurrentCapacity.Add(store.warehouses[whB.ID].CurrentCapacity)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               23,
		PerformedBy:            "op-1",
	})
	require.NoError(t, err)

	totalQtyAfter := int64(0)
	for _, it := range store.items {
		totalQtyAfter += it.Quantity
	}
	capSumAfter := store.warehouses[whA.ID].CurrentCapacity.Add(store.warehouses[whB.ID].CurrentCapacity)

	assert.Equal(t, totalQtyBefore, totalQtyAfter, "un traslado no crea ni destruye unidades")
	assert.True(t, capSumBefore.Equal(capSumAfter), "el volumen solo se mueve entre bodegas")
}

func TestTransfer_DosAsientosSimetricos(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	uc := buildTransferUC(store)

	res, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               10,
		PerformedBy:            "op-1",
		Notes:                  "reabastecimiento sucursal",
	})
	require.NoError(t, err)

	entries := store.entriesOfType(entity.ActivityTRANSFER)
	require.Len(t, entries, 2, "cada traslado asienta salida y entrada")

	departure, arrival := entries[0], entries[1]
	assert.Equal(t, int64(-10), departure.QuantityChange)
	assert.Equal(t, int64(50), departure.PreviousQuantity)
	assert.Equal(t, int64(40), departure.NewQuantity)
	assert.Equal(t, int64(10), arrival.QuantityChange)
	assert.Equal(t, int64(0), arrival.PreviousQuantity)
	assert.Equal(t, int64(10), arrival.NewQuantity)

	// Ambos asientos referencian las dos bodegas y al operador
	for _, e := range entries {
		require.NotNil(t, e.SourceWarehouseID)
		require.NotNil(t, e.DestinationWarehouseID)
		assert.Equal(t, whA.ID, *e.SourceWarehouseID)
		assert.Equal(t, whB.ID, *e.DestinationWarehouseID)
		assert.Equal(t, "op-1", e.PerformedBy)
		assert.Equal(t, "reabastecimiento sucursal", e.Notes)
	}

	assert.Equal(t, arrival.ID, res.ActivityID, "el resultado referencia el asiento de entrada")
}

func TestTransfer_StockInsuficiente_NoMuta(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	uc := buildTransferUC(store)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               60,
		PerformedBy:            "op-1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "SKU-X", insufficient.SKU)
	assert.Equal(t, int64(50), insufficient.Available)
	assert.Equal(t, int64(60), insufficient.Requested)

	// Nada cambió: ni cantidades, ni capacidades, ni el libro
	assert.Equal(t, int64(50), store.itemBySKU("SKU-X", whA.ID).Quantity)
	assert.Nil(t, store.itemBySKU("SKU-X", whB.ID))
	assert.True(t, store.warehouses[whA.ID].CurrentCapacity.Equal(decimal.NewFromInt(500)))
	assert.True(t, store.warehouses[whB.ID].CurrentCapacity.Equal(decimal.NewFromInt(800)))
	assert.Empty(t, store.entries)
}

func TestTransfer_MismaBodega_Rechazado(t *testing.T) {
	store, whA, _, _ := transferFixture()
	uc := buildTransferUC(store)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whA.ID,
		Quantity:               5,
		PerformedBy:            "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestTransfer_CantidadNoPositiva_Rechazada(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	uc := buildTransferUC(store)

	for _, qty := range []int64{0, -3} {
		_, err := uc.Transfer(context.Background(), inventory.TransferInput{
			SKU:                    "SKU-X",
			SourceWarehouseID:      whA.ID,
			DestinationWarehouseID: whB.ID,
			Quantity:               qty,
			PerformedBy:            "op-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidOperation, "cantidad %d debe rechazarse", qty)
	}
}

func TestTransfer_BodegaInexistente_NotFound(t *testing.T) {
	store, whA, _, _ := transferFixture()
	uc := buildTransferUC(store)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: "no-existe",
		Quantity:               5,
		PerformedBy:            "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_BodegaInactiva_Rechazada(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	store.warehouses[whB.ID].IsActive = false
	uc := buildTransferUC(store)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               5,
		PerformedBy:            "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

// deactivatingTxRunner desactiva una bodega justo antes de abrir la
// transacción, emulando una baja concurrente que se cuela entre la recepción
// de la solicitud y el commit.
type deactivatingTxRunner struct {
	inner        *fakeTxRunner
	deactivateID string
}

func (r *deactivatingTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	r.inner.store.warehouses[r.deactivateID].IsActive = false
	return r.inner.Run(ctx, fn)
}

// La validación de bodegas corre dentro de la transacción con las filas
// bloqueadas: una baja concurrente del destino debe rechazar el traslado y no
// dejar efecto alguno.
func TestTransfer_BajaConcurrenteDelDestino_RechazadaSinEfecto(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	uc := inventory.NewTransferUseCase(&deactivatingTxRunner{
		inner:        &fakeTxRunner{store: store},
		deactivateID: whB.ID,
	})

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               5,
		PerformedBy:            "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	src := store.itemBySKU("SKU-X", whA.ID)
	assert.Equal(t, int64(50), src.Quantity, "el origen no debe mutar")
	assert.Nil(t, store.itemBySKU("SKU-X", whB.ID), "el destino no debe recibir stock")
	assert.True(t, store.warehouses[whA.ID].CurrentCapacity.Equal(decimal.NewFromInt(500)))
	assert.True(t, store.warehouses[whB.ID].CurrentCapacity.Equal(decimal.NewFromInt(800)))
	assert.Empty(t, store.entriesOfType(entity.ActivityTRANSFER), "sin asientos TRANSFER")
}

func TestTransfer_SKUInexistenteEnOrigen_NotFound(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	uc := buildTransferUC(store)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-OTRO",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               5,
		PerformedBy:            "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.entries, "un traslado rechazado no asienta nada")
}

// El destino no re-valida capacidad: un traslado solo mueve volumen existente.
func TestTransfer_DestinoSinCapacidadLibre_Procede(t *testing.T) {
	store, whA, whB, _ := transferFixture()
	store.warehouses[whB.ID].CurrentCapacity = decimal.NewFromInt(2000) // llena
	uc := buildTransferUC(store)

	_, err := uc.Transfer(context.Background(), inventory.TransferInput{
		SKU:                    "SKU-X",
		SourceWarehouseID:      whA.ID,
		DestinationWarehouseID: whB.ID,
		Quantity:               10,
		PerformedBy:            "op-1",
	})
	require.NoError(t, err)
	assert.True(t, store.warehouses[whB.ID].CurrentCapacity.Equal(decimal.NewFromInt(2020)))
}
