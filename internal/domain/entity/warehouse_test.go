package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestWarehouse_CapacidadDisponibleYUso(t *testing.T) {
	wh := &entity.Warehouse{
		MaxCapacity:     decimal.NewFromInt(1000),
		CurrentCapacity: decimal.NewFromInt(250),
	}
	assert.True(t, wh.AvailableCapacity().Equal(decimal.NewFromInt(750)))
	assert.True(t, wh.UsagePercent().Equal(decimal.NewFromInt(25)))
}

func TestWarehouse_UsoConCapacidadCero(t *testing.T) {
	wh := &entity.Warehouse{}
	assert.True(t, wh.UsagePercent().IsZero(), "MaxCapacity cero no debe dividir por cero")
}

func TestWarehouse_UmbralDeAlerta(t *testing.T) {
	wh := &entity.Warehouse{
		MaxCapacity:            decimal.NewFromInt(100),
		CurrentCapacity:        decimal.NewFromInt(80),
		CapacityAlertThreshold: decimal.NewFromInt(80),
	}
	assert.True(t, wh.OverAlertThreshold(), "uso igual al umbral dispara la alerta")

	wh.CurrentCapacity = decimal.NewFromInt(79)
	assert.False(t, wh.OverAlertThreshold())

	wh.CapacityAlertThreshold = decimal.Zero
	wh.CurrentCapacity = decimal.NewFromInt(100)
	assert.False(t, wh.OverAlertThreshold(), "umbral cero desactiva la alerta")
}

func TestItem_VolumenTotalYBajoStock(t *testing.T) {
	reorder := int64(5)
	it := &entity.Item{
		Quantity:      4,
		VolumePerUnit: decimal.NewFromFloat(2.5),
		ReorderLevel:  &reorder,
	}
	assert.True(t, it.TotalVolume().Equal(decimal.NewFromInt(10)))
	assert.True(t, it.LowStock())

	it.Quantity = 6
	assert.False(t, it.LowStock())

	it.ReorderLevel = nil
	it.Quantity = 0
	assert.False(t, it.LowStock(), "sin punto de reorden nunca hay alerta")
}

func TestValidActivityType(t *testing.T) {
	for _, typ := range []string{"RECEIVE", "ADJUSTMENT", "TRANSFER", "UPDATE"} {
		assert.True(t, entity.ValidActivityType(typ))
	}
	assert.False(t, entity.ValidActivityType("receive"), "los tipos son sensibles a mayúsculas")
	assert.False(t, entity.ValidActivityType("DELETE"))
}
