package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/utils"
)

func TestAddItemDefaultsAndValidation(t *testing.T) {
	inventory := newFakeInventoryRepo()
	svc := NewInventoryService(inventory, &fakeExpenseRepo{})
	ctx := context.Background()

	item := &domain.InventoryItem{Name: "Cadeira", Quantity: 50, PriceCents: 1000}
	require.NoError(t, svc.AddItem(ctx, item))
	assert.Equal(t, domain.ItemStatusAvailable, item.Status)

	t.Run("blank name", func(t *testing.T) {
		err := svc.AddItem(ctx, &domain.InventoryItem{Name: "  ", Quantity: 1, PriceCents: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
	t.Run("negative quantity", func(t *testing.T) {
		err := svc.AddItem(ctx, &domain.InventoryItem{Name: "Mesa", Quantity: -1, PriceCents: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
	t.Run("negative price", func(t *testing.T) {
		err := svc.AddItem(ctx, &domain.InventoryItem{Name: "Mesa", Quantity: 1, PriceCents: -100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestMaintenanceLifecycle(t *testing.T) {
	inventory := newFakeInventoryRepo()
	expenses := &fakeExpenseRepo{}
	svc := NewInventoryService(inventory, expenses)
	ctx := context.Background()

	id := seedItem(inventory, "Tenda", 2, 40000)

	item, err := svc.ReportMaintenance(ctx, id, "Lona rasgada")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusMaintenance, item.Status)
	assert.Equal(t, "Lona rasgada", item.MaintenanceNotes)

	require.NoError(t, svc.RecordMaintenanceCost(ctx, id, 15000))
	recorded, err := expenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, "Custo de manutenção: Tenda", recorded[0].Description)
	assert.Equal(t, MaintenanceCategory, recorded[0].Category)
	assert.Equal(t, int64(15000), recorded[0].AmountCents)
	assert.Equal(t, utils.FormatDate(utils.Today()), recorded[0].Date)

	item, err = svc.CompleteMaintenance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusAvailable, item.Status)
	assert.Empty(t, item.MaintenanceNotes)
}

func TestRecordMaintenanceCostValidation(t *testing.T) {
	inventory := newFakeInventoryRepo()
	svc := NewInventoryService(inventory, &fakeExpenseRepo{})
	ctx := context.Background()
	id := seedItem(inventory, "Tenda", 2, 40000)

	assert.ErrorIs(t, svc.RecordMaintenanceCost(ctx, id, 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.RecordMaintenanceCost(ctx, id, -500), ErrInvalidInput)
}
