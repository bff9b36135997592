package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

func TestAddKitSnapshotsMemberNames(t *testing.T) {
	kits := newFakeKitRepo()
	inventory := newFakeInventoryRepo()
	svc := NewKitService(kits, inventory)
	ctx := context.Background()

	chairID := seedItem(inventory, "Cadeira", 50, 1000)
	tableID := seedItem(inventory, "Mesa", 10, 5000)

	kit, err := svc.AddKit(ctx, "Kit Festa", 20000, []string{chairID, tableID})
	require.NoError(t, err)
	assert.NotEmpty(t, kit.ID)
	assert.Equal(t, []domain.KitItem{
		{ID: chairID, Name: "Cadeira"},
		{ID: tableID, Name: "Mesa"},
	}, kit.Items)
}

func TestAddKitUnknownMember(t *testing.T) {
	svc := NewKitService(newFakeKitRepo(), newFakeInventoryRepo())
	_, err := svc.AddKit(context.Background(), "Kit Festa", 20000, []string{"ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKitValidation(t *testing.T) {
	inventory := newFakeInventoryRepo()
	svc := NewKitService(newFakeKitRepo(), inventory)
	ctx := context.Background()
	chairID := seedItem(inventory, "Cadeira", 50, 1000)

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.AddKit(ctx, " ", 20000, []string{chairID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
	t.Run("negative price", func(t *testing.T) {
		_, err := svc.AddKit(ctx, "Kit Festa", -1, []string{chairID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
	t.Run("no members", func(t *testing.T) {
		_, err := svc.AddKit(ctx, "Kit Festa", 20000, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateKitRefreshesSnapshots(t *testing.T) {
	kits := newFakeKitRepo()
	inventory := newFakeInventoryRepo()
	svc := NewKitService(kits, inventory)
	ctx := context.Background()

	chairID := seedItem(inventory, "Cadeira", 50, 1000)
	tableID := seedItem(inventory, "Mesa", 10, 5000)

	kit, err := svc.AddKit(ctx, "Kit Festa", 20000, []string{chairID})
	require.NoError(t, err)

	updated, err := svc.UpdateKit(ctx, kit.ID, "Kit Festa Completo", 25000, []string{chairID, tableID})
	require.NoError(t, err)
	assert.Equal(t, "Kit Festa Completo", updated.Name)
	assert.Equal(t, int64(25000), updated.PriceCents)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, "Mesa", updated.Items[1].Name)
}
