package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestInventoryCRUD(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	item := &domain.InventoryItem{Name: "Cadeira", Quantity: 50, PriceCents: 1000, Status: domain.ItemStatusAvailable}
	require.NoError(t, store.InventoryRepository.Create(ctx, item))
	assert.Contains(t, item.ID, "local_")

	got, err := store.InventoryRepository.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cadeira", got.Name)

	got.Quantity = 45
	require.NoError(t, store.InventoryRepository.Update(ctx, got))

	items, err := store.InventoryRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 45, items[0].Quantity)

	// Data survives on disk as one JSON file per collection.
	_, err = os.Stat(filepath.Join(dir, "inventory.json"))
	require.NoError(t, err)

	require.NoError(t, store.InventoryRepository.Delete(ctx, item.ID))
	items, err = store.InventoryRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMissingCollectionReadsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	rentals, err := store.RentalRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rentals)

	_, err = store.RentalRepository.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateMissingRecord(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.ClientRepository.Update(ctx, &domain.Client{ID: "ghost", Name: "Ninguém"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientGetByPhone(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	ana := &domain.Client{ID: "c-ana", Type: domain.ClientTypeIndividual, Name: "Ana", Phone: "11999990000"}
	bruno := &domain.Client{ID: "c-bruno", Type: domain.ClientTypeIndividual, Name: "Bruno", Phone: "11888880000"}
	require.NoError(t, store.ClientRepository.Create(ctx, ana))
	require.NoError(t, store.ClientRepository.Create(ctx, bruno))

	got, err := store.ClientRepository.GetByPhone(ctx, "11888880000")
	require.NoError(t, err)
	assert.Equal(t, "Bruno", got.Name)

	_, err = store.ClientRepository.GetByPhone(ctx, "0000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRentalRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	rt := &domain.Rental{
		Client:     domain.RentalClient{ID: "c1", Name: "Ana"},
		EventDate:  "2026-09-12",
		PickupDate: "2026-09-12",
		ReturnDate: "2026-09-13",
		Items: []domain.RentalItem{
			{ID: "i1", Name: "Cadeira", Quantity: 10, PriceCents: 1000},
		},
		TotalValueCents: 10000,
		Status:          domain.RentalStatusBooked,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentHistory:  []domain.Payment{},
		PickupChecklist: map[string]bool{"i1": true},
		ReturnChecklist: map[string]bool{},
	}
	require.NoError(t, store.RentalRepository.Create(ctx, rt))

	got, err := store.RentalRepository.GetByID(ctx, rt.ID)
	require.NoError(t, err)
	assert.Equal(t, rt.Items, got.Items)
	assert.Equal(t, map[string]bool{"i1": true}, got.PickupChecklist)

	got.Status = domain.RentalStatusPickedUp
	require.NoError(t, store.RentalRepository.Update(ctx, got))
	again, err := store.RentalRepository.GetByID(ctx, rt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusPickedUp, again.Status)
}

func TestSettingsSingleton(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.SettingsRepository.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.SettingsRepository.Save(ctx, &domain.CompanySettings{CompanyName: "FestaLoc"}))
	require.NoError(t, store.SettingsRepository.Save(ctx, &domain.CompanySettings{CompanyName: "FestaLoc Eventos"}))

	got, err := store.SettingsRepository.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SettingsID, got.ID)
	assert.Equal(t, "FestaLoc Eventos", got.CompanyName)
}
