package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festaloc-backend/internal/domain"
)

func fixedNow(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", date)
		return t
	}
}

func TestDeriveNotifications(t *testing.T) {
	inventory := newFakeInventoryRepo()
	rentals := newFakeRentalRepo()
	svc := NewNotificationService(rentals, inventory).(*notificationService)
	svc.now = fixedNow("2026-08-29")
	ctx := context.Background()

	// Overdue: out past return date, not returned.
	overdue := &domain.Rental{
		Client:     domain.RentalClient{ID: "c1", Name: "Ana"},
		EventDate:  "2026-08-20",
		PickupDate: "2026-08-19",
		ReturnDate: "2026-08-21",
		Status:     domain.RentalStatusPickedUp,
	}
	require.NoError(t, rentals.Create(ctx, overdue))

	// Payment due: event inside the next 7 days with balance open.
	due := &domain.Rental{
		Client:          domain.RentalClient{ID: "c2", Name: "Bruno"},
		EventDate:       "2026-09-03",
		PickupDate:      "2026-09-02",
		ReturnDate:      "2026-09-04",
		Status:          domain.RentalStatusBooked,
		TotalValueCents: 50000,
	}
	require.NoError(t, rentals.Create(ctx, due))

	// Fully paid rental in the window must stay silent.
	paid := &domain.Rental{
		Client:          domain.RentalClient{ID: "c3", Name: "Carla"},
		EventDate:       "2026-09-04",
		PickupDate:      "2026-09-04",
		ReturnDate:      "2026-09-04",
		Status:          domain.RentalStatusBooked,
		TotalValueCents: 10000,
		PaymentHistory:  []domain.Payment{{ID: "p1", Date: "2026-08-01", AmountCents: 10000, Method: domain.PaymentMethodPix}},
	}
	require.NoError(t, rentals.Create(ctx, paid))

	// Low stock: threshold set and quantity at or below it.
	threshold := 5
	low := domain.InventoryItem{
		Name: "Toalha", Quantity: 3, PriceCents: 500,
		Status: domain.ItemStatusAvailable, LowStockThreshold: &threshold,
	}
	require.NoError(t, inventory.Create(ctx, &low))

	// No threshold set: never alerts, whatever the quantity.
	none := domain.InventoryItem{Name: "Taça", Quantity: 0, PriceCents: 300, Status: domain.ItemStatusAvailable}
	require.NoError(t, inventory.Create(ctx, &none))

	alerts, err := svc.Derive(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	byID := map[string]domain.Notification{}
	for _, a := range alerts {
		byID[a.ID] = a
	}

	overdueAlert, ok := byID["overdue-"+overdue.ID]
	require.True(t, ok)
	assert.Equal(t, domain.NotificationOverdueReturn, overdueAlert.Type)
	assert.Equal(t, "Devolução de Ana está atrasada.", overdueAlert.Message)
	assert.Equal(t, overdue.ID, overdueAlert.ReferenceID)

	dueAlert, ok := byID["payment-"+due.ID]
	require.True(t, ok)
	assert.Equal(t, domain.NotificationPaymentDue, dueAlert.Type)
	assert.Equal(t, "Pagamento final de Bruno vence em breve.", dueAlert.Message)

	stockAlert, ok := byID["stock-"+low.ID]
	require.True(t, ok)
	assert.Equal(t, domain.NotificationLowStock, stockAlert.Type)
	assert.Equal(t, "Estoque baixo para Toalha (Qtd: 3)", stockAlert.Message)
}

func TestDeriveNotificationsWindowEdges(t *testing.T) {
	inventory := newFakeInventoryRepo()
	rentals := newFakeRentalRepo()
	svc := NewNotificationService(rentals, inventory).(*notificationService)
	svc.now = fixedNow("2026-08-29")
	ctx := context.Background()

	// Event today is outside the payment window; exactly 7 days out is in.
	today := &domain.Rental{
		Client: domain.RentalClient{ID: "c1", Name: "Hoje"}, EventDate: "2026-08-29",
		PickupDate: "2026-08-29", ReturnDate: "2026-08-30",
		Status: domain.RentalStatusBooked, TotalValueCents: 1000,
	}
	edge := &domain.Rental{
		Client: domain.RentalClient{ID: "c2", Name: "Limite"}, EventDate: "2026-09-05",
		PickupDate: "2026-09-05", ReturnDate: "2026-09-06",
		Status: domain.RentalStatusBooked, TotalValueCents: 1000,
	}
	past := &domain.Rental{
		Client: domain.RentalClient{ID: "c3", Name: "Depois"}, EventDate: "2026-09-06",
		PickupDate: "2026-09-06", ReturnDate: "2026-09-07",
		Status: domain.RentalStatusBooked, TotalValueCents: 1000,
	}
	for _, rt := range []*domain.Rental{today, edge, past} {
		require.NoError(t, rentals.Create(ctx, rt))
	}

	alerts, err := svc.Derive(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "payment-"+edge.ID, alerts[0].ID)
}
