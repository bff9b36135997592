package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festaloc-backend/internal/domain"
)

type financeFixture struct {
	svc       *financeService
	inventory *fakeInventoryRepo
	clients   *fakeClientRepo
	rentals   *fakeRentalRepo
	expenses  *fakeExpenseRepo
	revenues  *fakeRevenueRepo
}

func newFinanceFixture(today string) *financeFixture {
	f := &financeFixture{
		inventory: newFakeInventoryRepo(),
		clients:   newFakeClientRepo(),
		rentals:   newFakeRentalRepo(),
		expenses:  &fakeExpenseRepo{},
		revenues:  &fakeRevenueRepo{},
	}
	svc := NewFinanceService(f.rentals, f.inventory, f.clients, f.expenses, f.revenues).(*financeService)
	svc.now = fixedNow(today)
	f.svc = svc
	return f
}

func TestDashboardMonthlyFigures(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	seedItem(f.inventory, "Cadeira", 10, 1000)
	seedItem(f.inventory, "Mesa", 5, 5000)

	// Revenue counts payment dates, not event dates: the June event paid in
	// August lands in August's revenue.
	rt := &domain.Rental{
		Client: domain.RentalClient{ID: "c1", Name: "Ana"}, EventDate: "2026-06-15",
		PickupDate: "2026-06-15", ReturnDate: "2026-06-16",
		Status: domain.RentalStatusReturned, TotalValueCents: 80000,
		PaymentHistory: []domain.Payment{
			{ID: "p1", Date: "2026-08-05", AmountCents: 30000, Method: domain.PaymentMethodPix},
			{ID: "p2", Date: "2026-07-05", AmountCents: 20000, Method: domain.PaymentMethodPix},
		},
	}
	require.NoError(t, f.rentals.Create(ctx, rt))

	require.NoError(t, f.expenses.Create(ctx, &domain.Expense{
		Description: "Frete", Category: "Logística", Date: "2026-08-10", AmountCents: 4000,
	}))
	require.NoError(t, f.expenses.Create(ctx, &domain.Expense{
		Description: "Frete antigo", Category: "Logística", Date: "2026-07-10", AmountCents: 9000,
	}))

	stats, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, int64(30000), stats.MonthlyRevenueCents)
	assert.Equal(t, int64(4000), stats.MonthlyExpensesCents)
	assert.Equal(t, int64(26000), stats.MonthlyNetCents)
}

func TestDashboardRentalTrend(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	// August (current month), June (2 back), March (5 back, oldest slot) and
	// February (outside the window).
	dates := []string{"2026-08-02", "2026-06-20", "2026-03-31", "2026-02-01"}
	for i, d := range dates {
		rt := &domain.Rental{
			Client: domain.RentalClient{ID: "c1", Name: "Cliente"}, EventDate: d,
			PickupDate: d, ReturnDate: d,
			Status: domain.RentalStatusReturned, TotalValueCents: int64(1000 * (i + 1)),
		}
		require.NoError(t, f.rentals.Create(ctx, rt))
	}

	stats, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, [6]int{1, 0, 0, 1, 0, 1}, stats.MonthlyRentalCounts)
}

func TestPopularItemsCountOccurrencesNotQuantities(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	mk := func(items []domain.RentalItem, kits []domain.RentalKit) {
		rt := &domain.Rental{
			Client: domain.RentalClient{ID: "c1", Name: "Cliente"}, EventDate: "2026-08-01",
			PickupDate: "2026-08-01", ReturnDate: "2026-08-01",
			Status: domain.RentalStatusReturned, Items: items, Kits: kits,
		}
		require.NoError(t, f.rentals.Create(ctx, rt))
	}

	// Chairs appear twice with huge quantities; the table appears three
	// times with quantity 1 and must still rank first.
	mk([]domain.RentalItem{{ID: "i1", Name: "Cadeira", Quantity: 200, PriceCents: 100}}, nil)
	mk([]domain.RentalItem{
		{ID: "i1", Name: "Cadeira", Quantity: 150, PriceCents: 100},
		{ID: "i2", Name: "Mesa", Quantity: 1, PriceCents: 100},
	}, nil)
	mk([]domain.RentalItem{{ID: "i2", Name: "Mesa", Quantity: 1, PriceCents: 100}}, []domain.RentalKit{{ID: "k1", Name: "Kit Festa", PriceCents: 1000}})
	mk([]domain.RentalItem{{ID: "i2", Name: "Mesa", Quantity: 1, PriceCents: 100}}, nil)

	stats, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stats.PopularItems)
	assert.Equal(t, domain.PopularItem{Name: "Mesa", Count: 3}, stats.PopularItems[0])
	assert.Contains(t, stats.PopularItems, domain.PopularItem{Name: "Cadeira", Count: 2})
	assert.Contains(t, stats.PopularItems, domain.PopularItem{Name: "Kit Festa (Kit)", Count: 1})
}

func TestTransactionsMergeAndWindow(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	rt := &domain.Rental{
		Client: domain.RentalClient{ID: "c1", Name: "Ana"}, EventDate: "2026-08-10",
		PickupDate: "2026-08-10", ReturnDate: "2026-08-11",
		Status: domain.RentalStatusReturned, TotalValueCents: 50000,
		PaymentHistory: []domain.Payment{
			{ID: "p1", Date: "2026-08-15", AmountCents: 50000, Method: domain.PaymentMethodPix},
			{ID: "p2", Date: "2026-05-15", AmountCents: 1000, Method: domain.PaymentMethodPix},
		},
	}
	require.NoError(t, f.rentals.Create(ctx, rt))
	require.NoError(t, f.revenues.Create(ctx, &domain.Revenue{
		Description: "Venda de itens usados", Category: "Venda", Date: "2026-08-20", AmountCents: 12000,
	}))
	require.NoError(t, f.expenses.Create(ctx, &domain.Expense{
		Description: "Frete", Category: "Logística", Date: "2026-08-18", AmountCents: 3000,
	}))
	require.NoError(t, f.expenses.Create(ctx, &domain.Expense{
		Description: "Compra antiga", Category: "Aquisição", Date: "2026-06-10", AmountCents: 7000,
	}))

	t.Run("current month", func(t *testing.T) {
		txs, summary, err := f.svc.Transactions(ctx, WindowMonth)
		require.NoError(t, err)
		require.Len(t, txs, 3)
		// Sorted by date descending.
		assert.Equal(t, "2026-08-20", txs[0].Date)
		assert.Equal(t, "2026-08-18", txs[1].Date)
		assert.Equal(t, "2026-08-15", txs[2].Date)
		assert.Equal(t, "Pgto. Aluguel: Ana", txs[2].Description)
		assert.Equal(t, rt.ID, txs[2].ReferenceID)
		assert.Equal(t, int64(62000), summary.TotalRevenueCents)
		assert.Equal(t, int64(3000), summary.TotalExpensesCents)
		assert.Equal(t, int64(59000), summary.NetCents)
	})

	t.Run("three months reaches back to june first", func(t *testing.T) {
		txs, _, err := f.svc.Transactions(ctx, WindowThreeMonths)
		require.NoError(t, err)
		assert.Len(t, txs, 4)
	})

	t.Run("all", func(t *testing.T) {
		txs, summary, err := f.svc.Transactions(ctx, WindowAll)
		require.NoError(t, err)
		assert.Len(t, txs, 5)
		assert.Equal(t, int64(63000), summary.TotalRevenueCents)
		assert.Equal(t, int64(10000), summary.TotalExpensesCents)
	})

	t.Run("unknown window", func(t *testing.T) {
		_, _, err := f.svc.Transactions(ctx, TransactionWindow("year"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestItemReportsROI(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	item := domain.InventoryItem{
		Name: "Tenda", Quantity: 2, PriceCents: 40000,
		Status: domain.ItemStatusAvailable, PurchaseCostCents: 100000,
	}
	require.NoError(t, f.inventory.Create(ctx, &item))

	for _, d := range []string{"2026-05-10", "2026-07-22"} {
		rt := &domain.Rental{
			Client: domain.RentalClient{ID: "c1", Name: "Cliente"}, EventDate: d,
			PickupDate: d, ReturnDate: d, Status: domain.RentalStatusReturned,
			Items: []domain.RentalItem{{ID: item.ID, Name: "Tenda", Quantity: 2, PriceCents: 40000}},
		}
		require.NoError(t, f.rentals.Create(ctx, rt))
	}

	// Joined by category plus description substring.
	require.NoError(t, f.expenses.Create(ctx, &domain.Expense{
		Description: "Custo de manutenção: Tenda", Category: MaintenanceCategory, Date: "2026-06-01", AmountCents: 10000,
	}))
	// Same category without the name: ignored.
	require.NoError(t, f.expenses.Create(ctx, &domain.Expense{
		Description: "Peças avulsas", Category: MaintenanceCategory, Date: "2026-06-02", AmountCents: 5000,
	}))
	// Name match in another category: ignored.
	require.NoError(t, f.expenses.Create(ctx, &domain.Expense{
		Description: "Transporte Tenda", Category: "Logística", Date: "2026-06-03", AmountCents: 2000,
	}))

	reports, err := f.svc.ItemReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	r := reports[0]
	assert.Equal(t, int64(160000), r.TotalRevenueCents)
	assert.Equal(t, int64(10000), r.MaintenanceCostsCents)
	assert.Equal(t, int64(150000), r.ProfitCents)
	assert.InDelta(t, 150.0, r.ROIPercent, 0.001)
	assert.Equal(t, 2, r.RentalCount)
}

func TestItemReportsZeroPurchaseCost(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	item := domain.InventoryItem{Name: "Taça", Quantity: 100, PriceCents: 300, Status: domain.ItemStatusAvailable}
	require.NoError(t, f.inventory.Create(ctx, &item))

	reports, err := f.svc.ItemReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 0.0, reports[0].ROIPercent)
}

func TestClientReportsLifetimeValue(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	anaID := seedClient(f.clients, "Ana", "111")
	brunoID := seedClient(f.clients, "Bruno", "222")

	mk := func(clientID, name string, total, discount int64) {
		rt := &domain.Rental{
			Client: domain.RentalClient{ID: clientID, Name: name}, EventDate: "2026-08-01",
			PickupDate: "2026-08-01", ReturnDate: "2026-08-01",
			Status: domain.RentalStatusReturned, TotalValueCents: total, DiscountCents: discount,
		}
		require.NoError(t, f.rentals.Create(ctx, rt))
	}
	mk(anaID, "Ana", 50000, 5000)
	mk(anaID, "Ana", 30000, 0)
	mk(brunoID, "Bruno", 90000, 0)

	reports, err := f.svc.ClientReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	// Sorted by total spent descending.
	assert.Equal(t, "Bruno", reports[0].Name)
	assert.Equal(t, int64(90000), reports[0].TotalSpentCents)
	assert.Equal(t, "Ana", reports[1].Name)
	assert.Equal(t, int64(75000), reports[1].TotalSpentCents)
	assert.Equal(t, 2, reports[1].RentalCount)
}

func TestLedgerEntryValidation(t *testing.T) {
	f := newFinanceFixture("2026-08-29")
	ctx := context.Background()

	err := f.svc.AddExpense(ctx, &domain.Expense{Description: " ", Date: "2026-08-01", AmountCents: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = f.svc.AddExpense(ctx, &domain.Expense{Description: "Frete", Date: "2026-08-01", AmountCents: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = f.svc.AddRevenue(ctx, &domain.Revenue{Description: "Venda", Date: "not-a-date", AmountCents: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = f.svc.AddRevenue(ctx, &domain.Revenue{Description: "Venda", Date: "2026-08-01", AmountCents: 100})
	require.NoError(t, err)
	revenues, err := f.svc.ListRevenues(ctx)
	require.NoError(t, err)
	assert.Len(t, revenues, 1)
}
