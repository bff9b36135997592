package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/utils"
)

// MaintenanceCategory is the expense category the item reports scan for when
// attributing maintenance costs to an item.
const MaintenanceCategory = "Manutenção"

type financeService struct {
	rentalRepo    repository.RentalRepository
	inventoryRepo repository.InventoryRepository
	clientRepo    repository.ClientRepository
	expenseRepo   repository.ExpenseRepository
	revenueRepo   repository.RevenueRepository

	now func() time.Time
}

func NewFinanceService(
	rentalRepo repository.RentalRepository,
	inventoryRepo repository.InventoryRepository,
	clientRepo repository.ClientRepository,
	expenseRepo repository.ExpenseRepository,
	revenueRepo repository.RevenueRepository,
) FinanceService {
	return &financeService{
		rentalRepo:    rentalRepo,
		inventoryRepo: inventoryRepo,
		clientRepo:    clientRepo,
		expenseRepo:   expenseRepo,
		revenueRepo:   revenueRepo,
		now:           time.Now,
	}
}

func (s *financeService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := utils.Midnight(s.now())
	today := utils.FormatDate(now)

	stats := &domain.DashboardStats{TotalItems: len(items)}

	for i := range rentals {
		rt := &rentals[i]
		switch domain.EffectiveStatus(rt, today) {
		case domain.RentalStatusPickedUp, domain.RentalStatusOverdue:
			stats.RentedItems++
		}
		if rt.Status == domain.RentalStatusBooked && rt.EventDate >= today {
			stats.UpcomingEvents++
		}

		// Revenue follows payment dates, not event dates: a deposit taken in
		// March for a June party is March revenue.
		for _, p := range rt.PaymentHistory {
			if paid, err := utils.ParseDate(p.Date); err == nil && utils.SameMonth(paid, now) {
				stats.MonthlyRevenueCents += p.AmountCents
			}
		}

		if rt.Status != domain.RentalStatusQuoteRequested {
			if event, err := utils.ParseDate(rt.EventDate); err == nil {
				diff := utils.MonthsBetween(event, now)
				if diff >= 0 && diff < len(stats.MonthlyRentalCounts) {
					stats.MonthlyRentalCounts[len(stats.MonthlyRentalCounts)-1-diff]++
				}
			}
		}
	}

	for _, e := range expenses {
		if d, err := utils.ParseDate(e.Date); err == nil && utils.SameMonth(d, now) {
			stats.MonthlyExpensesCents += e.AmountCents
		}
	}
	stats.MonthlyNetCents = stats.MonthlyRevenueCents - stats.MonthlyExpensesCents
	stats.PopularItems = popularItems(rentals)
	return stats, nil
}

// popularItems ranks catalog names by how many rentals included them, not by
// the quantities booked. Kits rank as a unit under "<name> (Kit)".
func popularItems(rentals []domain.Rental) []domain.PopularItem {
	counts := make(map[string]int)
	for i := range rentals {
		for _, it := range rentals[i].Items {
			counts[it.Name]++
		}
		for _, kit := range rentals[i].Kits {
			counts[kit.Name+" (Kit)"]++
		}
	}
	ranked := make([]domain.PopularItem, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, domain.PopularItem{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// windowStart returns the inclusive cutoff date of a reporting window, or ""
// for the unbounded window. Windows start at the first of a calendar month.
func (s *financeService) windowStart(window TransactionWindow) (string, error) {
	now := s.now()
	switch window {
	case WindowMonth:
		return utils.FormatDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())), nil
	case WindowThreeMonths:
		return utils.FormatDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -2, 0)), nil
	case WindowAll:
		return "", nil
	default:
		return "", fmt.Errorf("%w: unknown window %q", ErrInvalidInput, window)
	}
}

func (s *financeService) Transactions(ctx context.Context, window TransactionWindow) ([]domain.Transaction, *domain.FinanceSummary, error) {
	cutoff, err := s.windowStart(window)
	if err != nil {
		return nil, nil, err
	}

	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	revenues, err := s.revenueRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	var txs []domain.Transaction
	for i := range rentals {
		rt := &rentals[i]
		for _, p := range rt.PaymentHistory {
			txs = append(txs, domain.Transaction{
				Type:        domain.TransactionTypeRevenue,
				Date:        p.Date,
				Description: "Pgto. Aluguel: " + rt.Client.Name,
				AmountCents: p.AmountCents,
				Method:      p.Method,
				ReferenceID: rt.ID,
			})
		}
	}
	for _, rv := range revenues {
		txs = append(txs, domain.Transaction{
			Type:        domain.TransactionTypeRevenue,
			Date:        rv.Date,
			Description: rv.Description,
			AmountCents: rv.AmountCents,
			Method:      rv.PaymentMethod,
			ReferenceID: rv.ID,
		})
	}
	for _, ex := range expenses {
		txs = append(txs, domain.Transaction{
			Type:        domain.TransactionTypeExpense,
			Date:        ex.Date,
			Description: ex.Description,
			AmountCents: ex.AmountCents,
			Method:      ex.PaymentMethod,
			ReferenceID: ex.ID,
		})
	}

	if cutoff != "" {
		kept := txs[:0]
		for _, tx := range txs {
			if tx.Date >= cutoff {
				kept = append(kept, tx)
			}
		}
		txs = kept
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date })

	summary := &domain.FinanceSummary{}
	for _, tx := range txs {
		if tx.Type == domain.TransactionTypeExpense {
			summary.TotalExpensesCents += tx.AmountCents
		} else {
			summary.TotalRevenueCents += tx.AmountCents
		}
	}
	summary.NetCents = summary.TotalRevenueCents - summary.TotalExpensesCents
	return txs, summary, nil
}

func (s *financeService) ItemReports(ctx context.Context) ([]domain.ItemReport, error) {
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.ItemReport, 0, len(items))
	for _, item := range items {
		report := domain.ItemReport{
			ID:                item.ID,
			Name:              item.Name,
			PurchaseCostCents: item.PurchaseCostCents,
		}
		for i := range rentals {
			for _, line := range rentals[i].Items {
				if line.ID == item.ID {
					report.TotalRevenueCents += line.PriceCents * int64(line.Quantity)
					report.RentalCount++
				}
			}
		}
		// Maintenance costs are joined by description substring, which also
		// matches entries mentioning a longer item name containing this one.
		for _, ex := range expenses {
			if ex.Category == MaintenanceCategory && strings.Contains(ex.Description, item.Name) {
				report.MaintenanceCostsCents += ex.AmountCents
			}
		}
		report.ProfitCents = report.TotalRevenueCents - report.MaintenanceCostsCents
		if item.PurchaseCostCents > 0 {
			report.ROIPercent = float64(report.ProfitCents) / float64(item.PurchaseCostCents) * 100
		}
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ProfitCents > reports[j].ProfitCents })
	return reports, nil
}

func (s *financeService) ClientReports(ctx context.Context) ([]domain.ClientReport, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.ClientReport, 0, len(clients))
	for _, client := range clients {
		report := domain.ClientReport{ID: client.ID, Name: client.Name}
		for i := range rentals {
			if rentals[i].Client.ID == client.ID {
				report.RentalCount++
				report.TotalSpentCents += rentals[i].FinalValueCents()
			}
		}
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].TotalSpentCents > reports[j].TotalSpentCents })
	return reports, nil
}

func validateLedgerEntry(description, date string, amountCents int64) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if amountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if _, err := utils.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *financeService) AddExpense(ctx context.Context, expense *domain.Expense) error {
	if err := validateLedgerEntry(expense.Description, expense.Date, expense.AmountCents); err != nil {
		return err
	}
	return s.expenseRepo.Create(ctx, expense)
}

func (s *financeService) AddRevenue(ctx context.Context, revenue *domain.Revenue) error {
	if err := validateLedgerEntry(revenue.Description, revenue.Date, revenue.AmountCents); err != nil {
		return err
	}
	return s.revenueRepo.Create(ctx, revenue)
}

func (s *financeService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx)
}

func (s *financeService) ListRevenues(ctx context.Context) ([]domain.Revenue, error) {
	return s.revenueRepo.List(ctx)
}
