package service

import (
	"context"
	"fmt"
	"time"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/utils"
)

type notificationService struct {
	rentalRepo    repository.RentalRepository
	inventoryRepo repository.InventoryRepository

	now func() time.Time
}

func NewNotificationService(rentalRepo repository.RentalRepository, inventoryRepo repository.InventoryRepository) NotificationService {
	return &notificationService{rentalRepo: rentalRepo, inventoryRepo: inventoryRepo, now: time.Now}
}

// Derive recomputes the alert list from current data. Alerts carry stable ids
// (rule prefix + entity id) so the UI can dedupe across reloads without any
// notification state being stored.
func (s *notificationService) Derive(ctx context.Context) ([]domain.Notification, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := utils.Midnight(s.now())
	today := utils.FormatDate(now)
	weekAhead := utils.FormatDate(now.AddDate(0, 0, 7))

	var out []domain.Notification

	for i := range rentals {
		rt := &rentals[i]
		if rt.Status != domain.RentalStatusReturned && rt.ReturnDate != "" && rt.ReturnDate < today {
			out = append(out, domain.Notification{
				ID:          "overdue-" + rt.ID,
				Type:        domain.NotificationOverdueReturn,
				Message:     fmt.Sprintf("Devolução de %s está atrasada.", rt.Client.Name),
				ReferenceID: rt.ID,
			})
		}
	}

	for i := range rentals {
		rt := &rentals[i]
		if rt.BalanceDueCents() > 0 && rt.EventDate > today && rt.EventDate <= weekAhead {
			out = append(out, domain.Notification{
				ID:          "payment-" + rt.ID,
				Type:        domain.NotificationPaymentDue,
				Message:     fmt.Sprintf("Pagamento final de %s vence em breve.", rt.Client.Name),
				ReferenceID: rt.ID,
			})
		}
	}

	for _, item := range items {
		if item.Status == domain.ItemStatusAvailable && item.LowStockThreshold != nil && item.Quantity <= *item.LowStockThreshold {
			out = append(out, domain.Notification{
				ID:          "stock-" + item.ID,
				Type:        domain.NotificationLowStock,
				Message:     fmt.Sprintf("Estoque baixo para %s (Qtd: %d)", item.Name, item.Quantity),
				ReferenceID: item.ID,
			})
		}
	}

	return out, nil
}
