package service

import (
	"context"
	"fmt"
	"strings"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/utils"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	expenseRepo   repository.ExpenseRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, expenseRepo repository.ExpenseRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo, expenseRepo: expenseRepo}
}

func validateItem(item *domain.InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}
	if item.PriceCents < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	return nil
}

func (s *inventoryService) AddItem(ctx context.Context, item *domain.InventoryItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
	}
	return s.inventoryRepo.Create(ctx, item)
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.inventoryRepo.GetByID(ctx, id)
}

func (s *inventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.inventoryRepo.List(ctx)
}

func (s *inventoryService) UpdateItem(ctx context.Context, item *domain.InventoryItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.inventoryRepo.Update(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	// Rentals keep their own snapshots, so deletion never rewrites history.
	return s.inventoryRepo.Delete(ctx, id)
}

func (s *inventoryService) ReportMaintenance(ctx context.Context, itemID, notes string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Status = domain.ItemStatusMaintenance
	item.MaintenanceNotes = notes
	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	logger.Info("item sent to maintenance", "item_id", item.ID)
	return item, nil
}

// RecordMaintenanceCost books a repair as a maintenance expense dated today.
// The description embeds the item name, which is what the item reports match
// against later.
func (s *inventoryService) RecordMaintenanceCost(ctx context.Context, itemID string, costCents int64) error {
	if costCents <= 0 {
		return fmt.Errorf("%w: cost must be positive", ErrInvalidInput)
	}
	item, err := s.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	return s.expenseRepo.Create(ctx, &domain.Expense{
		Description: "Custo de manutenção: " + item.Name,
		Category:    MaintenanceCategory,
		Date:        utils.FormatDate(utils.Today()),
		AmountCents: costCents,
	})
}

func (s *inventoryService) CompleteMaintenance(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Status = domain.ItemStatusAvailable
	item.MaintenanceNotes = ""
	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	logger.Info("item back from maintenance", "item_id", item.ID)
	return item, nil
}
