package service

import (
	"context"
	"fmt"
	"strings"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

type kitService struct {
	kitRepo       repository.KitRepository
	inventoryRepo repository.InventoryRepository
}

func NewKitService(kitRepo repository.KitRepository, inventoryRepo repository.InventoryRepository) KitService {
	return &kitService{kitRepo: kitRepo, inventoryRepo: inventoryRepo}
}

// buildMembers resolves member ids against the catalog and snapshots their
// names. Unknown ids fail the whole operation.
func (s *kitService) buildMembers(ctx context.Context, itemIDs []string) ([]domain.KitItem, error) {
	members := make([]domain.KitItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.inventoryRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		members = append(members, domain.KitItem{ID: item.ID, Name: item.Name})
	}
	return members, nil
}

func validateKit(name string, priceCents int64, itemIDs []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: kit name is required", ErrInvalidInput)
	}
	if priceCents < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if len(itemIDs) == 0 {
		return fmt.Errorf("%w: a kit needs at least one item", ErrInvalidInput)
	}
	return nil
}

func (s *kitService) AddKit(ctx context.Context, name string, priceCents int64, itemIDs []string) (*domain.Kit, error) {
	if err := validateKit(name, priceCents, itemIDs); err != nil {
		return nil, err
	}
	members, err := s.buildMembers(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	kit := &domain.Kit{
		Name:       name,
		PriceCents: priceCents,
		ItemIDs:    itemIDs,
		Items:      members,
	}
	if err := s.kitRepo.Create(ctx, kit); err != nil {
		return nil, err
	}
	return kit, nil
}

func (s *kitService) GetKit(ctx context.Context, id string) (*domain.Kit, error) {
	return s.kitRepo.GetByID(ctx, id)
}

func (s *kitService) ListKits(ctx context.Context) ([]domain.Kit, error) {
	return s.kitRepo.List(ctx)
}

func (s *kitService) UpdateKit(ctx context.Context, id, name string, priceCents int64, itemIDs []string) (*domain.Kit, error) {
	if err := validateKit(name, priceCents, itemIDs); err != nil {
		return nil, err
	}
	kit, err := s.kitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := s.buildMembers(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	kit.Name = name
	kit.PriceCents = priceCents
	kit.ItemIDs = itemIDs
	kit.Items = members
	if err := s.kitRepo.Update(ctx, kit); err != nil {
		return nil, err
	}
	return kit, nil
}

func (s *kitService) DeleteKit(ctx context.Context, id string) error {
	return s.kitRepo.Delete(ctx, id)
}
