package service

import (
	"context"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/utils"
)

type availabilityService struct {
	rentalRepo    repository.RentalRepository
	inventoryRepo repository.InventoryRepository
}

func NewAvailabilityService(rentalRepo repository.RentalRepository, inventoryRepo repository.InventoryRepository) AvailabilityService {
	return &availabilityService{rentalRepo: rentalRepo, inventoryRepo: inventoryRepo}
}

// blocks reports whether a rental holds its items on the given day. Quote
// requests reserve nothing; everything else blocks from pickup to return,
// both ends inclusive.
func blocks(rt *domain.Rental, date string) bool {
	if rt.Status == domain.RentalStatusQuoteRequested {
		return false
	}
	return utils.DateInRange(date, rt.PickupDate, rt.ReturnDate)
}

func markUnavailable(rt *domain.Rental, out map[string]bool) {
	for _, it := range rt.Items {
		out[it.ID] = true
	}
	for _, kit := range rt.Kits {
		for _, member := range kit.Items {
			out[member.ID] = true
		}
	}
}

func (s *availabilityService) UnavailableItemIDs(ctx context.Context, date string) (map[string]bool, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool)
	for i := range rentals {
		if blocks(&rentals[i], date) {
			markUnavailable(&rentals[i], out)
		}
	}
	return out, nil
}

func (s *availabilityService) UnavailableItemIDsRange(ctx context.Context, from, to string) (map[string]bool, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool)
	for i := range rentals {
		rt := &rentals[i]
		if rt.Status == domain.RentalStatusQuoteRequested {
			continue
		}
		// Two inclusive ranges overlap when neither ends before the other starts.
		if rt.PickupDate <= to && from <= rt.ReturnDate {
			markUnavailable(rt, out)
		}
	}
	return out, nil
}

// AvailableItems returns the items bookable on a date: not held by any rental
// that day and not rented out or in maintenance.
func (s *availabilityService) AvailableItems(ctx context.Context, date string) ([]domain.InventoryItem, error) {
	unavailable, err := s.UnavailableItemIDs(ctx, date)
	if err != nil {
		return nil, err
	}
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]domain.InventoryItem, 0, len(items))
	for _, it := range items {
		if unavailable[it.ID] || it.Status != domain.ItemStatusAvailable {
			continue
		}
		available = append(available, it)
	}
	return available, nil
}
