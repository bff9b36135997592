package service

import (
	"context"
	"fmt"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/utils"
)

type logisticsService struct {
	rentalRepo repository.RentalRepository
}

func NewLogisticsService(rentalRepo repository.RentalRepository) LogisticsService {
	return &logisticsService{rentalRepo: rentalRepo}
}

// TasksForDate lists the delivery-service rentals going out or coming back on
// a date, plus the deduplicated addresses for route planning.
func (s *logisticsService) TasksForDate(ctx context.Context, date string) (*DailyTasks, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	tasks := &DailyTasks{
		Deliveries: []domain.Rental{},
		Pickups:    []domain.Rental{},
		Addresses:  []string{},
	}
	seen := make(map[string]bool)
	for i := range rentals {
		rt := &rentals[i]
		if !rt.DeliveryService || rt.Status == domain.RentalStatusQuoteRequested {
			continue
		}
		match := false
		if rt.PickupDate == date {
			tasks.Deliveries = append(tasks.Deliveries, *rt)
			match = true
		}
		if rt.ReturnDate == date {
			tasks.Pickups = append(tasks.Pickups, *rt)
			match = true
		}
		if match && rt.DeliveryAddress != "" && !seen[rt.DeliveryAddress] {
			seen[rt.DeliveryAddress] = true
			tasks.Addresses = append(tasks.Addresses, rt.DeliveryAddress)
		}
	}
	return tasks, nil
}
