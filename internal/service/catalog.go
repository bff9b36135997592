package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/utils"
)

// bookBasicNotes is stamped on every public-catalog reservation so the admin
// can tell an online booking from a counter booking.
const bookBasicNotes = "Reserva online via catálogo público com sinal de 50%."

type catalogService struct {
	availability  AvailabilityService
	rentalRepo    repository.RentalRepository
	inventoryRepo repository.InventoryRepository
	clientRepo    repository.ClientRepository
}

func NewCatalogService(
	availability AvailabilityService,
	rentalRepo repository.RentalRepository,
	inventoryRepo repository.InventoryRepository,
	clientRepo repository.ClientRepository,
) CatalogService {
	return &catalogService{
		availability:  availability,
		rentalRepo:    rentalRepo,
		inventoryRepo: inventoryRepo,
		clientRepo:    clientRepo,
	}
}

func (s *catalogService) AvailableCatalog(ctx context.Context, date string) ([]domain.InventoryItem, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.availability.AvailableItems(ctx, date)
}

// FindOrCreateClient keys the public checkout on phone number. A returning
// caller keeps their existing record untouched; a new one gets a bare pf
// record filled in later at the counter.
func (s *catalogService) FindOrCreateClient(ctx context.Context, name, phone, email string) (*domain.Client, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)
	if phone == "" || name == "" {
		return nil, fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}

	existing, err := s.clientRepo.GetByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	client := &domain.Client{
		Type:  domain.ClientTypeIndividual,
		Name:  name,
		Phone: phone,
		Email: strings.TrimSpace(email),
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	logger.Info("client self-registered via public catalog", "client_id", client.ID)
	return client, nil
}

// BookBasic is the one-day online reservation: pickup, event and return all
// fall on the chosen date, one unit per item, and a 50% pix deposit is
// recorded up front.
func (s *catalogService) BookBasic(ctx context.Context, in BookBasicInput) (*domain.Rental, error) {
	if len(in.ItemIDs) == 0 {
		return nil, fmt.Errorf("%w: select at least one item", ErrInvalidInput)
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	unavailable, err := s.availability.UnavailableItemIDs(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	client, err := s.FindOrCreateClient(ctx, in.Name, in.Phone, in.Email)
	if err != nil {
		return nil, err
	}

	var items []domain.RentalItem
	var total int64
	for _, itemID := range in.ItemIDs {
		item, err := s.inventoryRepo.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if unavailable[item.ID] || item.Status != domain.ItemStatusAvailable {
			return nil, fmt.Errorf("%w: %q is not available on %s", ErrInvalidInput, item.Name, in.Date)
		}
		items = append(items, domain.RentalItem{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   1,
			PriceCents: item.PriceCents,
		})
		total += item.PriceCents
	}

	rental := &domain.Rental{
		Client:          domain.RentalClient{ID: client.ID, Name: client.Name},
		EventDate:       in.Date,
		PickupDate:      in.Date,
		ReturnDate:      in.Date,
		Items:           items,
		TotalValueCents: total,
		Notes:           bookBasicNotes,
		Status:          domain.RentalStatusBooked,
		PaymentHistory:  []domain.Payment{},
		PickupChecklist: map[string]bool{},
		ReturnChecklist: map[string]bool{},
	}

	if deposit := total / 2; deposit > 0 {
		rental.PaymentHistory = append(rental.PaymentHistory, domain.Payment{
			ID:          newPaymentID(),
			Date:        utils.FormatDate(utils.Today()),
			AmountCents: deposit,
			Method:      domain.PaymentMethodPix,
		})
	}
	rental.RefreshPaymentStatus()

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	logger.Info("online reservation created", "rental_id", rental.ID, "client", client.Name, "date", in.Date)
	return rental, nil
}
