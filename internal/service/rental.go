package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/utils"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	inventoryRepo repository.InventoryRepository
	clientRepo    repository.ClientRepository
	kitRepo       repository.KitRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	inventoryRepo repository.InventoryRepository,
	clientRepo repository.ClientRepository,
	kitRepo repository.KitRepository,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		inventoryRepo: inventoryRepo,
		clientRepo:    clientRepo,
		kitRepo:       kitRepo,
	}
}

func newPaymentID() string {
	return "payment_" + uuid.NewString()
}

func (s *rentalService) CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error) {
	if len(in.Items) == 0 && len(in.KitIDs) == 0 {
		return nil, fmt.Errorf("%w: select at least one item or kit", ErrInvalidInput)
	}
	for _, dateStr := range []string{in.EventDate, in.PickupDate, in.ReturnDate} {
		if _, err := utils.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if in.ReturnDate < in.PickupDate {
		return nil, fmt.Errorf("%w: return date before pickup date", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	kits := make([]*domain.Kit, 0, len(in.KitIDs))
	for _, kitID := range in.KitIDs {
		kit, err := s.kitRepo.GetByID(ctx, kitID)
		if err != nil {
			return nil, err
		}
		kits = append(kits, kit)
	}

	// An item may not be booked individually and inside a kit on the same
	// rental. The form blocks this too, but the rule lives here.
	for _, itemIn := range in.Items {
		for _, kit := range kits {
			if kit.Contains(itemIn.ItemID) {
				return nil, fmt.Errorf("%w: item %s is already part of kit %q", ErrInvalidInput, itemIn.ItemID, kit.Name)
			}
		}
	}

	var items []domain.RentalItem
	var subtotal int64
	selected := make(map[string]bool, len(in.Items))
	for _, itemIn := range in.Items {
		if itemIn.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		item, err := s.inventoryRepo.GetByID(ctx, itemIn.ItemID)
		if err != nil {
			return nil, err
		}
		if itemIn.Quantity > item.Quantity {
			return nil, fmt.Errorf("%w: only %d unit(s) of %q owned", ErrInvalidInput, item.Quantity, item.Name)
		}
		items = append(items, domain.RentalItem{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   itemIn.Quantity,
			PriceCents: item.PriceCents,
		})
		subtotal += item.PriceCents * int64(itemIn.Quantity)
		selected[item.ID] = true
	}

	// Kit members are materialized into the items snapshot (qty 1, catalog
	// price) so checklists and availability see them; the kit's flat price is
	// what counts toward the total.
	var rentalKits []domain.RentalKit
	for _, kit := range kits {
		rentalKits = append(rentalKits, domain.RentalKit{
			ID:         kit.ID,
			Name:       kit.Name,
			PriceCents: kit.PriceCents,
			Items:      kit.Items,
		})
		subtotal += kit.PriceCents
		for _, memberID := range kit.ItemIDs {
			if selected[memberID] {
				continue
			}
			member, err := s.inventoryRepo.GetByID(ctx, memberID)
			if err != nil {
				return nil, err
			}
			items = append(items, domain.RentalItem{
				ID:         member.ID,
				Name:       member.Name,
				Quantity:   1,
				PriceCents: member.PriceCents,
			})
			selected[member.ID] = true
		}
	}

	total := subtotal
	if in.DeliveryService {
		total += in.DeliveryFeeCents
	}
	if in.SetupService {
		total += in.SetupFeeCents
	}

	status := domain.RentalStatusBooked
	if in.QuoteOnly {
		status = domain.RentalStatusQuoteRequested
	}

	rental := &domain.Rental{
		Client:           domain.RentalClient{ID: client.ID, Name: client.Name},
		EventDate:        in.EventDate,
		PickupDate:       in.PickupDate,
		ReturnDate:       in.ReturnDate,
		Items:            items,
		Kits:             rentalKits,
		TotalValueCents:  total,
		DiscountCents:    in.DiscountCents,
		Notes:            in.Notes,
		PaymentStatus:    domain.PaymentStatusPending,
		PaymentHistory:   []domain.Payment{},
		Status:           status,
		PickupChecklist:  map[string]bool{},
		ReturnChecklist:  map[string]bool{},
		DeliveryService:  in.DeliveryService,
		DeliveryFeeCents: in.DeliveryFeeCents,
		SetupService:     in.SetupService,
		SetupFeeCents:    in.SetupFeeCents,
		DeliveryAddress:  in.DeliveryAddress,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	logger.Info("rental created", "rental_id", rental.ID, "client", client.Name, "total_cents", total)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) UpdateDetails(ctx context.Context, id string, in UpdateRentalInput) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.EventDate != "" {
		rt.EventDate = in.EventDate
	}
	if in.PickupDate != "" {
		rt.PickupDate = in.PickupDate
	}
	if in.ReturnDate != "" {
		rt.ReturnDate = in.ReturnDate
	}
	rt.DiscountCents = in.DiscountCents
	rt.Notes = in.Notes
	// The discount changes the final value, so the payment status may move.
	rt.RefreshPaymentStatus()
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) AddPayment(ctx context.Context, rentalID, date string, amountCents int64, method domain.PaymentMethod) (*domain.Rental, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	rt.PaymentHistory = append(rt.PaymentHistory, domain.Payment{
		ID:          newPaymentID(),
		Date:        date,
		AmountCents: amountCents,
		Method:      method,
	})
	rt.RefreshPaymentStatus()

	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Info("payment recorded", "rental_id", rt.ID, "amount_cents", amountCents, "payment_status", rt.PaymentStatus)
	return rt, nil
}

func (s *rentalService) RemovePayment(ctx context.Context, rentalID, paymentID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	kept := rt.PaymentHistory[:0]
	for _, p := range rt.PaymentHistory {
		if p.ID != paymentID {
			kept = append(kept, p)
		}
	}
	rt.PaymentHistory = kept
	rt.RefreshPaymentStatus()

	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// SettleBalance records one payment covering the whole outstanding balance.
// The public payment page uses it after the client paid via pix.
func (s *rentalService) SettleBalance(ctx context.Context, rentalID string, method domain.PaymentMethod) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	balance := rt.BalanceDueCents()
	if balance <= 0 {
		return nil, fmt.Errorf("%w: no outstanding balance", ErrInvalidInput)
	}

	rt.PaymentHistory = append(rt.PaymentHistory, domain.Payment{
		ID:          newPaymentID(),
		Date:        utils.FormatDate(utils.Today()),
		AmountCents: balance,
		Method:      method,
	})
	rt.RefreshPaymentStatus()

	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Info("balance settled", "rental_id", rt.ID, "amount_cents", balance)
	return rt, nil
}

func (s *rentalService) checklistFor(rt *domain.Rental, kind ChecklistKind) (map[string]bool, error) {
	switch kind {
	case ChecklistPickup:
		if rt.PickupChecklist == nil {
			rt.PickupChecklist = map[string]bool{}
		}
		return rt.PickupChecklist, nil
	case ChecklistReturn:
		if rt.ReturnChecklist == nil {
			rt.ReturnChecklist = map[string]bool{}
		}
		return rt.ReturnChecklist, nil
	default:
		return nil, fmt.Errorf("%w: unknown checklist %q", ErrInvalidInput, kind)
	}
}

func (s *rentalService) SetChecklistItem(ctx context.Context, rentalID string, kind ChecklistKind, itemID string, checked bool) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	checklist, err := s.checklistFor(rt, kind)
	if err != nil {
		return nil, err
	}
	checklist[itemID] = checked
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// CheckKit ticks every member item of a kit in one operation. There is no
// kit-level flag; scanning a kit is just a batch-set over its members.
func (s *rentalService) CheckKit(ctx context.Context, rentalID string, kind ChecklistKind, kitID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	checklist, err := s.checklistFor(rt, kind)
	if err != nil {
		return nil, err
	}

	var kit *domain.RentalKit
	for i := range rt.Kits {
		if rt.Kits[i].ID == kitID {
			kit = &rt.Kits[i]
			break
		}
	}
	if kit == nil {
		return nil, fmt.Errorf("%w: kit %s is not part of this rental", ErrInvalidInput, kitID)
	}

	for _, member := range kit.Items {
		checklist[member.ID] = true
	}
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) ConfirmPickup(ctx context.Context, rentalID string) (*domain.Rental, error) {
	return s.confirm(ctx, rentalID, ChecklistPickup)
}

func (s *rentalService) ConfirmReturn(ctx context.Context, rentalID string) (*domain.Rental, error) {
	return s.confirm(ctx, rentalID, ChecklistReturn)
}

func (s *rentalService) confirm(ctx context.Context, rentalID string, kind ChecklistKind) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	target := domain.RentalStatusPickedUp
	checklist := rt.PickupChecklist
	if kind == ChecklistReturn {
		target = domain.RentalStatusReturned
		checklist = rt.ReturnChecklist
	}

	// Re-confirming an already confirmed status is a no-op, not an error.
	if rt.Status == target {
		return rt, nil
	}
	if !rt.ChecklistComplete(checklist) {
		return nil, ErrChecklistIncomplete
	}

	rt.Status = target
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Info("rental status advanced", "rental_id", rt.ID, "status", rt.Status)
	return rt, nil
}

// ReportDamage moves the inventory item to maintenance and appends a note to
// the rental. The item can still be checked off as returned while flagged.
func (s *rentalService) ReportDamage(ctx context.Context, rentalID, itemID, reason string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Status = domain.ItemStatusMaintenance
	item.MaintenanceNotes = reason
	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Item avariado reportado: %s. Motivo: %s", item.Name, reason)
	rt.Notes = strings.TrimSpace(rt.Notes + "\n" + note)
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Warn("damage reported", "rental_id", rt.ID, "item_id", itemID)
	return rt, nil
}
