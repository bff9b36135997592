package domain

type RentalStatus string

const (
	RentalStatusBooked         RentalStatus = "booked"
	RentalStatusPickedUp       RentalStatus = "picked-up"
	RentalStatusReturned       RentalStatus = "returned"
	RentalStatusOverdue        RentalStatus = "overdue"
	RentalStatusQuoteRequested RentalStatus = "quote-requested"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodPaymentLink  PaymentMethod = "payment_link"
	PaymentMethodOther        PaymentMethod = "other"
)

// Payment is immutable once recorded except for deletion.
type Payment struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"` // yyyy-mm-dd
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
}

// RentalItem is a point-in-time snapshot of an inventory item as booked.
// Later catalog price edits never change it.
type RentalItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// RentalKit is the booked snapshot of a kit, member names included.
type RentalKit struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Items      []KitItem `json:"items"`
}

type RentalClient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Rental struct {
	ID         string       `json:"id"`
	Client     RentalClient `json:"client"`
	EventDate  string       `json:"event_date"`
	PickupDate string       `json:"pickup_date"`
	ReturnDate string       `json:"return_date"`

	Items []RentalItem `json:"items"`
	Kits  []RentalKit  `json:"kits,omitempty"`

	// TotalValueCents is fixed at creation time: items + kits + service fees,
	// before discount.
	TotalValueCents int64  `json:"total_value_cents"`
	DiscountCents   int64  `json:"discount_cents"`
	Notes           string `json:"notes,omitempty"`

	PaymentStatus  PaymentStatus `json:"payment_status"`
	PaymentHistory []Payment     `json:"payment_history"`

	Status          RentalStatus    `json:"status"`
	PickupChecklist map[string]bool `json:"pickup_checklist"`
	ReturnChecklist map[string]bool `json:"return_checklist"`

	DeliveryService  bool   `json:"delivery_service,omitempty"`
	DeliveryFeeCents int64  `json:"delivery_fee_cents,omitempty"`
	SetupService     bool   `json:"setup_service,omitempty"`
	SetupFeeCents    int64  `json:"setup_fee_cents,omitempty"`
	DeliveryAddress  string `json:"delivery_address,omitempty"`
}

// TotalPaidCents sums the payment history.
func (r *Rental) TotalPaidCents() int64 {
	var total int64
	for _, p := range r.PaymentHistory {
		total += p.AmountCents
	}
	return total
}

// FinalValueCents is the value actually owed: total minus discount.
func (r *Rental) FinalValueCents() int64 {
	return r.TotalValueCents - r.DiscountCents
}

// BalanceDueCents may be negative when the client overpaid; the overpayment
// is surfaced, not clamped.
func (r *Rental) BalanceDueCents() int64 {
	return r.FinalValueCents() - r.TotalPaidCents()
}

// DerivePaymentStatus recomputes the payment status from amounts. It is the
// only way PaymentStatus gets a value; user actions never set it directly.
func DerivePaymentStatus(totalPaidCents, finalValueCents int64) PaymentStatus {
	switch {
	case totalPaidCents == 0:
		return PaymentStatusPending
	case totalPaidCents >= finalValueCents:
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}

// RefreshPaymentStatus re-derives PaymentStatus after a payment was added or
// removed.
func (r *Rental) RefreshPaymentStatus() {
	r.PaymentStatus = DerivePaymentStatus(r.TotalPaidCents(), r.FinalValueCents())
}

// ChecklistItemIDs returns the deduplicated item ids the pickup and return
// checklists must cover. Kit member items are already materialized into Items
// at booking time, so the Items list is the single source of checklist ids.
func (r *Rental) ChecklistItemIDs() []string {
	seen := make(map[string]bool, len(r.Items))
	var ids []string
	for _, it := range r.Items {
		if !seen[it.ID] {
			seen[it.ID] = true
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// ChecklistComplete reports whether every checklist item id is ticked true in
// the given checklist map.
func (r *Rental) ChecklistComplete(checklist map[string]bool) bool {
	for _, id := range r.ChecklistItemIDs() {
		if !checklist[id] {
			return false
		}
	}
	return true
}

// EffectiveStatus derives the display status for a given day. Overdue is
// never stored: a rental still out past its return date reads as overdue,
// everything else keeps its stored status.
func EffectiveStatus(r *Rental, today string) RentalStatus {
	if (r.Status == RentalStatusBooked || r.Status == RentalStatusPickedUp) && r.ReturnDate != "" && r.ReturnDate < today {
		return RentalStatusOverdue
	}
	return r.Status
}
