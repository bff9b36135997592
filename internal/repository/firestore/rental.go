package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/utils"
)

type rentalRepository struct {
	client *firestore.Client
}

type rentalClientDoc struct {
	ID   string `firestore:"id"`
	Name string `firestore:"name"`
}

type rentalItemDoc struct {
	ID         string `firestore:"id"`
	Name       string `firestore:"name"`
	Quantity   int    `firestore:"quantity"`
	PriceCents int64  `firestore:"priceCents"`
}

type rentalKitDoc struct {
	ID         string       `firestore:"id"`
	Name       string       `firestore:"name"`
	PriceCents int64        `firestore:"priceCents"`
	Items      []kitItemDoc `firestore:"items"`
}

type paymentDoc struct {
	ID          string    `firestore:"id"`
	Date        time.Time `firestore:"date"`
	AmountCents int64     `firestore:"amountCents"`
	Method      string    `firestore:"method"`
}

// rentalDoc stores calendar dates as Firestore timestamps; the yyyy-mm-dd
// conversion happens only here, at the adapter boundary.
type rentalDoc struct {
	Client          rentalClientDoc `firestore:"client"`
	EventDate       time.Time       `firestore:"eventDate"`
	PickupDate      time.Time       `firestore:"pickupDate"`
	ReturnDate      time.Time       `firestore:"returnDate"`
	Items           []rentalItemDoc `firestore:"items"`
	Kits            []rentalKitDoc  `firestore:"kits"`
	TotalValueCents int64           `firestore:"totalValueCents"`
	DiscountCents   int64           `firestore:"discountCents"`
	Notes           string          `firestore:"notes"`
	PaymentStatus   string          `firestore:"paymentStatus"`
	PaymentHistory  []paymentDoc    `firestore:"paymentHistory"`
	Status          string          `firestore:"status"`
	PickupChecklist map[string]bool `firestore:"pickupChecklist"`
	ReturnChecklist map[string]bool `firestore:"returnChecklist"`

	DeliveryService  bool   `firestore:"deliveryService"`
	DeliveryFeeCents int64  `firestore:"deliveryFeeCents"`
	SetupService     bool   `firestore:"setupService"`
	SetupFeeCents    int64  `firestore:"setupFeeCents"`
	DeliveryAddress  string `firestore:"deliveryAddress"`
}

func dateToTimestamp(dateStr string) time.Time {
	t, err := utils.ParseDate(dateStr)
	if err != nil {
		return time.Time{}
	}
	return t
}

func timestampToDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return utils.FormatDate(t)
}

func rentalToDoc(rt *domain.Rental) rentalDoc {
	doc := rentalDoc{
		Client:           rentalClientDoc{ID: rt.Client.ID, Name: rt.Client.Name},
		EventDate:        dateToTimestamp(rt.EventDate),
		PickupDate:       dateToTimestamp(rt.PickupDate),
		ReturnDate:       dateToTimestamp(rt.ReturnDate),
		TotalValueCents:  rt.TotalValueCents,
		DiscountCents:    rt.DiscountCents,
		Notes:            rt.Notes,
		PaymentStatus:    string(rt.PaymentStatus),
		Status:           string(rt.Status),
		PickupChecklist:  rt.PickupChecklist,
		ReturnChecklist:  rt.ReturnChecklist,
		DeliveryService:  rt.DeliveryService,
		DeliveryFeeCents: rt.DeliveryFeeCents,
		SetupService:     rt.SetupService,
		SetupFeeCents:    rt.SetupFeeCents,
		DeliveryAddress:  rt.DeliveryAddress,
	}
	for _, it := range rt.Items {
		doc.Items = append(doc.Items, rentalItemDoc(it))
	}
	for _, k := range rt.Kits {
		kd := rentalKitDoc{ID: k.ID, Name: k.Name, PriceCents: k.PriceCents}
		for _, it := range k.Items {
			kd.Items = append(kd.Items, kitItemDoc{ID: it.ID, Name: it.Name})
		}
		doc.Kits = append(doc.Kits, kd)
	}
	for _, p := range rt.PaymentHistory {
		doc.PaymentHistory = append(doc.PaymentHistory, paymentDoc{
			ID:          p.ID,
			Date:        dateToTimestamp(p.Date),
			AmountCents: p.AmountCents,
			Method:      string(p.Method),
		})
	}
	return doc
}

func docToRental(id string, doc rentalDoc) domain.Rental {
	rt := domain.Rental{
		ID:               id,
		Client:           domain.RentalClient{ID: doc.Client.ID, Name: doc.Client.Name},
		EventDate:        timestampToDate(doc.EventDate),
		PickupDate:       timestampToDate(doc.PickupDate),
		ReturnDate:       timestampToDate(doc.ReturnDate),
		TotalValueCents:  doc.TotalValueCents,
		DiscountCents:    doc.DiscountCents,
		Notes:            doc.Notes,
		PaymentStatus:    domain.PaymentStatus(doc.PaymentStatus),
		Status:           domain.RentalStatus(doc.Status),
		PickupChecklist:  doc.PickupChecklist,
		ReturnChecklist:  doc.ReturnChecklist,
		DeliveryService:  doc.DeliveryService,
		DeliveryFeeCents: doc.DeliveryFeeCents,
		SetupService:     doc.SetupService,
		SetupFeeCents:    doc.SetupFeeCents,
		DeliveryAddress:  doc.DeliveryAddress,
	}
	if rt.PaymentStatus == "" {
		rt.PaymentStatus = domain.PaymentStatusPending
	}
	if rt.Status == "" {
		rt.Status = domain.RentalStatusBooked
	}
	if rt.PickupChecklist == nil {
		rt.PickupChecklist = map[string]bool{}
	}
	if rt.ReturnChecklist == nil {
		rt.ReturnChecklist = map[string]bool{}
	}
	for _, it := range doc.Items {
		rt.Items = append(rt.Items, domain.RentalItem(it))
	}
	for _, k := range doc.Kits {
		kit := domain.RentalKit{ID: k.ID, Name: k.Name, PriceCents: k.PriceCents}
		for _, it := range k.Items {
			kit.Items = append(kit.Items, domain.KitItem{ID: it.ID, Name: it.Name})
		}
		rt.Kits = append(rt.Kits, kit)
	}
	for _, p := range doc.PaymentHistory {
		rt.PaymentHistory = append(rt.PaymentHistory, domain.Payment{
			ID:          p.ID,
			Date:        timestampToDate(p.Date),
			AmountCents: p.AmountCents,
			Method:      domain.PaymentMethod(p.Method),
		})
	}
	return rt
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	ref := r.client.Collection(collRentals).NewDoc()
	if _, err := ref.Set(ctx, rentalToDoc(rt)); err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}
	rt.ID = ref.ID
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	snap, err := r.client.Collection(collRentals).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var doc rentalDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode rental %s: %w", id, err)
	}
	rt := docToRental(snap.Ref.ID, doc)
	return &rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	iter := r.client.Collection(collRentals).Documents(ctx)
	defer iter.Stop()

	var rentals []domain.Rental
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list rentals: %w", err)
		}
		var doc rentalDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode rental %s: %w", snap.Ref.ID, err)
		}
		rentals = append(rentals, docToRental(snap.Ref.ID, doc))
	}
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	_, err := r.client.Collection(collRentals).Doc(rt.ID).Set(ctx, rentalToDoc(rt))
	return mapErr(err)
}
