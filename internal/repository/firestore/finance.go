package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"festaloc-backend/internal/domain"
)

type expenseRepository struct {
	client *firestore.Client
}

type revenueRepository struct {
	client *firestore.Client
}

// ledgerDoc is the stored shape shared by expenses and revenues.
type ledgerDoc struct {
	Description   string    `firestore:"description"`
	Category      string    `firestore:"category"`
	Date          time.Time `firestore:"date"`
	AmountCents   int64     `firestore:"amountCents"`
	PaymentMethod string    `firestore:"paymentMethod"`
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	ref := r.client.Collection(collExpenses).NewDoc()
	doc := ledgerDoc{
		Description:   e.Description,
		Category:      e.Category,
		Date:          dateToTimestamp(e.Date),
		AmountCents:   e.AmountCents,
		PaymentMethod: string(e.PaymentMethod),
	}
	if _, err := ref.Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	e.ID = ref.ID
	return nil
}

func (r *expenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	iter := r.client.Collection(collExpenses).Documents(ctx)
	defer iter.Stop()

	var expenses []domain.Expense
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses: %w", err)
		}
		var doc ledgerDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode expense %s: %w", snap.Ref.ID, err)
		}
		expenses = append(expenses, domain.Expense{
			ID:            snap.Ref.ID,
			Description:   doc.Description,
			Category:      doc.Category,
			Date:          timestampToDate(doc.Date),
			AmountCents:   doc.AmountCents,
			PaymentMethod: domain.PaymentMethod(doc.PaymentMethod),
		})
	}
	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collExpenses).Doc(id).Delete(ctx)
	return mapErr(err)
}

func (r *revenueRepository) Create(ctx context.Context, rev *domain.Revenue) error {
	ref := r.client.Collection(collRevenues).NewDoc()
	doc := ledgerDoc{
		Description:   rev.Description,
		Category:      rev.Category,
		Date:          dateToTimestamp(rev.Date),
		AmountCents:   rev.AmountCents,
		PaymentMethod: string(rev.PaymentMethod),
	}
	if _, err := ref.Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to create revenue: %w", err)
	}
	rev.ID = ref.ID
	return nil
}

func (r *revenueRepository) List(ctx context.Context) ([]domain.Revenue, error) {
	iter := r.client.Collection(collRevenues).Documents(ctx)
	defer iter.Stop()

	var revenues []domain.Revenue
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list revenues: %w", err)
		}
		var doc ledgerDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode revenue %s: %w", snap.Ref.ID, err)
		}
		revenues = append(revenues, domain.Revenue{
			ID:            snap.Ref.ID,
			Description:   doc.Description,
			Category:      doc.Category,
			Date:          timestampToDate(doc.Date),
			AmountCents:   doc.AmountCents,
			PaymentMethod: domain.PaymentMethod(doc.PaymentMethod),
		})
	}
	return revenues, nil
}

func (r *revenueRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collRevenues).Doc(id).Delete(ctx)
	return mapErr(err)
}
