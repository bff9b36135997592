package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"festaloc-backend/internal/domain"
)

type inventoryRepository struct {
	client *firestore.Client
}

type inventoryDoc struct {
	Name              string `firestore:"name"`
	Category          string `firestore:"category"`
	Quantity          int    `firestore:"quantity"`
	PriceCents        int64  `firestore:"priceCents"`
	ImageURL          string `firestore:"imageUrl"`
	Status            string `firestore:"status"`
	LowStockThreshold *int   `firestore:"lowStockThreshold"`
	MaintenanceNotes  string `firestore:"maintenanceNotes"`
	PurchaseCostCents int64  `firestore:"purchaseCostCents"`
}

func inventoryToDoc(item *domain.InventoryItem) inventoryDoc {
	return inventoryDoc{
		Name:              item.Name,
		Category:          item.Category,
		Quantity:          item.Quantity,
		PriceCents:        item.PriceCents,
		ImageURL:          item.ImageURL,
		Status:            string(item.Status),
		LowStockThreshold: item.LowStockThreshold,
		MaintenanceNotes:  item.MaintenanceNotes,
		PurchaseCostCents: item.PurchaseCostCents,
	}
}

func docToInventory(id string, doc inventoryDoc) domain.InventoryItem {
	status := domain.ItemStatus(doc.Status)
	if status == "" {
		status = domain.ItemStatusAvailable
	}
	return domain.InventoryItem{
		ID:                id,
		Name:              doc.Name,
		Category:          doc.Category,
		Quantity:          doc.Quantity,
		PriceCents:        doc.PriceCents,
		ImageURL:          doc.ImageURL,
		Status:            status,
		LowStockThreshold: doc.LowStockThreshold,
		MaintenanceNotes:  doc.MaintenanceNotes,
		PurchaseCostCents: doc.PurchaseCostCents,
	}
}

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	ref := r.client.Collection(collInventory).NewDoc()
	if _, err := ref.Set(ctx, inventoryToDoc(item)); err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	item.ID = ref.ID
	return nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	snap, err := r.client.Collection(collInventory).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var doc inventoryDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode inventory item %s: %w", id, err)
	}
	item := docToInventory(snap.Ref.ID, doc)
	return &item, nil
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	iter := r.client.Collection(collInventory).Documents(ctx)
	defer iter.Stop()

	var items []domain.InventoryItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list inventory: %w", err)
		}
		var doc inventoryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode inventory item %s: %w", snap.Ref.ID, err)
		}
		items = append(items, docToInventory(snap.Ref.ID, doc))
	}
	return items, nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	_, err := r.client.Collection(collInventory).Doc(item.ID).Set(ctx, inventoryToDoc(item))
	return mapErr(err)
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collInventory).Doc(id).Delete(ctx)
	return mapErr(err)
}
