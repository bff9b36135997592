package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"festaloc-backend/internal/domain"
)

type kitRepository struct {
	client *firestore.Client
}

type kitItemDoc struct {
	ID   string `firestore:"id"`
	Name string `firestore:"name"`
}

type kitDoc struct {
	Name       string       `firestore:"name"`
	PriceCents int64        `firestore:"priceCents"`
	ItemIDs    []string     `firestore:"itemIds"`
	Items      []kitItemDoc `firestore:"items"`
}

func kitToDoc(k *domain.Kit) kitDoc {
	doc := kitDoc{
		Name:       k.Name,
		PriceCents: k.PriceCents,
		ItemIDs:    k.ItemIDs,
	}
	for _, it := range k.Items {
		doc.Items = append(doc.Items, kitItemDoc{ID: it.ID, Name: it.Name})
	}
	return doc
}

func docToKit(id string, doc kitDoc) domain.Kit {
	kit := domain.Kit{
		ID:         id,
		Name:       doc.Name,
		PriceCents: doc.PriceCents,
		ItemIDs:    doc.ItemIDs,
	}
	for _, it := range doc.Items {
		kit.Items = append(kit.Items, domain.KitItem{ID: it.ID, Name: it.Name})
	}
	return kit
}

func (r *kitRepository) Create(ctx context.Context, k *domain.Kit) error {
	ref := r.client.Collection(collKits).NewDoc()
	if _, err := ref.Set(ctx, kitToDoc(k)); err != nil {
		return fmt.Errorf("failed to create kit: %w", err)
	}
	k.ID = ref.ID
	return nil
}

func (r *kitRepository) GetByID(ctx context.Context, id string) (*domain.Kit, error) {
	snap, err := r.client.Collection(collKits).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var doc kitDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode kit %s: %w", id, err)
	}
	kit := docToKit(snap.Ref.ID, doc)
	return &kit, nil
}

func (r *kitRepository) List(ctx context.Context) ([]domain.Kit, error) {
	iter := r.client.Collection(collKits).Documents(ctx)
	defer iter.Stop()

	var kits []domain.Kit
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list kits: %w", err)
		}
		var doc kitDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode kit %s: %w", snap.Ref.ID, err)
		}
		kits = append(kits, docToKit(snap.Ref.ID, doc))
	}
	return kits, nil
}

func (r *kitRepository) Update(ctx context.Context, k *domain.Kit) error {
	_, err := r.client.Collection(collKits).Doc(k.ID).Set(ctx, kitToDoc(k))
	return mapErr(err)
}

func (r *kitRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collKits).Doc(id).Delete(ctx)
	return mapErr(err)
}
