// Package firestore implements the document-store repositories on Cloud
// Firestore. Dates are persisted as timestamps and exchanged with the domain
// as yyyy-mm-dd strings; all writes are single-document, last-write-wins.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"festaloc-backend/internal/repository"
)

const (
	collInventory = "inventory"
	collClients   = "clients"
	collKits      = "kits"
	collRentals   = "rentals"
	collExpenses  = "expenses"
	collRevenues  = "revenues"
	collSettings  = "settings"
)

// Store bundles every repository backed by one Firestore client.
type Store struct {
	repository.Store

	client *firestore.Client
}

// NewStore connects to Firestore through the Firebase SDK. When
// credentialsFile is empty the SDK falls back to application-default
// credentials.
func NewStore(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &Store{
		Store: repository.Store{
			InventoryRepository: &inventoryRepository{client: client},
			ClientRepository:    &clientRepository{client: client},
			KitRepository:       &kitRepository{client: client},
			RentalRepository:    &rentalRepository{client: client},
			ExpenseRepository:   &expenseRepository{client: client},
			RevenueRepository:   &revenueRepository{client: client},
			SettingsRepository:  &settingsRepository{client: client},
		},
		client: client,
	}, nil
}

// Close releases the underlying Firestore client.
func (s *Store) Close() error {
	return s.client.Close()
}

// mapErr translates the Firestore not-found code into the repository
// sentinel so callers never see grpc status values.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}
	return err
}
