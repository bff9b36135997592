package repository

import (
	"context"
	"errors"

	"festaloc-backend/internal/domain"
)

// ErrNotFound is returned when a document id does not exist in its
// collection. Handlers map it to a dedicated not-found response.
var ErrNotFound = errors.New("record not found")

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	// Delete is unconditional: historical rentals keep their own snapshots,
	// so removing an item never rewrites history.
	Delete(ctx context.Context, id string) error
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type KitRepository interface {
	Create(ctx context.Context, kit *domain.Kit) error
	GetByID(ctx context.Context, id string) (*domain.Kit, error)
	List(ctx context.Context) ([]domain.Kit, error)
	Update(ctx context.Context, kit *domain.Kit) error
	Delete(ctx context.Context, id string) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	List(ctx context.Context) ([]domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type RevenueRepository interface {
	Create(ctx context.Context, revenue *domain.Revenue) error
	List(ctx context.Context) ([]domain.Revenue, error)
	Delete(ctx context.Context, id string) error
}

type SettingsRepository interface {
	// Get returns ErrNotFound until the singleton has been saved once.
	Get(ctx context.Context) (*domain.CompanySettings, error)
	// Save overwrites the whole record at the fixed id.
	Save(ctx context.Context, settings *domain.CompanySettings) error
}

// Store bundles one repository per collection. Both persistence backends
// fill this same shape, so the rest of the application never knows which one
// is behind it.
type Store struct {
	InventoryRepository InventoryRepository
	ClientRepository    ClientRepository
	KitRepository       KitRepository
	RentalRepository    RentalRepository
	ExpenseRepository   ExpenseRepository
	RevenueRepository   RevenueRepository
	SettingsRepository  SettingsRepository
}
