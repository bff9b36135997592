package service

import (
	"context"
	"errors"

	"festaloc-backend/internal/domain"
)

var (
	// ErrInvalidInput marks validation failures rejected before any I/O.
	ErrInvalidInput = errors.New("invalid input")
	// ErrChecklistIncomplete rejects pickup/return confirmation while any
	// checklist item is still unverified.
	ErrChecklistIncomplete = errors.New("checklist has unverified items")
)

// ChecklistKind selects which of the two rental checklists an operation
// applies to.
type ChecklistKind string

const (
	ChecklistPickup ChecklistKind = "pickup"
	ChecklistReturn ChecklistKind = "return"
)

// CreateRentalInput is the admin booking form. Items and kits reference
// catalog ids; snapshots are taken inside the service.
type CreateRentalInput struct {
	ClientID   string
	EventDate  string
	PickupDate string
	ReturnDate string
	Items      []RentalItemInput
	KitIDs     []string

	DiscountCents int64
	Notes         string

	DeliveryService  bool
	DeliveryFeeCents int64
	SetupService     bool
	SetupFeeCents    int64
	DeliveryAddress  string

	QuoteOnly bool
}

type RentalItemInput struct {
	ItemID   string
	Quantity int
}

// UpdateRentalInput carries the free-form editable fields of a rental.
// Snapshots, statuses and checklists are only changed through dedicated
// operations.
type UpdateRentalInput struct {
	EventDate     string
	PickupDate    string
	ReturnDate    string
	DiscountCents int64
	Notes         string
}

type RentalService interface {
	CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	UpdateDetails(ctx context.Context, id string, in UpdateRentalInput) (*domain.Rental, error)

	AddPayment(ctx context.Context, rentalID, date string, amountCents int64, method domain.PaymentMethod) (*domain.Rental, error)
	RemovePayment(ctx context.Context, rentalID, paymentID string) (*domain.Rental, error)
	SettleBalance(ctx context.Context, rentalID string, method domain.PaymentMethod) (*domain.Rental, error)

	SetChecklistItem(ctx context.Context, rentalID string, kind ChecklistKind, itemID string, checked bool) (*domain.Rental, error)
	CheckKit(ctx context.Context, rentalID string, kind ChecklistKind, kitID string) (*domain.Rental, error)
	ConfirmPickup(ctx context.Context, rentalID string) (*domain.Rental, error)
	ConfirmReturn(ctx context.Context, rentalID string) (*domain.Rental, error)
	ReportDamage(ctx context.Context, rentalID, itemID, reason string) (*domain.Rental, error)
}

type AvailabilityService interface {
	UnavailableItemIDs(ctx context.Context, date string) (map[string]bool, error)
	UnavailableItemIDsRange(ctx context.Context, start, end string) (map[string]bool, error)
	AvailableItems(ctx context.Context, date string) ([]domain.InventoryItem, error)
}

// TransactionWindow selects the reporting period of the financial ledger.
type TransactionWindow string

const (
	WindowMonth       TransactionWindow = "month"
	WindowThreeMonths TransactionWindow = "3months"
	WindowAll         TransactionWindow = "all"
)

type FinanceService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	Transactions(ctx context.Context, window TransactionWindow) ([]domain.Transaction, *domain.FinanceSummary, error)
	ItemReports(ctx context.Context) ([]domain.ItemReport, error)
	ClientReports(ctx context.Context) ([]domain.ClientReport, error)

	AddExpense(ctx context.Context, expense *domain.Expense) error
	AddRevenue(ctx context.Context, revenue *domain.Revenue) error
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	ListRevenues(ctx context.Context) ([]domain.Revenue, error)
}

type NotificationService interface {
	Derive(ctx context.Context) ([]domain.Notification, error)
}

// BookBasicInput is the public-catalog checkout: one date, one quantity per
// item, identity by phone.
type BookBasicInput struct {
	Name    string
	Phone   string
	Email   string
	Date    string
	ItemIDs []string
}

type CatalogService interface {
	AvailableCatalog(ctx context.Context, date string) ([]domain.InventoryItem, error)
	FindOrCreateClient(ctx context.Context, name, phone, email string) (*domain.Client, error)
	BookBasic(ctx context.Context, in BookBasicInput) (*domain.Rental, error)
}

type InventoryService interface {
	AddItem(ctx context.Context, item *domain.InventoryItem) error
	GetItem(ctx context.Context, id string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item *domain.InventoryItem) error
	DeleteItem(ctx context.Context, id string) error

	ReportMaintenance(ctx context.Context, itemID, notes string) (*domain.InventoryItem, error)
	RecordMaintenanceCost(ctx context.Context, itemID string, costCents int64) error
	CompleteMaintenance(ctx context.Context, itemID string) (*domain.InventoryItem, error)
}

type ClientService interface {
	AddClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) error
	DeleteClient(ctx context.Context, id string) error
}

type KitService interface {
	AddKit(ctx context.Context, name string, priceCents int64, itemIDs []string) (*domain.Kit, error)
	GetKit(ctx context.Context, id string) (*domain.Kit, error)
	ListKits(ctx context.Context) ([]domain.Kit, error)
	UpdateKit(ctx context.Context, id, name string, priceCents int64, itemIDs []string) (*domain.Kit, error)
	DeleteKit(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Save(ctx context.Context, settings *domain.CompanySettings) error
}

// DailyTasks groups the delivery-service rentals touching one date.
type DailyTasks struct {
	Deliveries []domain.Rental `json:"deliveries"`
	Pickups    []domain.Rental `json:"pickups"`
	Addresses  []string        `json:"addresses"`
}

type LogisticsService interface {
	TasksForDate(ctx context.Context, date string) (*DailyTasks, error)
}

type EmailService interface {
	SendAlertDigest(ctx context.Context, notifications []domain.Notification) error
	SendPaymentReminder(ctx context.Context, clientName, eventDate string, balanceCents int64) error
	SendOverdueReminder(ctx context.Context, clientName, returnDate string) error
}
