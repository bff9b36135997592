package domain

// Expense is a standalone ledger entry, not tied to a rental.
type Expense struct {
	ID            string        `json:"id"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Date          string        `json:"date"` // yyyy-mm-dd
	AmountCents   int64         `json:"amount_cents"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

// Revenue records non-rental income; rental payments live inside each
// rental's payment history and are merged with these only at reporting time.
type Revenue struct {
	ID            string        `json:"id"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Date          string        `json:"date"` // yyyy-mm-dd
	AmountCents   int64         `json:"amount_cents"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

type TransactionType string

const (
	TransactionTypeRevenue TransactionType = "revenue"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is the normalized form of a ledger line: rental payments,
// standalone revenues and expenses all collapse into this shape for the
// financial screen.
type Transaction struct {
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	AmountCents int64           `json:"amount_cents"`
	Method      PaymentMethod   `json:"method,omitempty"`
	ReferenceID string          `json:"reference_id"`
}

type PopularItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats is recomputed on demand; nothing here is stored.
type DashboardStats struct {
	TotalItems           int           `json:"total_items"`
	RentedItems          int           `json:"rented_items"`
	UpcomingEvents       int           `json:"upcoming_events"`
	MonthlyRevenueCents  int64         `json:"monthly_revenue_cents"`
	MonthlyExpensesCents int64         `json:"monthly_expenses_cents"`
	MonthlyNetCents      int64         `json:"monthly_net_cents"`
	MonthlyRentalCounts  [6]int        `json:"monthly_rental_counts"` // trailing 6 months, oldest first
	PopularItems         []PopularItem `json:"popular_items"`
}

// ItemReport is the per-item profitability line of the reports screen.
type ItemReport struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	PurchaseCostCents     int64   `json:"purchase_cost_cents"`
	TotalRevenueCents     int64   `json:"total_revenue_cents"`
	MaintenanceCostsCents int64   `json:"maintenance_costs_cents"`
	ProfitCents           int64   `json:"profit_cents"`
	ROIPercent            float64 `json:"roi_percent"`
	RentalCount           int     `json:"rental_count"`
}

// ClientReport is the lifetime-value line per client.
type ClientReport struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RentalCount     int    `json:"rental_count"`
	TotalSpentCents int64  `json:"total_spent_cents"`
}

type FinanceSummary struct {
	TotalRevenueCents  int64 `json:"total_revenue_cents"`
	TotalExpensesCents int64 `json:"total_expenses_cents"`
	NetCents           int64 `json:"net_cents"`
}
