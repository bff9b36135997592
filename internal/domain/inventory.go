package domain

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusRented      ItemStatus = "rented"
	ItemStatusMaintenance ItemStatus = "maintenance"
)

// InventoryItem is a catalog entry owned by the company. Status is a coarse
// flag; whether an item can actually be booked on a given date is decided by
// the availability calculator, not by this field.
type InventoryItem struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Quantity          int        `json:"quantity"`
	PriceCents        int64      `json:"price_cents"`
	ImageURL          string     `json:"image_url,omitempty"`
	Status            ItemStatus `json:"status"`
	LowStockThreshold *int       `json:"low_stock_threshold,omitempty"`
	MaintenanceNotes  string     `json:"maintenance_notes,omitempty"`
	PurchaseCostCents int64      `json:"purchase_cost_cents,omitempty"`
}
