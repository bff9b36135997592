package domain

type NotificationType string

const (
	NotificationOverdueReturn NotificationType = "overdue_return"
	NotificationPaymentDue    NotificationType = "payment_due"
	NotificationLowStock      NotificationType = "low_stock"
)

// Notification is a transient alert derived on each admin-session load. It is
// never persisted and carries the id of the rental or inventory item it
// refers to for deep-linking.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Message     string           `json:"message"`
	ReferenceID string           `json:"reference_id"`
}
