package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Inventory    *InventoryHandler
	Clients      *ClientHandler
	Kits         *KitHandler
	Rentals      *RentalHandler
	Availability *AvailabilityHandler
	Finance      *FinanceHandler
	Settings     *SettingsHandler
	Notification *NotificationHandler
	Logistics    *LogisticsHandler
	Catalog      *CatalogHandler
}

// NewRouter builds the full route table. Everything under /api requires a
// bearer token; /public and /auth are open so clients can browse, book and
// pay without an account.
func NewRouter(h Handlers, auth *AuthMiddleware, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	r.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	// Public client-facing routes
	r.HandleFunc("/public/catalog", h.Catalog.Catalog).Methods("GET")
	r.HandleFunc("/public/bookings", h.Catalog.Book).Methods("POST")
	r.HandleFunc("/public/rentals/{id}/payment", h.Catalog.PaymentPage).Methods("GET")
	r.HandleFunc("/public/rentals/{id}/payment/settle", h.Catalog.SettleBalance).Methods("POST")

	// Admin console routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Handler)

	api.HandleFunc("/inventory", h.Inventory.Create).Methods("POST")
	api.HandleFunc("/inventory", h.Inventory.List).Methods("GET")
	api.HandleFunc("/inventory/{id}", h.Inventory.Get).Methods("GET")
	api.HandleFunc("/inventory/{id}", h.Inventory.Update).Methods("PUT")
	api.HandleFunc("/inventory/{id}", h.Inventory.Delete).Methods("DELETE")
	api.HandleFunc("/inventory/{id}/maintenance", h.Inventory.ReportMaintenance).Methods("POST")
	api.HandleFunc("/inventory/{id}/maintenance/cost", h.Inventory.RecordMaintenanceCost).Methods("POST")
	api.HandleFunc("/inventory/{id}/maintenance/complete", h.Inventory.CompleteMaintenance).Methods("POST")

	api.HandleFunc("/clients", h.Clients.Create).Methods("POST")
	api.HandleFunc("/clients", h.Clients.List).Methods("GET")
	api.HandleFunc("/clients/{id}", h.Clients.Get).Methods("GET")
	api.HandleFunc("/clients/{id}", h.Clients.Update).Methods("PUT")
	api.HandleFunc("/clients/{id}", h.Clients.Delete).Methods("DELETE")

	api.HandleFunc("/kits", h.Kits.Create).Methods("POST")
	api.HandleFunc("/kits", h.Kits.List).Methods("GET")
	api.HandleFunc("/kits/{id}", h.Kits.Get).Methods("GET")
	api.HandleFunc("/kits/{id}", h.Kits.Update).Methods("PUT")
	api.HandleFunc("/kits/{id}", h.Kits.Delete).Methods("DELETE")

	api.HandleFunc("/rentals", h.Rentals.Create).Methods("POST")
	api.HandleFunc("/rentals", h.Rentals.List).Methods("GET")
	api.HandleFunc("/rentals/{id}", h.Rentals.Get).Methods("GET")
	api.HandleFunc("/rentals/{id}", h.Rentals.Update).Methods("PUT")
	api.HandleFunc("/rentals/{id}/payments", h.Rentals.AddPayment).Methods("POST")
	api.HandleFunc("/rentals/{id}/payments/{paymentId}", h.Rentals.RemovePayment).Methods("DELETE")
	api.HandleFunc("/rentals/{id}/checklist/{kind}/items/{itemId}", h.Rentals.SetChecklistItem).Methods("PUT")
	api.HandleFunc("/rentals/{id}/checklist/{kind}/kits/{kitId}", h.Rentals.CheckKit).Methods("PUT")
	api.HandleFunc("/rentals/{id}/pickup", h.Rentals.ConfirmPickup).Methods("POST")
	api.HandleFunc("/rentals/{id}/return", h.Rentals.ConfirmReturn).Methods("POST")
	api.HandleFunc("/rentals/{id}/damage", h.Rentals.ReportDamage).Methods("POST")

	api.HandleFunc("/availability", h.Availability.Unavailable).Methods("GET")

	api.HandleFunc("/finance/dashboard", h.Finance.Dashboard).Methods("GET")
	api.HandleFunc("/finance/transactions", h.Finance.Transactions).Methods("GET")
	api.HandleFunc("/finance/reports/items", h.Finance.ItemReports).Methods("GET")
	api.HandleFunc("/finance/reports/clients", h.Finance.ClientReports).Methods("GET")
	api.HandleFunc("/finance/expenses", h.Finance.CreateExpense).Methods("POST")
	api.HandleFunc("/finance/expenses", h.Finance.ListExpenses).Methods("GET")
	api.HandleFunc("/finance/revenues", h.Finance.CreateRevenue).Methods("POST")
	api.HandleFunc("/finance/revenues", h.Finance.ListRevenues).Methods("GET")

	api.HandleFunc("/notifications", h.Notification.List).Methods("GET")
	api.HandleFunc("/logistics/tasks", h.Logistics.Tasks).Methods("GET")

	api.HandleFunc("/settings", h.Settings.Get).Methods("GET")
	api.HandleFunc("/settings", h.Settings.Save).Methods("PUT")

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authorization"},
	})
	return c.Handler(r)
}
