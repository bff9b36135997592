package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/service"
)

// CatalogHandler serves the unauthenticated client-facing pages: the item
// catalog, the self-service booking and the balance payment page.
type CatalogHandler struct {
	catalog  service.CatalogService
	rentals  service.RentalService
	settings service.SettingsService
}

func NewCatalogHandler(catalog service.CatalogService, rentals service.RentalService, settings service.SettingsService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, rentals: rentals, settings: settings}
}

func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, fmt.Errorf("%w: date query parameter is required", service.ErrInvalidInput))
		return
	}
	items, err := h.catalog.AvailableCatalog(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

type bookBasicRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Date    string   `json:"date"`
	ItemIDs []string `json:"item_ids"`
}

func (h *CatalogHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookBasicRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rt, err := h.catalog.BookBasic(r.Context(), service.BookBasicInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Date:    req.Date,
		ItemIDs: req.ItemIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(rt))
}

// paymentPageResponse is the public balance page: what is owed and where to
// send the pix. It deliberately omits everything else about the rental.
type paymentPageResponse struct {
	ClientName      string             `json:"client_name"`
	EventDate       string             `json:"event_date"`
	FinalValueCents int64              `json:"final_value_cents"`
	TotalPaidCents  int64              `json:"total_paid_cents"`
	BalanceDueCents int64              `json:"balance_due_cents"`
	CompanyName     string             `json:"company_name"`
	PaymentInfo     domain.PaymentInfo `json:"payment_info"`
}

func (h *CatalogHandler) PaymentPage(w http.ResponseWriter, r *http.Request) {
	rt, err := h.rentals.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentPageResponse{
		ClientName:      rt.Client.Name,
		EventDate:       rt.EventDate,
		FinalValueCents: rt.FinalValueCents(),
		TotalPaidCents:  rt.TotalPaidCents(),
		BalanceDueCents: rt.BalanceDueCents(),
		CompanyName:     settings.CompanyName,
		PaymentInfo:     settings.PaymentInfo,
	})
}

func (h *CatalogHandler) SettleBalance(w http.ResponseWriter, r *http.Request) {
	rt, err := h.rentals.SettleBalance(r.Context(), mux.Vars(r)["id"], domain.PaymentMethodPix)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}
