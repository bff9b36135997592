package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/service"
	"festaloc-backend/internal/utils"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	ClientID   string `json:"client_id"`
	EventDate  string `json:"event_date"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`

	Items []struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	KitIDs []string `json:"kit_ids"`

	DiscountCents int64  `json:"discount_cents"`
	Notes         string `json:"notes"`

	DeliveryService  bool   `json:"delivery_service"`
	DeliveryFeeCents int64  `json:"delivery_fee_cents"`
	SetupService     bool   `json:"setup_service"`
	SetupFeeCents    int64  `json:"setup_fee_cents"`
	DeliveryAddress  string `json:"delivery_address"`

	QuoteOnly bool `json:"quote_only"`
}

// rentalView decorates a rental with its derived fields so the UI never
// recomputes payment math or the overdue state.
type rentalView struct {
	*domain.Rental
	EffectiveStatus domain.RentalStatus `json:"effective_status"`
	TotalPaidCents  int64               `json:"total_paid_cents"`
	BalanceDueCents int64               `json:"balance_due_cents"`
}

func viewOf(rt *domain.Rental) rentalView {
	return rentalView{
		Rental:          rt,
		EffectiveStatus: domain.EffectiveStatus(rt, utils.FormatDate(utils.Today())),
		TotalPaidCents:  rt.TotalPaidCents(),
		BalanceDueCents: rt.BalanceDueCents(),
	}
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := service.CreateRentalInput{
		ClientID:         req.ClientID,
		EventDate:        req.EventDate,
		PickupDate:       req.PickupDate,
		ReturnDate:       req.ReturnDate,
		KitIDs:           req.KitIDs,
		DiscountCents:    req.DiscountCents,
		Notes:            req.Notes,
		DeliveryService:  req.DeliveryService,
		DeliveryFeeCents: req.DeliveryFeeCents,
		SetupService:     req.SetupService,
		SetupFeeCents:    req.SetupFeeCents,
		DeliveryAddress:  req.DeliveryAddress,
		QuoteOnly:        req.QuoteOnly,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, service.RentalItemInput{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	rt, err := h.rentals.CreateRental(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(rt))
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]rentalView, 0, len(rentals))
	for i := range rentals {
		views = append(views, viewOf(&rentals[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rt, err := h.rentals.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateRentalInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rt, err := h.rentals.UpdateDetails(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}

type addPaymentRequest struct {
	Date        string               `json:"date"`
	AmountCents int64                `json:"amount_cents"`
	Method      domain.PaymentMethod `json:"method"`
}

func (h *RentalHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req addPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rt, err := h.rentals.AddPayment(r.Context(), mux.Vars(r)["id"], req.Date, req.AmountCents, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(rt))
}

func (h *RentalHandler) RemovePayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rt, err := h.rentals.RemovePayment(r.Context(), vars["id"], vars["paymentId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}

type setChecklistRequest struct {
	Checked bool `json:"checked"`
}

func (h *RentalHandler) SetChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req setChecklistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	vars := mux.Vars(r)
	rt, err := h.rentals.SetChecklistItem(r.Context(), vars["id"], service.ChecklistKind(vars["kind"]), vars["itemId"], req.Checked)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}

func (h *RentalHandler) CheckKit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rt, err := h.rentals.CheckKit(r.Context(), vars["id"], service.ChecklistKind(vars["kind"]), vars["kitId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}

func (h *RentalHandler) ConfirmPickup(w http.ResponseWriter, r *http.Request) {
	rt, err := h.rentals.ConfirmPickup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}

func (h *RentalHandler) ConfirmReturn(w http.ResponseWriter, r *http.Request) {
	rt, err := h.rentals.ConfirmReturn(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}

type reportDamageRequest struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

func (h *RentalHandler) ReportDamage(w http.ResponseWriter, r *http.Request) {
	var req reportDamageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rt, err := h.rentals.ReportDamage(r.Context(), mux.Vars(r)["id"], req.ItemID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rt))
}
