package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"festaloc-backend/internal/service"
)

type KitHandler struct {
	kits service.KitService
}

func NewKitHandler(kits service.KitService) *KitHandler {
	return &KitHandler{kits: kits}
}

type kitRequest struct {
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	ItemIDs    []string `json:"item_ids"`
}

func (h *KitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req kitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kit, err := h.kits.AddKit(r.Context(), req.Name, req.PriceCents, req.ItemIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, kit)
}

func (h *KitHandler) List(w http.ResponseWriter, r *http.Request) {
	kits, err := h.kits.ListKits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kits)
}

func (h *KitHandler) Get(w http.ResponseWriter, r *http.Request) {
	kit, err := h.kits.GetKit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kit)
}

func (h *KitHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req kitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kit, err := h.kits.UpdateKit(r.Context(), mux.Vars(r)["id"], req.Name, req.PriceCents, req.ItemIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kit)
}

func (h *KitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.kits.DeleteKit(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
