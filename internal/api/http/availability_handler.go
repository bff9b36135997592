package http

import (
	"fmt"
	"net/http"
	"sort"

	"festaloc-backend/internal/service"
)

type AvailabilityHandler struct {
	availability service.AvailabilityService
}

func NewAvailabilityHandler(availability service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

type availabilityResponse struct {
	UnavailableItemIDs []string `json:"unavailable_item_ids"`
}

// Unavailable answers ?date=yyyy-mm-dd for a single day or ?from=&to= for a
// range. The booking form greys out these items.
func (h *AvailabilityHandler) Unavailable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		ids map[string]bool
		err error
	)
	switch {
	case q.Get("date") != "":
		ids, err = h.availability.UnavailableItemIDs(r.Context(), q.Get("date"))
	case q.Get("from") != "" && q.Get("to") != "":
		ids, err = h.availability.UnavailableItemIDsRange(r.Context(), q.Get("from"), q.Get("to"))
	default:
		err = fmt.Errorf("%w: date or from/to query parameters are required", service.ErrInvalidInput)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	out := availabilityResponse{UnavailableItemIDs: make([]string, 0, len(ids))}
	for id := range ids {
		out.UnavailableItemIDs = append(out.UnavailableItemIDs, id)
	}
	sort.Strings(out.UnavailableItemIDs)
	writeJSON(w, http.StatusOK, out)
}
