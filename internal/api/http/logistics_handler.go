package http

import (
	"fmt"
	"net/http"

	"festaloc-backend/internal/service"
	"festaloc-backend/internal/utils"
)

type LogisticsHandler struct {
	logistics service.LogisticsService
}

func NewLogisticsHandler(logistics service.LogisticsService) *LogisticsHandler {
	return &LogisticsHandler{logistics: logistics}
}

// Tasks answers ?date=yyyy-mm-dd, defaulting to today.
func (h *LogisticsHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.FormatDate(utils.Today())
	}
	tasks, err := h.logistics.TasksForDate(r.Context(), date)
	if err != nil {
		writeError(w, fmt.Errorf("logistics tasks for %s: %w", date, err))
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}
