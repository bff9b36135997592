package http

import (
	"net/http"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/service"
)

type FinanceHandler struct {
	finance service.FinanceService
}

func NewFinanceHandler(finance service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

func (h *FinanceHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.finance.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type transactionsResponse struct {
	Transactions []domain.Transaction   `json:"transactions"`
	Summary      *domain.FinanceSummary `json:"summary"`
}

func (h *FinanceHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	window := service.TransactionWindow(r.URL.Query().Get("window"))
	if window == "" {
		window = service.WindowMonth
	}
	txs, summary, err := h.finance.Transactions(r.Context(), window)
	if err != nil {
		writeError(w, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactionsResponse{Transactions: txs, Summary: summary})
}

func (h *FinanceHandler) ItemReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.finance.ItemReports(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *FinanceHandler) ClientReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.finance.ClientReports(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *FinanceHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense domain.Expense
	if err := decodeJSON(r, &expense); err != nil {
		writeError(w, err)
		return
	}
	expense.ID = ""
	if err := h.finance.AddExpense(r.Context(), &expense); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *FinanceHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.finance.ListExpenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *FinanceHandler) CreateRevenue(w http.ResponseWriter, r *http.Request) {
	var revenue domain.Revenue
	if err := decodeJSON(r, &revenue); err != nil {
		writeError(w, err)
		return
	}
	revenue.ID = ""
	if err := h.finance.AddRevenue(r.Context(), &revenue); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, revenue)
}

func (h *FinanceHandler) ListRevenues(w http.ResponseWriter, r *http.Request) {
	revenues, err := h.finance.ListRevenues(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, revenues)
}
