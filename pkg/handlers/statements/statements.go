package statements

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chris/banking-ledger/pkg/handlers"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/mapping"
	"github.com/chris/banking-ledger/pkg/render"
)

// StatementsHandler holds the dependencies for statement-related handlers.
type StatementsHandler struct {
	Service ledger.Service
}

// NewStatementsHandler creates a new StatementsHandler.
func NewStatementsHandler(service ledger.Service) *StatementsHandler {
	return &StatementsHandler{Service: service}
}

// GetStatement extracts the statement data for one account and period and
// renders it in the requested format (json by default, csv on request).
func (h *StatementsHandler) GetStatement(w http.ResponseWriter, r *http.Request, accountId, yearParam, monthParam string) {
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid year: %v", err), http.StatusBadRequest)
		return
	}
	monthNum, err := strconv.Atoi(monthParam)
	if err != nil || monthNum < 1 || monthNum > 12 {
		http.Error(w, "Invalid month: must be 1-12", http.StatusBadRequest)
		return
	}

	statement, err := h.Service.ExtractStatementData(r.Context(), accountId, year, time.Month(monthNum), time.Now().UTC())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement-%s-%04d-%02d.csv", accountId, year, monthNum))
		if err := render.WriteCSV(w, statement); err != nil {
			http.Error(w, fmt.Sprintf("Failed to render statement: %v", err), http.StatusInternalServerError)
		}
	case "", "json":
		handlers.WriteJSON(w, http.StatusOK, mapping.ToApiStatement(statement))
	default:
		http.Error(w, "Unsupported format: use json or csv", http.StatusBadRequest)
	}
}
