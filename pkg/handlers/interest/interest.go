package interest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/chris/banking-ledger/pkg/api"
	"github.com/chris/banking-ledger/pkg/handlers"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/mapping"
)

// InterestHandler holds the dependencies for interest-related handlers.
type InterestHandler struct {
	Service ledger.Service
}

// NewInterestHandler creates a new InterestHandler.
func NewInterestHandler(service ledger.Service) *InterestHandler {
	return &InterestHandler{Service: service}
}

// ApplyInterest handles the logic for accruing interest on one account.
func (h *InterestHandler) ApplyInterest(w http.ResponseWriter, r *http.Request, accountId string) {
	var req api.InterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := h.Service.ApplyInterest(r.Context(), accountId, req.AsOf.Time)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, api.InterestAmount{
		AccountId: accountId,
		Amount:    amount,
		AsOf:      req.AsOf,
	})
}

// PreviewInterest handles the read-only interest quote. Nothing is persisted.
func (h *InterestHandler) PreviewInterest(w http.ResponseWriter, r *http.Request, accountId string) {
	asOf, err := parseAsOf(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid as_of parameter: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := h.Service.PreviewInterest(r.Context(), accountId, asOf)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, api.InterestAmount{
		AccountId: accountId,
		Amount:    amount,
		AsOf:      openapi_types.Date{Time: asOf},
	})
}

// ApplyInterestBatch handles the logic for a batch accrual run. Each account
// succeeds or fails independently; the response carries one result per id.
func (h *InterestHandler) ApplyInterestBatch(w http.ResponseWriter, r *http.Request) {
	var req api.BatchInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	results := h.Service.ApplyInterestBatch(r.Context(), req.AccountIds, req.AsOf.Time)

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiBatchResults(results))
}

// parseAsOf reads the as_of query parameter, defaulting to today.
func parseAsOf(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}
