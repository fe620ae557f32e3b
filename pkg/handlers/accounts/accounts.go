package accounts

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/banking-ledger/pkg/api"
	"github.com/chris/banking-ledger/pkg/handlers"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/mapping"
	"github.com/chris/banking-ledger/pkg/models"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Service ledger.Service
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(service ledger.Service) *AccountsHandler {
	return &AccountsHandler{Service: service}
}

// CreateAccount handles the logic for opening a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	account, err := h.Service.CreateAccount(r.Context(), models.AccountType(newAccount.AccountType), newAccount.Owner, newAccount.InitialDeposit)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiAccount(account))
}

// GetAccountById handles the logic for retrieving an account.
func (h *AccountsHandler) GetAccountById(w http.ResponseWriter, r *http.Request, accountId string) {
	account, err := h.Service.GetAccount(r.Context(), accountId)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiAccount(account))
}

// CloseAccount handles the logic for closing an account. Accounts are never
// deleted; a zero-balance account transitions to CLOSED.
func (h *AccountsHandler) CloseAccount(w http.ResponseWriter, r *http.Request, accountId string) {
	account, err := h.Service.CloseAccount(r.Context(), accountId)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiAccount(account))
}

// ConfigureLimits handles the logic for setting daily/monthly limits.
func (h *AccountsHandler) ConfigureLimits(w http.ResponseWriter, r *http.Request, accountId string) {
	var req api.LimitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Service.ConfigureLimits(r.Context(), accountId, req.DailyLimit, req.MonthlyLimit); err != nil {
		handlers.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLimits handles the logic for retrieving an account's limit constraint.
func (h *AccountsHandler) GetLimits(w http.ResponseWriter, r *http.Request, accountId string) {
	constraint, err := h.Service.GetLimits(r.Context(), accountId)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiLimits(&constraint))
}

// SetInterestStrategy handles the logic for assigning an interest strategy.
func (h *AccountsHandler) SetInterestStrategy(w http.ResponseWriter, r *http.Request, accountId string) {
	var req api.StrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Service.SetInterestStrategy(r.Context(), accountId, req.Strategy); err != nil {
		handlers.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
