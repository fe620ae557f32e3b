package transactions

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/banking-ledger/pkg/api"
	"github.com/chris/banking-ledger/pkg/handlers"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/mapping"
)

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Service ledger.Service
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(service ledger.Service) *TransactionsHandler {
	return &TransactionsHandler{Service: service}
}

// Deposit handles the logic for crediting an account.
func (h *TransactionsHandler) Deposit(w http.ResponseWriter, r *http.Request, accountId string) {
	var req api.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Service.Deposit(r.Context(), accountId, req.Amount)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiTransaction(tx))
}

// Withdraw handles the logic for debiting an account.
func (h *TransactionsHandler) Withdraw(w http.ResponseWriter, r *http.Request, accountId string) {
	var req api.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Service.Withdraw(r.Context(), accountId, req.Amount)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiTransaction(tx))
}

// Transfer handles the logic for moving money between two accounts.
func (h *TransactionsHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req api.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Service.Transfer(r.Context(), req.SourceAccountId, req.DestinationAccountId, req.Amount)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiTransaction(tx))
}

// GetTransactionById handles the logic for retrieving a transaction.
func (h *TransactionsHandler) GetTransactionById(w http.ResponseWriter, r *http.Request, transactionId string) {
	tx, err := h.Service.GetTransaction(r.Context(), transactionId)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiTransaction(tx))
}

// ListTransactionsByAccount handles the logic for retrieving an account's history.
func (h *TransactionsHandler) ListTransactionsByAccount(w http.ResponseWriter, r *http.Request, accountId string) {
	domainTxs, err := h.Service.ListTransactions(r.Context(), accountId)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&domainTxs[i])
	}

	handlers.WriteJSON(w, http.StatusOK, apiTxs)
}
