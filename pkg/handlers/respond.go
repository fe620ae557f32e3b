// Package handlers holds the response helpers shared by the per-resource
// handler packages, including the mapping of ledger errors to transport
// status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/banking-ledger/pkg/interest"
	"github.com/chris/banking-ledger/pkg/ledger"
	"github.com/chris/banking-ledger/pkg/limits"
	"github.com/chris/banking-ledger/pkg/storage"
)

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// WriteError maps a ledger error to its transport status code and writes it.
func WriteError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), StatusForError(err))
}

// StatusForError maps the engine's error taxonomy onto HTTP status codes.
// Unrecognized errors are treated as internal.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidInitialDeposit),
		errors.Is(err, ledger.ErrUnknownAccountType),
		errors.Is(err, ledger.ErrSameAccount),
		errors.Is(err, ledger.ErrBalanceNotZero),
		errors.Is(err, interest.ErrInvalidDate),
		errors.Is(err, interest.ErrUnknownStrategy):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrAccountNotFound),
		errors.Is(err, storage.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateAccount),
		errors.Is(err, ledger.ErrAccountClosed):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, limits.ErrLimitExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
