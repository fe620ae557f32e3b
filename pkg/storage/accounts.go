package storage

import (
	"context"

	"github.com/chris/banking-ledger/pkg/models"
)

// AccountStore defines the interface for account records and their mutation.
// Updates have full-replace semantics: callers read-modify-write the whole
// record, field-level merging is not supported.
type AccountStore interface {
	// CreateAccount stores a new account. Returns ErrDuplicateAccount if the
	// ID is already taken.
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// UpdateAccount replaces an existing account record.
	UpdateAccount(ctx context.Context, account *models.Account) error

	// UpdateAccountPair atomically replaces two account records. If either
	// account is missing or the write fails, neither record is updated.
	UpdateAccountPair(ctx context.Context, a, b *models.Account) error

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
