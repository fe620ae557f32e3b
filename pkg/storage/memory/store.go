// Package memory provides a volatile, in-process implementation of the
// storage interfaces. It is the reference backing store: all data is lost on
// restart, which is acceptable for the ledger core's contracts.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/google/uuid"
)

// Store implements the Storage interface with in-memory maps.
// A single mutex guards the maps; per-account serialization of
// read-modify-write cycles is the ledger engine's responsibility.
type Store struct {
	mu           sync.Mutex
	accounts     map[string]*models.Account
	transactions map[string]*models.Transaction
	log          []string            // transaction IDs in insertion order
	byAccount    map[string][]string // account ID -> transaction IDs, insertion order
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		accounts:     make(map[string]*models.Account),
		transactions: make(map[string]*models.Transaction),
		byAccount:    make(map[string][]string),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// CreateAccount stores a new account record.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return storage.ErrDuplicateAccount
	}
	cp := *account
	s.accounts[account.ID] = &cp
	return nil
}

// GetAccount returns a snapshot of the account so callers cannot mutate
// internal state directly.
func (s *Store) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[accountID]
	if !ok {
		return nil, storage.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

// UpdateAccount replaces an existing account record wholesale.
func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; !ok {
		return storage.ErrAccountNotFound
	}
	cp := *account
	s.accounts[account.ID] = &cp
	return nil
}

// UpdateAccountPair replaces two account records in one critical section.
// Both records are checked before either is written, so a missing account
// leaves the store untouched.
func (s *Store) UpdateAccountPair(ctx context.Context, a, b *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[a.ID]; !ok {
		return storage.ErrAccountNotFound
	}
	if _, ok := s.accounts[b.ID]; !ok {
		return storage.ErrAccountNotFound
	}
	cpA, cpB := *a, *b
	s.accounts[a.ID] = &cpA
	s.accounts[b.ID] = &cpB
	return nil
}

// ListAccounts returns snapshots of all accounts.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, *a)
	}
	return out, nil
}

// AppendTransaction stores a transaction record and indexes it by account.
// ID and timestamp are assigned here when the caller left them unset.
func (s *Store) AppendTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *tx
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now().UTC()
	}

	s.transactions[cp.ID] = &cp
	s.log = append(s.log, cp.ID)
	s.byAccount[cp.AccountID] = append(s.byAccount[cp.AccountID], cp.ID)
	if cp.DestinationAccountID != "" && cp.DestinationAccountID != cp.AccountID {
		s.byAccount[cp.DestinationAccountID] = append(s.byAccount[cp.DestinationAccountID], cp.ID)
	}

	out := cp
	return &out, nil
}

// GetTransaction retrieves a transaction snapshot by its ID.
func (s *Store) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[transactionID]
	if !ok {
		return nil, storage.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

// ListTransactionsByAccount returns all transactions touching an account in
// insertion order, including transfers where the account is the destination.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byAccount[accountID]
	out := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.transactions[id])
	}
	return out, nil
}
