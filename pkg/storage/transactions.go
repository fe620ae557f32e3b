package storage

import (
	"context"

	"github.com/chris/banking-ledger/pkg/models"
)

// TransactionReader defines the interface for reading the transaction log.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)

	// ListTransactionsByAccount retrieves all transactions touching an
	// account, in insertion order. Transfers are included whether the
	// account is the source or the destination.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error)
}

// TransactionAppender defines the write side of the transaction log.
type TransactionAppender interface {
	// AppendTransaction stores a new transaction, assigning ID and timestamp
	// if unset, and returns the stored record.
	AppendTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
}

// TransactionLedger combines the reader and appender interfaces.
// There are deliberately no update or delete operations: the log is
// append-only and corrections are new offsetting transactions.
type TransactionLedger interface {
	TransactionReader
	TransactionAppender
}
