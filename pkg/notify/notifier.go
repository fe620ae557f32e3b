// Package notify delivers completed transaction records to external
// channels. Delivery is best-effort: a notification failure must never roll
// back the ledger operation that produced the transaction.
package notify

import (
	"context"
	"log/slog"

	"github.com/chris/banking-ledger/pkg/models"
)

// Notifier defines the interface for a component that receives a completed
// transaction after a successful mutating operation.
type Notifier interface {
	// NotifyTransaction delivers a read-only transaction record.
	NotifyTransaction(ctx context.Context, tx *models.Transaction) error
}

// LogNotifier writes transaction notifications to the structured log.
// Useful for local runs where no queue is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

// Make sure we conform to the interface
var _ Notifier = (*LogNotifier)(nil)

// NotifyTransaction logs the completed transaction.
func (n *LogNotifier) NotifyTransaction(ctx context.Context, tx *models.Transaction) error {
	n.Logger.Info("transaction completed",
		slog.String("transaction_id", tx.ID),
		slog.String("type", string(tx.Type)),
		slog.String("account_id", tx.AccountID),
		slog.String("amount", tx.Amount.String()),
	)
	return nil
}
