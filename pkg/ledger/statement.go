package ledger

import (
	"context"
	"time"

	"github.com/chris/banking-ledger/pkg/models"
	"github.com/shopspring/decimal"
)

// ExtractStatementData builds the read model for a monthly statement.
//
// The closing balance is the account's current balance. The opening balance
// is reconstructed by undoing the month's transactions in reverse
// chronological order. This reconstruction is exact only when no
// transactions outside the filtered window remain unaccounted; when activity
// spans the period boundary the opening balance is an approximation.
func (e *Engine) ExtractStatementData(ctx context.Context, accountID string, year int, month time.Month, asOf time.Time) (*models.MonthlyStatement, error) {
	account, err := e.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	all, err := e.ledger.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var filtered []models.Transaction
	for _, tx := range all {
		if tx.Timestamp.Year() == year && tx.Timestamp.Month() == month {
			filtered = append(filtered, tx)
		}
	}

	closing := account.Balance
	opening := closing
	interestEarned := decimal.Zero

	for i := len(filtered) - 1; i >= 0; i-- {
		tx := filtered[i]
		switch tx.Type {
		case models.DEPOSIT:
			opening = opening.Sub(tx.Amount)
		case models.WITHDRAWAL:
			opening = opening.Add(tx.Amount)
		case models.INTEREST:
			opening = opening.Sub(tx.Amount)
			interestEarned = interestEarned.Add(tx.Amount)
		case models.TRANSFER:
			if tx.AccountID == accountID {
				// Outgoing: money left this account.
				opening = opening.Add(tx.Amount)
			} else if tx.DestinationAccountID == accountID {
				// Incoming: money arrived in this account.
				opening = opening.Sub(tx.Amount)
			}
		}
	}

	return &models.MonthlyStatement{
		AccountID:      accountID,
		Year:           year,
		Month:          month,
		OpeningBalance: opening,
		ClosingBalance: closing,
		InterestEarned: interestEarned,
		Transactions:   filtered,
		GeneratedOn:    asOf,
	}, nil
}
