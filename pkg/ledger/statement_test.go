package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/storage"
	"github.com/chris/banking-ledger/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
)

func appendTx(t *testing.T, store *memory.Store, tx models.Transaction) {
	t.Helper()
	_, err := store.AppendTransaction(context.Background(), &tx)
	assert.NoError(t, err)
}

func TestExtractStatementData(t *testing.T) {
	ctx := context.Background()
	march := func(day int) time.Time {
		return time.Date(2026, time.March, day, 10, 0, 0, 0, time.UTC)
	}

	t.Run("Reconstructs The Opening Balance", func(t *testing.T) {
		engine, store := newTestEngine()
		account, err := engine.CreateAccount(ctx, models.CHECKING, "alice", dec("0"))
		assert.NoError(t, err)
		other, err := engine.CreateAccount(ctx, models.CHECKING, "bob", dec("0"))
		assert.NoError(t, err)

		// March activity: +1000 deposit, -200 withdrawal, +5 interest,
		// +100 incoming transfer, -50 outgoing transfer. Closing = 855.
		appendTx(t, store, models.Transaction{Type: models.DEPOSIT, Amount: dec("1000"), AccountID: account.ID, Timestamp: march(1)})
		appendTx(t, store, models.Transaction{Type: models.WITHDRAWAL, Amount: dec("200"), AccountID: account.ID, Timestamp: march(10)})
		appendTx(t, store, models.Transaction{Type: models.INTEREST, Amount: dec("5"), AccountID: account.ID, Timestamp: march(15)})
		appendTx(t, store, models.Transaction{Type: models.TRANSFER, Amount: dec("100"), AccountID: other.ID, DestinationAccountID: account.ID, Timestamp: march(20)})
		appendTx(t, store, models.Transaction{Type: models.TRANSFER, Amount: dec("50"), AccountID: account.ID, DestinationAccountID: other.ID, Timestamp: march(25)})

		account.Balance = dec("855")
		assert.NoError(t, store.UpdateAccount(ctx, account))

		asOf := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
		statement, err := engine.ExtractStatementData(ctx, account.ID, 2026, time.March, asOf)

		assert.NoError(t, err)
		assert.Equal(t, account.ID, statement.AccountID)
		assert.Equal(t, 2026, statement.Year)
		assert.Equal(t, time.March, statement.Month)
		assert.True(t, statement.ClosingBalance.Equal(dec("855")))
		assert.True(t, statement.OpeningBalance.IsZero(), "got %s", statement.OpeningBalance)
		assert.True(t, statement.InterestEarned.Equal(dec("5")))
		assert.Len(t, statement.Transactions, 5)
		assert.Equal(t, asOf, statement.GeneratedOn)
	})

	t.Run("Filters To The Requested Month", func(t *testing.T) {
		engine, store := newTestEngine()
		account, err := engine.CreateAccount(ctx, models.CHECKING, "alice", dec("0"))
		assert.NoError(t, err)

		appendTx(t, store, models.Transaction{Type: models.DEPOSIT, Amount: dec("100"), AccountID: account.ID, Timestamp: time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)})
		appendTx(t, store, models.Transaction{Type: models.DEPOSIT, Amount: dec("200"), AccountID: account.ID, Timestamp: march(5)})
		appendTx(t, store, models.Transaction{Type: models.DEPOSIT, Amount: dec("400"), AccountID: account.ID, Timestamp: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)})

		account.Balance = dec("700")
		assert.NoError(t, store.UpdateAccount(ctx, account))

		statement, err := engine.ExtractStatementData(ctx, account.ID, 2026, time.March, time.Now().UTC())

		assert.NoError(t, err)
		assert.Len(t, statement.Transactions, 1)
		assert.True(t, statement.Transactions[0].Amount.Equal(dec("200")))
		// Only the in-window deposit is undone; out-of-window activity is
		// folded into the opening figure, which makes it an approximation.
		assert.True(t, statement.OpeningBalance.Equal(dec("500")), "got %s", statement.OpeningBalance)
	})

	t.Run("Empty Month", func(t *testing.T) {
		engine, _ := newTestEngine()
		account, err := engine.CreateAccount(ctx, models.CHECKING, "alice", dec("300"))
		assert.NoError(t, err)

		statement, err := engine.ExtractStatementData(ctx, account.ID, 2019, time.June, time.Now().UTC())

		assert.NoError(t, err)
		assert.Empty(t, statement.Transactions)
		assert.True(t, statement.OpeningBalance.Equal(dec("300")))
		assert.True(t, statement.ClosingBalance.Equal(dec("300")))
		assert.True(t, statement.InterestEarned.IsZero())
	})

	t.Run("Account Not Found", func(t *testing.T) {
		engine, _ := newTestEngine()

		_, err := engine.ExtractStatementData(ctx, "missing", 2026, time.March, time.Now().UTC())

		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	})
}
