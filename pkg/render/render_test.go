package render_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/chris/banking-ledger/pkg/models"
	"github.com/chris/banking-ledger/pkg/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testStatement() *models.MonthlyStatement {
	return &models.MonthlyStatement{
		AccountID:      "acc-1",
		Year:           2026,
		Month:          time.March,
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.RequireFromString("855"),
		InterestEarned: decimal.RequireFromString("5"),
		Transactions: []models.Transaction{
			{ID: "tx-1", Type: models.DEPOSIT, Amount: decimal.RequireFromString("1000"), AccountID: "acc-1", Timestamp: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)},
			{ID: "tx-2", Type: models.TRANSFER, Amount: decimal.RequireFromString("50"), AccountID: "acc-1", DestinationAccountID: "acc-2", Timestamp: time.Date(2026, time.March, 25, 10, 0, 0, 0, time.UTC)},
		},
		GeneratedOn: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := render.WriteCSV(&buf, testStatement())
	assert.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(buf.Bytes()))
	r.FieldsPerRecord = -1 // summary rows and transaction rows differ in width
	rows, err := r.ReadAll()
	assert.NoError(t, err)

	// Summary block, blank separator, column header, then one row per transaction.
	assert.Equal(t, []string{"account_id", "acc-1"}, rows[0])
	assert.Equal(t, []string{"period", "2026-03"}, rows[1])
	assert.Equal(t, []string{"closing_balance", "855"}, rows[3])

	last := rows[len(rows)-1]
	assert.Equal(t, "tx-2", last[0])
	assert.Equal(t, "TRANSFER", last[1])
	assert.Equal(t, "acc-2", last[4])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	err := render.WriteJSON(&buf, testStatement())
	assert.NoError(t, err)

	var got models.MonthlyStatement
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "acc-1", got.AccountID)
	assert.Len(t, got.Transactions, 2)
}
