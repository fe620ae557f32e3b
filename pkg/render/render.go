// Package render serializes monthly statements for delivery. Renderers only
// read the statement data; they never reach back into the ledger.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chris/banking-ledger/pkg/models"
)

// WriteJSON renders the statement as an indented JSON document.
func WriteJSON(w io.Writer, st *models.MonthlyStatement) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("failed to encode statement: %w", err)
	}
	return nil
}

// WriteCSV renders the statement as CSV: a summary header block followed by
// one row per transaction.
func WriteCSV(w io.Writer, st *models.MonthlyStatement) error {
	cw := csv.NewWriter(w)

	summary := [][]string{
		{"account_id", st.AccountID},
		{"period", fmt.Sprintf("%04d-%02d", st.Year, int(st.Month))},
		{"opening_balance", st.OpeningBalance.String()},
		{"closing_balance", st.ClosingBalance.String()},
		{"interest_earned", st.InterestEarned.String()},
		{"generated_on", st.GeneratedOn.Format("2006-01-02")},
		{},
		{"transaction_id", "type", "amount", "account_id", "destination_account_id", "timestamp"},
	}
	for _, row := range summary {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write statement summary: %w", err)
		}
	}

	for _, tx := range st.Transactions {
		row := []string{
			tx.ID,
			string(tx.Type),
			tx.Amount.String(),
			tx.AccountID,
			tx.DestinationAccountID,
			tx.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
