// Package export serializes extracted transaction records for downstream
// use: CSV for spreadsheets and pipelines, XLSX for hand review.
package export

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/omanfin/bankfeed/internal/domain/transaction"
)

// csvRow is the flat CSV projection of a record. Dates render ISO-8601,
// amounts keep their rounded decimal text.
type csvRow struct {
	AccountNumber string `csv:"account_number"`
	Type          string `csv:"transaction_type"`
	Amount        string `csv:"amount"`
	Currency      string `csv:"currency"`
	Date          string `csv:"transaction_date"`
	PostDate      string `csv:"post_date"`
	Counterparty  string `csv:"counterparty_name"`
	Sender        string `csv:"sender"`
	Receiver      string `csv:"receiver"`
	Details       string `csv:"details"`
	Description   string `csv:"description"`
	TransactionID string `csv:"transaction_id"`
	Branch        string `csv:"branch"`
	Balance       string `csv:"balance"`
	Source        string `csv:"source"`
	Page          int    `csv:"page"`
}

// WriteCSV writes records to w as CSV with a header row.
func WriteCSV(w io.Writer, recs []transaction.Record) error {
	rows := make([]csvRow, 0, len(recs))
	for i := range recs {
		rows = append(rows, toCSVRow(&recs[i]))
	}
	return gocsv.Marshal(&rows, w)
}

func toCSVRow(r *transaction.Record) csvRow {
	row := csvRow{
		AccountNumber: r.AccountNumber,
		Type:          string(r.Type),
		Amount:        r.Amount.String(),
		Currency:      r.Currency,
		Date:          formatDate(r.DateTime),
		PostDate:      formatDate(r.PostDate),
		Counterparty:  r.CounterpartyName,
		Sender:        r.Sender,
		Receiver:      r.Receiver,
		Details:       r.Details,
		Description:   r.Description,
		TransactionID: r.TransactionID,
		Branch:        r.Branch,
		Source:        string(r.Source),
		Page:          r.Page,
	}
	if r.Balance != nil {
		row.Balance = r.Balance.String()
	}
	return row
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
