// Package statement extracts transactions from the bank's PDF account
// statements. The layout is fixed, so table geometry comes from compiled-in
// templates rather than from the document: the PDF contributes only its
// positioned text, which is clipped against the template's cell grid.
package statement

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"

	"github.com/omanfin/bankfeed/internal/domain/transaction"
	"github.com/omanfin/bankfeed/pkg/dates"
	"github.com/omanfin/bankfeed/pkg/money"
)

// ErrNoTables signals a document where no page matched the templates at
// all; the file opened fine but is not one of this bank's statements.
var ErrNoTables = errors.New("no statement tables found")

// AccountInfo is the statement's header block.
type AccountInfo struct {
	AccountNumber string `json:"account_number"`
	Currency      string `json:"currency"`
	Branch        string `json:"branch,omitempty"`
}

// Statement is one fully parsed PDF statement: the account header, the
// per-row transaction records, and the assembled raw tables for exporters
// that want the statement as the bank printed it.
type Statement struct {
	Account      AccountInfo
	Records      []transaction.Record
	AccountTable Table
	Transactions Table
}

// Extractor parses statement PDFs. Safe for concurrent use.
type Extractor struct {
	defaultCurrency string
	logger          *slog.Logger
}

// NewExtractor creates a statement extractor. defaultCurrency applies when
// the header table names no currency.
func NewExtractor(defaultCurrency string, logger *slog.Logger) *Extractor {
	return &Extractor{defaultCurrency: defaultCurrency, logger: logger}
}

// ParsePDF reads a statement file and returns its account info and records.
// Pages that do not match the template yield no rows and are skipped with a
// warning; only an unreadable file is an error.
func (e *Extractor) ParsePDF(path string) (*Statement, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open statement %s: %w", path, err)
	}
	defer f.Close()

	st := &Statement{}
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		items := pageTextItems(page)
		if len(items) == 0 {
			e.logger.Warn("statement page has no text", "path", path, "page", n)
			continue
		}
		tmpl := templateFor(n)

		if n == 1 {
			st.AccountTable = assembleTable(cellGrid(items, tmpl.TableOne), n)
		}
		t := assembleTable(cellGrid(items, tmpl.TableTwo), n)
		if len(t.Header) == 0 {
			e.logger.Warn("statement page matched no transaction rows", "path", path, "page", n)
			continue
		}
		st.Transactions.appendContinuation(t)
	}

	if len(st.Transactions.Header) == 0 && len(st.AccountTable.Header) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTables)
	}

	st.Account = e.accountInfo(st.AccountTable)
	st.Records = e.records(st)

	e.logger.Info("statement parsed",
		"path", path,
		"pages", r.NumPage(),
		"transactions", len(st.Records))
	return st, nil
}

// accountInfo reads the header table's single data row by column name.
func (e *Extractor) accountInfo(t Table) AccountInfo {
	info := AccountInfo{Currency: e.defaultCurrency}
	if len(t.Rows) == 0 {
		return info
	}
	row := t.Rows[0]
	if i := t.columnIndex("account"); i >= 0 && i < len(row) {
		info.AccountNumber = strings.TrimSpace(row[i])
	}
	if i := t.columnIndex("currency"); i >= 0 && i < len(row) {
		if code := strings.ToUpper(strings.TrimSpace(row[i])); money.IsCurrency(code) {
			info.Currency = code
		}
	}
	if i := t.columnIndex("branch"); i >= 0 && i < len(row) {
		info.Branch = strings.TrimSpace(row[i])
	}
	return info
}

// records converts the transaction table row by row. A row with a numeric
// debit is an expense, a numeric credit an income; a row with neither is
// noise (carried-forward markers, totals) and is dropped.
func (e *Extractor) records(st *Statement) []transaction.Record {
	t := st.Transactions
	postIdx := t.columnIndex("post")
	valueIdx := t.columnIndex("value")
	narrIdx := t.columnIndex("narration")
	debitIdx := t.columnIndex("debit")
	creditIdx := t.columnIndex("credit")
	balIdx := t.columnIndex("balance")

	var recs []transaction.Record
	for i, row := range t.Rows {
		amount, txType, ok := rowAmount(cellAt(row, debitIdx), cellAt(row, creditIdx))
		if !ok {
			continue
		}

		narr := ParseNarration(cellAt(row, narrIdx))
		sender, receiver := transaction.Direction(txType, narr.CounterpartyName)

		rec := transaction.Record{
			AccountNumber:    st.Account.AccountNumber,
			Type:             txType,
			Amount:           money.Round(amount, st.Account.Currency),
			Currency:         st.Account.Currency,
			DateTime:         dates.Parse(cellAt(row, valueIdx)),
			PostDate:         dates.Parse(cellAt(row, postIdx)),
			CounterpartyName: narr.CounterpartyName,
			Sender:           sender,
			Receiver:         receiver,
			Details:          narr.Details,
			TransactionID:    narr.TransactionID,
			Branch:           st.Account.Branch,
			Source:           transaction.SourcePDF,
			Page:             t.Pages[i],
		}
		if b, err := money.ParseAmount(cellAt(row, balIdx)); err == nil {
			rec.Balance = &b
		}
		recs = append(recs, rec)
	}
	return recs
}

// rowAmount decides a row's amount and direction from its debit and credit
// cells. Debit wins when both carry a value, which this bank never emits.
func rowAmount(debit, credit string) (decimal.Decimal, transaction.Type, bool) {
	if d, err := money.ParseAmount(debit); err == nil && !d.IsZero() {
		return d, transaction.TypeExpense, true
	}
	if c, err := money.ParseAmount(credit); err == nil && !c.IsZero() {
		return c, transaction.TypeIncome, true
	}
	return decimal.Decimal{}, transaction.TypeUnknown, false
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
