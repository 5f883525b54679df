package statement

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omanfin/bankfeed/internal/domain/transaction"
)

func newTestExtractor() *Extractor {
	return NewExtractor("OMR", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRowAmount(t *testing.T) {
	t.Run("debit is an expense", func(t *testing.T) {
		amount, txType, ok := rowAmount("115.000", "")
		require.True(t, ok)
		assert.Equal(t, transaction.TypeExpense, txType)
		assert.Equal(t, "115", amount.String())
	})

	t.Run("credit is an income", func(t *testing.T) {
		amount, txType, ok := rowAmount("", "65.000")
		require.True(t, ok)
		assert.Equal(t, transaction.TypeIncome, txType)
		assert.Equal(t, "65", amount.String())
	})

	t.Run("neither column drops the row", func(t *testing.T) {
		_, _, ok := rowAmount("", "")
		assert.False(t, ok)
		_, _, ok = rowAmount("B/F", "")
		assert.False(t, ok)
	})
}

func TestAccountInfo(t *testing.T) {
	e := newTestExtractor()

	t.Run("reads header columns", func(t *testing.T) {
		tbl := Table{
			Header: []string{"Account Number", "Currency", "Branch"},
			Rows:   [][]string{{"0313041310270027", "OMR", "RUWI"}},
		}
		info := e.accountInfo(tbl)
		assert.Equal(t, "0313041310270027", info.AccountNumber)
		assert.Equal(t, "OMR", info.Currency)
		assert.Equal(t, "RUWI", info.Branch)
	})

	t.Run("invalid currency falls back to default", func(t *testing.T) {
		tbl := Table{
			Header: []string{"Account Number", "Currency"},
			Rows:   [][]string{{"0313041310270027", "???"}},
		}
		assert.Equal(t, "OMR", e.accountInfo(tbl).Currency)
	})

	t.Run("empty table keeps default currency", func(t *testing.T) {
		assert.Equal(t, "OMR", e.accountInfo(Table{}).Currency)
	})
}

func TestRecords(t *testing.T) {
	e := newTestExtractor()

	st := &Statement{
		Account: AccountInfo{AccountNumber: "0313041310270027", Currency: "OMR", Branch: "RUWI"},
		Transactions: Table{
			Header: []string{"Post Date", "Value Date", "Narration", "Debit", "Credit", "Balance"},
			Rows: [][]string{
				{"05/02/25", "05/02/25", "POS 685694-SHARARAH MART AL M POS251610D175XM3X", "5.500", "", "994.500"},
				{"06/02/25", "06/02/25", "Transfer ABDUL HAMID FT25123456789012", "", "65.000", "1,059.500"},
				{"", "", "Balance brought forward", "", "", "1,000.000"},
			},
			Pages: []int{1, 1, 2},
		},
	}

	recs := e.records(st)
	require.Len(t, recs, 2, "the carried-forward row must be dropped")

	pos := recs[0]
	assert.Equal(t, transaction.TypeExpense, pos.Type)
	assert.Equal(t, "5.5", pos.Amount.String())
	assert.Equal(t, "SHARARAH MART AL M", pos.CounterpartyName)
	assert.Equal(t, "POS 685694", pos.Details)
	assert.Equal(t, "POS251610D175XM3X", pos.TransactionID)
	assert.Equal(t, transaction.Self, pos.Sender)
	assert.Equal(t, "SHARARAH MART AL M", pos.Receiver)
	assert.Equal(t, "0313041310270027", pos.AccountNumber)
	assert.Equal(t, transaction.SourcePDF, pos.Source)
	assert.Equal(t, 1, pos.Page)
	require.NotNil(t, pos.DateTime)
	assert.Equal(t, time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), *pos.DateTime)
	require.NotNil(t, pos.Balance)
	assert.Equal(t, "994.5", pos.Balance.String())

	tr := recs[1]
	assert.Equal(t, transaction.TypeIncome, tr.Type)
	assert.Equal(t, "ABDUL HAMID", tr.CounterpartyName)
	assert.Equal(t, "ABDUL HAMID", tr.Sender)
	assert.Equal(t, transaction.Self, tr.Receiver)
	assert.Equal(t, "FT25123456789012", tr.TransactionID)
	require.NotNil(t, tr.Balance)
	assert.Equal(t, "1059.5", tr.Balance.String())
}

func TestTemplateFor(t *testing.T) {
	assert.Equal(t, firstPage, templateFor(1))
	assert.Equal(t, subsequentPage, templateFor(2))
	assert.Equal(t, subsequentPage, templateFor(7))
}
