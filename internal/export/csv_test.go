package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omanfin/bankfeed/internal/domain/transaction"
)

func sampleRecords() []transaction.Record {
	date := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)
	balance := decimal.RequireFromString("994.500")
	return []transaction.Record{
		{
			AccountNumber:    "0313041310270027",
			Type:             transaction.TypeExpense,
			Amount:           decimal.RequireFromString("5.500"),
			Currency:         "OMR",
			DateTime:         &date,
			CounterpartyName: "SHARARAH MART AL M",
			Sender:           transaction.Self,
			Receiver:         "SHARARAH MART AL M",
			Details:          "POS 685694",
			TransactionID:    "POS251610D175XM3X",
			Balance:          &balance,
			Source:           transaction.SourcePDF,
			Page:             1,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "account_number")
	assert.Contains(t, lines[0], "transaction_type")
	assert.Contains(t, lines[1], "0313041310270027")
	assert.Contains(t, lines[1], "expense")
	assert.Contains(t, lines[1], "5.5")
	assert.Contains(t, lines[1], "2025-02-05")
	assert.Contains(t, lines[1], "994.5")
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	// Header only.
	assert.Contains(t, buf.String(), "account_number")
}
