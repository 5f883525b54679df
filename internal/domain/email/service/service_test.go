package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omanfin/bankfeed/internal/domain/transaction"
)

func newTestService() *Service {
	return New("OMR", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParse_DebitEmail(t *testing.T) {
	s := newTestService()

	rec, err := s.Parse(RawMessage{
		ID: "msg-1",
		Body: "<html><body>" +
			"<p>Dear Customer,</p>" +
			"<p>Your account xxxx0027 has been debited by OMR 115 with value date 06/01/25</p>" +
			"<p>Thank you for banking with us</p>" +
			"<p>This is an automated message</p>" +
			"</body></html>",
	})
	require.NoError(t, err)

	assert.Equal(t, "xxxx0027", rec.AccountNumber)
	assert.Equal(t, transaction.TypeExpense, rec.Type)
	assert.True(t, rec.Amount.Equal(decimal.NewFromInt(115)))
	assert.Equal(t, "OMR", rec.Currency)
	require.NotNil(t, rec.DateTime)
	assert.Equal(t, time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), *rec.DateTime)
	assert.Equal(t, transaction.Self, rec.Sender, "money left the account")
	assert.Equal(t, transaction.SourceEmail, rec.Source)
}

func TestParse_CreditEmail(t *testing.T) {
	s := newTestService()

	rec, err := s.Parse(RawMessage{
		ID: "msg-2",
		Body: "Your account xxxx0027 has received OMR 65.000 from ABDUL HAMID with value date 05/02/25\n" +
			"Txn Id BMCT009962940757\n" +
			"Thank you\n" +
			"Bank Team",
	})
	require.NoError(t, err)

	assert.Equal(t, transaction.TypeIncome, rec.Type)
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("65.000")))
	assert.Equal(t, "ABDUL HAMID", rec.CounterpartyName)
	assert.Equal(t, "ABDUL HAMID", rec.Sender)
	assert.Equal(t, transaction.Self, rec.Receiver)
	assert.Equal(t, "BMCT009962940757", rec.TransactionID)
	require.NotNil(t, rec.DateTime)
	assert.Equal(t, time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), *rec.DateTime)
}

func TestParse_HeaderDateFallback(t *testing.T) {
	s := newTestService()

	rec, err := s.Parse(RawMessage{
		ID:   "msg-3",
		Date: "06/01/25 14:30",
		Body: "Your account xxxx0027 has been debited by OMR 10.500",
	})
	require.NoError(t, err)
	require.NotNil(t, rec.DateTime)
	assert.Equal(t, time.Date(2025, time.January, 6, 14, 30, 0, 0, time.UTC), *rec.DateTime)
}

func TestParse_RoundsToMinorUnits(t *testing.T) {
	s := newTestService()

	rec, err := s.Parse(RawMessage{
		ID:   "msg-4",
		Body: "Your account xxxx0027 has been debited by OMR 12.3456",
	})
	require.NoError(t, err)
	assert.Equal(t, "12.346", rec.Amount.String(), "OMR rounds to three minor units")
}

func TestParse_UnknownTypeStillProducesRecord(t *testing.T) {
	s := newTestService()

	// No classification keyword anywhere; account and amount are enough.
	rec, err := s.Parse(RawMessage{
		ID:   "msg-8",
		Body: "Your account xxxx0027 balance changed by OMR 115 with value date 06/01/25",
	})
	require.NoError(t, err)
	assert.Equal(t, transaction.TypeUnknown, rec.Type)
	assert.Empty(t, rec.Sender)
	assert.Empty(t, rec.Receiver)
}

func TestParse_Errors(t *testing.T) {
	s := newTestService()

	t.Run("empty body", func(t *testing.T) {
		_, err := s.Parse(RawMessage{ID: "msg-5"})
		assert.ErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("no extractable fields", func(t *testing.T) {
		_, err := s.Parse(RawMessage{ID: "msg-6", Body: "hello there, nothing useful"})
		assert.ErrorIs(t, err, ErrIncomplete)
	})

	t.Run("amount without account", func(t *testing.T) {
		_, err := s.Parse(RawMessage{ID: "msg-7", Body: "debited by OMR 115 today"})
		assert.ErrorIs(t, err, ErrIncomplete)
	})
}
