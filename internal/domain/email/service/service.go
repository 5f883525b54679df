// Package service wires the email pipeline: normalize the body, run the
// field probes, resolve the date, validate, and build the final record.
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/omanfin/bankfeed/internal/domain/email/extractor"
	"github.com/omanfin/bankfeed/internal/domain/email/normalizer"
	"github.com/omanfin/bankfeed/internal/domain/transaction"
	"github.com/omanfin/bankfeed/pkg/dates"
	"github.com/omanfin/bankfeed/pkg/money"
)

// RawMessage is the descriptor handed in by the mail collaborator. Only
// Body is consumed by extraction; Date serves as a fallback timestamp when
// the body carries none.
type RawMessage struct {
	ID      string
	Subject string
	Sender  string
	Date    string
	Body    string
}

var (
	// ErrEmptyBody signals a message with nothing to extract.
	ErrEmptyBody = errors.New("email body is empty")
	// ErrIncomplete signals that the minimum viable fields (account number
	// and amount) could not both be recovered.
	ErrIncomplete = errors.New("extracted transaction is incomplete")
)

// Service parses notification emails into transaction records. It is
// stateless after construction and safe for concurrent use.
type Service struct {
	extractor       *extractor.Extractor
	defaultCurrency string
	logger          *slog.Logger
}

// New creates an email parsing service. defaultCurrency fills in when the
// body names no currency (this bank omits it on some templates).
func New(defaultCurrency string, logger *slog.Logger) *Service {
	return &Service{
		extractor:       extractor.New(),
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// Parse extracts a transaction record from one message. A message that does
// not yield the minimum viable fields returns ErrIncomplete rather than a
// partial record; no malformed input causes a panic.
func (s *Service) Parse(msg RawMessage) (*transaction.Record, error) {
	if msg.Body == "" {
		return nil, ErrEmptyBody
	}

	cleaned := normalizer.Clean(msg.Body)
	fields := s.extractor.Extract(cleaned)

	// The type probe always yields at least "unknown", which passes the
	// gate; only a missing account or amount rejects the message.
	if fields.AccountNumber == "" || fields.Amount == nil {
		s.logger.Warn("incomplete extraction",
			"email_id", msg.ID,
			"has_account", fields.AccountNumber != "",
			"has_amount", fields.Amount != nil)
		return nil, ErrIncomplete
	}

	currency := fields.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	sender, receiver := transaction.Direction(fields.Type, fields.CounterpartyName)

	rec := &transaction.Record{
		AccountNumber:    fields.AccountNumber,
		Type:             fields.Type,
		Amount:           money.Round(*fields.Amount, currency),
		Currency:         currency,
		DateTime:         s.resolveDate(fields.Date, msg.Date),
		CounterpartyName: fields.CounterpartyName,
		Sender:           sender,
		Receiver:         receiver,
		Details:          fields.Details,
		Description:      fields.Description,
		TransactionID:    fields.TransactionID,
		Branch:           fields.Branch,
		Source:           transaction.SourceEmail,
	}
	return rec, nil
}

// resolveDate prefers the date found in the body, falling back to the
// message's own date header. A nil result is acceptable: an unparseable
// date is not fatal when the other fields are usable.
func (s *Service) resolveDate(bodyDate, headerDate string) *time.Time {
	if t := dates.Parse(bodyDate); t != nil {
		return t
	}
	return dates.Parse(headerDate)
}
