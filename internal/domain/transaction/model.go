// Package transaction defines the record shared by every extraction source.
// Both the email pipeline and the statement pipeline converge on Record.
package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is the coarse classification of a transaction.
type Type string

const (
	TypeIncome   Type = "income"
	TypeExpense  Type = "expense"
	TypeTransfer Type = "transfer"
	TypeUnknown  Type = "unknown"
)

// Source identifies which pipeline produced a record.
type Source string

const (
	SourceEmail Source = "email"
	SourcePDF   Source = "pdf"
)

// Self marks the account holder's side of a transaction.
const Self = "me"

// Record is the canonical extracted transaction. Every field beyond the
// minimum viable set (Type, AccountNumber, Amount) is optional; absence is
// the zero value, never a sentinel.
type Record struct {
	AccountNumber    string           `json:"account_number"`
	Type             Type             `json:"transaction_type"`
	Amount           decimal.Decimal  `json:"transaction_amount"`
	Currency         string           `json:"currency"`
	DateTime         *time.Time       `json:"transaction_date,omitempty"`
	PostDate         *time.Time       `json:"post_date,omitempty"`
	CounterpartyName string           `json:"counterparty_name,omitempty"`
	Sender           string           `json:"transaction_sender,omitempty"`
	Receiver         string           `json:"transaction_receiver,omitempty"`
	Details          string           `json:"transaction_details,omitempty"`
	Description      string           `json:"description,omitempty"`
	TransactionID    string           `json:"transaction_id,omitempty"`
	Branch           string           `json:"branch,omitempty"`
	Balance          *decimal.Decimal `json:"balance,omitempty"`
	Source           Source           `json:"source"`
	Page             int              `json:"page,omitempty"`
}

// Direction derives sender and receiver from the transaction type. Money
// leaving the account makes the holder the sender; money arriving makes the
// holder the receiver. Unknown types leave both sides empty.
func Direction(t Type, counterparty string) (sender, receiver string) {
	switch t {
	case TypeExpense:
		return Self, counterparty
	case TypeIncome:
		return counterparty, Self
	default:
		return "", ""
	}
}

// AmountFloat returns the amount as a float64 for exporters that cannot
// carry decimals. Precision loss is acceptable only at that boundary.
func (r *Record) AmountFloat() float64 {
	f, _ := r.Amount.Float64()
	return f
}
