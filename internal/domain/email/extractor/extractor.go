// Package extractor recovers transaction fields from cleaned notification
// text. Every probe is independent and optional: a miss leaves its field
// empty, it never fails the whole extraction. Pattern order within a field
// is load-bearing: first match wins, and reordering changes behavior on
// ambiguous input.
package extractor

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/shopspring/decimal"

	"github.com/omanfin/bankfeed/internal/domain/transaction"
	"github.com/omanfin/bankfeed/pkg/money"
)

// Fields is the flat, all-optional result of running the probe battery.
// No field implies another is present.
type Fields struct {
	AccountNumber    string
	Branch           string
	TypeKeyword      string // raw keyword: debited|credited|received|sent
	Amount           *decimal.Decimal
	Currency         string
	Date             string // raw, bank-local format
	Details          string
	CounterpartyName string
	TransactionID    string
	Description      string
	Type             transaction.Type // coarse classification, drives direction
}

var (
	accountRe = regexp.MustCompile(`(?i)account\s+(xxxx\d{4})|Account number\s*:\s*(xxxx\d{4})|a/c\s+(xxxx\d{4})`)
	branchRe  = regexp.MustCompile(`(?i)with\s+([\d\- ]*Br [A-Za-z ]+)`)
	keywordRe = regexp.MustCompile(`(?i)\b(debited|credited|received|sent)\b`)
	amountRe  = regexp.MustCompile(`(?i)\b([A-Za-z]{3})\b\s*([\d,]+(?:\.\d+)?)`)

	// Two date shapes: "value date 06/01/25" and "Date/Time : 15 JUL 25 08:39".
	valueDateRe = regexp.MustCompile(`(?i)value date\s+(\d{2}/\d{2}/\d{2})`)
	dateTimeRe  = regexp.MustCompile(`(?i)Date/Time\s*:\s*(\d{1,2}\s+[A-Z]{3}\s+\d{2}\s+[\d:]+)`)

	descriptionRe = regexp.MustCompile(`(?i)Description\s*:\s*([^\n]+)`)
	txnIDRe       = regexp.MustCompile(`(?i)Txn Id\s+(\w+)`)

	// Counterparty: "from/to NAME" first, then any standalone uppercase line.
	// Case-sensitive name class so the capture stops at the first lowercase
	// word after the name.
	counterpartyRe         = regexp.MustCompile(`(?:[Ff]rom|[Tt]o)\s+([A-Z][A-Z\s]+[A-Z])`)
	counterpartyFallbackRe = regexp.MustCompile(`\n([A-Z][A-Z\s]{4,})\n`)
)

// detailsVocab is the fixed vocabulary of transaction-details keywords,
// in priority order.
var detailsVocab = []string{"TRANSFER", "Cash Dep", "SALARY", "Mobile Payment"}

// Classification keyword lists. Income is checked before expense; the first
// category with any hit wins.
var (
	incomeWords  = []string{"credited", "received", "deposited"}
	expenseWords = []string{"debit", "utilised", "sent", "payment", "purchase", "withdrawal", "spent"}
)

// Extractor runs the probe battery. It holds only pre-built matchers and is
// safe for concurrent use.
type Extractor struct {
	income   *ahocorasick.Matcher
	expense  *ahocorasick.Matcher
	vocab    *ahocorasick.Matcher
	vocabRes []*regexp.Regexp
}

// New builds an Extractor with its keyword matchers pre-computed.
func New() *Extractor {
	lower := make([]string, len(detailsVocab))
	res := make([]*regexp.Regexp, len(detailsVocab))
	for i, term := range detailsVocab {
		lower[i] = strings.ToLower(term)
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return &Extractor{
		income:   ahocorasick.NewStringMatcher(incomeWords),
		expense:  ahocorasick.NewStringMatcher(expenseWords),
		vocab:    ahocorasick.NewStringMatcher(lower),
		vocabRes: res,
	}
}

// Extract applies every probe to the cleaned text and returns whatever
// matched. Callers must treat each field as independently optional.
func (e *Extractor) Extract(text string) Fields {
	var f Fields

	if m := accountRe.FindStringSubmatch(text); m != nil {
		f.AccountNumber = firstGroup(m[1:])
	}
	if m := branchRe.FindStringSubmatch(text); m != nil {
		f.Branch = strings.TrimSpace(m[1])
	}
	if m := keywordRe.FindStringSubmatch(text); m != nil {
		f.TypeKeyword = strings.ToLower(m[1])
	}

	e.extractAmount(text, &f)

	if m := valueDateRe.FindStringSubmatch(text); m != nil {
		f.Date = strings.TrimSpace(m[1])
	} else if m := dateTimeRe.FindStringSubmatch(text); m != nil {
		f.Date = strings.TrimSpace(m[1])
	}

	f.Details = e.detailsKeyword(text)

	if m := descriptionRe.FindStringSubmatch(text); m != nil {
		f.Description = strings.TrimSpace(m[1])
	}
	if m := txnIDRe.FindStringSubmatch(text); m != nil {
		f.TransactionID = m[1]
	}

	f.CounterpartyName = counterpartyName(text)
	f.Type = e.Classify(text)

	return f
}

// extractAmount finds the first ISO-currency-code-plus-number pair. Any
// three-letter token is a candidate; go-money's ISO table filters out words
// that merely look like codes (MAY, JUL, ...).
func (e *Extractor) extractAmount(text string, f *Fields) {
	for _, m := range amountRe.FindAllStringSubmatch(text, -1) {
		code := strings.ToUpper(m[1])
		if !money.IsCurrency(code) {
			continue
		}
		amount, err := money.ParseAmount(m[2])
		if err != nil {
			continue
		}
		f.Currency = code
		f.Amount = &amount
		return
	}
}

// detailsKeyword returns the highest-priority vocabulary term present as a
// whole word, or empty. The substring matcher narrows the candidates; the
// word-boundary check rejects terms embedded in longer words, so
// "transferred" never reads as TRANSFER.
func (e *Extractor) detailsKeyword(text string) string {
	hits := e.vocab.Match([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return ""
	}
	candidate := make(map[int]bool, len(hits))
	for _, h := range hits {
		candidate[h] = true
	}
	for i, re := range e.vocabRes {
		if candidate[i] && re.MatchString(text) {
			return detailsVocab[i]
		}
	}
	return ""
}

// Classify assigns the coarse transaction type. The income list is checked
// before the expense list; this category ordering decides ties, not
// keyword position.
func (e *Extractor) Classify(text string) transaction.Type {
	lower := []byte(strings.ToLower(text))
	if len(e.income.Match(lower)) > 0 {
		return transaction.TypeIncome
	}
	if len(e.expense.Match(lower)) > 0 {
		return transaction.TypeExpense
	}
	return transaction.TypeUnknown
}

// counterpartyName tries the from/to pattern, then falls back to the first
// standalone uppercase line. Captured whitespace collapses to single spaces.
func counterpartyName(text string) string {
	if m := counterpartyRe.FindStringSubmatch(text); m != nil {
		return strings.Join(strings.Fields(m[1]), " ")
	}
	if m := counterpartyFallbackRe.FindStringSubmatch("\n" + text + "\n"); m != nil {
		return strings.Join(strings.Fields(m[1]), " ")
	}
	return ""
}

func firstGroup(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}
