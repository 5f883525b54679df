package statement

import (
	"regexp"
	"strings"
)

// Narration is the structured content of a statement row's narration cell.
// Any field may be empty; Details falls back to the whole narration when no
// pattern applies.
type Narration struct {
	Details          string
	CounterpartyName string
	TransactionID    string
}

// transferRe handles bank transfers: "Transfer NAME [REFERENCE]". The
// reference is a long alphanumeric token at the end and is optional.
var transferRe = regexp.MustCompile(`(?is)^Transfer\s+(.*?)(?:\s+([A-Z0-9]{10,}))?\s*$`)

// narrationPatterns cover the remaining narration shapes the bank emits.
// Order matters: the first match wins, and the more specific POS shape must
// precede the looser one. Each pattern's groups map to
// (details, counterparty, id); missing groups stay empty.
var narrationPatterns = []*regexp.Regexp{
	// POS purchase with trailing terminal reference.
	regexp.MustCompile(`(?is)(POS\s+\d+)-([A-Z0-9\s\-]+?)\s+(POS\d+[A-Z0-9]+)$`),
	// POS purchase, merchant name runs to the end.
	regexp.MustCompile(`(?is)(POS\s+\d+)-([A-Z0-9\s\-.,@]+)$`),
	// POS without a terminal number.
	regexp.MustCompile(`(?is)(POS)\s+([A-Z\s]+?)\s+([A-Z0-9]+)$`),
	// Mobile wallet transfer, credit or debit.
	regexp.MustCompile(`(?is)(Wallet\s+Trx(?:\s+(?:Cr|Dr))?\s+[A-Z0-9]+)\s+([A-Z][A-Z0-9\s\-]*?)\s+([FL]T\d+)`),
	// Cash deposit machine, with deposit time.
	regexp.MustCompile(`(?is)(Easy\s+Deposit\s+[A-Z0-9]+\s+\d{2}:\d{2}:\d{2})\s+([A-Z][A-Z\s]+[A-Z])\s+([A-Z0-9]+)$`),
	// Salary credit.
	regexp.MustCompile(`(?is)(SALARY\s+.*?)\s+(SALARY)\s+([\d.]+)$`),
}

// ParseNarration splits a narration cell into details, counterparty, and
// transaction id. Transfers are handled first because their counterparty
// comes before the reference; the remaining shapes try in fixed order. An
// unrecognized narration keeps the full text as details.
func ParseNarration(text string) Narration {
	text = strings.TrimSpace(strings.Join(strings.Fields(text), " "))
	if text == "" {
		return Narration{}
	}

	if strings.HasPrefix(strings.ToLower(text), "transfer") {
		// The full text stays as details; the counterparty is the name
		// between the keyword and the optional trailing reference.
		if m := transferRe.FindStringSubmatch(text); m != nil {
			return Narration{
				Details:          text,
				CounterpartyName: strings.TrimSpace(m[1]),
				TransactionID:    m[2],
			}
		}
	}

	for _, re := range narrationPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n := Narration{Details: strings.TrimSpace(m[1])}
		if len(m) > 2 {
			n.CounterpartyName = strings.TrimSpace(m[2])
		}
		if len(m) > 3 {
			n.TransactionID = strings.TrimSpace(m[3])
		}
		return n
	}

	return Narration{Details: text}
}
