// Command extract runs the transaction extraction engine on one input file:
// a saved bank notification email (raw body, quoted-printable or HTML) or a
// PDF account statement. Results go to stdout or a file as JSON, CSV, or an
// XLSX workbook.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/omanfin/bankfeed/internal/domain/email/service"
	"github.com/omanfin/bankfeed/internal/domain/statement"
	"github.com/omanfin/bankfeed/internal/domain/transaction"
	"github.com/omanfin/bankfeed/internal/export"
	"github.com/omanfin/bankfeed/pkg/config"
)

func main() {
	var (
		in     = flag.String("in", "", "input file: email body or PDF statement")
		format = flag.String("format", "json", "output format: json, csv, or xlsx")
		out    = flag.String("out", "", "output path (default stdout; required for xlsx)")
	)
	flag.Parse()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, logger, *in, *format, *out); err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, in, format, out string) error {
	if in == "" {
		return fmt.Errorf("-in is required")
	}

	var (
		account statement.AccountInfo
		records []transaction.Record
	)
	if isPDF(in) {
		st, err := statement.NewExtractor(cfg.DefaultCurrency, logger).ParsePDF(in)
		if err != nil {
			return err
		}
		account = st.Account
		records = st.Records
	} else {
		body, err := os.ReadFile(in)
		if err != nil {
			return fmt.Errorf("read email %s: %w", in, err)
		}
		rec, err := service.New(cfg.DefaultCurrency, logger).Parse(service.RawMessage{
			ID:   filepath.Base(in),
			Body: string(body),
		})
		if err != nil {
			return err
		}
		account = statement.AccountInfo{
			AccountNumber: rec.AccountNumber,
			Currency:      rec.Currency,
			Branch:        rec.Branch,
		}
		records = []transaction.Record{*rec}
	}

	switch strings.ToLower(format) {
	case "json":
		return writeTo(out, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		})
	case "csv":
		return writeTo(out, func(w io.Writer) error {
			return export.WriteCSV(w, records)
		})
	case "xlsx":
		if out == "" {
			out = filepath.Join(cfg.ExportDir, "transactions.xlsx")
		}
		return export.WriteXLSX(out, account, records)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeTo(out string, write func(io.Writer) error) error {
	if out == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	return write(f)
}

// isPDF checks the extension first, then the file magic, so statements
// saved without an extension still route to the PDF path.
func isPDF(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return true
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	var magic [5]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return false
	}
	return bytes.HasPrefix(magic[:], []byte("%PDF-"))
}
