package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/omanfin/bankfeed/internal/domain/statement"
	"github.com/omanfin/bankfeed/internal/domain/transaction"
)

const (
	sheetAccount      = "Account Info"
	sheetTransactions = "Transactions"
)

var transactionHeader = []interface{}{
	"Account Number", "Type", "Amount", "Currency", "Date", "Post Date",
	"Counterparty", "Sender", "Receiver", "Details", "Description",
	"Transaction ID", "Branch", "Balance", "Source", "Page",
}

// WriteXLSX writes a workbook with an account-info sheet and a transactions
// sheet. An empty account block still produces the sheet, just headerless
// values left blank.
func WriteXLSX(path string, account statement.AccountInfo, recs []transaction.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetAccount); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	accountRows := [][]interface{}{
		{"Account Number", account.AccountNumber},
		{"Currency", account.Currency},
		{"Branch", account.Branch},
	}
	for i, row := range accountRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetAccount, cell, &row); err != nil {
			return fmt.Errorf("write account row: %w", err)
		}
	}

	if err := f.SetSheetRow(sheetTransactions, "A1", &transactionHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range recs {
		r := &recs[i]
		row := []interface{}{
			r.AccountNumber, string(r.Type), r.AmountFloat(), r.Currency,
			formatDate(r.DateTime), formatDate(r.PostDate),
			r.CounterpartyName, r.Sender, r.Receiver, r.Details,
			r.Description, r.TransactionID, r.Branch, balanceFloat(r),
			string(r.Source), r.Page,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetTransactions, cell, &row); err != nil {
			return fmt.Errorf("write transaction row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func balanceFloat(r *transaction.Record) interface{} {
	if r.Balance == nil {
		return ""
	}
	f, _ := r.Balance.Float64()
	return f
}
