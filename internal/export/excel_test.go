package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/omanfin/bankfeed/internal/domain/statement"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	account := statement.AccountInfo{
		AccountNumber: "0313041310270027",
		Currency:      "OMR",
		Branch:        "RUWI",
	}

	require.NoError(t, WriteXLSX(path, account, sampleRecords()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{sheetAccount, sheetTransactions}, f.GetSheetList())

	got, err := f.GetCellValue(sheetAccount, "B1")
	require.NoError(t, err)
	assert.Equal(t, "0313041310270027", got)

	got, err = f.GetCellValue(sheetTransactions, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Account Number", got)

	got, err = f.GetCellValue(sheetTransactions, "B2")
	require.NoError(t, err)
	assert.Equal(t, "expense", got)

	got, err = f.GetCellValue(sheetTransactions, "G2")
	require.NoError(t, err)
	assert.Equal(t, "SHARARAH MART AL M", got)
}

func TestWriteXLSX_NoRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(path, statement.AccountInfo{}, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(sheetTransactions, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Account Number", got)
}
