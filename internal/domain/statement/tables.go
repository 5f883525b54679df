package statement

import (
	"strconv"
	"strings"
)

// Table is an assembled statement table: a header row plus data rows, with
// the 1-based page each data row came from.
type Table struct {
	Header []string
	Rows   [][]string
	Pages  []int
}

// assembleTable turns a raw cell grid into a Table. Fully empty rows are
// dropped, every row pads to the widest row, and the first surviving row
// becomes the header with "Column_N" filling blank header cells.
func assembleTable(grid [][]string, page int) Table {
	var kept [][]string
	width := 0
	for _, row := range grid {
		if rowEmpty(row) {
			continue
		}
		kept = append(kept, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if len(kept) == 0 {
		return Table{}
	}

	for i, row := range kept {
		for len(row) < width {
			row = append(row, "")
		}
		kept[i] = row
	}

	header := make([]string, width)
	for i, cell := range kept[0] {
		if strings.TrimSpace(cell) == "" {
			header[i] = columnName(i)
		} else {
			header[i] = strings.TrimSpace(cell)
		}
	}

	t := Table{Header: header}
	for _, row := range kept[1:] {
		t.Rows = append(t.Rows, row)
		t.Pages = append(t.Pages, page)
	}
	return t
}

// appendContinuation merges a subsequent page's table into an existing one.
// Continuation pages repeat the header as their first data row, so it is
// dropped; rows keep their page number for traceability.
func (t *Table) appendContinuation(cont Table) {
	if len(t.Header) == 0 {
		*t = cont
		return
	}
	for i, row := range cont.Rows {
		t.Rows = append(t.Rows, row)
		t.Pages = append(t.Pages, cont.Pages[i])
	}
}

// columnIndex finds a header column whose name contains the given label,
// case-insensitively. Returns -1 when absent.
func (t *Table) columnIndex(label string) int {
	label = strings.ToLower(label)
	for i, h := range t.Header {
		if strings.Contains(strings.ToLower(h), label) {
			return i
		}
	}
	return -1
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func columnName(i int) string {
	return "Column_" + strconv.Itoa(i+1)
}
