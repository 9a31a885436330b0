package ingest

import (
	"strconv"
	"strings"
)

// CellKind tags the loose value read from a spreadsheet cell.
type CellKind int

const (
	CellAbsent CellKind = iota
	CellString
	CellNumber
)

// Cell is one loosely-typed spreadsheet value. Text always holds the raw
// cell text so string fields keep leading zeros even when the value also
// parses as a number.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

func newCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellAbsent}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Text: raw, Number: n}
	}
	return Cell{Kind: CellString, Text: raw}
}

// String renders the cell the way the canonical text fields expect it:
// trimmed raw text, empty when absent.
func (c Cell) String() string {
	if c.Kind == CellAbsent {
		return ""
	}
	return strings.TrimSpace(c.Text)
}

// Row is one raw spreadsheet row: the original column labels in
// left-to-right order plus the label→cell mapping. Rows are ephemeral,
// they exist only while being transformed.
type Row struct {
	Labels []string
	Cells  map[string]Cell
}

// Cell looks a value up by its exact original label. Missing labels come
// back as absent cells.
func (r Row) Cell(label string) Cell {
	return r.Cells[label]
}
