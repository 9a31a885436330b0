package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// SupportedExtension reports whether the extension maps to a decoder.
func SupportedExtension(extension string) bool {
	switch strings.ToLower(strings.TrimSpace(extension)) {
	case "csv", "xlsx", "xls":
		return true
	}
	return false
}

// Decode turns uploaded file bytes into the ordered row sequence the
// pipeline consumes. The first non-empty row supplies the column labels;
// only the first sheet of a multi-sheet workbook is read.
func Decode(data []byte, extension string) ([]Row, error) {
	var (
		grid [][]string
		err  error
	)
	switch strings.ToLower(strings.TrimSpace(extension)) {
	case "csv":
		grid, err = readCsv(data)
	case "xlsx":
		grid, err = readXlsx(data)
	case "xls":
		grid, err = readXls(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	rows := materialize(grid)
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

// materialize applies the header row to every following row. Blank rows
// are skipped, missing cells become absent, columns without a header text
// are dropped and a duplicated header keeps its first column only.
func materialize(grid [][]string) []Row {
	var labels []string
	start := -1
	for i, rec := range grid {
		if !recordEmpty(rec) {
			labels = rec
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var rows []Row
	for _, rec := range grid[start:] {
		if recordEmpty(rec) {
			continue
		}
		row := Row{Cells: make(map[string]Cell, len(labels))}
		for col, label := range labels {
			if strings.TrimSpace(label) == "" {
				continue
			}
			if _, dup := row.Cells[label]; dup {
				continue
			}
			var raw string
			if col < len(rec) {
				raw = rec[col]
			}
			row.Labels = append(row.Labels, label)
			row.Cells[label] = newCell(raw)
		}
		if len(row.Labels) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

func recordEmpty(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readCsv reads the whole file with the stdlib reader. A leading UTF-8
// BOM, common in Excel-saved CSVs, is stripped so the first header label
// stays matchable. WMS exports use either comma or semicolon, so the
// separator is sniffed from the header line.
func readCsv(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte{0xef, 0xbb, 0xbf})
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffSeparator(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler CSV: %v", err)
		}
		grid = append(grid, rec)
	}
	return grid, nil
}

func sniffSeparator(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

// readXlsx reads the first sheet with raw cell values, so date and time
// cells surface as their stored serial numbers instead of display text.
func readXlsx(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	grid, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha: %v", err)
	}
	return grid, nil
}

// readXls handles the legacy BIFF format still produced by older WMS
// versions.
func readXls(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %v", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	var grid [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		rec := make([]string, row.LastCol())
		for col := row.FirstCol(); col < row.LastCol(); col++ {
			rec[col] = row.Col(col)
		}
		grid = append(grid, rec)
	}
	return grid, nil
}
