package ingest

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDecodeCsv(t *testing.T) {
	data := []byte("MATERIAL,QUANT_NT,UNIDADE\n000123,10,UN\n000456,,CX\n")
	rows, err := Decode(data, "csv")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if got := first.Cell("MATERIAL").String(); got != "000123" {
		t.Fatalf("material: leading zeros must survive, got %q", got)
	}
	if first.Cell("QUANT_NT").Kind != CellNumber {
		t.Fatalf("expected numeric cell for QUANT_NT")
	}
	if rows[1].Cell("QUANT_NT").Kind != CellAbsent {
		t.Fatalf("blank cell must be absent, not zero or empty string")
	}
	if rows[1].Cell("NO_SUCH_COLUMN").Kind != CellAbsent {
		t.Fatalf("unknown column must be absent")
	}
}

func TestDecodeCsvSemicolonSeparator(t *testing.T) {
	data := []byte("MATERIAL;UNIDADE\nABC-1;UN\n")
	rows, err := Decode(data, "csv")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := rows[0].Cell("UNIDADE").String(); got != "UN" {
		t.Fatalf("expected semicolon-separated parse, got %q", got)
	}
}

func TestDecodeCsvStripsByteOrderMark(t *testing.T) {
	// Excel-saved CSVs start with a UTF-8 BOM; the first header label must
	// still match exact lookups.
	data := []byte("\xef\xbb\xbfMATERIAL,UNIDADE\n000123,UN\n")
	rows, err := Decode(data, "csv")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := rows[0].Cell("MATERIAL").String(); got != "000123" {
		t.Fatalf("BOM must not poison the first header, got %q", got)
	}
}

func TestDecodeSkipsLeadingBlankRows(t *testing.T) {
	data := []byte("\n\nMATERIAL,UNIDADE\nABC,UN\n")
	rows, err := Decode(data, "csv")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 1 || rows[0].Cell("MATERIAL").String() != "ABC" {
		t.Fatalf("expected header from first non-empty row, got %+v", rows)
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	if _, err := Decode([]byte("x"), "pdf"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeEmptyFile(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("MATERIAL,UNIDADE\n"), // header only
	}
	for _, data := range cases {
		if _, err := Decode(data, "csv"); !errors.Is(err, ErrEmptyFile) {
			t.Fatalf("expected ErrEmptyFile for %q, got %v", data, err)
		}
	}
}

func TestDecodeXlsxFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"MATERIAL", "QUANT_NT", "DT_CRIACAO"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]interface{}{"000789", 42, 45658}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	// A second sheet that must never be read.
	if _, err := f.NewSheet("Extra"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	if err := f.SetSheetRow("Extra", "A1", &[]interface{}{"IGNORED"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	rows, err := Decode(buf.Bytes(), "xlsx")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row from first sheet, got %d", len(rows))
	}
	row := rows[0]
	if got := row.Cell("MATERIAL").String(); got != "000789" {
		t.Fatalf("material: got %q", got)
	}
	qty := row.Cell("QUANT_NT")
	if qty.Kind != CellNumber || qty.Number != 42 {
		t.Fatalf("expected numeric 42, got %+v", qty)
	}
	serial := row.Cell("DT_CRIACAO")
	if serial.Kind != CellNumber {
		t.Fatalf("expected raw serial number for date cell, got %+v", serial)
	}
	if _, ok := row.Cells["IGNORED"]; ok {
		t.Fatalf("second sheet leaked into the decode")
	}
}

func TestDecodeXlsxHeaderOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"MATERIAL"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	if _, err := Decode(buf.Bytes(), "xlsx"); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}
