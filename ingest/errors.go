package ingest

import "errors"

var (
	// ErrUnsupportedFormat is returned when the declared file extension is
	// not csv, xlsx or xls.
	ErrUnsupportedFormat = errors.New("formato de arquivo inválido")

	// ErrEmptyFile is returned when the file yields no data rows
	// (header-only sheet or truly empty file).
	ErrEmptyFile = errors.New("arquivo não contém dados")

	// ErrJobRegistration is returned when the upload job row could not be
	// created; nothing else runs in that case.
	ErrJobRegistration = errors.New("erro ao registrar upload")
)
