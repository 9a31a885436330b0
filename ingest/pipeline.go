package ingest

import (
	"context"
	"errors"
	"fmt"

	"bitbucket.org/armazemdata/corte_backend/models"
	"github.com/sirupsen/logrus"
)

// Pipeline runs one upload from raw bytes to persisted batches. Store and
// Jobs are injected so tests can swap in an in-memory fake; Log defaults
// to a plain logrus logger when nil.
type Pipeline struct {
	Store     TabularStore
	Jobs      JobStore
	Log       *logrus.Logger
	BatchSize int
}

// UploadInput carries everything the pipeline needs about one upload.
type UploadInput struct {
	Kind         Kind
	Filename     string
	Size         int64
	BusinessDate string
	Extension    string
	Data         []byte
}

// Result is the terminal outcome handed back to the HTTP layer.
type Result struct {
	JobID     uint
	Processed int
	Status    string
	Message   string
	Errors    []string
}

func (p *Pipeline) logger() *logrus.Logger {
	if p.Log != nil {
		return p.Log
	}
	return logrus.StandardLogger()
}

// Run executes the upload end to end: register job, decode, transform,
// batch-load, terminal update. Fatal errors (job registration, decode)
// short-circuit; batch errors accumulate into the final status instead.
// The whole run shares the caller's context, persistence calls being the
// only suspension points.
func (p *Pipeline) Run(ctx context.Context, in UploadInput) (*Result, error) {
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("tipo de upload inválido: %q", in.Kind)
	}
	// Reject unsupported formats before a job row exists; only uploads
	// that reached decoding belong in the history.
	if !SupportedExtension(in.Extension) {
		return nil, ErrUnsupportedFormat
	}

	job, err := p.openJob(ctx, in)
	if err != nil {
		return nil, err
	}

	rows, err := Decode(in.Data, in.Extension)
	if err != nil {
		p.closeJob(ctx, job, models.UploadStatusErro, decodeFailureMessage(err), 0)
		return nil, err
	}

	var (
		processed   int
		batchErrors []string
	)
	switch in.Kind {
	case KindEstoque:
		records := make([]*models.Estoque, 0, len(rows))
		for _, row := range rows {
			records = append(records, transformEstoque(row, in.BusinessDate))
		}
		processed, batchErrors = loadBatches(ctx, p, job.ID, in.Kind, in.BusinessDate, records)
	case KindDemanda:
		records := make([]*models.Demanda, 0, len(rows))
		for _, row := range rows {
			records = append(records, transformDemanda(row, in.BusinessDate))
		}
		processed, batchErrors = loadBatches(ctx, p, job.ID, in.Kind, in.BusinessDate, records)
	}

	status, message := finalStatus(processed, batchErrors)
	p.closeJob(ctx, job, status, message, processed)

	return &Result{
		JobID:     job.ID,
		Processed: processed,
		Status:    status,
		Message:   message,
		Errors:    batchErrors,
	}, nil
}

func decodeFailureMessage(err error) string {
	if errors.Is(err, ErrEmptyFile) {
		return "Arquivo não contém dados"
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		return "Formato de arquivo inválido. Use CSV, XLSX ou XLS."
	}
	return err.Error()
}
