package ingest

import (
	"context"

	"bitbucket.org/armazemdata/corte_backend/models"
)

// TabularStore is the persistence port of the pipeline: a plain tabular
// backend offering batched inserts, filtered deletes and filtered counts.
// models.GormStore is the production implementation.
type TabularStore interface {
	InsertRows(ctx context.Context, table string, rows interface{}) error
	DeleteRows(ctx context.Context, table string, filter map[string]interface{}) error
	CountRows(ctx context.Context, table string, filter map[string]interface{}) (int64, error)
}

// JobStore is the append-only job-log side of the store. The pipeline only
// ever updates the job row it created itself.
type JobStore interface {
	CreateJob(ctx context.Context, job *models.HistoricoUpload) error
	UpdateJob(ctx context.Context, id uint, fields map[string]interface{}) error
}
