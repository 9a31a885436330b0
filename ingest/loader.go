package ingest

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultBatchSize is how many canonical records go into one insert call.
const DefaultBatchSize = 1000

// loadBatches persists the transformed records. Existing rows for the same
// business date are removed first (replace, not merge); a delete failure is
// best-effort cleanup and never aborts the job. Batches run strictly
// sequentially and in order, each insert is all-or-nothing, and the job's
// processed count is persisted after every batch so a polling observer
// sees live progress.
func loadBatches[T any](ctx context.Context, p *Pipeline, jobID uint, kind Kind, businessDate string, records []T) (int, []string) {
	log := p.logger()
	table := kind.Table()

	filter := map[string]interface{}{kind.DateColumn(): businessDate}
	if err := p.Store.DeleteRows(ctx, table, filter); err != nil {
		log.WithFields(logrus.Fields{
			"jobId": jobID,
			"table": table,
			"data":  businessDate,
		}).Warn("failed to remove existing rows for date: " + err.Error())
	}

	batchSize := p.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	totalBatches := (len(records) + batchSize - 1) / batchSize

	processed := 0
	var batchErrors []string
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]
		batchNo := start/batchSize + 1

		if err := p.Store.InsertRows(ctx, table, batch); err != nil {
			batchErrors = append(batchErrors, fmt.Sprintf("Lote %d: %v", batchNo, err))
			log.WithFields(logrus.Fields{
				"jobId": jobID,
				"lote":  batchNo,
				"total": totalBatches,
			}).Error("batch insert failed: " + err.Error())
		} else {
			processed += len(batch)
			log.WithFields(logrus.Fields{
				"jobId":      jobID,
				"lote":       batchNo,
				"total":      totalBatches,
				"processado": processed,
			}).Info("batch inserted")
		}

		progress := map[string]interface{}{"registros_processados": processed}
		if err := p.Jobs.UpdateJob(ctx, jobID, progress); err != nil {
			log.WithFields(logrus.Fields{
				"jobId": jobID,
				"lote":  batchNo,
			}).Warn("failed to persist job progress: " + err.Error())
		}
	}
	return processed, batchErrors
}
