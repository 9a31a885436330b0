package ingest

import (
	"context"
	"fmt"
	"strings"

	"bitbucket.org/armazemdata/corte_backend/models"
	"github.com/sirupsen/logrus"
)

// openJob registers the upload job before any row is read, so a crash
// mid-pipeline still leaves an auditable "processando" record. A creation
// failure aborts the whole operation.
func (p *Pipeline) openJob(ctx context.Context, in UploadInput) (*models.HistoricoUpload, error) {
	job := &models.HistoricoUpload{
		Tipo:         string(in.Kind),
		NomeArquivo:  in.Filename,
		TamanhoBytes: in.Size,
		DataArquivo:  in.BusinessDate,
		Status:       models.UploadStatusProcessando,
	}
	if err := p.Jobs.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJobRegistration, err)
	}
	p.logger().WithFields(logrus.Fields{
		"jobId":   job.ID,
		"tipo":    job.Tipo,
		"arquivo": job.NomeArquivo,
		"data":    job.DataArquivo,
	}).Info("upload job created")
	return job, nil
}

// closeJob writes the terminal status; it is the last write of the
// pipeline. A failed terminal update is logged but not surfaced, the
// records themselves are already persisted at this point.
func (p *Pipeline) closeJob(ctx context.Context, job *models.HistoricoUpload, status, message string, processed int) {
	fields := map[string]interface{}{
		"status":                status,
		"mensagem":              message,
		"registros_processados": processed,
	}
	if err := p.Jobs.UpdateJob(ctx, job.ID, fields); err != nil {
		p.logger().WithFields(logrus.Fields{
			"jobId":  job.ID,
			"status": status,
		}).Error("failed to write terminal job status: " + err.Error())
		return
	}
	p.logger().WithFields(logrus.Fields{
		"jobId":      job.ID,
		"status":     status,
		"processado": processed,
	}).Info("upload job finished")
}

// finalStatus derives the terminal status from the batch outcome. It is a
// pure function of (rows persisted, per-batch errors); the message carries
// at most the first three batch errors with a truncation marker.
func finalStatus(processed int, batchErrors []string) (string, string) {
	if len(batchErrors) == 0 {
		return models.UploadStatusSucesso, "Processamento concluído com sucesso"
	}
	if processed > 0 {
		shown := batchErrors
		marker := ""
		if len(shown) > 3 {
			shown = shown[:3]
			marker = "..."
		}
		msg := fmt.Sprintf("Processado com erros: %s%s", strings.Join(shown, "; "), marker)
		return models.UploadStatusParcial, msg
	}
	return models.UploadStatusErro, "Falha total: " + batchErrors[0]
}
