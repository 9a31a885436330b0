package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/armazemdata/corte_backend/config"
	"bitbucket.org/armazemdata/corte_backend/ingest"
	"bitbucket.org/armazemdata/corte_backend/models"
	"bitbucket.org/armazemdata/corte_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Persistence is the only suspension point of a run; this bounds it.
const uploadTimeout = 10 * time.Minute

type uploadForm struct {
	File        *multipart.FileHeader `form:"file" binding:"required"`
	DataArquivo string                `form:"dataArquivo" binding:"required,datetime=2006-01-02"`
	Type        string                `form:"type" binding:"required,oneof=estoque demanda"`
}

type uploadResponse struct {
	Success              bool     `json:"success"`
	Message              string   `json:"message"`
	RegistrosProcessados int      `json:"registrosProcessados"`
	Erros                []string `json:"erros,omitempty"`
}

var allowedExtensions = map[string]bool{
	"csv":  true,
	"xlsx": true,
	"xls":  true,
}

var obtainUploadLock = utils.ObtainUploadLock

func uploadHandler(pipeline *ingest.Pipeline, store ingest.TabularStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		var form uploadForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Arquivo, data ou tipo não fornecidos",
				"fields": utils.ProcessValidationErrors(err),
			})
			return
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(form.File.Filename), "."))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de arquivo inválido. Use CSV, XLSX ou XLS."})
			return
		}

		f, err := form.File.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler arquivo: " + err.Error()})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler arquivo: " + err.Error()})
			return
		}

		release, err := obtainUploadLock(c.Request.Context(), form.Type, form.DataArquivo)
		if err != nil {
			if errors.Is(err, utils.ErrUploadInProgress) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer release()

		if utils.ArchiveEnabled() {
			objectName := fmt.Sprintf("uploads/%s/%s/%s_%s",
				form.Type, form.DataArquivo, utils.GenerateUniqueFilename(), filepath.Base(form.File.Filename))
			if archiveErr := utils.ArchiveUploadToGCS(c.Request.Context(), objectName, data); archiveErr != nil {
				config.LogError(logger, "uploads", "uploadHandler", "failed to archive upload", objectName, archiveErr)
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
		defer cancel()

		res, err := pipeline.Run(ctx, ingest.UploadInput{
			Kind:         ingest.Kind(form.Type),
			Filename:     form.File.Filename,
			Size:         form.File.Size,
			BusinessDate: form.DataArquivo,
			Extension:    ext,
			Data:         data,
		})
		if err != nil {
			switch {
			case errors.Is(err, ingest.ErrEmptyFile):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo não contém dados"})
			case errors.Is(err, ingest.ErrUnsupportedFormat):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de arquivo inválido. Use CSV, XLSX ou XLS."})
			case errors.Is(err, ingest.ErrJobRegistration):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao iniciar processamento"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		logCutAvailability(ctx, store, logger, form.DataArquivo, res.JobID)

		message := fmt.Sprintf("Upload concluído com sucesso: %d registros processados", res.Processed)
		if len(res.Errors) > 0 {
			message = fmt.Sprintf("Processado parcialmente: %d registros, com %d erros", res.Processed, len(res.Errors))
		}
		c.JSON(http.StatusOK, uploadResponse{
			Success:              true,
			Message:              message,
			RegistrosProcessados: res.Processed,
			Erros:                res.Errors,
		})
	}
}

// logCutAvailability checks whether both stock and demand rows exist for
// the business date after an upload; the cut (position) calculation in the
// dashboard only makes sense once both sides are present.
func logCutAvailability(ctx context.Context, store ingest.TabularStore, logger *logrus.Logger, dataArquivo string, jobID uint) {
	estoques, err1 := store.CountRows(ctx, models.Estoque{}.TableName(), map[string]interface{}{"data_estoque": dataArquivo})
	demandas, err2 := store.CountRows(ctx, models.Demanda{}.TableName(), map[string]interface{}{"data_demanda": dataArquivo})
	if err1 != nil || err2 != nil {
		return
	}
	if estoques > 0 && demandas > 0 {
		logger.WithFields(logrus.Fields{
			"jobId":    jobID,
			"data":     dataArquivo,
			"estoques": estoques,
			"demandas": demandas,
		}).Info("estoque e demanda presentes; cálculo de posições disponível")
	}
}

type uploadLister interface {
	ListUploads(ctx context.Context, limit int) ([]models.HistoricoUpload, error)
}

func uploadHistoryHandler(store uploadLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 50
		if v := strings.TrimSpace(c.Query("limit")); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		uploads, err := store.ListUploads(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uploads": uploads})
	}
}

func resumoHandler(store ingest.TabularStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		dataArquivo := strings.TrimSpace(c.Query("data"))
		if dataArquivo == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetro data é obrigatório (YYYY-MM-DD)"})
			return
		}
		if _, err := time.Parse("2006-01-02", dataArquivo); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data inválida, use YYYY-MM-DD"})
			return
		}

		estoques, err := store.CountRows(c.Request.Context(), models.Estoque{}.TableName(), map[string]interface{}{"data_estoque": dataArquivo})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		demandas, err := store.CountRows(c.Request.Context(), models.Demanda{}.TableName(), map[string]interface{}{"data_demanda": dataArquivo})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"dataArquivo":       dataArquivo,
			"estoques":          estoques,
			"demandas":          demandas,
			"calculoDisponivel": estoques > 0 && demandas > 0,
		})
	}
}
