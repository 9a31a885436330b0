package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bitbucket.org/armazemdata/corte_backend/config"
	"bitbucket.org/armazemdata/corte_backend/ingest"
	"bitbucket.org/armazemdata/corte_backend/models"
)

// Backfill tool: pushes a local WMS export through the same ingestion
// pipeline as the HTTP upload endpoint.
func main() {
	filePath := flag.String("file", "", "Required: path to the csv/xlsx/xls export")
	dataArquivo := flag.String("data", "", "Required: business date (YYYY-MM-DD)")
	tipo := flag.String("type", "", "Required: upload kind (estoque|demanda)")
	batchSize := flag.Int("batch-size", ingest.DefaultBatchSize, "Optional: rows per insert batch")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" || strings.TrimSpace(*dataArquivo) == "" || strings.TrimSpace(*tipo) == "" {
		fmt.Fprintln(os.Stderr, "--file, --data and --type are required")
		os.Exit(1)
	}
	kind := ingest.Kind(*tipo)
	if !kind.Valid() {
		fmt.Fprintln(os.Stderr, "--type must be estoque or demanda")
		os.Exit(1)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}
	models.MigrateTable()

	store := models.NewGormStore(db)
	pipeline := &ingest.Pipeline{
		Store:     store,
		Jobs:      store,
		Log:       config.GetLogger(),
		BatchSize: *batchSize,
	}

	res, err := pipeline.Run(context.Background(), ingest.UploadInput{
		Kind:         kind,
		Filename:     filepath.Base(*filePath),
		Size:         int64(len(data)),
		BusinessDate: *dataArquivo,
		Extension:    strings.ToLower(strings.TrimPrefix(filepath.Ext(*filePath), ".")),
		Data:         data,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("job=%d status=%s processados=%d\n", res.JobID, res.Status, res.Processed)
	for _, batchErr := range res.Errors {
		fmt.Println("  " + batchErr)
	}
	if res.Status == models.UploadStatusErro {
		os.Exit(1)
	}
}
