package main

import (
	"fmt"
	"os"

	"bitbucket.org/armazemdata/corte_backend/config"
	"bitbucket.org/armazemdata/corte_backend/models"
)

// Runs AutoMigrate standalone, for deployments that start the server with
// SKIP_MIGRATIONS=true.
func main() {
	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}
	models.MigrateTable()
	fmt.Println("migrations applied")
}
