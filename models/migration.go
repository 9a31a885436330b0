package models

import (
	"log"

	"bitbucket.org/armazemdata/corte_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&HistoricoUpload{},
		&Estoque{},
		&Demanda{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
