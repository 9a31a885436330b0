package models

import "time"

// Upload job statuses as persisted in historico_uploads. These values are
// shared with the dashboard, keep them in sync with the frontend.
const (
	UploadStatusProcessando = "processando"
	UploadStatusSucesso     = "sucesso"
	UploadStatusParcial     = "parcial"
	UploadStatusErro        = "erro"
)

// HistoricoUpload is one upload job. Created in status processando before
// any row is read, its processed count is bumped after every batch and the
// status/message pair is written exactly once at the end.
type HistoricoUpload struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Tipo                 string    `gorm:"type:varchar(20);index" json:"tipo"`
	NomeArquivo          string    `gorm:"type:varchar(255)" json:"nomeArquivo"`
	TamanhoBytes         int64     `json:"tamanhoBytes"`
	DataArquivo          string    `gorm:"type:date;index" json:"dataArquivo"`
	RegistrosProcessados int       `json:"registrosProcessados"`
	Status               string    `gorm:"type:varchar(20)" json:"status"`
	Mensagem             string    `gorm:"type:text" json:"mensagem"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (HistoricoUpload) TableName() string {
	return "historico_uploads"
}
