package models

import "github.com/shopspring/decimal"

// Estoque is one canonical stock-on-hand row, keyed by the business date
// of the file it came from. Column names mirror the WMS export vocabulary
// consumed by the dashboard.
type Estoque struct {
	ID                     uint            `gorm:"primaryKey" json:"id"`
	DataEstoque            string          `gorm:"type:date;index" json:"dataEstoque"`
	Material               string          `gorm:"type:varchar(60);index" json:"material"`
	Centro                 string          `gorm:"type:varchar(20)" json:"centro"`
	TextoBreveMaterial     string          `gorm:"type:varchar(255)" json:"textoBreveMaterial"`
	TipoDeposito           string          `gorm:"type:varchar(20)" json:"tipoDeposito"`
	PosicaoDeposito        string          `gorm:"type:varchar(40)" json:"posicaoDeposito"`
	EstoqueDisponivel      decimal.Decimal `gorm:"type:numeric(18,3)" json:"estoqueDisponivel"`
	UmBasica               string          `gorm:"type:varchar(10)" json:"umBasica"`
	DataEntradaMercadorias *string         `gorm:"type:date" json:"dataEntradaMercadorias"`
	AreaArmazenamento      string          `gorm:"type:varchar(20)" json:"areaArmazenamento"`
	TipoPosicaoDeposito    string          `gorm:"type:varchar(20)" json:"tipoPosicaoDeposito"`
	UnidadeDeposito        string          `gorm:"type:varchar(40)" json:"unidadeDeposito"`
	Deposito               string          `gorm:"type:varchar(20)" json:"deposito"`
}

func (Estoque) TableName() string {
	return "estoques"
}
