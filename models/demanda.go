package models

import "github.com/shopspring/decimal"

// Demanda is one canonical demand-transaction row (a transfer-order line
// from the WMS demand export), keyed by the business date of the file.
type Demanda struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	DataDemanda    string          `gorm:"type:date;index" json:"dataDemanda"`
	NDeposito      string          `gorm:"column:n_deposito;type:varchar(20)" json:"nDeposito"`
	NumeroNt       string          `gorm:"type:varchar(20);index" json:"numeroNt"`
	Status         string          `gorm:"type:varchar(10)" json:"status"`
	TpTransporte   string          `gorm:"type:varchar(10)" json:"tpTransporte"`
	PrioTransporte string          `gorm:"type:varchar(10)" json:"prioTransporte"`
	Usuario        string          `gorm:"type:varchar(40)" json:"usuario"`
	DtCriacao      *string         `gorm:"type:date" json:"dtCriacao"`
	HrCriacao      *string         `gorm:"type:time" json:"hrCriacao"`
	TpMovimento    string          `gorm:"type:varchar(10)" json:"tpMovimento"`
	TpDeposito     string          `gorm:"type:varchar(10)" json:"tpDeposito"`
	Posicao        string          `gorm:"type:varchar(40)" json:"posicao"`
	DtPlanejada    *string         `gorm:"type:date" json:"dtPlanejada"`
	RefTransporte  string          `gorm:"type:varchar(40)" json:"refTransporte"`
	ItemNt         string          `gorm:"type:varchar(10)" json:"itemNt"`
	ItemFinalizado string          `gorm:"type:varchar(10)" json:"itemFinalizado"`
	Material       string          `gorm:"type:varchar(60);index" json:"material"`
	Centro         string          `gorm:"type:varchar(20)" json:"centro"`
	QuantNt        decimal.Decimal `gorm:"type:numeric(18,3)" json:"quantNt"`
	Unidade        string          `gorm:"type:varchar(10)" json:"unidade"`
	NumeroOt       string          `gorm:"type:varchar(20)" json:"numeroOt"`
	QuantOt        decimal.Decimal `gorm:"type:numeric(18,3)" json:"quantOt"`
	Deposito       string          `gorm:"type:varchar(20)" json:"deposito"`
	DescMaterial   string          `gorm:"type:varchar(255)" json:"descMaterial"`
	Setor          string          `gorm:"type:varchar(20)" json:"setor"`
	Palete         string          `gorm:"type:varchar(40)" json:"palete"`
	PaleteOrigem   string          `gorm:"type:varchar(40)" json:"paleteOrigem"`
	Endereco       string          `gorm:"type:varchar(60)" json:"endereco"`
	Ot             string          `gorm:"type:varchar(20)" json:"ot"`
	Pedido         string          `gorm:"type:varchar(20)" json:"pedido"`
	Remessa        string          `gorm:"type:varchar(20)" json:"remessa"`
	NomeUsuario    string          `gorm:"type:varchar(80)" json:"nomeUsuario"`
	DtProducao     *string         `gorm:"type:date" json:"dtProducao"`
	HrRegistro     *string         `gorm:"type:time" json:"hrRegistro"`
	Data           *string         `gorm:"type:date" json:"data"`
}

func (Demanda) TableName() string {
	return "demandas"
}
