package ingest

import (
	"bitbucket.org/armazemdata/corte_backend/models"
)

// Kind selects which canonical schema an upload feeds.
type Kind string

const (
	KindEstoque Kind = "estoque"
	KindDemanda Kind = "demanda"
)

func (k Kind) Valid() bool {
	return k == KindEstoque || k == KindDemanda
}

func (k Kind) Table() string {
	if k == KindEstoque {
		return models.Estoque{}.TableName()
	}
	return models.Demanda{}.TableName()
}

// DateColumn names the business-date column of the kind's table, the key
// of the replace-by-date semantics.
func (k Kind) DateColumn() string {
	if k == KindEstoque {
		return "data_estoque"
	}
	return "data_demanda"
}

// transformEstoque builds one canonical stock record from a raw row.
// Most fields resolve through the tolerant header table because stock
// export headers vary across WMS versions; Tipo de depósito, Ár.armazen.
// and Unidade de depósito are stable and looked up by their one exact
// label with no fallback.
func transformEstoque(row Row, businessDate string) *models.Estoque {
	e := &models.Estoque{DataEstoque: businessDate}

	if label, ok := resolveHeader(row.Labels, fieldMaterial); ok {
		e.Material = row.Cells[label].String()
	}
	if label, ok := resolveHeader(row.Labels, fieldCentro); ok {
		e.Centro = row.Cells[label].String()
	}
	if label, ok := resolveHeader(row.Labels, fieldTextoBreveMaterial); ok {
		e.TextoBreveMaterial = row.Cells[label].String()
	}
	if label, ok := resolveHeader(row.Labels, fieldPosicaoDeposito); ok {
		e.PosicaoDeposito = row.Cells[label].String()
	}
	if label, ok := resolveHeader(row.Labels, fieldEstoqueDisponivel); ok {
		e.EstoqueDisponivel = NormalizeDecimal(row.Cells[label])
	}
	if label, ok := resolveHeader(row.Labels, fieldUmBasica); ok {
		e.UmBasica = row.Cells[label].String()
	}
	if label, ok := resolveHeader(row.Labels, fieldDataEntrada); ok {
		e.DataEntradaMercadorias = NormalizeDate(row.Cells[label])
	}
	if label, ok := resolveHeader(row.Labels, fieldTipoPosicaoDeposito); ok {
		e.TipoPosicaoDeposito = row.Cells[label].String()
	}
	if label, ok := resolveHeader(row.Labels, fieldDeposito); ok {
		e.Deposito = row.Cells[label].String()
	}

	e.TipoDeposito = row.Cell("Tipo de depósito").String()
	e.AreaArmazenamento = row.Cell("Ár.armazen.").String()
	e.UnidadeDeposito = row.Cell("Unidade de depósito").String()

	return e
}

// transformDemanda builds one canonical demand record. The demand export
// layout does not vary, every field comes from its fixed uppercase label.
func transformDemanda(row Row, businessDate string) *models.Demanda {
	return &models.Demanda{
		DataDemanda:    businessDate,
		NDeposito:      row.Cell("N_DEPOSITO").String(),
		NumeroNt:       row.Cell("NUMERO_NT").String(),
		Status:         row.Cell("STATUS").String(),
		TpTransporte:   row.Cell("TP_TRANSPORTE").String(),
		PrioTransporte: row.Cell("PRIO_TRANSPORTE").String(),
		Usuario:        row.Cell("USUARIO").String(),
		DtCriacao:      NormalizeDate(row.Cell("DT_CRIACAO")),
		HrCriacao:      NormalizeTime(row.Cell("HR_CRIACAO")),
		TpMovimento:    row.Cell("TP_MOVIMENTO").String(),
		TpDeposito:     row.Cell("TP_DEPOSITO").String(),
		Posicao:        row.Cell("POSICAO").String(),
		DtPlanejada:    NormalizeDate(row.Cell("DT_PLANEJADA")),
		RefTransporte:  row.Cell("REF_TRANSPORTE").String(),
		ItemNt:         row.Cell("ITEM_NT").String(),
		ItemFinalizado: row.Cell("ITEM_FINALIZADO").String(),
		Material:       row.Cell("MATERIAL").String(),
		Centro:         row.Cell("CENTRO").String(),
		QuantNt:        NormalizeDecimal(row.Cell("QUANT_NT")),
		Unidade:        row.Cell("UNIDADE").String(),
		NumeroOt:       row.Cell("NUMERO_OT").String(),
		QuantOt:        NormalizeDecimal(row.Cell("QUANT_OT")),
		Deposito:       row.Cell("DEPOSITO").String(),
		DescMaterial:   row.Cell("DESC_MATERIAL").String(),
		Setor:          row.Cell("SETOR").String(),
		Palete:         row.Cell("PALETE").String(),
		PaleteOrigem:   row.Cell("PALETE_ORIGEM").String(),
		Endereco:       row.Cell("ENDERECO").String(),
		Ot:             row.Cell("OT").String(),
		Pedido:         row.Cell("PEDIDO").String(),
		Remessa:        row.Cell("REMESSA").String(),
		NomeUsuario:    row.Cell("NOME_USUARIO").String(),
		DtProducao:     NormalizeDate(row.Cell("DT_PRODUCAO")),
		HrRegistro:     NormalizeTime(row.Cell("HR_REGISTRO")),
		Data:           NormalizeDate(row.Cell("DATA")),
	}
}
