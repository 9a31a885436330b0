package ingest

import "testing"

func rowFromPairs(pairs [][2]string) Row {
	row := Row{Cells: make(map[string]Cell, len(pairs))}
	for _, p := range pairs {
		row.Labels = append(row.Labels, p[0])
		row.Cells[p[0]] = newCell(p[1])
	}
	return row
}

func TestTransformEstoque(t *testing.T) {
	row := rowFromPairs([][2]string{
		{"Material", "000123"},
		{"Cen.", "BR01"},
		{"Texto breve material", "PARAFUSO M8"},
		{"Tipo dep.", "001"},
		{"Dep.", "CD1"},
		{"Pos.depósito", "A-01-02"},
		{"Estoque disponível", "12,5"},
		{"UMB", "UN"},
		{"Data EM", "45658"},
		{"Tipo de depósito", "Depósito padrão"},
		{"Ár.armazen.", "001"},
		{"Unidade de depósito", "PAL-9"},
	})

	e := transformEstoque(row, "2025-02-01")

	if e.DataEstoque != "2025-02-01" {
		t.Fatalf("business date: got %q", e.DataEstoque)
	}
	if e.Material != "000123" {
		t.Fatalf("material: got %q", e.Material)
	}
	if e.Centro != "BR01" {
		t.Fatalf("centro: got %q", e.Centro)
	}
	if e.TextoBreveMaterial != "PARAFUSO M8" {
		t.Fatalf("texto breve: got %q", e.TextoBreveMaterial)
	}
	if e.TipoPosicaoDeposito != "001" {
		t.Fatalf("tipo posição depósito: got %q", e.TipoPosicaoDeposito)
	}
	if e.Deposito != "CD1" {
		t.Fatalf("depósito: got %q", e.Deposito)
	}
	if e.PosicaoDeposito != "A-01-02" {
		t.Fatalf("posição depósito: got %q", e.PosicaoDeposito)
	}
	if e.EstoqueDisponivel.String() != "12.5" {
		t.Fatalf("estoque disponível: got %s", e.EstoqueDisponivel.String())
	}
	if e.UmBasica != "UN" {
		t.Fatalf("um básica: got %q", e.UmBasica)
	}
	if e.DataEntradaMercadorias == nil || *e.DataEntradaMercadorias != "2025-01-01" {
		t.Fatalf("data entrada mercadorias: got %v", e.DataEntradaMercadorias)
	}
	if e.TipoDeposito != "Depósito padrão" {
		t.Fatalf("tipo depósito (exact label): got %q", e.TipoDeposito)
	}
	if e.AreaArmazenamento != "001" {
		t.Fatalf("área armazenamento (exact label): got %q", e.AreaArmazenamento)
	}
	if e.UnidadeDeposito != "PAL-9" {
		t.Fatalf("unidade depósito (exact label): got %q", e.UnidadeDeposito)
	}
}

func TestTransformEstoqueCanonicalGoodsReceiptHeader(t *testing.T) {
	// Newer exports spell the goods-receipt date column out in full.
	row := rowFromPairs([][2]string{
		{"Material", "000123"},
		{"Data da entrada de mercadorias", "45658"},
	})
	e := transformEstoque(row, "2025-02-01")
	if e.DataEntradaMercadorias == nil || *e.DataEntradaMercadorias != "2025-01-01" {
		t.Fatalf("data entrada mercadorias (full label): got %v", e.DataEntradaMercadorias)
	}
}

func TestTransformEstoqueDefaults(t *testing.T) {
	row := rowFromPairs([][2]string{
		{"UNRELATED", "x"},
	})
	e := transformEstoque(row, "2025-02-01")

	if e.Material != "" || e.Centro != "" || e.TipoDeposito != "" || e.UmBasica != "" {
		t.Fatalf("unresolved text fields must default to empty string: %+v", e)
	}
	if !e.EstoqueDisponivel.IsZero() {
		t.Fatalf("unresolved quantity must default to zero, got %s", e.EstoqueDisponivel.String())
	}
	if e.DataEntradaMercadorias != nil {
		t.Fatalf("unresolved date must default to nil")
	}
}

func TestTransformEstoqueExactLabelsHaveNoFallback(t *testing.T) {
	// Near-miss spellings of the fixed labels must not be picked up;
	// only tolerant fields get fuzzy matching.
	row := rowFromPairs([][2]string{
		{"Ar.armazen.", "002"},         // missing accent
		{"Unidade de deposito", "PAL"}, // missing accent
	})
	e := transformEstoque(row, "2025-02-01")
	if e.AreaArmazenamento != "" {
		t.Fatalf("área armazenamento must require the exact label, got %q", e.AreaArmazenamento)
	}
	if e.UnidadeDeposito != "" {
		t.Fatalf("unidade depósito must require the exact label, got %q", e.UnidadeDeposito)
	}
}

func TestTransformDemanda(t *testing.T) {
	row := rowFromPairs([][2]string{
		{"N_DEPOSITO", "100"},
		{"NUMERO_NT", "4711"},
		{"STATUS", "A"},
		{"TP_TRANSPORTE", "E"},
		{"PRIO_TRANSPORTE", "2"},
		{"USUARIO", "JSILVA"},
		{"DT_CRIACAO", "45658"},
		{"HR_CRIACAO", "0.5"},
		{"TP_MOVIMENTO", "850"},
		{"TP_DEPOSITO", "001"},
		{"DT_PLANEJADA", "31/12/2023"},
		{"MATERIAL", "000123"},
		{"CENTRO", "BR01"},
		{"QUANT_NT", "10,5"},
		{"UNIDADE", "UN"},
		{"NUMERO_OT", "9901"},
		{"QUANT_OT", "3"},
		{"DESC_MATERIAL", "PARAFUSO M8"},
		{"HR_REGISTRO", "08:30"},
		{"DATA", "0000-00-00"},
	})

	d := transformDemanda(row, "2025-02-01")

	if d.DataDemanda != "2025-02-01" {
		t.Fatalf("business date: got %q", d.DataDemanda)
	}
	if d.NDeposito != "100" || d.NumeroNt != "4711" || d.Status != "A" {
		t.Fatalf("identity fields: %+v", d)
	}
	if d.DtCriacao == nil || *d.DtCriacao != "2025-01-01" {
		t.Fatalf("dt criação: got %v", d.DtCriacao)
	}
	if d.HrCriacao == nil || *d.HrCriacao != "12:00:00" {
		t.Fatalf("hr criação: got %v", d.HrCriacao)
	}
	if d.DtPlanejada == nil || *d.DtPlanejada != "31/12/2023" {
		t.Fatalf("dt planejada passthrough: got %v", d.DtPlanejada)
	}
	if d.QuantNt.String() != "10.5" {
		t.Fatalf("quant nt: got %s", d.QuantNt.String())
	}
	if d.QuantOt.String() != "3" {
		t.Fatalf("quant ot: got %s", d.QuantOt.String())
	}
	if d.HrRegistro == nil || *d.HrRegistro != "08:30" {
		t.Fatalf("hr registro passthrough: got %v", d.HrRegistro)
	}
	if d.Data != nil {
		t.Fatalf("sentinel date must be nil, got %v", d.Data)
	}
	// Fields absent from the file default to empty string.
	if d.Posicao != "" || d.Setor != "" || d.Palete != "" {
		t.Fatalf("missing demand fields must default to empty string: %+v", d)
	}
}

func TestTransformDemandaUsesExactLabelsOnly(t *testing.T) {
	// Lowercase or near-miss labels must not resolve; the demand export
	// layout is stable and gets no tolerant matching.
	row := rowFromPairs([][2]string{
		{"numero_nt", "4711"},
		{"Material", "000123"},
	})
	d := transformDemanda(row, "2025-02-01")
	if d.NumeroNt != "" || d.Material != "" {
		t.Fatalf("demand lookup must be exact-label only: %+v", d)
	}
}
