package ingest

import "strings"

// Canonical stock fields resolved by tolerant header matching. The demand
// layout is stable across WMS versions and is looked up by exact label
// only, so it has no entries here.
const (
	fieldMaterial            = "material"
	fieldCentro              = "centro"
	fieldTextoBreveMaterial  = "texto_breve_material"
	fieldTipoPosicaoDeposito = "tipo_posicao_deposito"
	fieldDeposito            = "deposito"
	fieldPosicaoDeposito     = "posicao_deposito"
	fieldEstoqueDisponivel   = "estoque_disponivel"
	fieldUmBasica            = "um_basica"
	fieldDataEntrada         = "data_entrada_mercadorias"
)

type matchKind int

const (
	matchExact matchKind = iota
	matchContains
)

type headerPredicate struct {
	kind     matchKind
	fragment string
}

// stockHeaderRules maps each tolerant stock field to the label spellings
// known from the different WMS export versions. Resolution walks the
// columns in their original order and the first label satisfying any
// predicate wins; with overlapping headers that can pick an unintended
// column, which is the accepted tolerance policy of the source system.
var stockHeaderRules = map[string][]headerPredicate{
	fieldMaterial: {
		{matchContains, "material"},
	},
	fieldCentro: {
		{matchExact, "cen."},
		{matchExact, "centro"},
		{matchContains, "centro"},
	},
	fieldTextoBreveMaterial: {
		{matchContains, "texto breve"},
	},
	fieldTipoPosicaoDeposito: {
		{matchExact, "tipo dep."},
		{matchExact, "tp."},
		{matchContains, "tipo depósito"},
	},
	fieldDeposito: {
		{matchExact, "dep."},
		{matchExact, "depósito"},
		{matchContains, "depósito"},
	},
	fieldPosicaoDeposito: {
		{matchContains, "pos.depós"},
		{matchContains, "posição"},
	},
	fieldEstoqueDisponivel: {
		{matchContains, "estoque dispon"},
	},
	fieldUmBasica: {
		{matchExact, "umb"},
		{matchExact, "um básica"},
	},
	fieldDataEntrada: {
		{matchExact, "data da entrada de mercadorias"},
		{matchContains, "entrada de mercadorias"},
		{matchContains, "data em"},
	},
}

func (p headerPredicate) matches(normalized string) bool {
	fragment := strings.ToLower(strings.TrimSpace(p.fragment))
	if p.kind == matchExact {
		return normalized == fragment
	}
	return strings.Contains(normalized, fragment)
}

// resolveHeader returns the original label that supplies the given
// canonical field, scanning labels in their left-to-right column order.
// Matching is case-insensitive and trims surrounding whitespace on both
// sides; internal whitespace and accents are left alone.
func resolveHeader(labels []string, field string) (string, bool) {
	return firstMatch(labels, stockHeaderRules[field])
}

func firstMatch(labels []string, predicates []headerPredicate) (string, bool) {
	if len(predicates) == 0 {
		return "", false
	}
	for _, label := range labels {
		normalized := strings.ToLower(strings.TrimSpace(label))
		for _, p := range predicates {
			if p.matches(normalized) {
				return label, true
			}
		}
	}
	return "", false
}
