package ingest

import "testing"

func TestResolveHeaderFirstColumnWins(t *testing.T) {
	// "Texto breve material" also contains "material"; because resolution
	// walks columns left to right, it beats the dedicated column when it
	// comes first. That tolerance policy is load-bearing.
	labels := []string{"Texto breve material", "Material", "Cen."}
	got, ok := resolveHeader(labels, fieldMaterial)
	if !ok || got != "Texto breve material" {
		t.Fatalf("expected first matching column, got %q (ok=%v)", got, ok)
	}

	labels = []string{"Cen.", "Material", "Texto breve material"}
	got, ok = resolveHeader(labels, fieldMaterial)
	if !ok || got != "Material" {
		t.Fatalf("expected Material, got %q (ok=%v)", got, ok)
	}
}

func TestResolveHeaderIgnoresNonMatchingOrder(t *testing.T) {
	base := []string{"UMB", "Estoque disponível", "Material"}
	reordered := []string{"Material", "UMB", "Estoque disponível"}

	for _, field := range []string{fieldUmBasica, fieldEstoqueDisponivel, fieldMaterial} {
		a, okA := resolveHeader(base, field)
		b, okB := resolveHeader(reordered, field)
		if okA != okB || a != b {
			t.Fatalf("field %s: resolution changed with reordering of non-matching columns: %q vs %q", field, a, b)
		}
	}
}

func TestResolveHeaderCaseAndWhitespace(t *testing.T) {
	labels := []string{"  CEN.  ", "MATERIAL"}
	got, ok := resolveHeader(labels, fieldCentro)
	if !ok || got != "  CEN.  " {
		t.Fatalf("expected trimmed case-insensitive exact match, got %q (ok=%v)", got, ok)
	}
}

func TestResolveHeaderExactDoesNotMatchSubstring(t *testing.T) {
	// "Tipo de depósito" is neither the exact "tipo dep." label nor does
	// it contain "tipo depósito"; the position-type field must not pick it.
	labels := []string{"Tipo de depósito"}
	if got, ok := resolveHeader(labels, fieldTipoPosicaoDeposito); ok {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestResolveHeaderGoodsReceiptDateSpellings(t *testing.T) {
	// Both the full canonical label and the abbreviated export variants
	// must bind the goods-receipt date column.
	for _, label := range []string{
		"Data da entrada de mercadorias",
		"Data EM",
		"Data entrada de mercadorias",
	} {
		got, ok := resolveHeader([]string{"Material", label}, fieldDataEntrada)
		if !ok || got != label {
			t.Fatalf("label %q: expected match, got %q (ok=%v)", label, got, ok)
		}
	}
}

func TestResolveHeaderNotFound(t *testing.T) {
	labels := []string{"QUANT_NT", "NUMERO_NT"}
	if got, ok := resolveHeader(labels, fieldEstoqueDisponivel); ok {
		t.Fatalf("expected not found, got %q", got)
	}
	if got, ok := resolveHeader(nil, fieldMaterial); ok {
		t.Fatalf("expected not found on empty labels, got %q", got)
	}
}
