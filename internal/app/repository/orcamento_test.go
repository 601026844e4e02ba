package repository

import (
	"testing"

	"gestaocon/internal/app/ds"
)

func TestCalcularTotais(t *testing.T) {
	t.Run("sem itens zera os totais", func(t *testing.T) {
		material, maoObra, total := CalcularTotais(nil)
		if material != 0 || maoObra != 0 || total != 0 {
			t.Fatalf("esperava zeros, obteve %f/%f/%f", material, maoObra, total)
		}
	})

	t.Run("soma quantidade vezes valores", func(t *testing.T) {
		itens := []ds.OrcamentoItem{
			{Quantidade: 2, ValorUnitario: 10, ValorMaoObra: 5},
			{Quantidade: 3, ValorUnitario: 10, ValorMaoObra: 5},
		}
		material, maoObra, total := CalcularTotais(itens)
		if material != 50 {
			t.Fatalf("valor_material esperado 50, obteve %f", material)
		}
		if maoObra != 25 {
			t.Fatalf("valor_mao_obra esperado 25, obteve %f", maoObra)
		}
		if total != 75 {
			t.Fatalf("valor_total esperado 75, obteve %f", total)
		}
	})
}

func TestFormatarCodigoProduto(t *testing.T) {
	if got := FormatarCodigoProduto("FER", "BSH", 7); got != "FERBSH007" {
		t.Fatalf("esperava FERBSH007, obteve %s", got)
	}
}

func TestGerarSigla(t *testing.T) {
	casos := map[string]string{
		"Ferramentas":   "FRR",
		"Bosch":         "BSC",
		"Aço":           "AO",
		"123":           "GEN",
		"abc ferragens": "BCF",
	}
	for nome, esperado := range casos {
		if got := GerarSigla(nome); got != esperado {
			t.Fatalf("GerarSigla(%q) = %q, esperava %q", nome, got, esperado)
		}
	}
}
