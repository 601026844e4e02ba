package repository

import (
	"testing"
	"time"

	"gestaocon/internal/app/ds"
)

func TestStatusEfetivo(t *testing.T) {
	hoje := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("pendente vencido vira vencido", func(t *testing.T) {
		b := &ds.Boleto{
			Status:         "pendente",
			DataVencimento: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		}
		if got := StatusEfetivo(b, hoje); got != "vencido" {
			t.Fatalf("esperava vencido, obteve %s", got)
		}
		// a coluna gravada não muda
		if b.Status != "pendente" {
			t.Fatalf("status gravado foi alterado: %s", b.Status)
		}
	})

	t.Run("pendente no prazo permanece pendente", func(t *testing.T) {
		b := &ds.Boleto{
			Status:         "pendente",
			DataVencimento: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		}
		if got := StatusEfetivo(b, hoje); got != "pendente" {
			t.Fatalf("esperava pendente, obteve %s", got)
		}
	})

	t.Run("pago nunca vence", func(t *testing.T) {
		b := &ds.Boleto{
			Status:         "pago",
			DataVencimento: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		if got := StatusEfetivo(b, hoje); got != "pago" {
			t.Fatalf("esperava pago, obteve %s", got)
		}
	})
}
