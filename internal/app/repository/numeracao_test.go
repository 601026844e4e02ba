package repository

import (
	"testing"
	"time"
)

func TestProximoNumero(t *testing.T) {
	hoje := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("primeiro do dia", func(t *testing.T) {
		if got := ProximoNumero(hoje, ""); got != "20250101001" {
			t.Fatalf("esperava 20250101001, obteve %s", got)
		}
	})

	t.Run("incrementa sequencial", func(t *testing.T) {
		if got := ProximoNumero(hoje, "20250101007"); got != "20250101008" {
			t.Fatalf("esperava 20250101008, obteve %s", got)
		}
	})

	t.Run("ultimo de outro dia reinicia", func(t *testing.T) {
		if got := ProximoNumero(hoje, "20241231042"); got != "20250101001" {
			t.Fatalf("esperava 20250101001, obteve %s", got)
		}
	})

	t.Run("sequencia estritamente crescente", func(t *testing.T) {
		ultimo := ""
		anterior := ""
		for i := 0; i < 20; i++ {
			n := ProximoNumero(hoje, ultimo)
			if anterior != "" && n <= anterior {
				t.Fatalf("número %s não é maior que %s", n, anterior)
			}
			anterior = n
			ultimo = n
		}
	})

	t.Run("prefixo compartilhado no mesmo dia", func(t *testing.T) {
		a := ProximoNumero(hoje, "")
		b := ProximoNumero(hoje, a)
		if a[:8] != b[:8] {
			t.Fatalf("prefixos divergem: %s / %s", a, b)
		}
		if a[8:] == b[8:] {
			t.Fatalf("sufixos iguais: %s / %s", a, b)
		}
	})
}

func TestNumeroParcela(t *testing.T) {
	if got := NumeroParcela("0001", 1, 1); got != "0001" {
		t.Fatalf("parcela única não leva sufixo: %s", got)
	}
	if got := NumeroParcela("0001", 2, 3); got != "0001-02" {
		t.Fatalf("esperava 0001-02, obteve %s", got)
	}
}
