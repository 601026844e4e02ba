package utils

import (
	"testing"
	"time"
)

func TestProximoDiaUtil(t *testing.T) {
	casos := []struct {
		nome     string
		entrada  time.Time
		esperado time.Time
	}{
		{
			nome:     "sexta permanece",
			entrada:  time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			esperado: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			nome:     "sabado vai para segunda",
			entrada:  time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
			esperado: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			nome:     "domingo vai para segunda",
			entrada:  time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			esperado: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := ProximoDiaUtil(c.entrada)
			if !got.Equal(c.esperado) {
				t.Fatalf("esperava %v, obteve %v", c.esperado, got)
			}
			if got.Weekday() == time.Saturday || got.Weekday() == time.Sunday {
				t.Fatalf("resultado caiu em fim de semana: %v", got.Weekday())
			}
			// aplicar duas vezes não muda o resultado
			if denovo := ProximoDiaUtil(got); !denovo.Equal(got) {
				t.Fatalf("ajuste não é idempotente: %v != %v", denovo, got)
			}
		})
	}
}

func TestParseData(t *testing.T) {
	iso, err := ParseData("2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	br, err := ParseData("10/03/2025")
	if err != nil {
		t.Fatal(err)
	}
	if !iso.Equal(br) {
		t.Fatalf("formatos divergem: %v != %v", iso, br)
	}
	if FormatarData(iso) != "10/03/2025" {
		t.Fatalf("formato inesperado: %s", FormatarData(iso))
	}
}
