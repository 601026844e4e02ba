package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	t.Run("mesmo ponto", func(t *testing.T) {
		if d := Haversine(-23.5505, -46.6333, -23.5505, -46.6333); d != 0 {
			t.Fatalf("esperava 0, obteve %f", d)
		}
	})

	t.Run("sao paulo a rio", func(t *testing.T) {
		// distância em linha reta conhecida, ~357 km
		d := Haversine(-23.5505, -46.6333, -22.9068, -43.1729)
		if math.Abs(d-357) > 5 {
			t.Fatalf("distância fora do esperado: %f", d)
		}
	})

	t.Run("simetria", func(t *testing.T) {
		ida := Haversine(-23.5505, -46.6333, -22.9068, -43.1729)
		volta := Haversine(-22.9068, -43.1729, -23.5505, -46.6333)
		if math.Abs(ida-volta) > 1e-9 {
			t.Fatalf("haversine não é simétrica: %f != %f", ida, volta)
		}
	})
}
