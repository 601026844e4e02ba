package utils

import "time"

// ProximoDiaUtil empurra datas que caem em fim de semana para a segunda-feira
// seguinte. Feriados não são considerados aqui; a tabela de feriados só é
// usada para exibição (ver DESIGN.md).
func ProximoDiaUtil(data time.Time) time.Time {
	for data.Weekday() == time.Saturday || data.Weekday() == time.Sunday {
		data = data.AddDate(0, 0, 1)
	}
	return data
}

// ParseData aceita os dois formatos que chegam do frontend
func ParseData(valor string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", valor); err == nil {
		return t, nil
	}
	return time.Parse("02/01/2006", valor)
}

// FormatarData devolve a data no formato brasileiro
func FormatarData(data time.Time) string {
	return data.Format("02/01/2006")
}
