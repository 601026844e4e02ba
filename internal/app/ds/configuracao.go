package ds

import "time"

// Tabela de feriados, usada na exibição de calendário e configuração.
// O ajuste de vencimento para dia útil não consulta esta tabela (ver DESIGN.md).
type Feriado struct {
	ID   uint      `json:"id" gorm:"primaryKey"`
	Nome string    `json:"nome" gorm:"type:varchar(100);not null"`
	Data time.Time `json:"data" gorm:"not null"`
}

// Logos do sistema (cabeçalho, rodapé), armazenadas no MinIO
type LogoSistema struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Posicao   string    `json:"posicao" gorm:"type:varchar(20);unique;not null"` // cabecalho, rodape
	Arquivo   string    `json:"arquivo" gorm:"type:varchar(255);not null"`       // nome do objeto no MinIO
	UpdatedAt time.Time `json:"updated_at"`
}

// Configuração do papel timbrado usado nos documentos gerados
type LayoutTimbrado struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Cabecalho      string    `json:"cabecalho" gorm:"type:text"`
	Rodape         string    `json:"rodape" gorm:"type:text"`
	MargemSuperior int       `json:"margem_superior" gorm:"default:30"`
	MargemInferior int       `json:"margem_inferior" gorm:"default:20"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Valor cobrado por quilômetro de deslocamento
type ConfiguracaoKm struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ValorKm   float64   `json:"valor_km" gorm:"type:decimal(8,2);not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
