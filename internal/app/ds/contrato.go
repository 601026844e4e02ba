package ds

import "time"

// Tabela de contratos de conservação. Criado a partir de uma proposta aceita,
// copiando cliente, equipamentos e valores vigentes no momento do aceite.
type ContratoConservacao struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Numero         string    `json:"numero" gorm:"type:varchar(15);unique;not null"`
	PropostaNumero string    `json:"proposta_numero" gorm:"type:varchar(15);index"`
	ClienteID      *uint     `json:"cliente_id" gorm:"index"`
	ClienteNome    string    `json:"cliente_nome" gorm:"type:varchar(150)"`
	Equipamentos   string    `json:"equipamentos" gorm:"type:text"` // snapshot dos equipamentos da proposta
	ValorMensal    float64   `json:"valor_mensal" gorm:"type:decimal(12,2);default:0;not null"`
	DiaVencimento  int       `json:"dia_vencimento" gorm:"default:5;not null"`
	DataInicio     time.Time `json:"data_inicio" gorm:"not null"`
	PrazoMeses     int       `json:"prazo_meses" gorm:"default:12;not null"`
	DataFim        time.Time `json:"data_fim" gorm:"not null"` // data_inicio + prazo_meses
	Status         string    `json:"status" gorm:"type:varchar(20);default:'ativo';not null"` // ativo, encerrado, cancelado
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Cliente *Cliente `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
}

func (ContratoConservacao) TableName() string {
	return "contratos_conservacao"
}
