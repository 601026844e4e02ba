package ds

import "time"

// Tabela de propostas de contrato de conservação
type PropostaContrato struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Numero      string  `json:"numero" gorm:"type:varchar(15);unique;not null"` // mesma regra de numeração do orçamento
	ClienteID   *uint   `json:"cliente_id" gorm:"index"`
	ClienteNome string  `json:"cliente_nome" gorm:"type:varchar(150)"`
	ValorMensal float64 `json:"valor_mensal" gorm:"type:decimal(12,2);default:0;not null"`
	PrazoMeses  int     `json:"prazo_meses" gorm:"default:12;not null"`
	Status      string  `json:"status" gorm:"type:varchar(20);default:'pendente';not null"` // pendente, aceita, recusada
	Observacoes string  `json:"observacoes" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Cliente *Cliente `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
}

// Equipamentos cobertos pela proposta
type PropostaItem struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	PropostaNumero string  `json:"proposta_numero" gorm:"type:varchar(15);index;not null"`
	Equipamento    string  `json:"equipamento" gorm:"type:varchar(150);not null"`
	Localizacao    string  `json:"localizacao" gorm:"type:varchar(150)"`
	Quantidade     int     `json:"quantidade" gorm:"default:1;not null"`
	ValorUnitario  float64 `json:"valor_unitario" gorm:"type:decimal(12,2);default:0;not null"`
}
