package ds

import "time"

// Tabela de boletos. Parcelamentos compartilham o número base com sufixo
// da parcela (0001-01, 0001-02, ...). O status gravado não reflete
// vencimento: boleto pendente com data_vencimento passada é reportado
// como vencido pela camada de leitura.
type Boleto struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Numero         string     `json:"numero" gorm:"type:varchar(20);unique;not null"`
	ClienteID      uint       `json:"cliente_id" gorm:"index;not null"`
	ContratoNumero string     `json:"contrato_numero" gorm:"type:varchar(15);index"`
	Descricao      string     `json:"descricao" gorm:"type:varchar(200)"`
	Valor          float64    `json:"valor" gorm:"type:decimal(12,2);not null"`
	DataVencimento time.Time  `json:"data_vencimento" gorm:"not null"`
	DataPagamento  *time.Time `json:"data_pagamento"`
	Parcela        int        `json:"parcela" gorm:"default:1;not null"`
	TotalParcelas  int        `json:"total_parcelas" gorm:"default:1;not null"`
	Status         string     `json:"status" gorm:"type:varchar(20);default:'pendente';not null"` // pendente, pago, cancelado
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Cliente *Cliente `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
}
