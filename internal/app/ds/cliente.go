package ds

import "time"

// Tabela de clientes (condomínios e empresas atendidas)
type Cliente struct {
	ID             uint     `json:"id" gorm:"primaryKey"`
	Nome           string   `json:"nome" gorm:"type:varchar(150);not null"`
	RazaoSocial    string   `json:"razao_social" gorm:"type:varchar(150)"`
	CNPJ           string   `json:"cnpj" gorm:"type:varchar(18)"`
	CPF            string   `json:"cpf" gorm:"type:varchar(14)"`
	Email          string   `json:"email" gorm:"type:varchar(100)"`
	Telefone       string   `json:"telefone" gorm:"type:varchar(20)"`
	Celular        string   `json:"celular" gorm:"type:varchar(20)"`
	Endereco       string   `json:"endereco" gorm:"type:varchar(200)"`
	Numero         string   `json:"numero" gorm:"type:varchar(20)"`
	Bairro         string   `json:"bairro" gorm:"type:varchar(100)"`
	Cidade         string   `json:"cidade" gorm:"type:varchar(100)"`
	Estado         string   `json:"estado" gorm:"type:varchar(2)"`
	CEP            string   `json:"cep" gorm:"type:varchar(9)"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	DistanciaKm    *float64 `json:"distancia_km" gorm:"type:decimal(8,2)"`
	PossuiContrato bool     `json:"possui_contrato" gorm:"default:false;not null"`
	Observacoes    string   `json:"observacoes" gorm:"type:text"`
	Status         string   `json:"status" gorm:"type:varchar(20);default:'ativo';not null"` // ativo, inativo
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
