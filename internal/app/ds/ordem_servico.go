package ds

import "time"

// Tabela de ordens de serviço
type OrdemServico struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ClienteID    *uint      `json:"cliente_id" gorm:"index"`
	ClienteNome  string     `json:"cliente_nome" gorm:"type:varchar(150)"`
	Telefone     string     `json:"telefone" gorm:"type:varchar(20)"`
	TipoServico  string     `json:"tipo_servico" gorm:"type:varchar(50)"` // manutencao, instalacao, reparo, vistoria
	Descricao    string     `json:"descricao" gorm:"type:text"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:'rascunho';not null"` // rascunho, aberta, em_andamento, concluida, cancelada
	DataAgendada *time.Time `json:"data_agendada"`
	Origem       string     `json:"origem" gorm:"type:varchar(20);default:'manual'"` // manual, whatsapp
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Cliente *Cliente `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
}

// Equipamentos/linhas da ordem de serviço
type OrdemServicoItem struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	OrdemServicoID uint   `json:"ordem_servico_id" gorm:"index;not null"`
	Equipamento    string `json:"equipamento" gorm:"type:varchar(150)"`
	Descricao      string `json:"descricao" gorm:"type:varchar(200)"`
	Quantidade     int    `json:"quantidade" gorm:"default:1;not null"`
}

// Fotos anexadas à OS, armazenadas como base64
type OrdemServicoFoto struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrdemServicoID uint      `json:"ordem_servico_id" gorm:"index;not null"`
	Legenda        string    `json:"legenda" gorm:"type:varchar(150)"`
	Conteudo       string    `json:"conteudo" gorm:"type:text;not null"` // base64
	CreatedAt      time.Time `json:"created_at"`
}

// Assinaturas coletadas no encerramento da OS
type OrdemServicoAssinatura struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrdemServicoID uint      `json:"ordem_servico_id" gorm:"index;not null"`
	Nome           string    `json:"nome" gorm:"type:varchar(150)"`
	Documento      string    `json:"documento" gorm:"type:varchar(20)"`
	Conteudo       string    `json:"conteudo" gorm:"type:text;not null"` // base64
	CreatedAt      time.Time `json:"created_at"`
}
