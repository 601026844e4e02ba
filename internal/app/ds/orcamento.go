package ds

import "time"

// Tabela de orçamentos. Os totais são agregados materializados: sempre
// recalculados a partir dos itens após qualquer escrita em orcamento_items.
type Orcamento struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Numero        string     `json:"numero" gorm:"type:varchar(15);unique;not null"` // AAAAMMDD + sequencial de 3 dígitos
	ClienteID     *uint      `json:"cliente_id" gorm:"index"`
	ClienteNome   string     `json:"cliente_nome" gorm:"type:varchar(150)"`
	Descricao     string     `json:"descricao" gorm:"type:text"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:'pendente';not null"` // pendente, aprovado, recusado
	ValorMaterial float64    `json:"valor_material" gorm:"type:decimal(12,2);default:0;not null"`
	ValorMaoObra  float64    `json:"valor_mao_obra" gorm:"type:decimal(12,2);default:0;not null"`
	ValorTotal    float64    `json:"valor_total" gorm:"type:decimal(12,2);default:0;not null"`
	Validade      *time.Time `json:"validade"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Cliente *Cliente `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
}

// Itens do orçamento, ligados pelo número do documento
type OrcamentoItem struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	OrcamentoNumero string  `json:"orcamento_numero" gorm:"type:varchar(15);index;not null"`
	ProdutoID       *uint   `json:"produto_id" gorm:"index"`
	Descricao       string  `json:"descricao" gorm:"type:varchar(200)"`
	Quantidade      float64 `json:"quantidade" gorm:"type:decimal(10,2);not null"`
	ValorUnitario   float64 `json:"valor_unitario" gorm:"type:decimal(12,2);not null"`
	ValorMaoObra    float64 `json:"valor_mao_obra" gorm:"type:decimal(12,2);default:0;not null"`

	Produto *Produto `json:"produto,omitempty" gorm:"foreignKey:ProdutoID"`
}
