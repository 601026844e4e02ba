package ds

import "time"

// Tabela de categorias de produto. O código (sigla) entra na composição
// do código do produto e o contador registra o último sequencial usado.
type TipoProduto struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Nome     string `json:"nome" gorm:"type:varchar(100);unique;not null"`
	Codigo   string `json:"codigo" gorm:"type:varchar(10);not null"`
	Contador int    `json:"contador" gorm:"default:0;not null"`
}

// Tabela de marcas
type Marca struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Nome     string `json:"nome" gorm:"type:varchar(100);unique;not null"`
	Sigla    string `json:"sigla" gorm:"type:varchar(10);not null"`
	Contador int    `json:"contador" gorm:"default:0;not null"`
}

// Tabela de produtos e serviços. Categoria e marca são chaves estrangeiras;
// os nomes são resolvidos por join na listagem (a unicidade do nome é
// garantida nas tabelas de origem).
type Produto struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Codigo        string  `json:"codigo" gorm:"type:varchar(20);unique;not null"`
	Descricao     string  `json:"descricao" gorm:"type:varchar(200);not null"`
	TipoID        *uint   `json:"tipo_id" gorm:"index"`
	MarcaID       *uint   `json:"marca_id" gorm:"index"`
	NCM           string  `json:"ncm" gorm:"type:varchar(10)"`
	Unidade       string  `json:"unidade" gorm:"type:varchar(10);default:'UN'"`
	PrecoCusto    float64 `json:"preco_custo" gorm:"type:decimal(12,2);default:0"`
	PrecoVenda    float64 `json:"preco_venda" gorm:"type:decimal(12,2);default:0"`
	ValorMaoObra  float64 `json:"valor_mao_obra" gorm:"type:decimal(12,2);default:0"`
	Margem        float64 `json:"margem" gorm:"type:decimal(6,2);default:0"`
	Estoque       int     `json:"estoque" gorm:"default:0;not null"`
	EstoqueMinimo int     `json:"estoque_minimo" gorm:"default:0;not null"`
	IsServico     bool    `json:"is_servico" gorm:"default:false;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Tipo  *TipoProduto `json:"tipo,omitempty" gorm:"foreignKey:TipoID"`
	Marca *Marca       `json:"marca,omitempty" gorm:"foreignKey:MarcaID"`
}
