package ds

import "time"

// Tabela de documentos avulsos (laudos, certificados, manuais)
type Documento struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Titulo    string    `json:"titulo" gorm:"type:varchar(150);not null"`
	Categoria string    `json:"categoria" gorm:"type:varchar(50)"`
	Conteudo  string    `json:"conteudo" gorm:"type:text"`
	Arquivo   string    `json:"arquivo" gorm:"type:varchar(255)"` // objeto no MinIO, quando anexado
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
