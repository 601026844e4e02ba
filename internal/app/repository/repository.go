package repository

import (
	"fmt"

	"gestaocon/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Migração automática de todas as tabelas
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Cliente{},
		&ds.TipoProduto{},
		&ds.Marca{},
		&ds.Produto{},
		&ds.Orcamento{},
		&ds.OrcamentoItem{},
		&ds.PropostaContrato{},
		&ds.PropostaItem{},
		&ds.ContratoConservacao{},
		&ds.Boleto{},
		&ds.OrdemServico{},
		&ds.OrdemServicoItem{},
		&ds.OrdemServicoFoto{},
		&ds.OrdemServicoAssinatura{},
		&ds.Documento{},
		&ds.Feriado{},
		&ds.LogoSistema{},
		&ds.LayoutTimbrado{},
		&ds.ConfiguracaoKm{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// ConflitoError sinaliza uma exclusão bloqueada por integridade referencial
// (estoque positivo, registros filhos vinculados). Vira 400 no handler.
type ConflitoError struct {
	Msg string
}

func (e *ConflitoError) Error() string {
	return e.Msg
}

func conflito(format string, args ...interface{}) error {
	return &ConflitoError{Msg: fmt.Sprintf(format, args...)}
}

// gormNotFound padroniza o erro de registro ausente em updates/deletes
// que não encontram linha
func gormNotFound() error {
	return gorm.ErrRecordNotFound
}
