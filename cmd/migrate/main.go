package main

import (
	"log"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN vazio: confira o arquivo .env")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("erro ao conectar no banco: %v", err)
	}

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
		log.Fatalf("erro na migração: %v", err)
	}

	log.Println("migração concluída")
}
