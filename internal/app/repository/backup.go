package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Métodos para backup do banco

// tabelas que o backup conhece; nomes vindos da requisição são validados
// contra esta lista antes de entrar em SQL
var tabelasBackup = []string{
	"users", "clientes", "tipo_produtos", "marcas", "produtos",
	"orcamentos", "orcamento_items", "proposta_contratos", "proposta_items",
	"contratos_conservacao", "boletos",
	"ordem_servicos", "ordem_servico_items", "ordem_servico_fotos", "ordem_servico_assinaturas",
	"documentos", "feriados", "logo_sistemas", "layout_timbrados", "configuracao_kms",
}

type TabelaInfo struct {
	Nome    string `json:"nome"`
	Linhas  int64  `json:"linhas"`
	Tamanho string `json:"tamanho"`
}

// ListarTabelas devolve as tabelas do schema com contagem de linhas e tamanho
func (r *Repository) ListarTabelas() ([]TabelaInfo, error) {
	rows, err := r.db.Raw(`SELECT relname, n_live_tup, pg_size_pretty(pg_total_relation_size(relid))
	                       FROM pg_stat_user_tables ORDER BY relname`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tabelas []TabelaInfo
	for rows.Next() {
		var info TabelaInfo
		if err := rows.Scan(&info.Nome, &info.Linhas, &info.Tamanho); err != nil {
			return nil, err
		}
		tabelas = append(tabelas, info)
	}
	return tabelas, rows.Err()
}

// DumpBanco grava um arquivo .sql com estrutura e dados das tabelas pedidas
// (todas quando a lista vem vazia) e devolve o caminho gerado
func (r *Repository) DumpBanco(tabelas []string, diretorio string) (string, error) {
	if len(tabelas) == 0 {
		tabelas = tabelasBackup
	}
	for _, t := range tabelas {
		if !tabelaConhecida(t) {
			return "", fmt.Errorf("tabela desconhecida no backup: %s", t)
		}
	}

	if err := os.MkdirAll(diretorio, 0o755); err != nil {
		return "", err
	}

	nome := fmt.Sprintf("backup_%s_%s.sql", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	caminho := filepath.Join(diretorio, nome)

	arquivo, err := os.Create(caminho)
	if err != nil {
		return "", err
	}
	defer arquivo.Close()

	fmt.Fprintf(arquivo, "-- backup gestaocon gerado em %s\n\n", time.Now().Format(time.RFC3339))

	for _, tabela := range tabelas {
		if err := r.dumpTabela(arquivo, tabela); err != nil {
			return "", fmt.Errorf("erro ao exportar tabela %s: %w", tabela, err)
		}
	}

	logrus.Infof("backup gravado em %s", caminho)
	return caminho, nil
}

func (r *Repository) dumpTabela(arquivo *os.File, tabela string) error {
	// estrutura a partir do catálogo
	type coluna struct {
		Nome string
		Tipo string
	}
	colRows, err := r.db.Raw(`SELECT column_name, data_type FROM information_schema.columns
	                          WHERE table_name = ? ORDER BY ordinal_position`, tabela).Rows()
	if err != nil {
		return err
	}
	var colunas []coluna
	for colRows.Next() {
		var c coluna
		if err := colRows.Scan(&c.Nome, &c.Tipo); err != nil {
			colRows.Close()
			return err
		}
		colunas = append(colunas, c)
	}
	colRows.Close()
	if len(colunas) == 0 {
		return nil
	}

	fmt.Fprintf(arquivo, "-- tabela %s\nDROP TABLE IF EXISTS %s CASCADE;\nCREATE TABLE %s (\n", tabela, tabela, tabela)
	defs := make([]string, len(colunas))
	nomes := make([]string, len(colunas))
	for i, c := range colunas {
		defs[i] = fmt.Sprintf("    %s %s", c.Nome, c.Tipo)
		nomes[i] = c.Nome
	}
	fmt.Fprintf(arquivo, "%s\n);\n\n", strings.Join(defs, ",\n"))

	// dados
	rows, err := r.db.Raw("SELECT * FROM " + tabela).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	valores := make([]interface{}, len(colunas))
	ponteiros := make([]interface{}, len(colunas))
	for i := range valores {
		ponteiros[i] = &valores[i]
	}

	for rows.Next() {
		if err := rows.Scan(ponteiros...); err != nil {
			return err
		}
		literais := make([]string, len(valores))
		for i, v := range valores {
			literais[i] = literalSQL(v)
		}
		fmt.Fprintf(arquivo, "INSERT INTO %s (%s) VALUES (%s);\n",
			tabela, strings.Join(nomes, ", "), strings.Join(literais, ", "))
	}
	fmt.Fprintln(arquivo)

	return rows.Err()
}

func literalSQL(v interface{}) string {
	switch valor := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if valor {
			return "TRUE"
		}
		return "FALSE"
	case int64:
		return fmt.Sprintf("%d", valor)
	case float64:
		return fmt.Sprintf("%g", valor)
	case time.Time:
		return "'" + valor.Format("2006-01-02 15:04:05") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(valor), "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", valor), "'", "''") + "'"
	}
}

func tabelaConhecida(nome string) bool {
	for _, t := range tabelasBackup {
		if t == nome {
			return true
		}
	}
	return false
}
