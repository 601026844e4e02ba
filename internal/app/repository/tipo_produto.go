package repository

import (
	"strings"

	"gestaocon/internal/app/ds"
)

// Métodos para categorias de produto

func (r *Repository) GetTiposProduto() ([]ds.TipoProduto, error) {
	var tipos []ds.TipoProduto
	err := r.db.Order("nome").Find(&tipos).Error
	return tipos, err
}

func (r *Repository) GetTipoProdutoByID(id uint) (*ds.TipoProduto, error) {
	var tipo ds.TipoProduto
	err := r.db.First(&tipo, id).Error
	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

// CreateTipoProduto gera a sigla a partir do nome quando não informada
func (r *Repository) CreateTipoProduto(tipo *ds.TipoProduto) error {
	if tipo.Codigo == "" {
		tipo.Codigo = GerarSigla(tipo.Nome)
	}
	return r.db.Create(tipo).Error
}

func (r *Repository) UpdateTipoProduto(tipo *ds.TipoProduto) error {
	return r.db.Save(tipo).Error
}

// DeleteTipoProduto falha com conflito enquanto houver produtos na categoria
func (r *Repository) DeleteTipoProduto(id uint) error {
	var vinculados int64
	if err := r.db.Model(&ds.Produto{}).Where("tipo_id = ?", id).Count(&vinculados).Error; err != nil {
		return err
	}
	if vinculados > 0 {
		return conflito("não é possível excluir: existem %d produto(s) vinculados a esta categoria", vinculados)
	}

	result := r.db.Delete(&ds.TipoProduto{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

// GerarSigla monta a sigla de categoria/marca com as três primeiras
// consoantes do nome, completando com vogais quando faltam
func GerarSigla(nome string) string {
	nome = strings.ToUpper(strings.TrimSpace(nome))

	var sigla []rune
	var vogais []rune
	for _, c := range nome {
		if c < 'A' || c > 'Z' {
			continue
		}
		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			vogais = append(vogais, c)
		default:
			sigla = append(sigla, c)
		}
		if len(sigla) == 3 {
			return string(sigla)
		}
	}

	sigla = append(sigla, vogais...)
	if len(sigla) > 3 {
		sigla = sigla[:3]
	}
	if len(sigla) == 0 {
		return "GEN"
	}
	return string(sigla)
}
