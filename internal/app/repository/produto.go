package repository

import (
	"errors"
	"fmt"

	"gestaocon/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos para produtos

// ProdutoComNomes junta o produto com os nomes de categoria e marca para exibição
type ProdutoComNomes struct {
	ds.Produto
	TipoNome  string `json:"tipo_nome"`
	MarcaNome string `json:"marca_nome"`
}

// GetProdutos lista produtos com busca opcional por código/descrição
func (r *Repository) GetProdutos(busca string) ([]ProdutoComNomes, error) {
	var produtos []ds.Produto
	query := r.db.Preload("Tipo").Preload("Marca")
	if busca != "" {
		query = query.Where("codigo ILIKE ? OR descricao ILIKE ?", "%"+busca+"%", "%"+busca+"%")
	}
	err := query.Order("codigo").Find(&produtos).Error
	if err != nil {
		return nil, err
	}

	resultado := make([]ProdutoComNomes, len(produtos))
	for i, p := range produtos {
		resultado[i] = ProdutoComNomes{Produto: p}
		if p.Tipo != nil {
			resultado[i].TipoNome = p.Tipo.Nome
		}
		if p.Marca != nil {
			resultado[i].MarcaNome = p.Marca.Nome
		}
	}
	return resultado, nil
}

func (r *Repository) GetProdutoByID(id uint) (*ds.Produto, error) {
	var produto ds.Produto
	err := r.db.Preload("Tipo").Preload("Marca").First(&produto, id).Error
	if err != nil {
		return nil, err
	}
	return &produto, nil
}

func (r *Repository) CreateProduto(produto *ds.Produto) error {
	return r.db.Create(produto).Error
}

func (r *Repository) UpdateProduto(produto *ds.Produto) error {
	return r.db.Save(produto).Error
}

// DeleteProduto bloqueia a exclusão com estoque positivo ou com itens de
// orçamento/proposta apontando para o produto
func (r *Repository) DeleteProduto(id uint) error {
	produto, err := r.GetProdutoByID(id)
	if err != nil {
		return err
	}

	if produto.Estoque > 0 {
		return conflito("não é possível excluir: produto possui estoque de %d unidade(s)", produto.Estoque)
	}

	var itens int64
	if err := r.db.Model(&ds.OrcamentoItem{}).Where("produto_id = ?", id).Count(&itens).Error; err != nil {
		return err
	}
	if itens > 0 {
		return conflito("não é possível excluir: produto está em %d item(ns) de orçamento", itens)
	}

	return r.db.Delete(&ds.Produto{}, id).Error
}

// FormatarCodigoProduto monta o código: sigla da categoria + sigla da marca +
// sequencial de 3 dígitos. Serviços usam o prefixo fixo SERV.
func FormatarCodigoProduto(tipoCodigo, marcaSigla string, seq int) string {
	return fmt.Sprintf("%s%s%03d", tipoCodigo, marcaSigla, seq)
}

const maxTentativasCodigo = 9999

// GerarCodigoProduto produz um código inédito para a combinação categoria/marca.
// O contador da marca é avançado na mesma transação para orientar as próximas
// gerações, mas a verificação de existência é quem manda: em colisão o
// sequencial é incrementado até achar um código livre.
func (r *Repository) GerarCodigoProduto(tipoID, marcaID *uint, isServico bool) (string, error) {
	var codigo string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		prefixo := "SERV"
		seq := 0

		var marca *ds.Marca
		if !isServico {
			if tipoID == nil || marcaID == nil {
				return errors.New("categoria e marca são obrigatórias para produtos")
			}

			var tipo ds.TipoProduto
			if err := tx.First(&tipo, *tipoID).Error; err != nil {
				return fmt.Errorf("categoria não encontrada: %w", err)
			}
			marca = &ds.Marca{}
			if err := tx.First(marca, *marcaID).Error; err != nil {
				return fmt.Errorf("marca não encontrada: %w", err)
			}

			prefixo = tipo.Codigo + marca.Sigla
			seq = marca.Contador
		}

		for tentativa := 0; tentativa < maxTentativasCodigo; tentativa++ {
			seq++
			candidato := fmt.Sprintf("%s%03d", prefixo, seq)

			var existentes int64
			if err := tx.Model(&ds.Produto{}).Where("codigo = ?", candidato).Count(&existentes).Error; err != nil {
				return err
			}
			if existentes == 0 {
				codigo = candidato
				break
			}
		}
		if codigo == "" {
			return fmt.Errorf("não foi possível gerar código após %d tentativas", maxTentativasCodigo)
		}

		if marca != nil {
			if err := tx.Model(&ds.Marca{}).Where("id = ?", marca.ID).Update("contador", seq).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return codigo, nil
}
