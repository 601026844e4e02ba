package repository

import (
	"gestaocon/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos para propostas de contrato

func (r *Repository) GetPropostas(busca string) ([]ds.PropostaContrato, error) {
	var propostas []ds.PropostaContrato
	query := r.db.Preload("Cliente")
	if busca != "" {
		query = query.Where("numero LIKE ? OR cliente_nome ILIKE ?", "%"+busca+"%", "%"+busca+"%")
	}
	err := query.Order("numero DESC").Find(&propostas).Error
	return propostas, err
}

func (r *Repository) GetPropostaByNumero(numero string) (*ds.PropostaContrato, error) {
	var proposta ds.PropostaContrato
	err := r.db.Preload("Cliente").Where("numero = ?", numero).First(&proposta).Error
	if err != nil {
		return nil, err
	}
	return &proposta, nil
}

func (r *Repository) GetPropostaItens(numero string) ([]ds.PropostaItem, error) {
	var itens []ds.PropostaItem
	err := r.db.Where("proposta_numero = ?", numero).Order("id").Find(&itens).Error
	return itens, err
}

// CreateProposta numera a proposta e grava cabeçalho e equipamentos na mesma
// transação. O valor mensal é a soma dos equipamentos quando não informado.
func (r *Repository) CreateProposta(proposta *ds.PropostaContrato, itens []ds.PropostaItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		numero, err := proximoNumeroDocumento(tx, "proposta_contratos")
		if err != nil {
			return err
		}
		proposta.Numero = numero

		if proposta.ValorMensal == 0 {
			for _, item := range itens {
				proposta.ValorMensal += float64(item.Quantidade) * item.ValorUnitario
			}
		}

		if err := tx.Create(proposta).Error; err != nil {
			return err
		}

		for i := range itens {
			itens[i].PropostaNumero = numero
			itens[i].ID = 0
			if err := tx.Create(&itens[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *Repository) UpdateProposta(numero string, campos map[string]interface{}) error {
	result := r.db.Model(&ds.PropostaContrato{}).Where("numero = ?", numero).Updates(campos)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

// DeleteProposta bloqueia a exclusão de proposta já convertida em contrato
func (r *Repository) DeleteProposta(numero string) error {
	var contratos int64
	if err := r.db.Model(&ds.ContratoConservacao{}).Where("proposta_numero = ?", numero).Count(&contratos).Error; err != nil {
		return err
	}
	if contratos > 0 {
		return conflito("não é possível excluir: a proposta já originou um contrato")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposta_numero = ?", numero).Delete(&ds.PropostaItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("numero = ?", numero).Delete(&ds.PropostaContrato{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gormNotFound()
		}
		return nil
	})
}
