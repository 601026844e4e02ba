package repository

import (
	"gestaocon/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos para orçamentos

func (r *Repository) GetOrcamentos(busca string) ([]ds.Orcamento, error) {
	var orcamentos []ds.Orcamento
	query := r.db.Preload("Cliente")
	if busca != "" {
		query = query.Where("numero LIKE ? OR cliente_nome ILIKE ?", "%"+busca+"%", "%"+busca+"%")
	}
	err := query.Order("numero DESC").Find(&orcamentos).Error
	return orcamentos, err
}

func (r *Repository) GetOrcamentoByNumero(numero string) (*ds.Orcamento, error) {
	var orcamento ds.Orcamento
	err := r.db.Preload("Cliente").Where("numero = ?", numero).First(&orcamento).Error
	if err != nil {
		return nil, err
	}
	return &orcamento, nil
}

// CreateOrcamento numera e grava o orçamento com seus itens em uma transação;
// os totais saem sempre recalculados a partir dos itens, nunca do payload
func (r *Repository) CreateOrcamento(orcamento *ds.Orcamento, itens []ds.OrcamentoItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		numero, err := proximoNumeroDocumento(tx, "orcamentos")
		if err != nil {
			return err
		}
		orcamento.Numero = numero

		if err := tx.Create(orcamento).Error; err != nil {
			return err
		}

		for i := range itens {
			itens[i].OrcamentoNumero = numero
			itens[i].ID = 0
			if err := tx.Create(&itens[i]).Error; err != nil {
				return err
			}
		}

		return recalcularTotais(tx, numero)
	})
}

// UpdateOrcamento altera apenas os campos descritivos; totais continuam
// derivados dos itens
func (r *Repository) UpdateOrcamento(numero string, campos map[string]interface{}) error {
	delete(campos, "valor_material")
	delete(campos, "valor_mao_obra")
	delete(campos, "valor_total")

	result := r.db.Model(&ds.Orcamento{}).Where("numero = ?", numero).Updates(campos)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

func (r *Repository) DeleteOrcamento(numero string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("orcamento_numero = ?", numero).Delete(&ds.OrcamentoItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("numero = ?", numero).Delete(&ds.Orcamento{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gormNotFound()
		}
		return nil
	})
}

// Métodos para itens do orçamento

func (r *Repository) GetOrcamentoItens(numero string) ([]ds.OrcamentoItem, error) {
	var itens []ds.OrcamentoItem
	err := r.db.Preload("Produto").Where("orcamento_numero = ?", numero).Order("id").Find(&itens).Error
	return itens, err
}

func (r *Repository) AddOrcamentoItem(numero string, item *ds.OrcamentoItem) error {
	if _, err := r.GetOrcamentoByNumero(numero); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		item.OrcamentoNumero = numero
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return recalcularTotais(tx, numero)
	})
}

func (r *Repository) UpdateOrcamentoItem(numero string, itemID uint, quantidade, valorUnitario, valorMaoObra float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ds.OrcamentoItem{}).
			Where("id = ? AND orcamento_numero = ?", itemID, numero).
			Updates(map[string]interface{}{
				"quantidade":     quantidade,
				"valor_unitario": valorUnitario,
				"valor_mao_obra": valorMaoObra,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gormNotFound()
		}
		return recalcularTotais(tx, numero)
	})
}

func (r *Repository) DeleteOrcamentoItem(numero string, itemID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND orcamento_numero = ?", itemID, numero).Delete(&ds.OrcamentoItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gormNotFound()
		}
		return recalcularTotais(tx, numero)
	})
}

// recalcularTotais refaz os agregados do cabeçalho somando os itens atuais.
// Roda após toda escrita em orcamento_items; orçamento sem itens fica com
// totais zerados, nunca nulos.
func recalcularTotais(tx *gorm.DB, numero string) error {
	var material, maoObra float64

	row := tx.Raw(`SELECT COALESCE(SUM(quantidade * valor_unitario), 0),
	                      COALESCE(SUM(quantidade * valor_mao_obra), 0)
	               FROM orcamento_items
	               WHERE orcamento_numero = ?`, numero).Row()
	if err := row.Scan(&material, &maoObra); err != nil {
		return err
	}

	return tx.Model(&ds.Orcamento{}).Where("numero = ?", numero).Updates(map[string]interface{}{
		"valor_material": material,
		"valor_mao_obra": maoObra,
		"valor_total":    material + maoObra,
	}).Error
}

// CalcularTotais soma os itens em memória; usada na pré-visualização e nos testes
func CalcularTotais(itens []ds.OrcamentoItem) (material, maoObra, total float64) {
	for _, item := range itens {
		material += item.Quantidade * item.ValorUnitario
		maoObra += item.Quantidade * item.ValorMaoObra
	}
	return material, maoObra, material + maoObra
}
