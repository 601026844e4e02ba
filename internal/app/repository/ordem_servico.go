package repository

import (
	"gestaocon/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos para ordens de serviço

func (r *Repository) GetOrdensServico(status string) ([]ds.OrdemServico, error) {
	var ordens []ds.OrdemServico
	query := r.db.Preload("Cliente")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("id DESC").Find(&ordens).Error
	return ordens, err
}

func (r *Repository) GetOrdemServicoByID(id uint) (*ds.OrdemServico, error) {
	var ordem ds.OrdemServico
	err := r.db.Preload("Cliente").First(&ordem, id).Error
	if err != nil {
		return nil, err
	}
	return &ordem, nil
}

func (r *Repository) CreateOrdemServico(ordem *ds.OrdemServico, itens []ds.OrdemServicoItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if ordem.Status == "" {
			ordem.Status = "rascunho"
		}
		if err := tx.Create(ordem).Error; err != nil {
			return err
		}

		for i := range itens {
			itens[i].OrdemServicoID = ordem.ID
			itens[i].ID = 0
			if err := tx.Create(&itens[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *Repository) UpdateOrdemServico(id uint, campos map[string]interface{}) error {
	result := r.db.Model(&ds.OrdemServico{}).Where("id = ?", id).Updates(campos)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

// DeleteOrdemServico remove a OS com itens, fotos e assinaturas na mesma transação
func (r *Repository) DeleteOrdemServico(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ordem_servico_id = ?", id).Delete(&ds.OrdemServicoItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ordem_servico_id = ?", id).Delete(&ds.OrdemServicoFoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ordem_servico_id = ?", id).Delete(&ds.OrdemServicoAssinatura{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&ds.OrdemServico{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gormNotFound()
		}
		return nil
	})
}

func (r *Repository) GetOrdemServicoItens(ordemID uint) ([]ds.OrdemServicoItem, error) {
	var itens []ds.OrdemServicoItem
	err := r.db.Where("ordem_servico_id = ?", ordemID).Order("id").Find(&itens).Error
	return itens, err
}

func (r *Repository) GetOrdemServicoFotos(ordemID uint) ([]ds.OrdemServicoFoto, error) {
	var fotos []ds.OrdemServicoFoto
	err := r.db.Where("ordem_servico_id = ?", ordemID).Order("id").Find(&fotos).Error
	return fotos, err
}

func (r *Repository) AddOrdemServicoFoto(foto *ds.OrdemServicoFoto) error {
	if _, err := r.GetOrdemServicoByID(foto.OrdemServicoID); err != nil {
		return err
	}
	return r.db.Create(foto).Error
}

func (r *Repository) AddOrdemServicoAssinatura(assinatura *ds.OrdemServicoAssinatura) error {
	if _, err := r.GetOrdemServicoByID(assinatura.OrdemServicoID); err != nil {
		return err
	}
	return r.db.Create(assinatura).Error
}
