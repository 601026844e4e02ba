package repository

import (
	"gestaocon/internal/app/ds"
)

// Métodos para marcas

func (r *Repository) GetMarcas() ([]ds.Marca, error) {
	var marcas []ds.Marca
	err := r.db.Order("nome").Find(&marcas).Error
	return marcas, err
}

func (r *Repository) GetMarcaByID(id uint) (*ds.Marca, error) {
	var marca ds.Marca
	err := r.db.First(&marca, id).Error
	if err != nil {
		return nil, err
	}
	return &marca, nil
}

func (r *Repository) CreateMarca(marca *ds.Marca) error {
	if marca.Sigla == "" {
		marca.Sigla = GerarSigla(marca.Nome)
	}
	return r.db.Create(marca).Error
}

func (r *Repository) UpdateMarca(marca *ds.Marca) error {
	return r.db.Save(marca).Error
}

// DeleteMarca falha com conflito enquanto houver produtos da marca
func (r *Repository) DeleteMarca(id uint) error {
	var vinculados int64
	if err := r.db.Model(&ds.Produto{}).Where("marca_id = ?", id).Count(&vinculados).Error; err != nil {
		return err
	}
	if vinculados > 0 {
		return conflito("não é possível excluir: existem %d produto(s) vinculados a esta marca", vinculados)
	}

	result := r.db.Delete(&ds.Marca{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}
