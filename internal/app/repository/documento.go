package repository

import (
	"gestaocon/internal/app/ds"
)

// Métodos para documentos

func (r *Repository) GetDocumentos(categoria string) ([]ds.Documento, error) {
	var documentos []ds.Documento
	query := r.db.Order("titulo")
	if categoria != "" {
		query = query.Where("categoria = ?", categoria)
	}
	err := query.Find(&documentos).Error
	return documentos, err
}

func (r *Repository) GetDocumentoByID(id uint) (*ds.Documento, error) {
	var documento ds.Documento
	err := r.db.First(&documento, id).Error
	if err != nil {
		return nil, err
	}
	return &documento, nil
}

func (r *Repository) CreateDocumento(documento *ds.Documento) error {
	return r.db.Create(documento).Error
}

func (r *Repository) UpdateDocumento(documento *ds.Documento) error {
	return r.db.Save(documento).Error
}

func (r *Repository) DeleteDocumento(id uint) error {
	result := r.db.Delete(&ds.Documento{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}
