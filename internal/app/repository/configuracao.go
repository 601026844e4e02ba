package repository

import (
	"errors"

	"gestaocon/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos para configurações (feriados, layout, logos, valor por km)

func (r *Repository) GetFeriados() ([]ds.Feriado, error) {
	var feriados []ds.Feriado
	err := r.db.Order("data").Find(&feriados).Error
	return feriados, err
}

func (r *Repository) CreateFeriado(feriado *ds.Feriado) error {
	return r.db.Create(feriado).Error
}

func (r *Repository) DeleteFeriado(id uint) error {
	result := r.db.Delete(&ds.Feriado{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

// GetLayoutTimbrado devolve a configuração única de layout, criando o padrão
// na primeira consulta
func (r *Repository) GetLayoutTimbrado() (*ds.LayoutTimbrado, error) {
	var layout ds.LayoutTimbrado
	err := r.db.First(&layout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		layout = ds.LayoutTimbrado{MargemSuperior: 30, MargemInferior: 20}
		if err := r.db.Create(&layout).Error; err != nil {
			return nil, err
		}
		return &layout, nil
	}
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

func (r *Repository) UpdateLayoutTimbrado(layout *ds.LayoutTimbrado) error {
	atual, err := r.GetLayoutTimbrado()
	if err != nil {
		return err
	}
	layout.ID = atual.ID
	return r.db.Save(layout).Error
}

func (r *Repository) GetLogos() ([]ds.LogoSistema, error) {
	var logos []ds.LogoSistema
	err := r.db.Find(&logos).Error
	return logos, err
}

// SetLogo substitui a logo da posição (cabecalho/rodape), devolvendo o nome
// do arquivo antigo para remoção no MinIO
func (r *Repository) SetLogo(posicao, arquivo string) (string, error) {
	var anterior string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var logo ds.LogoSistema
		err := tx.Where("posicao = ?", posicao).First(&logo).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&ds.LogoSistema{Posicao: posicao, Arquivo: arquivo}).Error
		}
		if err != nil {
			return err
		}

		anterior = logo.Arquivo
		return tx.Model(&logo).Update("arquivo", arquivo).Error
	})

	return anterior, err
}

// GetValorKm devolve o valor vigente por km (zero quando nunca configurado)
func (r *Repository) GetValorKm() (float64, error) {
	var config ds.ConfiguracaoKm
	err := r.db.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return config.ValorKm, nil
}

func (r *Repository) SetValorKm(valor float64) error {
	var config ds.ConfiguracaoKm
	err := r.db.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&ds.ConfiguracaoKm{ValorKm: valor}).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&config).Update("valor_km", valor).Error
}
