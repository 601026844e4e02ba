package repository

import (
	"fmt"
	"time"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/utils"

	"gorm.io/gorm"
)

// Métodos para boletos

// StatusEfetivo deriva o status de leitura: boleto pendente com vencimento
// anterior à data de referência é reportado como vencido, ainda que a coluna
// status continue gravada como pendente.
func StatusEfetivo(boleto *ds.Boleto, referencia time.Time) string {
	if boleto.Status == "pendente" && boleto.DataVencimento.Before(referencia.Truncate(24*time.Hour)) {
		return "vencido"
	}
	return boleto.Status
}

func (r *Repository) GetBoletos(clienteID uint, status string) ([]ds.Boleto, error) {
	var boletos []ds.Boleto
	query := r.db.Preload("Cliente")
	if clienteID > 0 {
		query = query.Where("cliente_id = ?", clienteID)
	}
	if status != "" && status != "vencido" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("data_vencimento").Find(&boletos).Error
	if err != nil {
		return nil, err
	}

	// filtro "vencido" é derivado, não existe na coluna
	if status == "vencido" {
		hoje := time.Now()
		filtrados := make([]ds.Boleto, 0, len(boletos))
		for _, b := range boletos {
			if StatusEfetivo(&b, hoje) == "vencido" {
				filtrados = append(filtrados, b)
			}
		}
		boletos = filtrados
	}

	return boletos, nil
}

func (r *Repository) GetBoletoByID(id uint) (*ds.Boleto, error) {
	var boleto ds.Boleto
	err := r.db.Preload("Cliente").First(&boleto, id).Error
	if err != nil {
		return nil, err
	}
	return &boleto, nil
}

// CreateBoletos emite uma ou mais parcelas compartilhando o número base.
// Vencimentos mensais a partir do primeiro, cada um ajustado para dia útil.
func (r *Repository) CreateBoletos(boleto *ds.Boleto, totalParcelas int) ([]ds.Boleto, error) {
	if totalParcelas < 1 {
		totalParcelas = 1
	}

	var emitidos []ds.Boleto
	err := r.db.Transaction(func(tx *gorm.DB) error {
		base, err := proximoNumeroBoleto(tx)
		if err != nil {
			return err
		}

		for parcela := 1; parcela <= totalParcelas; parcela++ {
			vencimento := utils.ProximoDiaUtil(boleto.DataVencimento.AddDate(0, parcela-1, 0))

			novo := ds.Boleto{
				Numero:         NumeroParcela(base, parcela, totalParcelas),
				ClienteID:      boleto.ClienteID,
				ContratoNumero: boleto.ContratoNumero,
				Descricao:      boleto.Descricao,
				Valor:          boleto.Valor,
				DataVencimento: vencimento,
				Parcela:        parcela,
				TotalParcelas:  totalParcelas,
				Status:         "pendente",
			}
			if err := tx.Create(&novo).Error; err != nil {
				return err
			}
			emitidos = append(emitidos, novo)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return emitidos, nil
}

func (r *Repository) UpdateBoleto(id uint, campos map[string]interface{}) error {
	// pagamento registra a data automaticamente
	if status, ok := campos["status"]; ok && status == "pago" {
		if _, tem := campos["data_pagamento"]; !tem {
			campos["data_pagamento"] = time.Now()
		}
	}

	result := r.db.Model(&ds.Boleto{}).Where("id = ?", id).Updates(campos)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

// DeleteBoleto bloqueia a exclusão de boleto já pago
func (r *Repository) DeleteBoleto(id uint) error {
	boleto, err := r.GetBoletoByID(id)
	if err != nil {
		return err
	}
	if boleto.Status == "pago" {
		return conflito("não é possível excluir boleto já pago")
	}

	return r.db.Delete(&ds.Boleto{}, id).Error
}

// proximoNumeroBoleto lê o maior número base emitido e avança. Mesma janela
// de corrida da numeração de documentos; a unique em numero segura duplicata.
func proximoNumeroBoleto(tx *gorm.DB) (string, error) {
	var maior int
	row := tx.Raw(`SELECT COALESCE(MAX(CAST(split_part(numero, '-', 1) AS INTEGER)), 0) FROM boletos`).Row()
	if err := row.Scan(&maior); err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", maior+1), nil
}
