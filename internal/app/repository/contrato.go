package repository

import (
	"fmt"
	"strings"
	"time"

	"gestaocon/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos para contratos de conservação

func (r *Repository) GetContratos(busca string) ([]ds.ContratoConservacao, error) {
	var contratos []ds.ContratoConservacao
	query := r.db.Preload("Cliente")
	if busca != "" {
		query = query.Where("numero LIKE ? OR cliente_nome ILIKE ?", "%"+busca+"%", "%"+busca+"%")
	}
	err := query.Order("numero DESC").Find(&contratos).Error
	return contratos, err
}

func (r *Repository) GetContratoByNumero(numero string) (*ds.ContratoConservacao, error) {
	var contrato ds.ContratoConservacao
	err := r.db.Preload("Cliente").Where("numero = ?", numero).First(&contrato).Error
	if err != nil {
		return nil, err
	}
	return &contrato, nil
}

// CreateContratoFromProposta cria o contrato a partir de uma proposta aceita.
// Tudo em uma transação: numeração, snapshot dos equipamentos e valores da
// proposta no momento do aceite, marcação da proposta e a flag do cliente.
func (r *Repository) CreateContratoFromProposta(propostaNumero string, dataInicio time.Time, prazoMeses, diaVencimento int) (*ds.ContratoConservacao, error) {
	var contrato *ds.ContratoConservacao

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var proposta ds.PropostaContrato
		if err := tx.Where("numero = ?", propostaNumero).First(&proposta).Error; err != nil {
			return err
		}
		if proposta.Status == "recusada" {
			return conflito("proposta %s foi recusada e não pode gerar contrato", propostaNumero)
		}

		var itens []ds.PropostaItem
		if err := tx.Where("proposta_numero = ?", propostaNumero).Order("id").Find(&itens).Error; err != nil {
			return err
		}

		numero, err := proximoNumeroDocumento(tx, "contratos_conservacao")
		if err != nil {
			return err
		}

		if prazoMeses <= 0 {
			prazoMeses = proposta.PrazoMeses
		}
		if diaVencimento <= 0 {
			diaVencimento = 5
		}

		contrato = &ds.ContratoConservacao{
			Numero:         numero,
			PropostaNumero: propostaNumero,
			ClienteID:      proposta.ClienteID,
			ClienteNome:    proposta.ClienteNome,
			Equipamentos:   formatarEquipamentos(itens),
			ValorMensal:    proposta.ValorMensal,
			DiaVencimento:  diaVencimento,
			DataInicio:     dataInicio,
			PrazoMeses:     prazoMeses,
			DataFim:        dataInicio.AddDate(0, prazoMeses, 0),
			Status:         "ativo",
		}

		if err := tx.Create(contrato).Error; err != nil {
			return err
		}

		if err := tx.Model(&ds.PropostaContrato{}).Where("numero = ?", propostaNumero).
			Update("status", "aceita").Error; err != nil {
			return err
		}

		if proposta.ClienteID != nil {
			if err := tx.Model(&ds.Cliente{}).Where("id = ?", *proposta.ClienteID).
				Update("possui_contrato", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return contrato, nil
}

// UpdateContrato recalcula data_fim quando início ou prazo mudam
func (r *Repository) UpdateContrato(numero string, campos map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var contrato ds.ContratoConservacao
		if err := tx.Where("numero = ?", numero).First(&contrato).Error; err != nil {
			return err
		}

		if err := tx.Model(&contrato).Updates(campos).Error; err != nil {
			return err
		}

		var atualizado ds.ContratoConservacao
		if err := tx.Where("numero = ?", numero).First(&atualizado).Error; err != nil {
			return err
		}
		dataFim := atualizado.DataInicio.AddDate(0, atualizado.PrazoMeses, 0)
		return tx.Model(&atualizado).Update("data_fim", dataFim).Error
	})
}

// DeleteContrato remove o contrato e desliga a flag do cliente quando era o único
func (r *Repository) DeleteContrato(numero string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var contrato ds.ContratoConservacao
		if err := tx.Where("numero = ?", numero).First(&contrato).Error; err != nil {
			return err
		}

		if err := tx.Delete(&contrato).Error; err != nil {
			return err
		}

		if contrato.ClienteID != nil {
			var restantes int64
			if err := tx.Model(&ds.ContratoConservacao{}).
				Where("cliente_id = ? AND status = ?", *contrato.ClienteID, "ativo").
				Count(&restantes).Error; err != nil {
				return err
			}
			if restantes == 0 {
				if err := tx.Model(&ds.Cliente{}).Where("id = ?", *contrato.ClienteID).
					Update("possui_contrato", false).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func formatarEquipamentos(itens []ds.PropostaItem) string {
	linhas := make([]string, len(itens))
	for i, item := range itens {
		linhas[i] = fmt.Sprintf("%dx %s", item.Quantidade, item.Equipamento)
		if item.Localizacao != "" {
			linhas[i] += " - " + item.Localizacao
		}
	}
	return strings.Join(linhas, "\n")
}
