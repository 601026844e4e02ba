package repository

import (
	"gestaocon/internal/app/ds"
)

// Métodos para clientes

// GetClientes lista clientes ativos, com busca opcional por nome/CNPJ
func (r *Repository) GetClientes(busca string) ([]ds.Cliente, error) {
	var clientes []ds.Cliente
	query := r.db.Where("status != ?", "inativo")
	if busca != "" {
		query = query.Where("nome ILIKE ? OR cnpj LIKE ?", "%"+busca+"%", "%"+busca+"%")
	}
	err := query.Order("nome").Find(&clientes).Error
	return clientes, err
}

func (r *Repository) GetClienteByID(id uint) (*ds.Cliente, error) {
	var cliente ds.Cliente
	err := r.db.First(&cliente, id).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

// GetClienteByTelefone localiza o cliente pelo telefone ou celular,
// usado pelo atendimento via WhatsApp
func (r *Repository) GetClienteByTelefone(telefone string) (*ds.Cliente, error) {
	var cliente ds.Cliente
	err := r.db.Where("telefone = ? OR celular = ?", telefone, telefone).First(&cliente).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *Repository) CreateCliente(cliente *ds.Cliente) error {
	if cliente.Status == "" {
		cliente.Status = "ativo"
	}
	return r.db.Create(cliente).Error
}

func (r *Repository) UpdateCliente(cliente *ds.Cliente) error {
	return r.db.Save(cliente).Error
}

// DeleteCliente bloqueia a exclusão de clientes referenciados por contratos
// ou orçamentos; nesse caso o cliente é apenas inativado
func (r *Repository) DeleteCliente(id uint) error {
	var contratos int64
	if err := r.db.Model(&ds.ContratoConservacao{}).Where("cliente_id = ?", id).Count(&contratos).Error; err != nil {
		return err
	}
	var orcamentos int64
	if err := r.db.Model(&ds.Orcamento{}).Where("cliente_id = ?", id).Count(&orcamentos).Error; err != nil {
		return err
	}

	if contratos > 0 || orcamentos > 0 {
		// mantém o histórico: marca como inativo em vez de excluir
		result := r.db.Model(&ds.Cliente{}).Where("id = ?", id).Update("status", "inativo")
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gormNotFound()
		}
		return nil
	}

	result := r.db.Delete(&ds.Cliente{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

// AtualizarDistanciaCliente grava a posição e a distância calculada até a sede
func (r *Repository) AtualizarDistanciaCliente(id uint, lat, lon, distanciaKm float64) error {
	return r.db.Model(&ds.Cliente{}).Where("id = ?", id).Updates(map[string]interface{}{
		"latitude":     lat,
		"longitude":    lon,
		"distancia_km": distanciaKm,
	}).Error
}
