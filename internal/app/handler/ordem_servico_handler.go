package handler

import (
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/utils"

	"github.com/gin-gonic/gin"
)

// GetOrdensServico lista ordens de serviço com filtro por status
func (h *Handler) GetOrdensServico(ctx *gin.Context) {
	ordens, err := h.Repository.GetOrdensServico(ctx.Query("status"))
	if err != nil {
		h.tratarErro(ctx, err, "listar ordens de serviço")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", ordens)
}

// GetOrdemServico devolve a OS com itens e fotos
func (h *Handler) GetOrdemServico(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	ordem, err := h.Repository.GetOrdemServicoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar ordem de serviço")
		return
	}

	itens, err := h.Repository.GetOrdemServicoItens(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar itens da ordem de serviço")
		return
	}

	fotos, err := h.Repository.GetOrdemServicoFotos(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar fotos da ordem de serviço")
		return
	}

	h.successResponse(ctx, http.StatusOK, "", gin.H{
		"ordem": ordem,
		"itens": itens,
		"fotos": fotos,
	})
}

func (h *Handler) CreateOrdemServico(ctx *gin.Context) {
	var request dto.OrdemServicoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	status := request.Status
	if status == "" {
		status = "aberta"
	}

	ordem := &ds.OrdemServico{
		ClienteID:   request.ClienteID,
		ClienteNome: request.ClienteNome,
		Telefone:    request.Telefone,
		TipoServico: request.TipoServico,
		Descricao:   request.Descricao,
		Status:      status,
		Origem:      "manual",
	}

	if request.ClienteID != nil {
		cliente, err := h.Repository.GetClienteByID(*request.ClienteID)
		if err != nil {
			h.tratarErro(ctx, err, "buscar cliente da ordem de serviço")
			return
		}
		ordem.ClienteNome = cliente.Nome
		if ordem.Telefone == "" {
			ordem.Telefone = cliente.Telefone
		}
	}

	if request.DataAgendada != "" {
		data, err := utils.ParseData(request.DataAgendada)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "data_agendada inválida: use AAAA-MM-DD ou DD/MM/AAAA")
			return
		}
		ordem.DataAgendada = &data
	}

	itens := make([]ds.OrdemServicoItem, len(request.Itens))
	for i, item := range request.Itens {
		quantidade := item.Quantidade
		if quantidade <= 0 {
			quantidade = 1
		}
		itens[i] = ds.OrdemServicoItem{
			Equipamento: item.Equipamento,
			Descricao:   item.Descricao,
			Quantidade:  quantidade,
		}
	}

	if err := h.Repository.CreateOrdemServico(ordem, itens); err != nil {
		h.tratarErro(ctx, err, "criar ordem de serviço")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "ordem de serviço criada", ordem)
}

func (h *Handler) UpdateOrdemServico(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	campos := filtrarCampos(payload, "cliente_nome", "telefone", "tipo_servico", "descricao", "status", "data_agendada")
	if valor, ok := campos["data_agendada"].(string); ok {
		data, err := utils.ParseData(valor)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "data_agendada inválida: use AAAA-MM-DD ou DD/MM/AAAA")
			return
		}
		campos["data_agendada"] = data
	}

	if err := h.Repository.UpdateOrdemServico(id, campos); err != nil {
		h.tratarErro(ctx, err, "atualizar ordem de serviço")
		return
	}

	h.successResponse(ctx, http.StatusOK, "ordem de serviço atualizada", nil)
}

// DeleteOrdemServico remove a OS com itens, fotos e assinaturas
func (h *Handler) DeleteOrdemServico(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteOrdemServico(id); err != nil {
		h.tratarErro(ctx, err, "excluir ordem de serviço")
		return
	}

	h.successResponse(ctx, http.StatusOK, "ordem de serviço excluída", nil)
}

func (h *Handler) GetOrdemServicoFotos(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	fotos, err := h.Repository.GetOrdemServicoFotos(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar fotos da ordem de serviço")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", fotos)
}

// AddOrdemServicoFoto anexa uma foto em base64 à OS
func (h *Handler) AddOrdemServicoFoto(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var request dto.FotoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	foto := &ds.OrdemServicoFoto{
		OrdemServicoID: id,
		Legenda:        request.Legenda,
		Conteudo:       request.Conteudo,
	}
	if err := h.Repository.AddOrdemServicoFoto(foto); err != nil {
		h.tratarErro(ctx, err, "anexar foto")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "foto anexada", foto)
}

// AddOrdemServicoAssinatura registra uma assinatura coletada na OS
func (h *Handler) AddOrdemServicoAssinatura(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var request dto.AssinaturaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	assinatura := &ds.OrdemServicoAssinatura{
		OrdemServicoID: id,
		Nome:           request.Nome,
		Documento:      request.Documento,
		Conteudo:       request.Conteudo,
	}
	if err := h.Repository.AddOrdemServicoAssinatura(assinatura); err != nil {
		h.tratarErro(ctx, err, "registrar assinatura")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "assinatura registrada", assinatura)
}
