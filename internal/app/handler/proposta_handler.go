package handler

import (
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetPropostas lista propostas com busca por número ou cliente
func (h *Handler) GetPropostas(ctx *gin.Context) {
	propostas, err := h.Repository.GetPropostas(ctx.Query("busca"))
	if err != nil {
		h.tratarErro(ctx, err, "listar propostas")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", propostas)
}

// GetProposta devolve a proposta com os equipamentos cobertos
func (h *Handler) GetProposta(ctx *gin.Context) {
	numero := ctx.Param("numero")

	proposta, err := h.Repository.GetPropostaByNumero(numero)
	if err != nil {
		h.tratarErro(ctx, err, "buscar proposta")
		return
	}

	itens, err := h.Repository.GetPropostaItens(numero)
	if err != nil {
		h.tratarErro(ctx, err, "buscar itens da proposta")
		return
	}

	h.successResponse(ctx, http.StatusOK, "", gin.H{
		"proposta": proposta,
		"itens":    itens,
	})
}

// CreateProposta cria a proposta com numeração automática. Valor mensal
// zerado é calculado a partir dos equipamentos.
func (h *Handler) CreateProposta(ctx *gin.Context) {
	var request dto.PropostaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	prazo := request.PrazoMeses
	if prazo <= 0 {
		prazo = 12
	}

	proposta := &ds.PropostaContrato{
		ClienteID:   request.ClienteID,
		ValorMensal: request.ValorMensal,
		PrazoMeses:  prazo,
		Status:      "pendente",
		Observacoes: request.Observacoes,
	}

	if request.ClienteID != nil {
		cliente, err := h.Repository.GetClienteByID(*request.ClienteID)
		if err != nil {
			h.tratarErro(ctx, err, "buscar cliente da proposta")
			return
		}
		proposta.ClienteNome = cliente.Nome
	}

	itens := make([]ds.PropostaItem, len(request.Itens))
	for i, item := range request.Itens {
		quantidade := item.Quantidade
		if quantidade <= 0 {
			quantidade = 1
		}
		itens[i] = ds.PropostaItem{
			Equipamento:   item.Equipamento,
			Localizacao:   item.Localizacao,
			Quantidade:    quantidade,
			ValorUnitario: item.ValorUnitario,
		}
	}

	if err := h.Repository.CreateProposta(proposta, itens); err != nil {
		h.tratarErro(ctx, err, "criar proposta")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "proposta criada", proposta)
}

func (h *Handler) UpdateProposta(ctx *gin.Context) {
	numero := ctx.Param("numero")

	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	campos := filtrarCampos(payload, "valor_mensal", "prazo_meses", "status", "observacoes")
	if err := h.Repository.UpdateProposta(numero, campos); err != nil {
		h.tratarErro(ctx, err, "atualizar proposta")
		return
	}

	h.successResponse(ctx, http.StatusOK, "proposta atualizada", nil)
}

// DeleteProposta bloqueia a exclusão quando já gerou contrato
func (h *Handler) DeleteProposta(ctx *gin.Context) {
	if err := h.Repository.DeleteProposta(ctx.Param("numero")); err != nil {
		h.tratarErro(ctx, err, "excluir proposta")
		return
	}
	h.successResponse(ctx, http.StatusOK, "proposta excluída", nil)
}
