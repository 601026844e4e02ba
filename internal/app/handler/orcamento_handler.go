package handler

import (
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/utils"

	"github.com/gin-gonic/gin"
)

// GetOrcamentos lista orçamentos com busca por número ou cliente
func (h *Handler) GetOrcamentos(ctx *gin.Context) {
	orcamentos, err := h.Repository.GetOrcamentos(ctx.Query("busca"))
	if err != nil {
		h.tratarErro(ctx, err, "listar orçamentos")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", orcamentos)
}

// GetOrcamento devolve o orçamento com os itens
func (h *Handler) GetOrcamento(ctx *gin.Context) {
	numero := ctx.Param("numero")

	orcamento, err := h.Repository.GetOrcamentoByNumero(numero)
	if err != nil {
		h.tratarErro(ctx, err, "buscar orçamento")
		return
	}

	itens, err := h.Repository.GetOrcamentoItens(numero)
	if err != nil {
		h.tratarErro(ctx, err, "buscar itens do orçamento")
		return
	}

	h.successResponse(ctx, http.StatusOK, "", gin.H{
		"orcamento": orcamento,
		"itens":     itens,
	})
}

// CreateOrcamento cria o orçamento com numeração automática e itens iniciais.
// Totais são sempre recalculados a partir dos itens, nunca aceitos do payload.
func (h *Handler) CreateOrcamento(ctx *gin.Context) {
	var request dto.OrcamentoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	orcamento := &ds.Orcamento{
		ClienteID: request.ClienteID,
		Descricao: request.Descricao,
		Status:    "pendente",
	}

	if request.ClienteID != nil {
		cliente, err := h.Repository.GetClienteByID(*request.ClienteID)
		if err != nil {
			h.tratarErro(ctx, err, "buscar cliente do orçamento")
			return
		}
		orcamento.ClienteNome = cliente.Nome
	}

	if request.Validade != "" {
		validade, err := utils.ParseData(request.Validade)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "validade inválida: use AAAA-MM-DD ou DD/MM/AAAA")
			return
		}
		orcamento.Validade = &validade
	}

	itens := make([]ds.OrcamentoItem, len(request.Itens))
	for i, item := range request.Itens {
		itens[i] = orcamentoItemFromRequest(&item)
	}

	if err := h.Repository.CreateOrcamento(orcamento, itens); err != nil {
		h.tratarErro(ctx, err, "criar orçamento")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "orçamento criado", orcamento)
}

// UpdateOrcamento atualiza campos do cabeçalho; totais são ignorados do
// payload, só a escrita de itens os altera
func (h *Handler) UpdateOrcamento(ctx *gin.Context) {
	numero := ctx.Param("numero")

	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	campos := filtrarCampos(payload, "cliente_id", "cliente_nome", "descricao", "status", "validade")
	if valor, ok := campos["validade"].(string); ok {
		validade, err := utils.ParseData(valor)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "validade inválida: use AAAA-MM-DD ou DD/MM/AAAA")
			return
		}
		campos["validade"] = validade
	}

	if err := h.Repository.UpdateOrcamento(numero, campos); err != nil {
		h.tratarErro(ctx, err, "atualizar orçamento")
		return
	}

	h.successResponse(ctx, http.StatusOK, "orçamento atualizado", nil)
}

func (h *Handler) DeleteOrcamento(ctx *gin.Context) {
	if err := h.Repository.DeleteOrcamento(ctx.Param("numero")); err != nil {
		h.tratarErro(ctx, err, "excluir orçamento")
		return
	}
	h.successResponse(ctx, http.StatusOK, "orçamento excluído", nil)
}

// Itens

func (h *Handler) GetOrcamentoItens(ctx *gin.Context) {
	itens, err := h.Repository.GetOrcamentoItens(ctx.Param("numero"))
	if err != nil {
		h.tratarErro(ctx, err, "buscar itens do orçamento")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", itens)
}

func (h *Handler) AddOrcamentoItem(ctx *gin.Context) {
	numero := ctx.Param("numero")

	var request dto.OrcamentoItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	item := orcamentoItemFromRequest(&request)
	if err := h.Repository.AddOrcamentoItem(numero, &item); err != nil {
		h.tratarErro(ctx, err, "adicionar item ao orçamento")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "item adicionado", item)
}

func (h *Handler) UpdateOrcamentoItem(ctx *gin.Context) {
	numero := ctx.Param("numero")
	itemID, ok := h.parseID(ctx, "item_id")
	if !ok {
		return
	}

	var request dto.OrcamentoItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.UpdateOrcamentoItem(numero, itemID, request.Quantidade, request.ValorUnitario, request.ValorMaoObra); err != nil {
		h.tratarErro(ctx, err, "atualizar item do orçamento")
		return
	}

	h.successResponse(ctx, http.StatusOK, "item atualizado", nil)
}

func (h *Handler) DeleteOrcamentoItem(ctx *gin.Context) {
	numero := ctx.Param("numero")
	itemID, ok := h.parseID(ctx, "item_id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteOrcamentoItem(numero, itemID); err != nil {
		h.tratarErro(ctx, err, "remover item do orçamento")
		return
	}

	h.successResponse(ctx, http.StatusOK, "item removido", nil)
}

func orcamentoItemFromRequest(request *dto.OrcamentoItemRequest) ds.OrcamentoItem {
	return ds.OrcamentoItem{
		ProdutoID:     request.ProdutoID,
		Descricao:     request.Descricao,
		Quantidade:    request.Quantidade,
		ValorUnitario: request.ValorUnitario,
		ValorMaoObra:  request.ValorMaoObra,
	}
}
