package handler

import (
	"net/http"

	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/utils"

	"github.com/gin-gonic/gin"
)

// GetContratos lista contratos de conservação
func (h *Handler) GetContratos(ctx *gin.Context) {
	contratos, err := h.Repository.GetContratos(ctx.Query("busca"))
	if err != nil {
		h.tratarErro(ctx, err, "listar contratos")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", contratos)
}

func (h *Handler) GetContrato(ctx *gin.Context) {
	contrato, err := h.Repository.GetContratoByNumero(ctx.Param("numero"))
	if err != nil {
		h.tratarErro(ctx, err, "buscar contrato")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", contrato)
}

// CreateContrato gera o contrato a partir de uma proposta, congelando
// equipamentos e valor mensal no momento do aceite
func (h *Handler) CreateContrato(ctx *gin.Context) {
	var request dto.ContratoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	dataInicio, err := utils.ParseData(request.DataInicio)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "data_inicio inválida: use AAAA-MM-DD ou DD/MM/AAAA")
		return
	}

	contrato, err := h.Repository.CreateContratoFromProposta(request.PropostaNumero, dataInicio, request.PrazoMeses, request.DiaVencimento)
	if err != nil {
		h.tratarErro(ctx, err, "criar contrato")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "contrato criado", contrato)
}

// UpdateContrato atualiza o contrato; data_fim é recalculada quando início ou
// prazo mudam
func (h *Handler) UpdateContrato(ctx *gin.Context) {
	numero := ctx.Param("numero")

	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	campos := filtrarCampos(payload, "valor_mensal", "dia_vencimento", "data_inicio", "prazo_meses", "status")
	if valor, ok := campos["data_inicio"].(string); ok {
		dataInicio, err := utils.ParseData(valor)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "data_inicio inválida: use AAAA-MM-DD ou DD/MM/AAAA")
			return
		}
		campos["data_inicio"] = dataInicio
	}

	if err := h.Repository.UpdateContrato(numero, campos); err != nil {
		h.tratarErro(ctx, err, "atualizar contrato")
		return
	}

	h.successResponse(ctx, http.StatusOK, "contrato atualizado", nil)
}

func (h *Handler) DeleteContrato(ctx *gin.Context) {
	if err := h.Repository.DeleteContrato(ctx.Param("numero")); err != nil {
		h.tratarErro(ctx, err, "excluir contrato")
		return
	}
	h.successResponse(ctx, http.StatusOK, "contrato excluído", nil)
}
