package handler

import (
	"net/http"
	"strconv"
	"time"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/repository"
	"gestaocon/internal/app/utils"

	"github.com/gin-gonic/gin"
)

// boletoResponse anexa o status derivado sem alterar a coluna gravada
type boletoResponse struct {
	ds.Boleto
	StatusEfetivo string `json:"status_efetivo"`
}

func toBoletoResponse(boleto ds.Boleto, referencia time.Time) boletoResponse {
	return boletoResponse{
		Boleto:        boleto,
		StatusEfetivo: repository.StatusEfetivo(&boleto, referencia),
	}
}

// GetBoletos lista boletos com filtros por cliente e status. O status
// "vencido" é derivado: pendente com vencimento no passado.
func (h *Handler) GetBoletos(ctx *gin.Context) {
	var clienteID uint
	if valor := ctx.Query("cliente_id"); valor != "" {
		id, err := strconv.ParseUint(valor, 10, 32)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "cliente_id inválido")
			return
		}
		clienteID = uint(id)
	}

	boletos, err := h.Repository.GetBoletos(clienteID, ctx.Query("status"))
	if err != nil {
		h.tratarErro(ctx, err, "listar boletos")
		return
	}

	hoje := time.Now()
	resposta := make([]boletoResponse, len(boletos))
	for i, boleto := range boletos {
		resposta[i] = toBoletoResponse(boleto, hoje)
	}

	h.successResponse(ctx, http.StatusOK, "", resposta)
}

func (h *Handler) GetBoleto(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	boleto, err := h.Repository.GetBoletoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar boleto")
		return
	}

	h.successResponse(ctx, http.StatusOK, "", toBoletoResponse(*boleto, time.Now()))
}

// CreateBoleto emite uma ou mais parcelas com vencimentos mensais ajustados
// para dia útil
func (h *Handler) CreateBoleto(ctx *gin.Context) {
	var request dto.BoletoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	vencimento, err := utils.ParseData(request.DataVencimento)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "data_vencimento inválida: use AAAA-MM-DD ou DD/MM/AAAA")
		return
	}

	boleto := &ds.Boleto{
		ClienteID:      request.ClienteID,
		ContratoNumero: request.ContratoNumero,
		Descricao:      request.Descricao,
		Valor:          request.Valor,
		DataVencimento: vencimento,
	}

	emitidos, err := h.Repository.CreateBoletos(boleto, request.Parcelas)
	if err != nil {
		h.tratarErro(ctx, err, "emitir boletos")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "boletos emitidos", emitidos)
}

// UpdateBoleto atualiza o boleto; marcar como pago registra a data de
// pagamento automaticamente
func (h *Handler) UpdateBoleto(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	campos := filtrarCampos(payload, "descricao", "valor", "data_vencimento", "data_pagamento", "status")
	for _, chave := range []string{"data_vencimento", "data_pagamento"} {
		if valor, ok := campos[chave].(string); ok {
			data, err := utils.ParseData(valor)
			if err != nil {
				h.errorResponse(ctx, http.StatusBadRequest, chave+" inválida: use AAAA-MM-DD ou DD/MM/AAAA")
				return
			}
			campos[chave] = data
		}
	}

	if err := h.Repository.UpdateBoleto(id, campos); err != nil {
		h.tratarErro(ctx, err, "atualizar boleto")
		return
	}

	h.successResponse(ctx, http.StatusOK, "boleto atualizado", nil)
}

// DeleteBoleto bloqueia a exclusão de boleto já pago
func (h *Handler) DeleteBoleto(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteBoleto(id); err != nil {
		h.tratarErro(ctx, err, "excluir boleto")
		return
	}

	h.successResponse(ctx, http.StatusOK, "boleto excluído", nil)
}
