package handler

import (
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetClientes lista clientes ativos, com busca opcional por nome/documento
func (h *Handler) GetClientes(ctx *gin.Context) {
	clientes, err := h.Repository.GetClientes(ctx.Query("busca"))
	if err != nil {
		h.tratarErro(ctx, err, "listar clientes")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", clientes)
}

func (h *Handler) GetCliente(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	cliente, err := h.Repository.GetClienteByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar cliente")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", cliente)
}

func (h *Handler) CreateCliente(ctx *gin.Context) {
	var request dto.ClienteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	cliente := clienteFromRequest(&request)
	if err := h.Repository.CreateCliente(cliente); err != nil {
		h.tratarErro(ctx, err, "criar cliente")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "cliente criado", cliente)
}

func (h *Handler) UpdateCliente(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var request dto.ClienteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	existente, err := h.Repository.GetClienteByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar cliente")
		return
	}

	cliente := clienteFromRequest(&request)
	cliente.ID = id
	cliente.PossuiContrato = existente.PossuiContrato
	cliente.Status = existente.Status
	cliente.Latitude = existente.Latitude
	cliente.Longitude = existente.Longitude
	cliente.DistanciaKm = existente.DistanciaKm

	if err := h.Repository.UpdateCliente(cliente); err != nil {
		h.tratarErro(ctx, err, "atualizar cliente")
		return
	}

	h.successResponse(ctx, http.StatusOK, "cliente atualizado", cliente)
}

// DeleteCliente remove o cliente; com vínculos, apenas inativa
func (h *Handler) DeleteCliente(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteCliente(id); err != nil {
		h.tratarErro(ctx, err, "excluir cliente")
		return
	}

	h.successResponse(ctx, http.StatusOK, "cliente excluído", nil)
}

func clienteFromRequest(request *dto.ClienteRequest) *ds.Cliente {
	return &ds.Cliente{
		Nome:        request.Nome,
		RazaoSocial: request.RazaoSocial,
		CNPJ:        request.CNPJ,
		CPF:         request.CPF,
		Email:       request.Email,
		Telefone:    request.Telefone,
		Celular:     request.Celular,
		Endereco:    request.Endereco,
		Numero:      request.Numero,
		Bairro:      request.Bairro,
		Cidade:      request.Cidade,
		Estado:      request.Estado,
		CEP:         request.CEP,
		Observacoes: request.Observacoes,
		Status:      "ativo",
	}
}
