package handler

import (
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// Categorias de produto

func (h *Handler) GetCategorias(ctx *gin.Context) {
	categorias, err := h.Repository.GetTiposProduto()
	if err != nil {
		h.tratarErro(ctx, err, "listar categorias")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", categorias)
}

func (h *Handler) CreateCategoria(ctx *gin.Context) {
	var request dto.TipoProdutoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	categoria := &ds.TipoProduto{Nome: request.Nome, Codigo: request.Codigo}
	if err := h.Repository.CreateTipoProduto(categoria); err != nil {
		h.tratarErro(ctx, err, "criar categoria")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "categoria criada", categoria)
}

func (h *Handler) UpdateCategoria(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var request dto.TipoProdutoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	categoria, err := h.Repository.GetTipoProdutoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar categoria")
		return
	}

	categoria.Nome = request.Nome
	categoria.Codigo = request.Codigo
	if err := h.Repository.UpdateTipoProduto(categoria); err != nil {
		h.tratarErro(ctx, err, "atualizar categoria")
		return
	}

	h.successResponse(ctx, http.StatusOK, "categoria atualizada", categoria)
}

func (h *Handler) DeleteCategoria(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteTipoProduto(id); err != nil {
		h.tratarErro(ctx, err, "excluir categoria")
		return
	}

	h.successResponse(ctx, http.StatusOK, "categoria excluída", nil)
}

// Marcas

func (h *Handler) GetMarcas(ctx *gin.Context) {
	marcas, err := h.Repository.GetMarcas()
	if err != nil {
		h.tratarErro(ctx, err, "listar marcas")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", marcas)
}

// CreateMarca deriva a sigla do nome quando não informada
func (h *Handler) CreateMarca(ctx *gin.Context) {
	var request dto.MarcaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	sigla := request.Sigla
	if sigla == "" {
		sigla = repository.GerarSigla(request.Nome)
	}

	marca := &ds.Marca{Nome: request.Nome, Sigla: sigla}
	if err := h.Repository.CreateMarca(marca); err != nil {
		h.tratarErro(ctx, err, "criar marca")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "marca criada", marca)
}

func (h *Handler) UpdateMarca(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var request dto.MarcaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	marca, err := h.Repository.GetMarcaByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar marca")
		return
	}

	marca.Nome = request.Nome
	if request.Sigla != "" {
		marca.Sigla = request.Sigla
	}
	if err := h.Repository.UpdateMarca(marca); err != nil {
		h.tratarErro(ctx, err, "atualizar marca")
		return
	}

	h.successResponse(ctx, http.StatusOK, "marca atualizada", marca)
}

func (h *Handler) DeleteMarca(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteMarca(id); err != nil {
		h.tratarErro(ctx, err, "excluir marca")
		return
	}

	h.successResponse(ctx, http.StatusOK, "marca excluída", nil)
}
