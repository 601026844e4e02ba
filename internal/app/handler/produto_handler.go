package handler

import (
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetProdutos lista produtos com os nomes de categoria e marca resolvidos
func (h *Handler) GetProdutos(ctx *gin.Context) {
	produtos, err := h.Repository.GetProdutos(ctx.Query("busca"))
	if err != nil {
		h.tratarErro(ctx, err, "listar produtos")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", produtos)
}

func (h *Handler) GetProduto(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	produto, err := h.Repository.GetProdutoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar produto")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", produto)
}

// CreateProduto gera o código automaticamente quando não informado
func (h *Handler) CreateProduto(ctx *gin.Context) {
	var request dto.ProdutoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	codigo := request.Codigo
	if codigo == "" {
		gerado, err := h.Repository.GerarCodigoProduto(request.TipoID, request.MarcaID, request.IsServico)
		if err != nil {
			h.tratarErro(ctx, err, "gerar código do produto")
			return
		}
		codigo = gerado
	}

	produto := produtoFromRequest(&request)
	produto.Codigo = codigo

	if err := h.Repository.CreateProduto(produto); err != nil {
		h.tratarErro(ctx, err, "criar produto")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "produto criado", produto)
}

// GerarCodigoProduto devolve o próximo código disponível sem criar o produto
func (h *Handler) GerarCodigoProduto(ctx *gin.Context) {
	var request dto.GerarCodigoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	codigo, err := h.Repository.GerarCodigoProduto(request.TipoID, request.MarcaID, request.IsServico)
	if err != nil {
		h.tratarErro(ctx, err, "gerar código do produto")
		return
	}

	h.successResponse(ctx, http.StatusOK, "", dto.CodigoResponse{Codigo: codigo})
}

func (h *Handler) UpdateProduto(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var request dto.ProdutoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	existente, err := h.Repository.GetProdutoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar produto")
		return
	}

	produto := produtoFromRequest(&request)
	produto.ID = id
	// código é imutável após a criação
	produto.Codigo = existente.Codigo

	if err := h.Repository.UpdateProduto(produto); err != nil {
		h.tratarErro(ctx, err, "atualizar produto")
		return
	}

	h.successResponse(ctx, http.StatusOK, "produto atualizado", produto)
}

func (h *Handler) DeleteProduto(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteProduto(id); err != nil {
		h.tratarErro(ctx, err, "excluir produto")
		return
	}

	h.successResponse(ctx, http.StatusOK, "produto excluído", nil)
}

func produtoFromRequest(request *dto.ProdutoRequest) *ds.Produto {
	unidade := request.Unidade
	if unidade == "" {
		unidade = "UN"
	}
	return &ds.Produto{
		Descricao:     request.Descricao,
		TipoID:        request.TipoID,
		MarcaID:       request.MarcaID,
		NCM:           request.NCM,
		Unidade:       unidade,
		PrecoCusto:    request.PrecoCusto,
		PrecoVenda:    request.PrecoVenda,
		ValorMaoObra:  request.ValorMaoObra,
		Margem:        request.Margem,
		Estoque:       request.Estoque,
		EstoqueMinimo: request.EstoqueMinimo,
		IsServico:     request.IsServico,
	}
}
