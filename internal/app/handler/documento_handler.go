package handler

import (
	"io"
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetDocumentos lista documentos com filtro por categoria
func (h *Handler) GetDocumentos(ctx *gin.Context) {
	documentos, err := h.Repository.GetDocumentos(ctx.Query("categoria"))
	if err != nil {
		h.tratarErro(ctx, err, "listar documentos")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", documentos)
}

// GetDocumento devolve o documento; quando há arquivo anexado, inclui a URL
// presignada do MinIO
func (h *Handler) GetDocumento(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	documento, err := h.Repository.GetDocumentoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar documento")
		return
	}

	var arquivoURL string
	if documento.Arquivo != "" && h.Minio != nil {
		arquivoURL, err = h.Minio.GetFileURL(documento.Arquivo)
		if err != nil {
			logrus.WithError(err).Warn("erro ao gerar URL do arquivo")
		}
	}

	h.successResponse(ctx, http.StatusOK, "", gin.H{
		"documento":   documento,
		"arquivo_url": arquivoURL,
	})
}

func (h *Handler) CreateDocumento(ctx *gin.Context) {
	var request dto.DocumentoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	documento := &ds.Documento{
		Titulo:    request.Titulo,
		Categoria: request.Categoria,
		Conteudo:  request.Conteudo,
	}
	if err := h.Repository.CreateDocumento(documento); err != nil {
		h.tratarErro(ctx, err, "criar documento")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "documento criado", documento)
}

func (h *Handler) UpdateDocumento(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var request dto.DocumentoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	documento, err := h.Repository.GetDocumentoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar documento")
		return
	}

	documento.Titulo = request.Titulo
	documento.Categoria = request.Categoria
	documento.Conteudo = request.Conteudo
	if err := h.Repository.UpdateDocumento(documento); err != nil {
		h.tratarErro(ctx, err, "atualizar documento")
		return
	}

	h.successResponse(ctx, http.StatusOK, "documento atualizado", documento)
}

// DeleteDocumento remove o registro e o arquivo do MinIO quando existe
func (h *Handler) DeleteDocumento(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	documento, err := h.Repository.GetDocumentoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar documento")
		return
	}

	if err := h.Repository.DeleteDocumento(id); err != nil {
		h.tratarErro(ctx, err, "excluir documento")
		return
	}

	if documento.Arquivo != "" && h.Minio != nil {
		if err := h.Minio.DeleteFile(documento.Arquivo); err != nil {
			logrus.WithError(err).Warn("erro ao remover arquivo do MinIO")
		}
	}

	h.successResponse(ctx, http.StatusOK, "documento excluído", nil)
}

// UploadDocumentoArquivo recebe o anexo via multipart e grava no MinIO
func (h *Handler) UploadDocumentoArquivo(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	documento, err := h.Repository.GetDocumentoByID(id)
	if err != nil {
		h.tratarErro(ctx, err, "buscar documento")
		return
	}

	fileHeader, err := ctx.FormFile("arquivo")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "arquivo não enviado")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.tratarErro(ctx, err, "ler arquivo enviado")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.tratarErro(ctx, err, "ler arquivo enviado")
		return
	}

	objectName, err := h.Minio.UploadFile(fileData, fileHeader.Filename, "documentos")
	if err != nil {
		h.tratarErro(ctx, err, "enviar arquivo ao MinIO")
		return
	}

	anterior := documento.Arquivo
	documento.Arquivo = objectName
	if err := h.Repository.UpdateDocumento(documento); err != nil {
		h.tratarErro(ctx, err, "atualizar documento")
		return
	}

	if anterior != "" {
		if err := h.Minio.DeleteFile(anterior); err != nil {
			logrus.WithError(err).Warn("erro ao remover arquivo antigo do MinIO")
		}
	}

	h.successResponse(ctx, http.StatusOK, "arquivo anexado", gin.H{"arquivo": objectName})
}
