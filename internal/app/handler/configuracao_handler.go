package handler

import (
	"io"
	"net/http"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Feriados

func (h *Handler) GetFeriados(ctx *gin.Context) {
	feriados, err := h.Repository.GetFeriados()
	if err != nil {
		h.tratarErro(ctx, err, "listar feriados")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", feriados)
}

func (h *Handler) CreateFeriado(ctx *gin.Context) {
	var request dto.FeriadoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	data, err := utils.ParseData(request.Data)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "data inválida: use AAAA-MM-DD ou DD/MM/AAAA")
		return
	}

	feriado := &ds.Feriado{Nome: request.Nome, Data: data}
	if err := h.Repository.CreateFeriado(feriado); err != nil {
		h.tratarErro(ctx, err, "criar feriado")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "feriado criado", feriado)
}

func (h *Handler) DeleteFeriado(ctx *gin.Context) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteFeriado(id); err != nil {
		h.tratarErro(ctx, err, "excluir feriado")
		return
	}

	h.successResponse(ctx, http.StatusOK, "feriado excluído", nil)
}

// Layout do papel timbrado

func (h *Handler) GetLayoutTimbrado(ctx *gin.Context) {
	layout, err := h.Repository.GetLayoutTimbrado()
	if err != nil {
		h.tratarErro(ctx, err, "buscar layout")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", layout)
}

func (h *Handler) UpdateLayoutTimbrado(ctx *gin.Context) {
	var request dto.LayoutTimbradoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	layout, err := h.Repository.GetLayoutTimbrado()
	if err != nil {
		h.tratarErro(ctx, err, "buscar layout")
		return
	}

	layout.Cabecalho = request.Cabecalho
	layout.Rodape = request.Rodape
	if request.MargemSuperior != nil {
		layout.MargemSuperior = *request.MargemSuperior
	}
	if request.MargemInferior != nil {
		layout.MargemInferior = *request.MargemInferior
	}

	if err := h.Repository.UpdateLayoutTimbrado(layout); err != nil {
		h.tratarErro(ctx, err, "atualizar layout")
		return
	}

	h.successResponse(ctx, http.StatusOK, "layout atualizado", layout)
}

// Logos

func (h *Handler) GetLogos(ctx *gin.Context) {
	logos, err := h.Repository.GetLogos()
	if err != nil {
		h.tratarErro(ctx, err, "listar logos")
		return
	}

	resposta := make([]gin.H, len(logos))
	for i, logo := range logos {
		url := ""
		if h.Minio != nil {
			if u, err := h.Minio.GetFileURL(logo.Arquivo); err == nil {
				url = u
			}
		}
		resposta[i] = gin.H{
			"posicao":    logo.Posicao,
			"arquivo":    logo.Arquivo,
			"url":        url,
			"updated_at": logo.UpdatedAt,
		}
	}

	h.successResponse(ctx, http.StatusOK, "", resposta)
}

// UploadLogo troca a logo da posição e remove o arquivo anterior do MinIO
func (h *Handler) UploadLogo(ctx *gin.Context) {
	posicao := ctx.Param("posicao")
	if posicao != "cabecalho" && posicao != "rodape" {
		h.errorResponse(ctx, http.StatusBadRequest, "posição deve ser cabecalho ou rodape")
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

	objectName, err := h.Minio.UploadFile(fileData, fileHeader.Filename, "logos")
	if err != nil {
		h.tratarErro(ctx, err, "enviar logo ao MinIO")
		return
	}

	anterior, err := h.Repository.SetLogo(posicao, objectName)
	if err != nil {
		h.tratarErro(ctx, err, "gravar logo")
		return
	}

	if anterior != "" {
		if err := h.Minio.DeleteFile(anterior); err != nil {
			logrus.WithError(err).Warn("erro ao remover logo antiga do MinIO")
		}
	}

	h.successResponse(ctx, http.StatusOK, "logo atualizada", gin.H{"posicao": posicao, "arquivo": objectName})
}

// Valor por km

func (h *Handler) GetValorKm(ctx *gin.Context) {
	valor, err := h.Repository.GetValorKm()
	if err != nil {
		h.tratarErro(ctx, err, "buscar valor por km")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", gin.H{"valor_km": valor})
}

func (h *Handler) SetValorKm(ctx *gin.Context) {
	var request dto.ValorKmRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.SetValorKm(request.ValorKm); err != nil {
		h.tratarErro(ctx, err, "gravar valor por km")
		return
	}

	h.successResponse(ctx, http.StatusOK, "valor por km atualizado", gin.H{"valor_km": request.ValorKm})
}
