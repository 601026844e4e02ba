package handler

import (
	"net/http"
	"os"

	"gestaocon/internal/app/dto"

	"github.com/gin-gonic/gin"
)

const diretorioBackupPadrao = "backups"

func diretorioBackup() string {
	if dir := os.Getenv("BACKUP_DIR"); dir != "" {
		return dir
	}
	return diretorioBackupPadrao
}

// GetTabelasBackup lista as tabelas disponíveis com contagem e tamanho
func (h *Handler) GetTabelasBackup(ctx *gin.Context) {
	tabelas, err := h.Repository.ListarTabelas()
	if err != nil {
		h.tratarErro(ctx, err, "listar tabelas")
		return
	}
	h.successResponse(ctx, http.StatusOK, "", tabelas)
}

// GerarBackup gera o dump SQL das tabelas pedidas (todas quando vazio)
func (h *Handler) GerarBackup(ctx *gin.Context) {
	var request dto.BackupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	arquivo, err := h.Repository.DumpBanco(request.Tabelas, diretorioBackup())
	if err != nil {
		h.tratarErro(ctx, err, "gerar backup")
		return
	}

	h.successResponse(ctx, http.StatusOK, "backup gerado", dto.BackupResponse{
		Arquivo: arquivo,
		Tabelas: len(request.Tabelas),
	})
}
