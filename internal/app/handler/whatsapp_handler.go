package handler

import (
	"net/http"

	"gestaocon/internal/app/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// VerificarWebhook responde ao handshake de verificação da Meta: devolve o
// challenge quando o verify token confere
func (h *Handler) VerificarWebhook(ctx *gin.Context) {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if mode == "subscribe" && token == h.Config.WhatsApp.VerifyToken {
		ctx.String(http.StatusOK, challenge)
		return
	}

	ctx.Status(http.StatusForbidden)
}

// ReceberWebhook processa as mensagens de texto recebidas. Sempre responde
// 200 para a Meta não reentregar o evento; falhas ficam no log.
func (h *Handler) ReceberWebhook(ctx *gin.Context) {
	var payload whatsapp.WebhookPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.Status(http.StatusOK)
		return
	}

	for _, mensagem := range payload.Mensagens() {
		if err := h.Flow.ProcessarMensagem(ctx.Request.Context(), mensagem.From, mensagem.Text.Body); err != nil {
			logrus.WithError(err).WithField("telefone", mensagem.From).Error("erro ao processar mensagem do WhatsApp")
		}
	}

	ctx.Status(http.StatusOK)
}
