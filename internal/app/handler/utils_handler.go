package handler

import (
	"net/http"
	"strings"

	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/geo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CalcularDistancia resolve o endereço (do cliente ou avulso) em coordenadas
// e calcula a distância até a sede. Quando o cálculo é para um cliente
// cadastrado, a distância fica persistida no registro.
func (h *Handler) CalcularDistancia(ctx *gin.Context) {
	var request dto.CalcularDistanciaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	endereco := request.Endereco
	numero := request.Numero
	cidade := request.Cidade
	uf := request.Estado
	cep := request.CEP

	if request.ClienteID != nil {
		cliente, err := h.Repository.GetClienteByID(*request.ClienteID)
		if err != nil {
			h.tratarErro(ctx, err, "buscar cliente")
			return
		}
		endereco = cliente.Endereco
		numero = cliente.Numero
		cidade = cliente.Cidade
		uf = cliente.Estado
		cep = cliente.CEP
	}

	// CEP resolve o que faltar do endereço
	if cep != "" && (endereco == "" || cidade == "") {
		resolvido, err := h.Geo.BuscarCEP(ctx.Request.Context(), cep)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
		if endereco == "" {
			endereco = resolvido.Logradouro
		}
		if cidade == "" {
			cidade = resolvido.Localidade
		}
		if uf == "" {
			uf = resolvido.UF
		}
	}

	if endereco == "" || cidade == "" {
		h.errorResponse(ctx, http.StatusBadRequest, "informe cliente_id, CEP ou endereço completo")
		return
	}

	enderecoCompleto := endereco
	if numero != "" {
		enderecoCompleto += ", " + numero
	}

	lat, lon, err := h.Geo.Geocodificar(ctx.Request.Context(), enderecoCompleto, cidade, uf)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	distancia := geo.Haversine(h.Config.Empresa.Latitude, h.Config.Empresa.Longitude, lat, lon)

	resposta := dto.DistanciaResponse{
		DistanciaKm:   distancia,
		Latitude:      lat,
		Longitude:     lon,
		EnderecoUsado: strings.Join([]string{enderecoCompleto, cidade, uf}, ", "),
	}

	if valorKm, err := h.Repository.GetValorKm(); err == nil && valorKm > 0 {
		valorDeslocamento := distancia * valorKm
		resposta.ValorDeslocamento = &valorDeslocamento
	}

	if request.ClienteID != nil {
		if err := h.Repository.AtualizarDistanciaCliente(*request.ClienteID, lat, lon, distancia); err != nil {
			logrus.WithError(err).Warn("erro ao persistir distância do cliente")
		}
	}

	h.successResponse(ctx, http.StatusOK, "", resposta)
}
