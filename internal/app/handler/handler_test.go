package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gestaocon/internal/app/config"
	"gestaocon/internal/app/handler"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func novoHandler() *handler.Handler {
	cfg := &config.Config{}
	cfg.WhatsApp.VerifyToken = "token-teste"
	return handler.NewHandler(nil, nil, nil, cfg, nil, nil)
}

func executar(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.GET("/ping", h.Ping)

	rec := executar(router, http.MethodGet, "/ping", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pong") {
		t.Errorf("resposta sem pong: %s", rec.Body.String())
	}
}

func TestCreateCliente_PayloadInvalido(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.POST("/api/clientes", h.CreateCliente)

	casos := []struct {
		nome string
		body string
	}{
		{"json quebrado", `{"nome": `},
		{"sem nome", `{"email": "a@b.com"}`},
		{"email inválido", `{"nome": "Condomínio X", "email": "nao-e-email"}`},
		{"uf com três letras", `{"nome": "Condomínio X", "estado": "SPO"}`},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			rec := executar(router, http.MethodPost, "/api/clientes", caso.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, esperado 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `"success":false`) {
				t.Errorf("envelope de erro ausente: %s", rec.Body.String())
			}
		})
	}
}

func TestGetCliente_IDInvalido(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.GET("/api/clientes/:id", h.GetCliente)

	for _, id := range []string{"abc", "0", "-5"} {
		rec := executar(router, http.MethodGet, "/api/clientes/"+id, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, esperado 400", id, rec.Code)
		}
	}
}

func TestCreateBoleto_Validacao(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.POST("/api/boletos", h.CreateBoleto)

	casos := []struct {
		nome string
		body string
	}{
		{"sem cliente", `{"valor": 100, "data_vencimento": "2026-09-10"}`},
		{"valor zero", `{"cliente_id": 1, "valor": 0, "data_vencimento": "2026-09-10"}`},
		{"data inválida", `{"cliente_id": 1, "valor": 100, "data_vencimento": "10-09-2026"}`},
		{"parcelas acima do limite", `{"cliente_id": 1, "valor": 100, "data_vencimento": "2026-09-10", "parcelas": 120}`},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			rec := executar(router, http.MethodPost, "/api/boletos", caso.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, esperado 400 (%s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateContrato_DataInvalida(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.POST("/api/contratos", h.CreateContrato)

	rec := executar(router, http.MethodPost, "/api/contratos",
		`{"proposta_numero": "20260828001", "data_inicio": "amanhã"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "data_inicio") {
		t.Errorf("mensagem não cita o campo: %s", rec.Body.String())
	}
}

func TestUploadLogo_PosicaoInvalida(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.POST("/api/configuracoes/logos/:posicao", h.UploadLogo)

	rec := executar(router, http.MethodPost, "/api/configuracoes/logos/lateral", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
}

func TestCalcularDistancia_SemEndereco(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.POST("/api/utils/calcular-distancia", h.CalcularDistancia)

	rec := executar(router, http.MethodPost, "/api/utils/calcular-distancia", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "endereço") {
		t.Errorf("mensagem inesperada: %s", rec.Body.String())
	}
}

func TestVerificarWebhook(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.GET("/api/whatsapp/webhook", h.VerificarWebhook)

	t.Run("token correto devolve o challenge", func(t *testing.T) {
		rec := executar(router, http.MethodGet,
			"/api/whatsapp/webhook?hub.mode=subscribe&hub.verify_token=token-teste&hub.challenge=12345", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, esperado 200", rec.Code)
		}
		if rec.Body.String() != "12345" {
			t.Errorf("challenge = %q, esperado 12345", rec.Body.String())
		}
	})

	t.Run("token errado é rejeitado", func(t *testing.T) {
		rec := executar(router, http.MethodGet,
			"/api/whatsapp/webhook?hub.mode=subscribe&hub.verify_token=errado&hub.challenge=12345", "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, esperado 403", rec.Code)
		}
	})

	t.Run("modo ausente é rejeitado", func(t *testing.T) {
		rec := executar(router, http.MethodGet,
			"/api/whatsapp/webhook?hub.verify_token=token-teste&hub.challenge=12345", "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, esperado 403", rec.Code)
		}
	})
}

func TestReceberWebhook_PayloadSemMensagens(t *testing.T) {
	h := novoHandler()
	router := gin.New()
	router.POST("/api/whatsapp/webhook", h.ReceberWebhook)

	// payload de status de entrega, sem mensagens de texto: 200 sem processar
	rec := executar(router, http.MethodPost, "/api/whatsapp/webhook",
		`{"entry": [{"changes": [{"value": {}}]}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
}
