package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gestaocon/internal/app/config"
	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/geo"
	"gestaocon/internal/app/middleware"
	"gestaocon/internal/app/redis"
	"gestaocon/internal/app/repository"
	"gestaocon/internal/app/role"
	"gestaocon/internal/app/storage"
	"gestaocon/internal/app/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Minio       *storage.MinIOClient
	Config      *config.Config
	Geo         *geo.Client
	Flow        *whatsapp.Flow
}

func NewHandler(r *repository.Repository, redisClient *redis.Client, minio *storage.MinIOClient, cfg *config.Config, geoClient *geo.Client, flow *whatsapp.Flow) *Handler {
	return &Handler{
		Repository:  r,
		RedisClient: redisClient,
		Minio:       minio,
		Config:      cfg,
		Geo:         geoClient,
		Flow:        flow,
	}
}

// RegisterRoutes registra todos os endpoints REST sob /api.
// Escritas exigem usuário autenticado; exclusões e configurações exigem
// gerente ou admin; backup é restrito a admin. Webhook do WhatsApp é público
// (a Meta se autentica pelo verify token no handshake).
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	todos := authMiddleware.WithAuthCheck(role.Operador, role.Gerente, role.Admin)
	gestores := authMiddleware.WithAuthCheck(role.Gerente, role.Admin)
	admin := authMiddleware.WithAuthCheck(role.Admin)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.LoginUser)
		auth.POST("/logout", todos, h.LogoutUser)
		auth.GET("/profile", todos, h.GetUserProfile)
	}

	clientes := api.Group("/clientes", todos)
	{
		clientes.GET("", h.GetClientes)
		clientes.GET("/:id", h.GetCliente)
		clientes.POST("", h.CreateCliente)
		clientes.PUT("/:id", h.UpdateCliente)
		clientes.DELETE("/:id", gestores, h.DeleteCliente)
	}

	categorias := api.Group("/categorias", todos)
	{
		categorias.GET("", h.GetCategorias)
		categorias.POST("", h.CreateCategoria)
		categorias.PUT("/:id", h.UpdateCategoria)
		categorias.DELETE("/:id", gestores, h.DeleteCategoria)
	}

	marcas := api.Group("/marcas", todos)
	{
		marcas.GET("", h.GetMarcas)
		marcas.POST("", h.CreateMarca)
		marcas.PUT("/:id", h.UpdateMarca)
		marcas.DELETE("/:id", gestores, h.DeleteMarca)
	}

	produtos := api.Group("/produtos", todos)
	{
		produtos.GET("", h.GetProdutos)
		produtos.GET("/:id", h.GetProduto)
		produtos.POST("", h.CreateProduto)
		produtos.POST("/generate-code", h.GerarCodigoProduto)
		produtos.PUT("/:id", h.UpdateProduto)
		produtos.DELETE("/:id", gestores, h.DeleteProduto)
	}

	orcamentos := api.Group("/orcamentos", todos)
	{
		orcamentos.GET("", h.GetOrcamentos)
		orcamentos.GET("/:numero", h.GetOrcamento)
		orcamentos.POST("", h.CreateOrcamento)
		orcamentos.PUT("/:numero", h.UpdateOrcamento)
		orcamentos.DELETE("/:numero", gestores, h.DeleteOrcamento)

		orcamentos.GET("/:numero/itens", h.GetOrcamentoItens)
		orcamentos.POST("/:numero/itens", h.AddOrcamentoItem)
		orcamentos.PUT("/:numero/itens/:item_id", h.UpdateOrcamentoItem)
		orcamentos.DELETE("/:numero/itens/:item_id", h.DeleteOrcamentoItem)
	}

	propostas := api.Group("/propostas-contratos", todos)
	{
		propostas.GET("", h.GetPropostas)
		propostas.GET("/:numero", h.GetProposta)
		propostas.POST("", h.CreateProposta)
		propostas.PUT("/:numero", h.UpdateProposta)
		propostas.DELETE("/:numero", gestores, h.DeleteProposta)
	}

	contratos := api.Group("/contratos", todos)
	{
		contratos.GET("", h.GetContratos)
		contratos.GET("/:numero", h.GetContrato)
		contratos.POST("", h.CreateContrato)
		contratos.PUT("/:numero", h.UpdateContrato)
		contratos.DELETE("/:numero", gestores, h.DeleteContrato)
	}

	boletos := api.Group("/boletos", todos)
	{
		boletos.GET("", h.GetBoletos)
		boletos.GET("/:id", h.GetBoleto)
		boletos.POST("", h.CreateBoleto)
		boletos.PUT("/:id", h.UpdateBoleto)
		boletos.DELETE("/:id", gestores, h.DeleteBoleto)
	}

	ordens := api.Group("/ordens-servico", todos)
	{
		ordens.GET("", h.GetOrdensServico)
		ordens.GET("/:id", h.GetOrdemServico)
		ordens.POST("", h.CreateOrdemServico)
		ordens.PUT("/:id", h.UpdateOrdemServico)
		ordens.DELETE("/:id", gestores, h.DeleteOrdemServico)

		ordens.GET("/:id/fotos", h.GetOrdemServicoFotos)
		ordens.POST("/:id/fotos", h.AddOrdemServicoFoto)
		ordens.POST("/:id/assinaturas", h.AddOrdemServicoAssinatura)
	}

	documentos := api.Group("/documentos", todos)
	{
		documentos.GET("", h.GetDocumentos)
		documentos.GET("/:id", h.GetDocumento)
		documentos.POST("", h.CreateDocumento)
		documentos.PUT("/:id", h.UpdateDocumento)
		documentos.DELETE("/:id", gestores, h.DeleteDocumento)
		documentos.POST("/:id/arquivo", h.UploadDocumentoArquivo)
	}

	configuracoes := api.Group("/configuracoes", gestores)
	{
		configuracoes.GET("/feriados", h.GetFeriados)
		configuracoes.POST("/feriados", h.CreateFeriado)
		configuracoes.DELETE("/feriados/:id", h.DeleteFeriado)

		configuracoes.GET("/layout", h.GetLayoutTimbrado)
		configuracoes.PUT("/layout", h.UpdateLayoutTimbrado)

		configuracoes.GET("/logos", h.GetLogos)
		configuracoes.POST("/logos/:posicao", h.UploadLogo)

		configuracoes.GET("/valor-km", h.GetValorKm)
		configuracoes.PUT("/valor-km", h.SetValorKm)
	}

	backup := api.Group("/backup", admin)
	{
		backup.GET("/database", h.GetTabelasBackup)
		backup.POST("/database", h.GerarBackup)
	}

	utils := api.Group("/utils", todos)
	{
		utils.POST("/calcular-distancia", h.CalcularDistancia)
	}

	webhook := api.Group("/whatsapp")
	{
		webhook.GET("/webhook", h.VerificarWebhook)
		webhook.POST("/webhook", h.ReceberWebhook)
	}

	router.GET("/ping", h.Ping)
}

// Ping verifica se o serviço está de pé
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *Handler) successResponse(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, dto.SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (h *Handler) errorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, dto.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// tratarErro mapeia os erros da camada de repositório para HTTP:
// regra de negócio violada vira 400, registro inexistente vira 404 e o
// restante vira 500 com uma mensagem genérica da ação (o detalhe vai pro log).
func (h *Handler) tratarErro(ctx *gin.Context, err error, acao string) {
	var conflito *repository.ConflitoError
	switch {
	case errors.As(err, &conflito):
		h.errorResponse(ctx, http.StatusBadRequest, conflito.Msg)
	case errors.Is(err, gorm.ErrRecordNotFound):
		h.errorResponse(ctx, http.StatusNotFound, "registro não encontrado")
	default:
		logrus.WithError(err).Errorf("erro ao %s", acao)
		h.errorResponse(ctx, http.StatusInternalServerError, "erro ao "+acao)
	}
}

// parseID lê o parâmetro :id da rota; responde 400 quando inválido
func (h *Handler) parseID(ctx *gin.Context, nome string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(nome), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "identificador inválido")
		return 0, false
	}
	return uint(id), true
}

// filtrarCampos copia do payload apenas as chaves permitidas na atualização
func filtrarCampos(payload map[string]interface{}, permitidos ...string) map[string]interface{} {
	campos := make(map[string]interface{})
	for _, chave := range permitidos {
		if valor, ok := payload[chave]; ok {
			campos[chave] = valor
		}
	}
	return campos
}
