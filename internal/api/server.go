package api

import (
	"context"

	"gestaocon/internal/app/config"
	"gestaocon/internal/app/dsn"
	"gestaocon/internal/app/geo"
	"gestaocon/internal/app/handler"
	"gestaocon/internal/app/middleware"
	"gestaocon/internal/app/redis"
	"gestaocon/internal/app/repository"
	"gestaocon/internal/app/storage"
	"gestaocon/internal/app/whatsapp"
	"gestaocon/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer monta todas as dependências e sobe o serviço HTTP
func StartServer() {
	logrus.Info("iniciando servidor")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("erro ao carregar configuração: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("erro ao inicializar repositório: %v", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("erro ao conectar no Redis: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Fatalf("erro ao conectar no MinIO: %v", err)
	}

	geoClient := geo.NewClient()
	whatsClient := whatsapp.NewClient(cfg.WhatsApp)
	flow := whatsapp.NewFlow(redisClient, whatsClient, repo, cfg.AppURL)

	h := handler.NewHandler(repo, redisClient, minioClient, cfg, geoClient, flow)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	h.RegisterRoutes(router, authMiddleware)

	app := pkg.NewApp(cfg, router)
	app.RunApp()
}
