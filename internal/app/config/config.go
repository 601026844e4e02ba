package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	AppURL      string // URL pública usada nos links enviados por WhatsApp
	JWT         JWTConfig
	Redis       RedisConfig
	Minio       MinioConfig
	WhatsApp    WhatsAppConfig
	Empresa     EmpresaConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// WhatsAppConfig guarda as credenciais da Cloud API da Meta
type WhatsAppConfig struct {
	VerifyToken   string
	AccessToken   string
	PhoneNumberID string
}

// EmpresaConfig guarda a posição da sede, usada no cálculo de distância até o cliente
type EmpresaConfig struct {
	Latitude  float64
	Longitude float64
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	cfg.JWT = JWTConfig{
		Token:         os.Getenv("JWT_SECRET"),
		ExpiresIn:     24 * time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}
	if cfg.JWT.Token == "" {
		cfg.JWT.Token = "gestaocon-dev"
	}

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	cfg.Minio = MinioConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    os.Getenv("MINIO_BUCKET"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "gestaocon"
	}

	cfg.WhatsApp = WhatsAppConfig{
		VerifyToken:   os.Getenv("WHATSAPP_VERIFY_TOKEN"),
		AccessToken:   os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
	}

	if v := os.Getenv("APP_URL"); v != "" {
		cfg.AppURL = v
	}
	if v := os.Getenv("EMPRESA_LATITUDE"); v != "" {
		cfg.Empresa.Latitude, _ = strconv.ParseFloat(v, 64)
	}
	if v := os.Getenv("EMPRESA_LONGITUDE"); v != "" {
		cfg.Empresa.Longitude, _ = strconv.ParseFloat(v, 64)
	}

	log.Info("config parsed")

	return cfg, nil
}
