package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gestaocon/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const (
	jwtPrefix      = "jwt.blacklist."
	conversaPrefix = "whatsapp.conversa."

	// conversas abandonadas expiram sozinhas
	ConversaTTL = 30 * time.Minute
)

type Client struct {
	cfg config.RedisConfig
	rdb *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{cfg: cfg}

	client.rdb = redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		Username:    cfg.User,
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := client.rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// WriteJWTToBlacklist invalida o token até o fim da sua validade
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.rdb.Set(ctx, jwtPrefix+jwtStr, true, jwtTTL).Err()
}

// CheckJWTInBlacklist retorna nil quando o token está na blacklist
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.rdb.Get(ctx, jwtPrefix+jwtStr).Err()
}

// ErrConversaNaoEncontrada indica que não há conversa ativa para o telefone
var ErrConversaNaoEncontrada = errors.New("conversa não encontrada")

// SalvarConversa persiste o estado da conversa do WhatsApp com TTL,
// renovado a cada mensagem recebida
func (c *Client) SalvarConversa(ctx context.Context, telefone string, estado interface{}) error {
	payload, err := json.Marshal(estado)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, conversaPrefix+telefone, payload, ConversaTTL).Err()
}

// BuscarConversa carrega o estado da conversa em destino
func (c *Client) BuscarConversa(ctx context.Context, telefone string, destino interface{}) error {
	payload, err := c.rdb.Get(ctx, conversaPrefix+telefone).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrConversaNaoEncontrada
		}
		return err
	}
	return json.Unmarshal(payload, destino)
}

// LimparConversa remove o estado ao concluir ou cancelar o atendimento
func (c *Client) LimparConversa(ctx context.Context, telefone string) error {
	return c.rdb.Del(ctx, conversaPrefix+telefone).Err()
}
