package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gestaocon/internal/app/config"

	"github.com/sirupsen/logrus"
)

const graphAPIURL = "https://graph.facebook.com/v18.0/%s/messages"

// Client envia mensagens pela Cloud API da Meta. Uma tentativa por mensagem,
// sem retry; falha de envio é logada e propagada.
type Client struct {
	cfg  config.WhatsAppConfig
	http *http.Client
}

func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

type mensagemTexto struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// EnviarTexto envia uma mensagem de texto simples para o telefone
func (c *Client) EnviarTexto(ctx context.Context, telefone, texto string) error {
	payload := mensagemTexto{
		MessagingProduct: "whatsapp",
		To:               telefone,
		Type:             "text",
	}
	payload.Text.Body = texto

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf(graphAPIURL, c.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar mensagem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detalhe, _ := io.ReadAll(resp.Body)
		logrus.Errorf("cloud api respondeu %d: %s", resp.StatusCode, string(detalhe))
		return fmt.Errorf("cloud api respondeu %d", resp.StatusCode)
	}

	return nil
}

// Estruturas do payload de webhook da Meta (apenas os campos usados)

type WebhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []WebhookMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type WebhookMessage struct {
	From string `json:"from"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Mensagens extrai as mensagens de texto recebidas no webhook
func (p *WebhookPayload) Mensagens() []WebhookMessage {
	var mensagens []WebhookMessage
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type == "text" {
					mensagens = append(mensagens, msg)
				}
			}
		}
	}
	return mensagens
}
