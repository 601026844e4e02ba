package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/redis"

	"github.com/sirupsen/logrus"
)

// Etapas da conversa de abertura de chamado. O fluxo é linear: cada mensagem
// recebida avança no máximo uma etapa.
const (
	EtapaInicio       = "idle"
	EtapaDadosCliente = "awaiting_client_info"
	EtapaTipoServico  = "awaiting_service_type"
	EtapaDescricao    = "awaiting_description"
	EtapaConfirmacao  = "awaiting_confirmation"
)

// Conversa é o estado persistido por telefone
type Conversa struct {
	Etapa string        `json:"etapa"`
	Dados DadosConversa `json:"dados"`
}

type DadosConversa struct {
	Nome        string `json:"nome,omitempty"`
	TipoServico string `json:"tipo_servico,omitempty"`
	Descricao   string `json:"descricao,omitempty"`
}

// Sender envia mensagens de saída
type Sender interface {
	EnviarTexto(ctx context.Context, telefone, texto string) error
}

// Store guarda o estado da conversa por telefone
type Store interface {
	SalvarConversa(ctx context.Context, telefone string, estado interface{}) error
	BuscarConversa(ctx context.Context, telefone string, destino interface{}) error
	LimparConversa(ctx context.Context, telefone string) error
}

// Registro cria cliente e ordem de serviço ao final do atendimento
type Registro interface {
	GetClienteByTelefone(telefone string) (*ds.Cliente, error)
	CreateCliente(cliente *ds.Cliente) error
	CreateOrdemServico(ordem *ds.OrdemServico, itens []ds.OrdemServicoItem) error
}

// Flow conduz a conversa de abertura de chamado pelo WhatsApp
type Flow struct {
	store    Store
	sender   Sender
	registro Registro
	appURL   string
}

func NewFlow(store Store, sender Sender, registro Registro, appURL string) *Flow {
	return &Flow{
		store:    store,
		sender:   sender,
		registro: registro,
		appURL:   appURL,
	}
}

// ProcessarMensagem avança a conversa do telefone com o texto recebido
func (f *Flow) ProcessarMensagem(ctx context.Context, telefone, texto string) error {
	texto = strings.TrimSpace(texto)
	entrada := strings.ToLower(texto)

	conversa := Conversa{Etapa: EtapaInicio}
	err := f.store.BuscarConversa(ctx, telefone, &conversa)
	if err != nil && !errors.Is(err, redis.ErrConversaNaoEncontrada) {
		return err
	}

	// cancelamento vale em qualquer etapa
	if conversa.Etapa != EtapaInicio && (entrada == "cancelar" || entrada == "sair") {
		if err := f.store.LimparConversa(ctx, telefone); err != nil {
			return err
		}
		return f.sender.EnviarTexto(ctx, telefone, "Atendimento cancelado. Quando precisar, é só mandar outra mensagem.")
	}

	switch conversa.Etapa {
	case EtapaInicio:
		conversa.Etapa = EtapaDadosCliente
		if err := f.store.SalvarConversa(ctx, telefone, &conversa); err != nil {
			return err
		}
		return f.sender.EnviarTexto(ctx, telefone,
			"Olá! Sou o assistente de atendimento. Para abrir um chamado, me informe o nome do condomínio ou empresa.")

	case EtapaDadosCliente:
		if texto == "" {
			return f.sender.EnviarTexto(ctx, telefone, "Não entendi. Por favor, informe o nome do condomínio ou empresa.")
		}
		conversa.Dados.Nome = texto
		conversa.Etapa = EtapaTipoServico
		if err := f.store.SalvarConversa(ctx, telefone, &conversa); err != nil {
			return err
		}
		return f.sender.EnviarTexto(ctx, telefone,
			"Qual o tipo de serviço?\n1 - Manutenção\n2 - Instalação\n3 - Reparo\n4 - Vistoria")

	case EtapaTipoServico:
		tipo := identificarTipoServico(entrada)
		if tipo == "" {
			return f.sender.EnviarTexto(ctx, telefone,
				"Não reconheci a opção. Responda com o número ou o nome do serviço:\n1 - Manutenção\n2 - Instalação\n3 - Reparo\n4 - Vistoria")
		}
		conversa.Dados.TipoServico = tipo
		conversa.Etapa = EtapaDescricao
		if err := f.store.SalvarConversa(ctx, telefone, &conversa); err != nil {
			return err
		}
		return f.sender.EnviarTexto(ctx, telefone, "Descreva brevemente o problema ou o serviço desejado.")

	case EtapaDescricao:
		if texto == "" {
			return f.sender.EnviarTexto(ctx, telefone, "Preciso de uma descrição para abrir o chamado.")
		}
		conversa.Dados.Descricao = texto
		conversa.Etapa = EtapaConfirmacao
		if err := f.store.SalvarConversa(ctx, telefone, &conversa); err != nil {
			return err
		}
		resumo := fmt.Sprintf("Confirma a abertura do chamado?\n\nCliente: %s\nServiço: %s\nDescrição: %s\n\nResponda SIM para confirmar ou CANCELAR para desistir.",
			conversa.Dados.Nome, conversa.Dados.TipoServico, conversa.Dados.Descricao)
		return f.sender.EnviarTexto(ctx, telefone, resumo)

	case EtapaConfirmacao:
		if entrada != "sim" && entrada != "confirmar" && entrada != "confirmo" {
			return f.sender.EnviarTexto(ctx, telefone, "Responda SIM para confirmar ou CANCELAR para desistir.")
		}

		if err := f.abrirChamado(ctx, telefone, conversa.Dados); err != nil {
			// estado fica como está: a próxima mensagem reapresenta a
			// confirmação e funciona como retry
			logrus.Errorf("erro ao abrir chamado via whatsapp (%s): %v", telefone, err)
			return f.sender.EnviarTexto(ctx, telefone,
				"Desculpe, tivemos um problema ao registrar o chamado. Tente novamente em instantes.")
		}

		if err := f.store.LimparConversa(ctx, telefone); err != nil {
			logrus.Errorf("erro ao limpar conversa de %s: %v", telefone, err)
		}

		confirmacao := "Chamado aberto com sucesso! Em breve nossa equipe entrará em contato."
		if f.appURL != "" {
			confirmacao += "\nAcompanhe em " + f.appURL + "/ordens-servico"
		}
		return f.sender.EnviarTexto(ctx, telefone, confirmacao)
	}

	// etapa desconhecida persistida: recomeça
	if err := f.store.LimparConversa(ctx, telefone); err != nil {
		return err
	}
	return f.sender.EnviarTexto(ctx, telefone, "Vamos recomeçar. Me informe o nome do condomínio ou empresa.")
}

// abrirChamado cria o cliente (quando o telefone ainda não é conhecido) e a
// ordem de serviço pelo mesmo caminho do CRUD
func (f *Flow) abrirChamado(ctx context.Context, telefone string, dados DadosConversa) error {
	cliente, err := f.registro.GetClienteByTelefone(telefone)
	if err != nil {
		cliente = &ds.Cliente{
			Nome:     dados.Nome,
			Telefone: telefone,
			Status:   "ativo",
		}
		if err := f.registro.CreateCliente(cliente); err != nil {
			return fmt.Errorf("erro ao criar cliente: %w", err)
		}
	}

	ordem := ds.OrdemServico{
		ClienteID:   &cliente.ID,
		ClienteNome: cliente.Nome,
		Telefone:    telefone,
		TipoServico: dados.TipoServico,
		Descricao:   dados.Descricao,
		Status:      "aberta",
		Origem:      "whatsapp",
	}
	if err := f.registro.CreateOrdemServico(&ordem, nil); err != nil {
		return fmt.Errorf("erro ao criar ordem de serviço: %w", err)
	}

	return nil
}

// identificarTipoServico casa a resposta livre com um dos tipos aceitos
func identificarTipoServico(entrada string) string {
	switch {
	case entrada == "1" || strings.Contains(entrada, "manuten"):
		return "manutencao"
	case entrada == "2" || strings.Contains(entrada, "instala"):
		return "instalacao"
	case entrada == "3" || strings.Contains(entrada, "reparo") || strings.Contains(entrada, "conserto"):
		return "reparo"
	case entrada == "4" || strings.Contains(entrada, "vistoria"):
		return "vistoria"
	}
	return ""
}
