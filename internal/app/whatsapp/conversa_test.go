package whatsapp_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/redis"
	"gestaocon/internal/app/whatsapp"
	"gestaocon/internal/app/whatsapp/mocks"

	"go.uber.org/mock/gomock"
)

const telefone = "5511999990000"

// ambiente monta store/sender com estado em memória para dirigir o fluxo
type ambiente struct {
	store    *mocks.MockStore
	sender   *mocks.MockSender
	registro *mocks.MockRegistro
	salvo    *whatsapp.Conversa
	enviadas []string
}

func novoAmbiente(t *testing.T, ctrl *gomock.Controller) *ambiente {
	t.Helper()
	amb := &ambiente{
		store:    mocks.NewMockStore(ctrl),
		sender:   mocks.NewMockSender(ctrl),
		registro: mocks.NewMockRegistro(ctrl),
	}

	amb.store.EXPECT().BuscarConversa(gomock.Any(), telefone, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, destino interface{}) error {
			if amb.salvo == nil {
				return redis.ErrConversaNaoEncontrada
			}
			*destino.(*whatsapp.Conversa) = *amb.salvo
			return nil
		}).AnyTimes()
	amb.store.EXPECT().SalvarConversa(gomock.Any(), telefone, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, estado interface{}) error {
			c := *estado.(*whatsapp.Conversa)
			amb.salvo = &c
			return nil
		}).AnyTimes()
	amb.store.EXPECT().LimparConversa(gomock.Any(), telefone).DoAndReturn(
		func(_ context.Context, _ string) error {
			amb.salvo = nil
			return nil
		}).AnyTimes()

	amb.sender.EXPECT().EnviarTexto(gomock.Any(), telefone, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, texto string) error {
			amb.enviadas = append(amb.enviadas, texto)
			return nil
		}).AnyTimes()

	return amb
}

func (amb *ambiente) ultimaMensagem() string {
	if len(amb.enviadas) == 0 {
		return ""
	}
	return amb.enviadas[len(amb.enviadas)-1]
}

func TestFlow_AberturaCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amb := novoAmbiente(t, ctrl)

	amb.registro.EXPECT().GetClienteByTelefone(telefone).Return(nil, errors.New("record not found"))
	amb.registro.EXPECT().CreateCliente(gomock.Any()).DoAndReturn(func(c *ds.Cliente) error {
		if c.Nome != "Condomínio Jardim" {
			t.Fatalf("nome do cliente inesperado: %s", c.Nome)
		}
		c.ID = 7
		return nil
	})
	var ordem *ds.OrdemServico
	amb.registro.EXPECT().CreateOrdemServico(gomock.Any(), gomock.Nil()).DoAndReturn(
		func(o *ds.OrdemServico, _ []ds.OrdemServicoItem) error {
			ordem = o
			return nil
		})

	flow := whatsapp.NewFlow(amb.store, amb.sender, amb.registro, "https://app.exemplo.com.br")

	ctx := context.Background()
	mensagens := []string{"oi", "Condomínio Jardim", "1", "Elevador social parado no térreo", "sim"}
	for _, msg := range mensagens {
		if err := flow.ProcessarMensagem(ctx, telefone, msg); err != nil {
			t.Fatalf("erro ao processar %q: %v", msg, err)
		}
	}

	if ordem == nil {
		t.Fatal("ordem de serviço não foi criada")
	}
	if ordem.TipoServico != "manutencao" {
		t.Fatalf("tipo de serviço inesperado: %s", ordem.TipoServico)
	}
	if ordem.Origem != "whatsapp" || ordem.Status != "aberta" {
		t.Fatalf("origem/status inesperados: %s/%s", ordem.Origem, ordem.Status)
	}
	if ordem.ClienteID == nil || *ordem.ClienteID != 7 {
		t.Fatal("ordem não vinculada ao cliente criado")
	}
	if amb.salvo != nil {
		t.Fatal("estado da conversa não foi limpo após a conclusão")
	}
	if !strings.Contains(amb.ultimaMensagem(), "sucesso") {
		t.Fatalf("mensagem final inesperada: %s", amb.ultimaMensagem())
	}
}

func TestFlow_TipoDesconhecidoRepete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amb := novoAmbiente(t, ctrl)
	flow := whatsapp.NewFlow(amb.store, amb.sender, amb.registro, "")

	ctx := context.Background()
	for _, msg := range []string{"oi", "Condomínio Jardim", "pintura"} {
		if err := flow.ProcessarMensagem(ctx, telefone, msg); err != nil {
			t.Fatal(err)
		}
	}

	if amb.salvo == nil || amb.salvo.Etapa != whatsapp.EtapaTipoServico {
		t.Fatal("etapa deveria continuar aguardando o tipo de serviço")
	}
	if !strings.Contains(amb.ultimaMensagem(), "Não reconheci") {
		t.Fatalf("mensagem inesperada: %s", amb.ultimaMensagem())
	}
}

func TestFlow_Cancelamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amb := novoAmbiente(t, ctrl)
	flow := whatsapp.NewFlow(amb.store, amb.sender, amb.registro, "")

	ctx := context.Background()
	for _, msg := range []string{"oi", "Condomínio Jardim", "cancelar"} {
		if err := flow.ProcessarMensagem(ctx, telefone, msg); err != nil {
			t.Fatal(err)
		}
	}

	if amb.salvo != nil {
		t.Fatal("cancelamento deveria limpar o estado")
	}
	if !strings.Contains(amb.ultimaMensagem(), "cancelado") {
		t.Fatalf("mensagem inesperada: %s", amb.ultimaMensagem())
	}
}

func TestFlow_FalhaMantemEstado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amb := novoAmbiente(t, ctrl)

	amb.registro.EXPECT().GetClienteByTelefone(telefone).Return(&ds.Cliente{ID: 3, Nome: "Condomínio Jardim"}, nil)
	amb.registro.EXPECT().CreateOrdemServico(gomock.Any(), gomock.Nil()).Return(errors.New("banco indisponível"))

	flow := whatsapp.NewFlow(amb.store, amb.sender, amb.registro, "")

	ctx := context.Background()
	for _, msg := range []string{"oi", "Condomínio Jardim", "3", "Portão travado", "sim"} {
		if err := flow.ProcessarMensagem(ctx, telefone, msg); err != nil {
			t.Fatal(err)
		}
	}

	// a falha não limpa o estado: a próxima mensagem repete a confirmação
	if amb.salvo == nil || amb.salvo.Etapa != whatsapp.EtapaConfirmacao {
		t.Fatal("estado deveria permanecer na confirmação após a falha")
	}
	if !strings.Contains(amb.ultimaMensagem(), "Desculpe") {
		t.Fatalf("mensagem inesperada: %s", amb.ultimaMensagem())
	}
}
