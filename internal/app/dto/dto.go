package dto

// Envelope padrão de resposta da API
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Autenticação

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Role     *int   `json:"role" binding:"omitempty,min=0,max=2"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Role        string `json:"role"`
	Nome        string `json:"nome"`
}

type ProfileResponse struct {
	ID    uint   `json:"id"`
	Login string `json:"login"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Clientes

type ClienteRequest struct {
	Nome        string `json:"nome" binding:"required,max=150"`
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	CPF         string `json:"cpf"`
	Email       string `json:"email" binding:"omitempty,email"`
	Telefone    string `json:"telefone"`
	Celular     string `json:"celular"`
	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado" binding:"omitempty,len=2"`
	CEP         string `json:"cep"`
	Observacoes string `json:"observacoes"`
}

// Produtos, categorias e marcas

type TipoProdutoRequest struct {
	Nome   string `json:"nome" binding:"required,max=100"`
	Codigo string `json:"codigo" binding:"required,max=10"`
}

type MarcaRequest struct {
	Nome  string `json:"nome" binding:"required,max=100"`
	Sigla string `json:"sigla" binding:"omitempty,max=10"`
}

type ProdutoRequest struct {
	Codigo        string  `json:"codigo"`
	Descricao     string  `json:"descricao" binding:"required,max=200"`
	TipoID        *uint   `json:"tipo_id"`
	MarcaID       *uint   `json:"marca_id"`
	NCM           string  `json:"ncm"`
	Unidade       string  `json:"unidade"`
	PrecoCusto    float64 `json:"preco_custo" binding:"omitempty,gte=0"`
	PrecoVenda    float64 `json:"preco_venda" binding:"omitempty,gte=0"`
	ValorMaoObra  float64 `json:"valor_mao_obra" binding:"omitempty,gte=0"`
	Margem        float64 `json:"margem"`
	Estoque       int     `json:"estoque" binding:"omitempty,gte=0"`
	EstoqueMinimo int     `json:"estoque_minimo" binding:"omitempty,gte=0"`
	IsServico     bool    `json:"is_servico"`
}

type GerarCodigoRequest struct {
	TipoID    *uint `json:"tipo_id"`
	MarcaID   *uint `json:"marca_id"`
	IsServico bool  `json:"is_servico"`
}

type CodigoResponse struct {
	Codigo string `json:"codigo"`
}

// Orçamentos

type OrcamentoItemRequest struct {
	ProdutoID     *uint   `json:"produto_id"`
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade" binding:"required,gt=0"`
	ValorUnitario float64 `json:"valor_unitario" binding:"gte=0"`
	ValorMaoObra  float64 `json:"valor_mao_obra" binding:"omitempty,gte=0"`
}

type OrcamentoRequest struct {
	ClienteID *uint                  `json:"cliente_id"`
	Descricao string                 `json:"descricao"`
	Validade  string                 `json:"validade"` // AAAA-MM-DD ou DD/MM/AAAA
	Itens     []OrcamentoItemRequest `json:"itens"`
}

// Propostas e contratos

type PropostaItemRequest struct {
	Equipamento   string  `json:"equipamento" binding:"required,max=150"`
	Localizacao   string  `json:"localizacao"`
	Quantidade    int     `json:"quantidade" binding:"omitempty,gt=0"`
	ValorUnitario float64 `json:"valor_unitario" binding:"omitempty,gte=0"`
}

type PropostaRequest struct {
	ClienteID   *uint                 `json:"cliente_id"`
	ValorMensal float64               `json:"valor_mensal" binding:"omitempty,gte=0"`
	PrazoMeses  int                   `json:"prazo_meses" binding:"omitempty,gt=0"`
	Observacoes string                `json:"observacoes"`
	Itens       []PropostaItemRequest `json:"itens"`
}

type ContratoRequest struct {
	PropostaNumero string `json:"proposta_numero" binding:"required"`
	DataInicio     string `json:"data_inicio" binding:"required"`
	PrazoMeses     int    `json:"prazo_meses" binding:"omitempty,gt=0"`
	DiaVencimento  int    `json:"dia_vencimento" binding:"omitempty,min=1,max=28"`
}

// Boletos

type BoletoRequest struct {
	ClienteID      uint    `json:"cliente_id" binding:"required"`
	ContratoNumero string  `json:"contrato_numero"`
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor" binding:"required,gt=0"`
	DataVencimento string  `json:"data_vencimento" binding:"required"`
	Parcelas       int     `json:"parcelas" binding:"omitempty,min=1,max=60"`
}

// Ordens de serviço

type OrdemServicoItemRequest struct {
	Equipamento string `json:"equipamento"`
	Descricao   string `json:"descricao"`
	Quantidade  int    `json:"quantidade" binding:"omitempty,gt=0"`
}

type OrdemServicoRequest struct {
	ClienteID    *uint                     `json:"cliente_id"`
	ClienteNome  string                    `json:"cliente_nome"`
	Telefone     string                    `json:"telefone"`
	TipoServico  string                    `json:"tipo_servico" binding:"omitempty,oneof=manutencao instalacao reparo vistoria"`
	Descricao    string                    `json:"descricao"`
	Status       string                    `json:"status" binding:"omitempty,oneof=rascunho aberta em_andamento concluida cancelada"`
	DataAgendada string                    `json:"data_agendada"`
	Itens        []OrdemServicoItemRequest `json:"itens"`
}

type FotoRequest struct {
	Legenda  string `json:"legenda"`
	Conteudo string `json:"conteudo" binding:"required"` // base64
}

type AssinaturaRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Documento string `json:"documento"`
	Conteudo  string `json:"conteudo" binding:"required"` // base64
}

// Documentos

type DocumentoRequest struct {
	Titulo    string `json:"titulo" binding:"required,max=150"`
	Categoria string `json:"categoria"`
	Conteudo  string `json:"conteudo"`
}

// Configurações

type FeriadoRequest struct {
	Nome string `json:"nome" binding:"required,max=100"`
	Data string `json:"data" binding:"required"`
}

type LayoutTimbradoRequest struct {
	Cabecalho      string `json:"cabecalho"`
	Rodape         string `json:"rodape"`
	MargemSuperior *int   `json:"margem_superior" binding:"omitempty,min=0,max=100"`
	MargemInferior *int   `json:"margem_inferior" binding:"omitempty,min=0,max=100"`
}

type ValorKmRequest struct {
	ValorKm float64 `json:"valor_km" binding:"required,gt=0"`
}

// Utilidades

type CalcularDistanciaRequest struct {
	ClienteID *uint  `json:"cliente_id"`
	CEP       string `json:"cep"`
	Endereco  string `json:"endereco"`
	Numero    string `json:"numero"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado"`
}

type DistanciaResponse struct {
	DistanciaKm       float64  `json:"distancia_km"`
	ValorDeslocamento *float64 `json:"valor_deslocamento,omitempty"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	EnderecoUsado     string   `json:"endereco_usado"`
}

// Backup

type BackupRequest struct {
	Tabelas []string `json:"tabelas"`
}

type BackupResponse struct {
	Arquivo string `json:"arquivo"`
	Tabelas int    `json:"tabelas"`
}
