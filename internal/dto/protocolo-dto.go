package dto

// RemetenteDTO identifica quem apresentou o documento.
type RemetenteDTO struct {
	Nome     string `json:"nome" validate:"required"`
	CPFCNPJ  string `json:"cpf_cnpj"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}

type EntidadeRelacionadaDTO struct {
	Tipo string `json:"tipo" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

type CriarProtocoloDTO struct {
	TipoDocumentoID int64                   `json:"tipo_documento_id" validate:"required"`
	Origem          string                  `json:"origem" validate:"required"`
	Assunto         string                  `json:"assunto" validate:"required"`
	Descricao       string                  `json:"descricao"`
	Prioridade      string                  `json:"prioridade"`
	Remetente       RemetenteDTO            `json:"remetente" validate:"required"`
	SetorOrigemID   int64                   `json:"setor_origem_id" validate:"required"`
	SetorDestinoID  int64                   `json:"setor_destino_id" validate:"required"`
	Confidencial    bool                    `json:"confidencial"`
	Relacionada     *EntidadeRelacionadaDTO `json:"entidade_relacionada,omitempty"`
}

type TramitarDTO struct {
	SetorDestinoID int64  `json:"setor_destino_id" validate:"required"`
	Motivo         string `json:"motivo" validate:"required"`
	// PrazoDias, quando informado, substitui o prazo corrente do protocolo.
	PrazoDias *int `json:"prazo_dias,omitempty" validate:"omitempty,gt=0"`
}

type AnotarDTO struct {
	Acao        string `json:"acao" validate:"required"`
	Observacoes string `json:"observacoes" validate:"required"`
}

type ConcluirDTO struct {
	Observacoes string `json:"observacoes"`
}

type CancelarDTO struct {
	Motivo string `json:"motivo" validate:"required"`
}

type ReceberDTO struct {
	TramitacaoID int64 `json:"tramitacao_id" validate:"required"`
	// RecebidaPor identifica quem recebeu fisicamente o documento quando não
	// é o próprio operador autenticado; ausente, assume o operador.
	RecebidaPor *int64 `json:"recebida_por,omitempty" validate:"omitempty,gt=0"`
}

// ProtocoloDTO é a representação devolvida pela API.
type ProtocoloDTO struct {
	Numero          string                  `json:"numero"`
	InternalID      string                  `json:"internal_id"`
	TipoDocumentoID int64                   `json:"tipo_documento_id"`
	TipoDocumento   string                  `json:"tipo_documento,omitempty"`
	Origem          string                  `json:"origem"`
	Assunto         string                  `json:"assunto"`
	Descricao       string                  `json:"descricao,omitempty"`
	Status          string                  `json:"status"`
	Prioridade      string                  `json:"prioridade"`
	Remetente       RemetenteDTO            `json:"remetente"`
	SetorAtualID    int64                   `json:"setor_atual_id"`
	SetorOrigemID   int64                   `json:"setor_origem_id"`
	ResponsavelID   *int64                  `json:"responsavel_id,omitempty"`
	PrazoResposta   string                  `json:"prazo_resposta"`
	CriadoEm        string                  `json:"criado_em"`
	ConcluidoEm     *string                 `json:"concluido_em,omitempty"`
	Confidencial    bool                    `json:"confidencial"`
	Relacionada     *EntidadeRelacionadaDTO `json:"entidade_relacionada,omitempty"`
	Versao          int64                   `json:"versao"`
}

type TramitacaoDTO struct {
	ID              int64   `json:"id"`
	Sequencia       int     `json:"sequencia"`
	Acao            string  `json:"acao"`
	SetorOrigemID   *int64  `json:"setor_origem_id,omitempty"`
	SetorDestinoID  *int64  `json:"setor_destino_id,omitempty"`
	Motivo          string  `json:"motivo,omitempty"`
	Observacoes     string  `json:"observacoes,omitempty"`
	AtorID          int64   `json:"ator_id"`
	EnviadaEm       string  `json:"enviada_em"`
	RecebidaEm      *string `json:"recebida_em,omitempty"`
	RecebidaPor     *int64  `json:"recebida_por,omitempty"`
	Atrasada        bool    `json:"atrasada"`
	HashIntegridade string  `json:"hash_integridade"`
}

// VerificacaoIntegridadeDTO é o resultado da recomputação da cadeia.
type VerificacaoIntegridadeDTO struct {
	Numero          string `json:"numero"`
	TotalEventos    int    `json:"total_eventos"`
	Integro         bool   `json:"integro"`
	SequenciaFalha  *int   `json:"sequencia_falha,omitempty"`
	AlgoritmoVersao string `json:"algoritmo_versao"`
}
