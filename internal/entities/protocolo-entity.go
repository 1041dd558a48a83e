package entities

import (
	"time"

	"github.com/google/uuid"
)

// Remetente é quem apresentou o documento (consumidor, empresa, órgão).
type Remetente struct {
	Nome     string `db:"remetente_nome" json:"nome"`
	CPFCNPJ  string `db:"remetente_cpf_cnpj" json:"cpf_cnpj"`
	Email    string `db:"remetente_email" json:"email"`
	Telefone string `db:"remetente_telefone" json:"telefone"`
	Endereco string `db:"remetente_endereco" json:"endereco"`
}

// Protocolo é o processo administrativo rastreado. O número é atribuído uma
// única vez na criação e nunca muda; o campo Versao guarda a versão para o
// controle otimista de concorrência: toda escrita é condicionada à versão
// lida, e um conflito devolve ErrConflitoConcorrencia para o chamador repetir.
type Protocolo struct {
	ID              int64                `db:"id" json:"id"`
	Numero          string               `db:"numero" json:"numero"`
	InternalID      uuid.UUID            `db:"internal_id" json:"internal_id"`
	TipoDocumentoID int64                `db:"tipo_documento_id" json:"tipo_documento_id"`
	Origem          string               `db:"origem" json:"origem"`
	Assunto         string               `db:"assunto" json:"assunto"`
	Descricao       string               `db:"descricao" json:"descricao"`
	Status          string               `db:"status" json:"status"`
	Prioridade      string               `db:"prioridade" json:"prioridade"`
	Remetente       Remetente            `json:"remetente"`
	SetorAtualID    int64                `db:"setor_atual_id" json:"setor_atual_id"`
	SetorOrigemID   int64                `db:"setor_origem_id" json:"setor_origem_id"`
	ResponsavelID   *int64               `db:"responsavel_id" json:"responsavel_id,omitempty"`
	PrazoResposta   time.Time            `db:"prazo_resposta" json:"prazo_resposta"`
	CriadoEm        time.Time            `db:"criado_em" json:"criado_em"`
	ConcluidoEm     *time.Time           `db:"concluido_em" json:"concluido_em,omitempty"`
	Confidencial    bool                 `db:"confidencial" json:"confidencial"`
	Relacionada     *EntidadeRelacionada `json:"entidade_relacionada,omitempty"`
	Versao          int64                `db:"versao" json:"versao"`
}
