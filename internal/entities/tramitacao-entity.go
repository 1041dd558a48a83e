package entities

import "time"

// Tramitacao é um evento do histórico do protocolo. A tabela é append-only:
// depois de gravado, um evento nunca é alterado nem removido; a única
// exceção são os campos de recebimento, preenchidos uma única vez pela
// operação idempotente de recebimento e por isso fora do hash.
type Tramitacao struct {
	ID              int64      `db:"id" json:"id"`
	NumeroProtocolo string     `db:"numero_protocolo" json:"numero_protocolo"`
	Sequencia       int        `db:"sequencia" json:"sequencia"`
	Acao            string     `db:"acao" json:"acao"`
	SetorOrigemID   *int64     `db:"setor_origem_id" json:"setor_origem_id,omitempty"`
	SetorDestinoID  *int64     `db:"setor_destino_id" json:"setor_destino_id,omitempty"`
	Motivo          string     `db:"motivo" json:"motivo"`
	Observacoes     string     `db:"observacoes" json:"observacoes"`
	AtorID          int64      `db:"ator_id" json:"ator_id"`
	EnviadaEm       time.Time  `db:"enviada_em" json:"enviada_em"`
	RecebidaEm      *time.Time `db:"recebida_em" json:"recebida_em,omitempty"`
	RecebidaPor     *int64     `db:"recebida_por" json:"recebida_por,omitempty"`
	Atrasada        bool       `db:"atrasada" json:"atrasada"`
	HashIntegridade string     `db:"hash_integridade" json:"hash_integridade"`
}
