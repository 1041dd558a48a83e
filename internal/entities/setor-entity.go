package entities

import "time"

// Setor é a unidade organizacional que protocola e/ou tramita processos.
type Setor struct {
	ID             int64     `db:"id" json:"id"`
	Nome           string    `db:"nome" json:"nome"`
	Sigla          string    `db:"sigla" json:"sigla"`
	PodeProtocolar bool      `db:"pode_protocolar" json:"pode_protocolar"`
	PodeTramitar   bool      `db:"pode_tramitar" json:"pode_tramitar"`
	ResponsavelID  *int64    `db:"responsavel_id" json:"responsavel_id,omitempty"`
	EmailContato   string    `db:"email_contato" json:"email_contato"`
	CriadoEm       time.Time `db:"criado_em" json:"criado_em"`
}
