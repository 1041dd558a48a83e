package entities

import "time"

// TipoDocumento é dado de referência imutável consultado na criação do
// protocolo: define o prazo padrão de resposta e a exigência de assinatura.
type TipoDocumento struct {
	ID                int64     `db:"id" json:"id"`
	Nome              string    `db:"nome" json:"nome"`
	PrazoRespostaDias int       `db:"prazo_resposta_dias" json:"prazo_resposta_dias"`
	ExigeAssinatura   bool      `db:"exige_assinatura" json:"exige_assinatura"`
	Ativo             bool      `db:"ativo" json:"ativo"`
	CriadoEm          time.Time `db:"criado_em" json:"criado_em"`
}
