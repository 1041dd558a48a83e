package entities

import "time"

// NotificacaoPrazo registra que o monitor já notificou um protocolo numa
// faixa de prazo num dado dia-calendário. A restrição única
// (numero_protocolo, faixa, dia) garante no máximo uma notificação por
// protocolo por faixa por dia.
type NotificacaoPrazo struct {
	ID              int64     `db:"id" json:"id"`
	NumeroProtocolo string    `db:"numero_protocolo" json:"numero_protocolo"`
	Faixa           string    `db:"faixa" json:"faixa"`
	Dia             time.Time `db:"dia" json:"dia"`
	CriadaEm        time.Time `db:"criada_em" json:"criada_em"`
}
