package entities

import "time"

// RelatorioItem é uma linha do relatório de protocolos, já com os nomes de
// referência resolvidos para apresentação.
type RelatorioItem struct {
	Numero        string
	TipoDocumento string
	Origem        string
	Assunto       string
	Status        string
	Prioridade    string
	RemetenteNome string
	SetorAtual    string
	SetorOrigem   string
	CriadoEm      time.Time
	PrazoResposta time.Time
	ConcluidoEm   *time.Time
	FaixaPrazo    string
	DiasEmAberto  int
}
