package events

import "github.com/Stevensbe/system-procon-sub001/internal/dto"

// Nomes dos eventos publicados pelos subsistemas externos após o commit das
// suas próprias transações.
const (
	AutoInfracaoLavradoEventName = "fiscalizacao.auto.lavrado"
	MultaAplicadaEventName       = "multa.aplicada"
	RecursoInterpostoEventName   = "recurso.interposto"
)

// AutoInfracaoLavradoEvent sinaliza um auto de infração lavrado pela
// fiscalização.
type AutoInfracaoLavradoEvent struct {
	Sinal dto.SinalFiscalizacaoDTO
}

func (e AutoInfracaoLavradoEvent) Name() string { return AutoInfracaoLavradoEventName }

// MultaAplicadaEvent sinaliza uma multa aplicada a um fornecedor.
type MultaAplicadaEvent struct {
	Sinal dto.SinalMultaDTO
}

func (e MultaAplicadaEvent) Name() string { return MultaAplicadaEventName }

// RecursoInterpostoEvent sinaliza um recurso administrativo interposto
// contra uma decisão.
type RecursoInterpostoEvent struct {
	Sinal dto.SinalRecursoDTO
}

func (e RecursoInterpostoEvent) Name() string { return RecursoInterpostoEventName }
