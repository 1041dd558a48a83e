package constants

// --- STATUS DO PROTOCOLO ---
const (
	StatusProtocolado       = "PROTOCOLADO"
	StatusEmTramitacao      = "EM_TRAMITACAO"
	StatusAguardandoAnalise = "AGUARDANDO_ANALISE"
	StatusEmAnalise         = "EM_ANALISE"
	StatusAguardandoDecisao = "AGUARDANDO_DECISAO"
	StatusDecidido          = "DECIDIDO"
	StatusArquivado         = "ARQUIVADO"
	StatusCancelado         = "CANCELADO"
)

// Status terminais: nenhuma operação mutadora é aceita a partir deles.
var StatusTerminais = []string{
	StatusDecidido,
	StatusArquivado,
	StatusCancelado,
}

func IsStatusTerminal(status string) bool {
	for _, s := range StatusTerminais {
		if s == status {
			return true
		}
	}
	return false
}

// Cancelamento só é permitido antes de qualquer análise começar.
var StatusCancelaveis = []string{
	StatusProtocolado,
	StatusEmTramitacao,
}

func IsStatusCancelavel(status string) bool {
	for _, s := range StatusCancelaveis {
		if s == status {
			return true
		}
	}
	return false
}

// A decisão final exige que o protocolo já tenha passado pela análise.
var StatusConcluiveis = []string{
	StatusEmAnalise,
	StatusAguardandoDecisao,
}

func IsStatusConcluivel(status string) bool {
	for _, s := range StatusConcluiveis {
		if s == status {
			return true
		}
	}
	return false
}
