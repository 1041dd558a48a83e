package constants

// --- AÇÕES DE TRAMITAÇÃO (registradas no histórico encadeado) ---
const (
	AcaoProtocolado     = "PROTOCOLADO"
	AcaoEncaminhado     = "ENCAMINHADO"
	AcaoRecebido        = "RECEBIDO"
	AcaoEmAnalise       = "EM_ANALISE"
	AcaoSolicitacaoInfo = "SOLICITACAO_INFO"
	AcaoParecerEmitido  = "PARECER_EMITIDO"
	AcaoDecisaoTomada   = "DECISAO_TOMADA"
	AcaoDevolvido       = "DEVOLVIDO"
	AcaoArquivado       = "ARQUIVADO"
	AcaoCancelado       = "CANCELADO"
)

// Ações aceitas pela operação de anotação (não mudam o setor atual).
var AcoesAnotacao = []string{
	AcaoEmAnalise,
	AcaoSolicitacaoInfo,
	AcaoParecerEmitido,
}

func IsAcaoAnotacao(codigo string) bool {
	for _, a := range AcoesAnotacao {
		if a == codigo {
			return true
		}
	}
	return false
}

// --- ORIGEM DO PROTOCOLO ---
const (
	OrigemExterna      = "EXTERNA"
	OrigemFiscalizacao = "FISCALIZACAO"
	OrigemInterna      = "INTERNA"
	OrigemPeticao      = "PETICAO"
	OrigemDigital      = "DIGITAL"
)

var OrigensValidas = []string{
	OrigemExterna,
	OrigemFiscalizacao,
	OrigemInterna,
	OrigemPeticao,
	OrigemDigital,
}

func IsOrigemValida(codigo string) bool {
	for _, o := range OrigensValidas {
		if o == codigo {
			return true
		}
	}
	return false
}

// --- PRIORIDADE ---
const (
	PrioridadeBaixa   = "BAIXA"
	PrioridadeNormal  = "NORMAL"
	PrioridadeAlta    = "ALTA"
	PrioridadeUrgente = "URGENTE"
)

var PrioridadesValidas = []string{
	PrioridadeBaixa,
	PrioridadeNormal,
	PrioridadeAlta,
	PrioridadeUrgente,
}

func IsPrioridadeValida(codigo string) bool {
	for _, p := range PrioridadesValidas {
		if p == codigo {
			return true
		}
	}
	return false
}

// --- FAIXAS DE PRAZO (classificação do monitor) ---
const (
	FaixaVencido = "VENCIDO"
	FaixaUrgente = "URGENTE"
	FaixaAlerta  = "ALERTA"
	FaixaNormal  = "NORMAL"
)

// --- TIPOS DE ENTIDADE RELACIONADA (referência fraca entre subsistemas) ---
const (
	EntidadeFiscalizacao = "FISCALIZACAO"
	EntidadeMulta        = "MULTA"
	EntidadeRecurso      = "RECURSO"
	EntidadeCIP          = "CIP"
)
