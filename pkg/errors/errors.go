package errors

import "fmt"

var (
	// Protocolo e tramitação
	ErrProtocoloNaoEncontrado = fmt.Errorf("protocolo não encontrado")
	ErrTransicaoInvalida      = fmt.Errorf("transição de status inválida")
	ErrSetorNaoTramita        = fmt.Errorf("o setor de destino não pode tramitar protocolos")
	ErrTramitacaoRedundante   = fmt.Errorf("o protocolo já se encontra no setor de destino")
	ErrConflitoConcorrencia   = fmt.Errorf("o protocolo foi alterado por outra operação; tente novamente")
	ErrHistoricoCorrompido    = fmt.Errorf("histórico de tramitação corrompido: a cadeia de hashes não confere")

	// Cadastros de referência
	ErrTipoDocumentoNaoEncontrado = fmt.Errorf("tipo de documento não encontrado")
	ErrTipoDocumentoInativo       = fmt.Errorf("tipo de documento inativo")
	ErrSetorNaoEncontrado         = fmt.Errorf("setor não encontrado")

	// JWT e tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrEmptyAuthHeader      = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader    = fmt.Errorf("formato do cabeçalho de autorização inválido")

	// Contexto
	ErrActorIDNotFoundInContext = fmt.Errorf("ator não identificado no contexto da requisição")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
)

// InvalidInputError sinaliza entrada malformada ou incompleta do chamador.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carrega o código HTTP e a mensagem apresentável ao usuário,
// preservando o erro técnico original para o log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]string
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]string) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
