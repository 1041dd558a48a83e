package hashchain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Versao identifica o algoritmo da cadeia. Qualquer mudança na codificação
// canônica ou no digest exige uma nova versão, nunca alteração da atual.
const Versao = "v1"

const semente = "procon-tramitacao-" + Versao

// Campos são os campos imutáveis do evento cobertos pelo hash. Os campos de
// recebimento (recebida_em / recebida_por) ficam de fora: eles são
// preenchidos depois da gravação, pela operação idempotente de recebimento.
type Campos struct {
	NumeroProtocolo string    `json:"numero_protocolo"`
	Sequencia       int       `json:"sequencia"`
	Acao            string    `json:"acao"`
	SetorOrigemID   int64     `json:"setor_origem_id"`
	SetorDestinoID  int64     `json:"setor_destino_id"`
	AtorID          int64     `json:"ator_id"`
	Motivo          string    `json:"motivo"`
	Observacoes     string    `json:"observacoes"`
	Atrasada        bool      `json:"atrasada"`
	EnviadaEm       time.Time `json:"enviada_em"`
}

// HashSemente é o "hash anterior" do primeiro evento de cada protocolo.
func HashSemente() string {
	sum := sha256.Sum256([]byte(semente))
	return hex.EncodeToString(sum[:])
}

// Calcular produz o hash do evento: SHA-256 sobre a codificação canônica
// (JSON com ordem fixa de campos, instante normalizado para UTC) concatenada
// com o hash do evento anterior.
func Calcular(c Campos, hashAnterior string) string {
	c.EnviadaEm = c.EnviadaEm.UTC().Truncate(time.Microsecond)

	payload, err := json.Marshal(c)
	if err != nil {
		// Campos só contém tipos serializáveis; isto nunca acontece.
		panic(err)
	}

	h := sha256.New()
	h.Write([]byte(Versao))
	h.Write([]byte("|"))
	h.Write(payload)
	h.Write([]byte("|"))
	h.Write([]byte(hashAnterior))
	return hex.EncodeToString(h.Sum(nil))
}
