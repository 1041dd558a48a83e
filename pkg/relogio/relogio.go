package relogio

import "time"

// Relogio abstrai time.Now para que serviços e testes compartilhem a mesma
// noção de "agora". Toda regra de prazo e numeração passa por aqui.
type Relogio interface {
	Agora() time.Time
}

type relogioReal struct{}

func NewRelogioReal() Relogio {
	return relogioReal{}
}

func (relogioReal) Agora() time.Time {
	return time.Now()
}

// RelogioFixo devolve sempre o mesmo instante; usado nos testes.
type RelogioFixo struct {
	Instante time.Time
}

func (r *RelogioFixo) Agora() time.Time {
	return r.Instante
}

// Avancar desloca o instante fixo, simulando a passagem do tempo.
func (r *RelogioFixo) Avancar(d time.Duration) {
	r.Instante = r.Instante.Add(d)
}
