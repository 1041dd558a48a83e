package services

import (
	"fmt"
	"time"

	"github.com/Stevensbe/system-procon-sub001/pkg/config"
)

// NumeracaoService monta o número de protocolo a partir do instante de
// criação e da sequência diária fornecida pelo numerador atômico:
// {prefixo}{AAAAMMDD}-{HHMMSS}-{seq}. A sequência é preenchida com zeros
// até a largura mínima configurada e cresce além dela quando o dia passa
// da capacidade (1000º protocolo do dia vira -1000, não um erro).
type NumeracaoService struct {
	cfg config.NumeracaoConfig
}

func NewNumeracaoService(cfg config.NumeracaoConfig) *NumeracaoService {
	if cfg.LarguraMinima < 3 {
		cfg.LarguraMinima = 3
	}
	return &NumeracaoService{cfg: cfg}
}

func (s *NumeracaoService) Montar(instante time.Time, sequencia int64) string {
	return fmt.Sprintf("%s%s-%s-%0*d",
		s.cfg.Prefixo,
		instante.Format("20060102"),
		instante.Format("150405"),
		s.cfg.LarguraMinima, sequencia,
	)
}
