package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Stevensbe/system-procon-sub001/pkg/config"
)

func TestMontar_FormatoPadrao(t *testing.T) {
	svc := NewNumeracaoService(config.NumeracaoConfig{LarguraMinima: 3})
	instante := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "20240110-090000-001", svc.Montar(instante, 1))
	assert.Equal(t, "20240110-090000-042", svc.Montar(instante, 42))
}

func TestMontar_ComPrefixo(t *testing.T) {
	svc := NewNumeracaoService(config.NumeracaoConfig{Prefixo: "PROC-", LarguraMinima: 3})
	instante := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "PROC-20241231-235959-007", svc.Montar(instante, 7))
}

func TestMontar_SequenciaAlemDaCapacidade(t *testing.T) {
	svc := NewNumeracaoService(config.NumeracaoConfig{LarguraMinima: 3})
	instante := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	// O milésimo protocolo do dia expande a largura em vez de falhar.
	assert.Equal(t, "20240110-090000-1000", svc.Montar(instante, 1000))
}

func TestMontar_LarguraMinimaTemPiso(t *testing.T) {
	svc := NewNumeracaoService(config.NumeracaoConfig{LarguraMinima: 1})
	instante := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "20240110-090000-001", svc.Montar(instante, 1))
}
