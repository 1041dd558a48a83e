package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
)

func novoIntegracao(t *testing.T) (IntegracaoServiceInterface, ProtocoloServiceInterface) {
	t.Helper()

	setores := &fakeSetorService{porID: map[int64]*entities.Setor{
		1: {ID: 1, Nome: "Protocolo Geral", Sigla: "PROT", PodeProtocolar: true, PodeTramitar: true},
		2: {ID: 2, Nome: "Assessoria Jurídica", Sigla: "JUR", PodeTramitar: true},
		3: {ID: 3, Nome: "Diretoria Administrativa e Financeira", Sigla: "DAF", PodeTramitar: true},
	}}
	tipos := &fakeTipoDocumentoService{porID: map[int64]*entities.TipoDocumento{
		1: {ID: 1, Nome: "Auto de Infração", PrazoRespostaDias: 15, ExigeAssinatura: true, Ativo: true},
		2: {ID: 2, Nome: "Ofício", PrazoRespostaDias: 5, Ativo: true},
		3: {ID: 3, Nome: "Recurso Administrativo", PrazoRespostaDias: 10, Ativo: true},
	}}

	rel := &relogio.RelogioFixo{Instante: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)}
	protocoloSvc := NewProtocoloService(
		&fakeTxManager{},
		newFakeProtocoloRepo(),
		newFakeTramitacaoRepo(),
		newFakeNumeradorRepo(),
		tipos,
		setores,
		NewNumeracaoService(config.NumeracaoConfig{LarguraMinima: 3}),
		rel,
		zap.NewNop(),
	)
	svc := NewIntegracaoService(protocoloSvc, tipos, setores, zap.NewNop())
	return svc, protocoloSvc
}

func TestProtocolarAutoInfracao(t *testing.T) {
	svc, protocoloSvc := novoIntegracao(t)

	criado, err := svc.ProtocolarAutoInfracao(context.Background(), dto.SinalFiscalizacaoDTO{
		AutoID:    "AI-2024-0042",
		Empresa:   "Supermercado Preço Bom LTDA",
		CNPJ:      "12.345.678/0001-90",
		Descricao: "Produtos vencidos em exposição",
		AtorID:    7,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.OrigemFiscalizacao, criado.Origem)
	assert.Equal(t, "Auto de Infração", criado.TipoDocumento)
	require.NotNil(t, criado.Relacionada)
	assert.Equal(t, constants.EntidadeFiscalizacao, criado.Relacionada.Tipo)
	assert.Equal(t, "AI-2024-0042", criado.Relacionada.ID)

	// O evento inicial aponta o destino jurídico e o ator do sinal.
	historico, err := protocoloSvc.ListarHistorico(context.Background(), criado.Numero)
	require.NoError(t, err)
	require.Len(t, historico, 1)
	assert.Equal(t, int64(7), historico[0].AtorID)
	require.NotNil(t, historico[0].SetorDestinoID)
	assert.Equal(t, int64(2), *historico[0].SetorDestinoID)
}

func TestProtocolarMulta(t *testing.T) {
	svc, _ := novoIntegracao(t)

	criado, err := svc.ProtocolarMulta(context.Background(), dto.SinalMultaDTO{
		MultaID: "MT-2024-0099",
		Empresa: "Loja de Eletrônicos XYZ",
		Valor:   "R$ 15.000,00",
		AtorID:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ofício", criado.TipoDocumento)
	assert.Contains(t, criado.Descricao, "R$ 15.000,00")
	require.NotNil(t, criado.Relacionada)
	assert.Equal(t, constants.EntidadeMulta, criado.Relacionada.Tipo)
}

func TestProtocolarRecurso_AltaPrioridade(t *testing.T) {
	svc, _ := novoIntegracao(t)

	criado, err := svc.ProtocolarRecurso(context.Background(), dto.SinalRecursoDTO{
		RecursoID:        "RC-2024-0007",
		ProcessoOriginal: "20240110-090000-001",
		Recorrente:       "Supermercado Preço Bom LTDA",
		AtorID:           7,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.PrioridadeAlta, criado.Prioridade)
	assert.Equal(t, "Recurso Administrativo", criado.TipoDocumento)
	assert.Contains(t, criado.Assunto, "20240110-090000-001")
}
