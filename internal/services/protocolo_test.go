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
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/hashchain"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

const (
	setorProtocolo int64 = 1
	setorJuridico  int64 = 2
	setorAtendim   int64 = 3
	setorFiscaliz  int64 = 4
	tipoReclamacao int64 = 1
	tipoAutoInfra  int64 = 2
	tipoDesativado int64 = 3
	atorTeste      int64 = 42
)

type engineFixture struct {
	service        ProtocoloServiceInterface
	protocoloRepo  *fakeProtocoloRepo
	tramitacaoRepo *fakeTramitacaoRepo
	relogio        *relogio.RelogioFixo
}

func novoEngine(t *testing.T) *engineFixture {
	t.Helper()

	respJuridico := int64(77)
	setores := &fakeSetorService{porID: map[int64]*entities.Setor{
		setorProtocolo: {ID: setorProtocolo, Nome: "Protocolo Geral", Sigla: "PROT", PodeProtocolar: true, PodeTramitar: true},
		setorJuridico:  {ID: setorJuridico, Nome: "Assessoria Jurídica", Sigla: "JUR", PodeTramitar: true, ResponsavelID: &respJuridico, EmailContato: "juridico@procon.gov.br"},
		setorAtendim:   {ID: setorAtendim, Nome: "Atendimento", Sigla: "ATD", PodeProtocolar: true, PodeTramitar: false},
		setorFiscaliz:  {ID: setorFiscaliz, Nome: "Fiscalização", Sigla: "FIS", PodeProtocolar: true, PodeTramitar: true},
	}}
	tipos := &fakeTipoDocumentoService{porID: map[int64]*entities.TipoDocumento{
		tipoReclamacao: {ID: tipoReclamacao, Nome: "Reclamação", PrazoRespostaDias: 10, Ativo: true},
		tipoAutoInfra:  {ID: tipoAutoInfra, Nome: "Auto de Infração", PrazoRespostaDias: 15, ExigeAssinatura: true, Ativo: true},
		tipoDesativado: {ID: tipoDesativado, Nome: "Ofício Antigo", PrazoRespostaDias: 5, Ativo: false},
	}}

	rel := &relogio.RelogioFixo{Instante: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)}
	protocoloRepo := newFakeProtocoloRepo()
	tramitacaoRepo := newFakeTramitacaoRepo()

	svc := NewProtocoloService(
		&fakeTxManager{},
		protocoloRepo,
		tramitacaoRepo,
		newFakeNumeradorRepo(),
		tipos,
		setores,
		NewNumeracaoService(config.NumeracaoConfig{LarguraMinima: 3}),
		rel,
		zap.NewNop(),
	)
	return &engineFixture{
		service:        svc,
		protocoloRepo:  protocoloRepo,
		tramitacaoRepo: tramitacaoRepo,
		relogio:        rel,
	}
}

func ctxComAtor() context.Context {
	return utils.CtxWithActorID(context.Background(), atorTeste)
}

func criarDTOPadrao() dto.CriarProtocoloDTO {
	return dto.CriarProtocoloDTO{
		TipoDocumentoID: tipoReclamacao,
		Origem:          constants.OrigemExterna,
		Assunto:         "Cobrança indevida em fatura de telefonia",
		Remetente:       dto.RemetenteDTO{Nome: "Maria da Silva", CPFCNPJ: "123.456.789-00"},
		SetorOrigemID:   setorProtocolo,
		SetorDestinoID:  setorJuridico,
	}
}

func TestCriar_FormatoDoNumero(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	assert.Equal(t, "20240110-090000-001", p.Numero)
	assert.Equal(t, constants.StatusProtocolado, p.Status)
	assert.Equal(t, int64(1), p.Versao)
}

func TestCriar_NumerosUnicos(t *testing.T) {
	fx := novoEngine(t)

	vistos := make(map[string]bool)
	for i := 0; i < 5; i++ {
		p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
		require.NoError(t, err)
		assert.False(t, vistos[p.Numero], "número repetido: %s", p.Numero)
		vistos[p.Numero] = true
	}
	assert.Contains(t, vistos, "20240110-090000-005")
}

func TestCriar_PrazoEmDiasCorridos(t *testing.T) {
	fx := novoEngine(t)

	d := criarDTOPadrao()
	d.TipoDocumentoID = tipoAutoInfra // 15 dias
	p, err := fx.service.Criar(ctxComAtor(), d)
	require.NoError(t, err)

	esperado := time.Date(2024, 1, 25, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)
	assert.Equal(t, esperado, p.PrazoResposta)
}

func TestCriar_SetorAtualComecaNaOrigem(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	assert.Equal(t, setorProtocolo, p.SetorAtualID)
	assert.Equal(t, setorProtocolo, p.SetorOrigemID)
}

func TestCriar_EventoInicialEncadeadoNaSemente(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	historico, err := fx.service.ListarHistorico(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	require.Len(t, historico, 1)

	evento := historico[0]
	assert.Equal(t, 1, evento.Sequencia)
	assert.Equal(t, constants.AcaoProtocolado, evento.Acao)
	assert.Equal(t, atorTeste, evento.AtorID)
	require.NotNil(t, evento.SetorDestinoID)
	assert.Equal(t, setorJuridico, *evento.SetorDestinoID)

	esperado := hashchain.Calcular(hashchain.Campos{
		NumeroProtocolo: p.Numero,
		Sequencia:       1,
		Acao:            constants.AcaoProtocolado,
		SetorOrigemID:   setorProtocolo,
		SetorDestinoID:  setorJuridico,
		AtorID:          atorTeste,
		Motivo:          "Protocolização do documento",
		EnviadaEm:       fx.relogio.Agora(),
	}, hashchain.HashSemente())
	assert.Equal(t, esperado, evento.HashIntegridade)
}

func TestCriar_TipoDeDocumentoInativo(t *testing.T) {
	fx := novoEngine(t)

	d := criarDTOPadrao()
	d.TipoDocumentoID = tipoDesativado
	_, err := fx.service.Criar(ctxComAtor(), d)
	assert.ErrorIs(t, err, apperrors.ErrTipoDocumentoInativo)
}

func TestCriar_AssinaturaExigidaSemCPFCNPJ(t *testing.T) {
	fx := novoEngine(t)

	d := criarDTOPadrao()
	d.TipoDocumentoID = tipoAutoInfra
	d.Remetente.CPFCNPJ = ""
	_, err := fx.service.Criar(ctxComAtor(), d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exige assinatura")
}

func TestCriar_SetorSemPermissaoDeProtocolar(t *testing.T) {
	fx := novoEngine(t)

	d := criarDTOPadrao()
	d.SetorOrigemID = setorJuridico // JUR não protocola
	_, err := fx.service.Criar(ctxComAtor(), d)
	require.Error(t, err)
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestCriar_OrigemDesconhecida(t *testing.T) {
	fx := novoEngine(t)

	d := criarDTOPadrao()
	d.Origem = "FAX"
	_, err := fx.service.Criar(ctxComAtor(), d)
	require.Error(t, err)
}

func TestCriar_SemAtorNoContexto(t *testing.T) {
	fx := novoEngine(t)

	_, err := fx.service.Criar(context.Background(), criarDTOPadrao())
	assert.ErrorIs(t, err, apperrors.ErrActorIDNotFoundInContext)
}

func TestTramitar_MudaSetorEStatus(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	evento, err := fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{
		SetorDestinoID: setorJuridico,
		Motivo:         "Encaminhamento para análise jurídica",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, evento.Sequencia)
	assert.Equal(t, constants.AcaoEncaminhado, evento.Acao)
	assert.False(t, evento.Atrasada)

	atualizado, err := fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusEmTramitacao, atualizado.Status)
	assert.Equal(t, setorJuridico, atualizado.SetorAtualID)
	require.NotNil(t, atualizado.ResponsavelID)
	assert.Equal(t, int64(77), *atualizado.ResponsavelID)
	assert.Equal(t, int64(2), atualizado.Versao)
}

func TestTramitar_SetorAtualSegueUltimoEncaminhamento(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "análise"})
	require.NoError(t, err)
	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorFiscaliz, Motivo: "diligência"})
	require.NoError(t, err)

	atualizado, err := fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.Equal(t, setorFiscaliz, atualizado.SetorAtualID)
}

func TestTramitar_DestinoNaoTramita(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorAtendim, Motivo: "x"})
	assert.ErrorIs(t, err, apperrors.ErrSetorNaoTramita)

	// A recusa não grava evento nem altera a versão do protocolo.
	historico, err := fx.service.ListarHistorico(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.Len(t, historico, 1)
	depois, err := fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depois.Versao)
	assert.Equal(t, constants.StatusProtocolado, depois.Status)
}

func TestTramitar_ParaOMesmoSetor(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorProtocolo, Motivo: "x"})
	assert.ErrorIs(t, err, apperrors.ErrTramitacaoRedundante)
}

func TestTramitar_DepoisDeTerminalFalha(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	_, err = fx.service.Arquivar(ctxComAtor(), p.Numero)
	require.NoError(t, err)

	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "x"})
	assert.ErrorIs(t, err, apperrors.ErrTransicaoInvalida)
}

func TestTramitar_ForaDoPrazoMarcaAtrasada(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	// Reclamação tem 10 dias; avança 11.
	fx.relogio.Avancar(11 * 24 * time.Hour)
	evento, err := fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "tardio"})
	require.NoError(t, err)
	assert.True(t, evento.Atrasada)
}

func TestTramitar_ComNovoPrazo(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	prazo := 5
	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{
		SetorDestinoID: setorJuridico,
		Motivo:         "urgência",
		PrazoDias:      &prazo,
	})
	require.NoError(t, err)

	atualizado, err := fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	esperado := fx.relogio.Agora().AddDate(0, 0, 5).Format(time.RFC3339)
	assert.Equal(t, esperado, atualizado.PrazoResposta)
}

func TestTramitar_ConflitoDeVersao(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	fx.protocoloRepo.conflitarProximaAtualizacao = true
	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "x"})
	assert.ErrorIs(t, err, apperrors.ErrConflitoConcorrencia)

	// Nenhum evento ficou para trás: a escrita falhou inteira.
	historico, err := fx.service.ListarHistorico(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.Len(t, historico, 1)
}

func TestReceber_Idempotente(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	encaminhamento, err := fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "análise"})
	require.NoError(t, err)

	fx.relogio.Avancar(2 * time.Hour)
	primeiro, err := fx.service.Receber(ctxComAtor(), dto.ReceberDTO{TramitacaoID: encaminhamento.ID})
	require.NoError(t, err)
	require.NotNil(t, primeiro.RecebidaEm)
	require.NotNil(t, primeiro.RecebidaPor)
	assert.Equal(t, atorTeste, *primeiro.RecebidaPor)

	// Segunda chamada, mais tarde e por outro ator, não muda nada.
	fx.relogio.Avancar(3 * time.Hour)
	outroAtor := utils.CtxWithActorID(context.Background(), int64(99))
	segundo, err := fx.service.Receber(outroAtor, dto.ReceberDTO{TramitacaoID: encaminhamento.ID})
	require.NoError(t, err)
	assert.Equal(t, *primeiro.RecebidaEm, *segundo.RecebidaEm)
	assert.Equal(t, atorTeste, *segundo.RecebidaPor)

	// O recebimento não muda o status do protocolo.
	atualizado, err := fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusEmTramitacao, atualizado.Status)
}

func TestReceber_RecebedorDistintoDoOperador(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	encaminhamento, err := fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "análise"})
	require.NoError(t, err)

	// O operador registra o recebimento em nome de quem pegou o documento.
	recebedor := int64(55)
	evento, err := fx.service.Receber(ctxComAtor(), dto.ReceberDTO{
		TramitacaoID: encaminhamento.ID,
		RecebidaPor:  &recebedor,
	})
	require.NoError(t, err)
	require.NotNil(t, evento.RecebidaPor)
	assert.Equal(t, recebedor, *evento.RecebidaPor)
}

func TestAnotar_TransicoesDeStatus(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoEmAnalise, Observacoes: "iniciada a análise"})
	require.NoError(t, err)
	atual, _ := fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	assert.Equal(t, constants.StatusEmAnalise, atual.Status)

	// Pedido de informação não muda o status.
	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoSolicitacaoInfo, Observacoes: "faltam documentos"})
	require.NoError(t, err)
	atual, _ = fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	assert.Equal(t, constants.StatusEmAnalise, atual.Status)

	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoParecerEmitido, Observacoes: "parecer favorável"})
	require.NoError(t, err)
	atual, _ = fx.service.BuscarPorNumero(ctxComAtor(), p.Numero)
	assert.Equal(t, constants.StatusAguardandoDecisao, atual.Status)
}

func TestAnotar_AcaoInvalida(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoEncaminhado, Observacoes: "x"})
	require.Error(t, err)
}

func TestConcluir_ExigeAnalise(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	// Direto da criação não pode concluir.
	_, err = fx.service.Concluir(ctxComAtor(), p.Numero, dto.ConcluirDTO{})
	assert.ErrorIs(t, err, apperrors.ErrTransicaoInvalida)

	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoEmAnalise, Observacoes: "análise"})
	require.NoError(t, err)

	concluido, err := fx.service.Concluir(ctxComAtor(), p.Numero, dto.ConcluirDTO{Observacoes: "procedente"})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDecidido, concluido.Status)
	require.NotNil(t, concluido.ConcluidoEm)
}

func TestArquivar_DeQualquerNaoTerminal(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	arquivado, err := fx.service.Arquivar(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusArquivado, arquivado.Status)

	_, err = fx.service.Arquivar(ctxComAtor(), p.Numero)
	assert.ErrorIs(t, err, apperrors.ErrTransicaoInvalida)
}

func TestCancelar_SoAntesDaAnalise(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	cancelado, err := fx.service.Cancelar(ctxComAtor(), p.Numero, dto.CancelarDTO{Motivo: "duplicado"})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCancelado, cancelado.Status)

	outro, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	_, err = fx.service.Anotar(ctxComAtor(), outro.Numero, dto.AnotarDTO{Acao: constants.AcaoEmAnalise, Observacoes: "x"})
	require.NoError(t, err)
	_, err = fx.service.Cancelar(ctxComAtor(), outro.Numero, dto.CancelarDTO{Motivo: "tarde demais"})
	assert.ErrorIs(t, err, apperrors.ErrTransicaoInvalida)
}

func TestVerificarIntegridade_CadeiaIntegra(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "análise"})
	require.NoError(t, err)
	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoEmAnalise, Observacoes: "em análise"})
	require.NoError(t, err)
	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoParecerEmitido, Observacoes: "parecer"})
	require.NoError(t, err)
	_, err = fx.service.Concluir(ctxComAtor(), p.Numero, dto.ConcluirDTO{Observacoes: "decisão final"})
	require.NoError(t, err)

	res, err := fx.service.VerificarIntegridade(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.True(t, res.Integro)
	assert.Equal(t, 5, res.TotalEventos)
	assert.Nil(t, res.SequenciaFalha)
	assert.Equal(t, hashchain.Versao, res.AlgoritmoVersao)
}

func TestVerificarIntegridade_DetectaAdulteracao(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "análise"})
	require.NoError(t, err)
	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoEmAnalise, Observacoes: "x"})
	require.NoError(t, err)

	fx.tramitacaoRepo.adulterar(p.Numero, 2, func(e *entities.Tramitacao) {
		e.Motivo = "motivo reescrito por fora"
	})

	res, err := fx.service.VerificarIntegridade(ctxComAtor(), p.Numero)
	assert.ErrorIs(t, err, apperrors.ErrHistoricoCorrompido)
	require.NotNil(t, res)
	assert.False(t, res.Integro)
	require.NotNil(t, res.SequenciaFalha)
	assert.Equal(t, 2, *res.SequenciaFalha)
}

func TestVerificarIntegridade_DetectaAtrasoAdulterado(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)
	_, err = fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "análise"})
	require.NoError(t, err)

	// Encaminhamento dentro do prazo reclassificado como atrasado por fora.
	fx.tramitacaoRepo.adulterar(p.Numero, 2, func(e *entities.Tramitacao) {
		e.Atrasada = true
	})

	res, err := fx.service.VerificarIntegridade(ctxComAtor(), p.Numero)
	assert.ErrorIs(t, err, apperrors.ErrHistoricoCorrompido)
	require.NotNil(t, res)
	assert.False(t, res.Integro)
	require.NotNil(t, res.SequenciaFalha)
	assert.Equal(t, 2, *res.SequenciaFalha)
}

func TestFluxoCompleto_ReclamacaoAteDecisao(t *testing.T) {
	fx := novoEngine(t)

	p, err := fx.service.Criar(ctxComAtor(), criarDTOPadrao())
	require.NoError(t, err)

	encaminhamento, err := fx.service.Tramitar(ctxComAtor(), p.Numero, dto.TramitarDTO{SetorDestinoID: setorJuridico, Motivo: "análise de mérito"})
	require.NoError(t, err)
	_, err = fx.service.Receber(ctxComAtor(), dto.ReceberDTO{TramitacaoID: encaminhamento.ID})
	require.NoError(t, err)

	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoEmAnalise, Observacoes: "análise iniciada"})
	require.NoError(t, err)
	_, err = fx.service.Anotar(ctxComAtor(), p.Numero, dto.AnotarDTO{Acao: constants.AcaoParecerEmitido, Observacoes: "parecer pela procedência"})
	require.NoError(t, err)
	_, err = fx.service.Concluir(ctxComAtor(), p.Numero, dto.ConcluirDTO{Observacoes: "multa aplicada"})
	require.NoError(t, err)

	historico, err := fx.service.ListarHistorico(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	require.Len(t, historico, 5)

	acoes := make([]string, 0, len(historico))
	for _, ev := range historico {
		acoes = append(acoes, ev.Acao)
	}
	assert.Equal(t, []string{
		constants.AcaoProtocolado,
		constants.AcaoEncaminhado,
		constants.AcaoEmAnalise,
		constants.AcaoParecerEmitido,
		constants.AcaoDecisaoTomada,
	}, acoes)

	// O recebimento não entra no hash: a cadeia continua íntegra.
	res, err := fx.service.VerificarIntegridade(ctxComAtor(), p.Numero)
	require.NoError(t, err)
	assert.True(t, res.Integro)
}
