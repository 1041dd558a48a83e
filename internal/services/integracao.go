package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/events"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	"github.com/Stevensbe/system-procon-sub001/pkg/eventbus"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

// Convenções de roteamento dos sinais externos. O setor de protocolo (PROT)
// figura como origem porque é ele quem formaliza a entrada; o tipo de
// documento e o destino vêm da natureza do sinal.
const (
	siglaSetorProtocolo  = "PROT"
	siglaSetorJuridico   = "JUR"
	siglaSetorFinanceiro = "DAF"

	tipoAutoInfracao = "Auto de Infração"
	tipoOficio       = "Ofício"
	tipoRecurso      = "Recurso Administrativo"
)

// IntegracaoService converte os sinais pós-commit dos subsistemas
// (fiscalização, multas, recursos) em protocolos novos. As falhas são
// registradas e jamais propagadas ao publicador; o subsistema de origem já
// gravou a entidade dele e não pode ser desfeito daqui.
type IntegracaoServiceInterface interface {
	RegistrarListeners(bus *eventbus.Bus)
	ProtocolarAutoInfracao(ctx context.Context, d dto.SinalFiscalizacaoDTO) (*dto.ProtocoloDTO, error)
	ProtocolarMulta(ctx context.Context, d dto.SinalMultaDTO) (*dto.ProtocoloDTO, error)
	ProtocolarRecurso(ctx context.Context, d dto.SinalRecursoDTO) (*dto.ProtocoloDTO, error)
}

type IntegracaoService struct {
	protocoloService ProtocoloServiceInterface
	tipoDocService   TipoDocumentoServiceInterface
	setorService     SetorServiceInterface
	logger           *zap.Logger
}

func NewIntegracaoService(
	protocoloService ProtocoloServiceInterface,
	tipoDocService TipoDocumentoServiceInterface,
	setorService SetorServiceInterface,
	logger *zap.Logger,
) IntegracaoServiceInterface {
	return &IntegracaoService{
		protocoloService: protocoloService,
		tipoDocService:   tipoDocService,
		setorService:     setorService,
		logger:           logger,
	}
}

func (s *IntegracaoService) RegistrarListeners(bus *eventbus.Bus) {
	bus.Subscribe(events.AutoInfracaoLavradoEventName, func(ctx context.Context, e eventbus.Event) error {
		evento, ok := e.(events.AutoInfracaoLavradoEvent)
		if !ok {
			return fmt.Errorf("payload inesperado para %s: %T", e.Name(), e)
		}
		_, err := s.ProtocolarAutoInfracao(ctx, evento.Sinal)
		return err
	})
	bus.Subscribe(events.MultaAplicadaEventName, func(ctx context.Context, e eventbus.Event) error {
		evento, ok := e.(events.MultaAplicadaEvent)
		if !ok {
			return fmt.Errorf("payload inesperado para %s: %T", e.Name(), e)
		}
		_, err := s.ProtocolarMulta(ctx, evento.Sinal)
		return err
	})
	bus.Subscribe(events.RecursoInterpostoEventName, func(ctx context.Context, e eventbus.Event) error {
		evento, ok := e.(events.RecursoInterpostoEvent)
		if !ok {
			return fmt.Errorf("payload inesperado para %s: %T", e.Name(), e)
		}
		_, err := s.ProtocolarRecurso(ctx, evento.Sinal)
		return err
	})
}

// ProtocolarAutoInfracao abre um protocolo jurídico para um auto de infração
// lavrado pela fiscalização.
func (s *IntegracaoService) ProtocolarAutoInfracao(ctx context.Context, d dto.SinalFiscalizacaoDTO) (*dto.ProtocoloDTO, error) {
	criado, err := s.protocolar(ctx, d.AtorID, criacaoIntegrada{
		tipoNome:     tipoAutoInfracao,
		destinoSigla: siglaSetorJuridico,
		origem:       constants.OrigemFiscalizacao,
		prioridade:   constants.PrioridadeNormal,
		assunto:      fmt.Sprintf("Auto de Infração %s - %s", d.AutoID, d.Empresa),
		descricao:    d.Descricao,
		remetente:    dto.RemetenteDTO{Nome: d.Empresa, CPFCNPJ: d.CNPJ},
		relacionada:  &dto.EntidadeRelacionadaDTO{Tipo: constants.EntidadeFiscalizacao, ID: d.AutoID},
	})
	if err != nil {
		s.logger.Error("falha ao protocolar o auto de infração",
			zap.String("auto_id", d.AutoID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("auto de infração protocolado",
		zap.String("auto_id", d.AutoID),
		zap.String("numero", criado.Numero))
	return criado, nil
}

// ProtocolarMulta abre um protocolo financeiro para a cobrança de uma multa.
func (s *IntegracaoService) ProtocolarMulta(ctx context.Context, d dto.SinalMultaDTO) (*dto.ProtocoloDTO, error) {
	descricao := d.Descricao
	if d.Valor != "" {
		descricao = fmt.Sprintf("Valor da multa: %s. %s", d.Valor, d.Descricao)
	}
	criado, err := s.protocolar(ctx, d.AtorID, criacaoIntegrada{
		tipoNome:     tipoOficio,
		destinoSigla: siglaSetorFinanceiro,
		origem:       constants.OrigemFiscalizacao,
		prioridade:   constants.PrioridadeNormal,
		assunto:      fmt.Sprintf("Multa %s - %s", d.MultaID, d.Empresa),
		descricao:    descricao,
		remetente:    dto.RemetenteDTO{Nome: d.Empresa},
		relacionada:  &dto.EntidadeRelacionadaDTO{Tipo: constants.EntidadeMulta, ID: d.MultaID},
	})
	if err != nil {
		s.logger.Error("falha ao protocolar a multa",
			zap.String("multa_id", d.MultaID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("multa protocolada",
		zap.String("multa_id", d.MultaID),
		zap.String("numero", criado.Numero))
	return criado, nil
}

// ProtocolarRecurso abre um protocolo jurídico de alta prioridade para um
// recurso administrativo; o recurso suspende prazos do processo original e
// precisa andar rápido.
func (s *IntegracaoService) ProtocolarRecurso(ctx context.Context, d dto.SinalRecursoDTO) (*dto.ProtocoloDTO, error) {
	assunto := fmt.Sprintf("Recurso Administrativo %s", d.RecursoID)
	if d.ProcessoOriginal != "" {
		assunto = fmt.Sprintf("%s - processo %s", assunto, d.ProcessoOriginal)
	}
	criado, err := s.protocolar(ctx, d.AtorID, criacaoIntegrada{
		tipoNome:     tipoRecurso,
		destinoSigla: siglaSetorJuridico,
		origem:       constants.OrigemPeticao,
		prioridade:   constants.PrioridadeAlta,
		assunto:      assunto,
		descricao:    d.Descricao,
		remetente:    dto.RemetenteDTO{Nome: d.Recorrente},
		relacionada:  &dto.EntidadeRelacionadaDTO{Tipo: constants.EntidadeRecurso, ID: d.RecursoID},
	})
	if err != nil {
		s.logger.Error("falha ao protocolar o recurso",
			zap.String("recurso_id", d.RecursoID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("recurso protocolado",
		zap.String("recurso_id", d.RecursoID),
		zap.String("numero", criado.Numero))
	return criado, nil
}

type criacaoIntegrada struct {
	tipoNome     string
	destinoSigla string
	origem       string
	prioridade   string
	assunto      string
	descricao    string
	remetente    dto.RemetenteDTO
	relacionada  *dto.EntidadeRelacionadaDTO
}

func (s *IntegracaoService) protocolar(ctx context.Context, atorID int64, c criacaoIntegrada) (*dto.ProtocoloDTO, error) {
	tipoDoc, err := s.tipoDocService.BuscarPorNome(ctx, c.tipoNome)
	if err != nil {
		return nil, err
	}
	setorProtocolo, err := s.setorService.BuscarPorSigla(ctx, siglaSetorProtocolo)
	if err != nil {
		return nil, err
	}
	setorDestino, err := s.setorService.BuscarPorSigla(ctx, c.destinoSigla)
	if err != nil {
		return nil, err
	}

	// O ator do sinal vira o ator do evento PROTOCOLADO; o contexto do
	// barramento não carrega autenticação.
	ctx = utils.CtxWithActorID(ctx, atorID)

	return s.protocoloService.Criar(ctx, dto.CriarProtocoloDTO{
		TipoDocumentoID: tipoDoc.ID,
		Origem:          c.origem,
		Assunto:         c.assunto,
		Descricao:       c.descricao,
		Prioridade:      c.prioridade,
		Remetente:       c.remetente,
		SetorOrigemID:   setorProtocolo.ID,
		SetorDestinoID:  setorDestino.ID,
		Relacionada:     c.relacionada,
	})
}
