package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/internal/repositories"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/hashchain"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
	"github.com/Stevensbe/system-procon-sub001/pkg/types"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

// ProtocoloServiceInterface é o motor de protocolo e tramitação. Cada
// operação mutadora grava o novo estado do protocolo e exatamente um evento
// de histórico na mesma transação, condicionada à versão lida; em caso de
// conflito a escrita falha sem efeito parcial.
type ProtocoloServiceInterface interface {
	Criar(ctx context.Context, d dto.CriarProtocoloDTO) (*dto.ProtocoloDTO, error)
	Tramitar(ctx context.Context, numero string, d dto.TramitarDTO) (*dto.TramitacaoDTO, error)
	Receber(ctx context.Context, d dto.ReceberDTO) (*dto.TramitacaoDTO, error)
	Anotar(ctx context.Context, numero string, d dto.AnotarDTO) (*dto.TramitacaoDTO, error)
	Concluir(ctx context.Context, numero string, d dto.ConcluirDTO) (*dto.ProtocoloDTO, error)
	Arquivar(ctx context.Context, numero string) (*dto.ProtocoloDTO, error)
	Cancelar(ctx context.Context, numero string, d dto.CancelarDTO) (*dto.ProtocoloDTO, error)
	VerificarIntegridade(ctx context.Context, numero string) (*dto.VerificacaoIntegridadeDTO, error)
	BuscarPorNumero(ctx context.Context, numero string) (*dto.ProtocoloDTO, error)
	ListarHistorico(ctx context.Context, numero string) ([]dto.TramitacaoDTO, error)
	Listar(ctx context.Context, filter types.Filter) ([]dto.ProtocoloDTO, uint64, error)
	ListarPendentesPorSetor(ctx context.Context, setorID int64, limit, offset uint64) ([]dto.ProtocoloDTO, uint64, error)
	ListarVencidos(ctx context.Context, limit, offset uint64) ([]dto.ProtocoloDTO, uint64, error)
}

type ProtocoloService struct {
	txManager      repositories.TxManagerInterface
	protocoloRepo  repositories.ProtocoloRepositoryInterface
	tramitacaoRepo repositories.TramitacaoRepositoryInterface
	numeradorRepo  repositories.NumeradorRepositoryInterface
	tipoDocService TipoDocumentoServiceInterface
	setorService   SetorServiceInterface
	numeracao      *NumeracaoService
	relogio        relogio.Relogio
	logger         *zap.Logger
}

func NewProtocoloService(
	txManager repositories.TxManagerInterface,
	protocoloRepo repositories.ProtocoloRepositoryInterface,
	tramitacaoRepo repositories.TramitacaoRepositoryInterface,
	numeradorRepo repositories.NumeradorRepositoryInterface,
	tipoDocService TipoDocumentoServiceInterface,
	setorService SetorServiceInterface,
	numeracao *NumeracaoService,
	rel relogio.Relogio,
	logger *zap.Logger,
) ProtocoloServiceInterface {
	return &ProtocoloService{
		txManager:      txManager,
		protocoloRepo:  protocoloRepo,
		tramitacaoRepo: tramitacaoRepo,
		numeradorRepo:  numeradorRepo,
		tipoDocService: tipoDocService,
		setorService:   setorService,
		numeracao:      numeracao,
		relogio:        rel,
		logger:         logger,
	}
}

func (s *ProtocoloService) Criar(ctx context.Context, d dto.CriarProtocoloDTO) (*dto.ProtocoloDTO, error) {
	atorID, err := utils.GetActorIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if !constants.IsOrigemValida(d.Origem) {
		return nil, apperrors.NewInvalidInputError("origem desconhecida: %s", d.Origem)
	}
	if d.Prioridade == "" {
		d.Prioridade = constants.PrioridadeNormal
	}
	if !constants.IsPrioridadeValida(d.Prioridade) {
		return nil, apperrors.NewInvalidInputError("prioridade desconhecida: %s", d.Prioridade)
	}

	tipoDoc, err := s.tipoDocService.BuscarPorID(ctx, d.TipoDocumentoID)
	if err != nil {
		return nil, err
	}
	if !tipoDoc.Ativo {
		return nil, apperrors.ErrTipoDocumentoInativo
	}
	// Tipos que exigem assinatura só entram com o signatário identificado.
	if tipoDoc.ExigeAssinatura && d.Remetente.CPFCNPJ == "" {
		return nil, apperrors.NewInvalidInputError(
			"o tipo %s exige assinatura: informe o CPF/CNPJ do remetente", tipoDoc.Nome)
	}

	setorOrigem, err := s.setorService.BuscarPorID(ctx, d.SetorOrigemID)
	if err != nil {
		return nil, err
	}
	if !setorOrigem.PodeProtocolar {
		return nil, apperrors.NewInvalidInputError(
			"o setor %s não pode protocolar documentos", setorOrigem.Sigla)
	}
	setorDestino, err := s.setorService.BuscarPorID(ctx, d.SetorDestinoID)
	if err != nil {
		return nil, err
	}

	agora := s.relogio.Agora()

	protocolo := &entities.Protocolo{
		InternalID:      uuid.New(),
		TipoDocumentoID: tipoDoc.ID,
		Origem:          d.Origem,
		Assunto:         d.Assunto,
		Descricao:       d.Descricao,
		Status:          constants.StatusProtocolado,
		Prioridade:      d.Prioridade,
		Remetente: entities.Remetente{
			Nome:     d.Remetente.Nome,
			CPFCNPJ:  d.Remetente.CPFCNPJ,
			Email:    d.Remetente.Email,
			Telefone: d.Remetente.Telefone,
			Endereco: d.Remetente.Endereco,
		},
		// O protocolo permanece fisicamente no setor que o protocolou até o
		// primeiro encaminhamento; o destino informado fica registrado no
		// evento inicial.
		SetorAtualID:  setorOrigem.ID,
		SetorOrigemID: setorOrigem.ID,
		ResponsavelID: setorOrigem.ResponsavelID,
		// Prazo em dias corridos a partir da criação.
		PrazoResposta: agora.AddDate(0, 0, tipoDoc.PrazoRespostaDias),
		CriadoEm:      agora,
		Confidencial:  d.Confidencial,
		Versao:        1,
	}
	if d.Relacionada != nil {
		protocolo.Relacionada = &entities.EntidadeRelacionada{
			Tipo: d.Relacionada.Tipo,
			ID:   d.Relacionada.ID,
		}
	}

	// O incremento do numerador e o insert do protocolo formam uma unidade
	// atômica: dois criadores concorrentes nunca recebem a mesma sequência.
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		seq, err := s.numeradorRepo.ProximaSequenciaDoDia(ctx, tx, agora)
		if err != nil {
			return err
		}
		protocolo.Numero = s.numeracao.Montar(agora, seq)

		if _, err := s.protocoloRepo.CriarInTx(ctx, tx, protocolo); err != nil {
			return err
		}

		evento := &entities.Tramitacao{
			NumeroProtocolo: protocolo.Numero,
			Sequencia:       1,
			Acao:            constants.AcaoProtocolado,
			SetorOrigemID:   &setorOrigem.ID,
			SetorDestinoID:  &setorDestino.ID,
			Motivo:          "Protocolização do documento",
			AtorID:          atorID,
			EnviadaEm:       agora,
		}
		evento.HashIntegridade = hashchain.Calcular(camposDoEvento(evento), hashchain.HashSemente())

		_, err = s.tramitacaoRepo.CriarInTx(ctx, tx, evento)
		return err
	})
	if err != nil {
		s.logger.Error("falha ao criar o protocolo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("protocolo criado",
		zap.String("numero", protocolo.Numero),
		zap.String("origem", protocolo.Origem),
		zap.Int64("setor_origem", setorOrigem.ID),
	)
	return s.toProtocoloDTO(ctx, protocolo), nil
}

func (s *ProtocoloService) Tramitar(ctx context.Context, numero string, d dto.TramitarDTO) (*dto.TramitacaoDTO, error) {
	atorID, err := utils.GetActorIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	protocolo, err := s.protocoloRepo.BuscarPorNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if constants.IsStatusTerminal(protocolo.Status) {
		return nil, apperrors.ErrTransicaoInvalida
	}

	setorDestino, err := s.setorService.BuscarPorID(ctx, d.SetorDestinoID)
	if err != nil {
		return nil, err
	}
	if !setorDestino.PodeTramitar {
		return nil, apperrors.ErrSetorNaoTramita
	}
	if setorDestino.ID == protocolo.SetorAtualID {
		return nil, apperrors.ErrTramitacaoRedundante
	}

	eventos, err := s.tramitacaoRepo.ListarPorProtocolo(ctx, numero)
	if err != nil {
		return nil, err
	}

	agora := s.relogio.Agora()
	// Prazo vencido não impede a tramitação; o evento sai marcado como
	// atrasado para fins de relatório.
	atrasada := agora.After(protocolo.PrazoResposta)

	setorAnterior := protocolo.SetorAtualID
	versaoLida := protocolo.Versao

	protocolo.Status = constants.StatusEmTramitacao
	protocolo.SetorAtualID = setorDestino.ID
	protocolo.ResponsavelID = setorDestino.ResponsavelID
	if d.PrazoDias != nil {
		protocolo.PrazoResposta = agora.AddDate(0, 0, *d.PrazoDias)
	}

	evento := &entities.Tramitacao{
		NumeroProtocolo: numero,
		Sequencia:       len(eventos) + 1,
		Acao:            constants.AcaoEncaminhado,
		SetorOrigemID:   &setorAnterior,
		SetorDestinoID:  &setorDestino.ID,
		Motivo:          d.Motivo,
		AtorID:          atorID,
		EnviadaEm:       agora,
		Atrasada:        atrasada,
	}
	evento.HashIntegridade = hashchain.Calcular(camposDoEvento(evento), ultimoHash(eventos))

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.protocoloRepo.AtualizarEstadoInTx(ctx, tx, protocolo, versaoLida); err != nil {
			return err
		}
		id, err := s.tramitacaoRepo.CriarInTx(ctx, tx, evento)
		if err != nil {
			return err
		}
		evento.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("protocolo tramitado",
		zap.String("numero", numero),
		zap.Int64("de", setorAnterior),
		zap.Int64("para", setorDestino.ID),
		zap.Bool("atrasada", atrasada),
	)
	return toTramitacaoDTO(evento), nil
}

// Receber registra o recebimento físico de um encaminhamento. A operação é
// idempotente: a primeira chamada preenche recebida_em/recebida_por, as
// seguintes devolvem os valores originais sem alterar nada. O status do
// protocolo não muda.
func (s *ProtocoloService) Receber(ctx context.Context, d dto.ReceberDTO) (*dto.TramitacaoDTO, error) {
	atorID, err := utils.GetActorIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	recebidaPor := atorID
	if d.RecebidaPor != nil {
		recebidaPor = *d.RecebidaPor
	}

	evento, efetivado, err := s.tramitacaoRepo.RegistrarRecebimento(ctx, d.TramitacaoID, s.relogio.Agora(), recebidaPor)
	if err != nil {
		return nil, err
	}
	if !efetivado {
		s.logger.Debug("recebimento repetido ignorado",
			zap.Int64("tramitacao_id", d.TramitacaoID))
	}
	return toTramitacaoDTO(evento), nil
}

func (s *ProtocoloService) Anotar(ctx context.Context, numero string, d dto.AnotarDTO) (*dto.TramitacaoDTO, error) {
	atorID, err := utils.GetActorIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !constants.IsAcaoAnotacao(d.Acao) {
		return nil, apperrors.NewInvalidInputError("ação de anotação desconhecida: %s", d.Acao)
	}

	protocolo, err := s.protocoloRepo.BuscarPorNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if constants.IsStatusTerminal(protocolo.Status) {
		return nil, apperrors.ErrTransicaoInvalida
	}

	eventos, err := s.tramitacaoRepo.ListarPorProtocolo(ctx, numero)
	if err != nil {
		return nil, err
	}

	agora := s.relogio.Agora()
	versaoLida := protocolo.Versao

	switch d.Acao {
	case constants.AcaoEmAnalise:
		protocolo.Status = constants.StatusEmAnalise
	case constants.AcaoParecerEmitido:
		protocolo.Status = constants.StatusAguardandoDecisao
	case constants.AcaoSolicitacaoInfo:
		// Pedido de informação não muda o status corrente.
	}

	evento := &entities.Tramitacao{
		NumeroProtocolo: numero,
		Sequencia:       len(eventos) + 1,
		Acao:            d.Acao,
		SetorOrigemID:   &protocolo.SetorAtualID,
		Observacoes:     d.Observacoes,
		AtorID:          atorID,
		EnviadaEm:       agora,
	}
	evento.HashIntegridade = hashchain.Calcular(camposDoEvento(evento), ultimoHash(eventos))

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.protocoloRepo.AtualizarEstadoInTx(ctx, tx, protocolo, versaoLida); err != nil {
			return err
		}
		id, err := s.tramitacaoRepo.CriarInTx(ctx, tx, evento)
		if err != nil {
			return err
		}
		evento.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTramitacaoDTO(evento), nil
}

func (s *ProtocoloService) Concluir(ctx context.Context, numero string, d dto.ConcluirDTO) (*dto.ProtocoloDTO, error) {
	return s.finalizar(ctx, numero, constants.AcaoDecisaoTomada, d.Observacoes, "")
}

func (s *ProtocoloService) Arquivar(ctx context.Context, numero string) (*dto.ProtocoloDTO, error) {
	return s.finalizar(ctx, numero, constants.AcaoArquivado, "", "")
}

func (s *ProtocoloService) Cancelar(ctx context.Context, numero string, d dto.CancelarDTO) (*dto.ProtocoloDTO, error) {
	return s.finalizar(ctx, numero, constants.AcaoCancelado, "", d.Motivo)
}

// finalizar aplica as três transições terminais, cada uma com a sua regra
// de elegibilidade de status.
func (s *ProtocoloService) finalizar(ctx context.Context, numero, acao, observacoes, motivo string) (*dto.ProtocoloDTO, error) {
	atorID, err := utils.GetActorIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	protocolo, err := s.protocoloRepo.BuscarPorNumero(ctx, numero)
	if err != nil {
		return nil, err
	}

	agora := s.relogio.Agora()
	versaoLida := protocolo.Versao

	switch acao {
	case constants.AcaoDecisaoTomada:
		if !constants.IsStatusConcluivel(protocolo.Status) {
			return nil, apperrors.ErrTransicaoInvalida
		}
		protocolo.Status = constants.StatusDecidido
		protocolo.ConcluidoEm = &agora
	case constants.AcaoArquivado:
		if constants.IsStatusTerminal(protocolo.Status) {
			return nil, apperrors.ErrTransicaoInvalida
		}
		protocolo.Status = constants.StatusArquivado
	case constants.AcaoCancelado:
		if !constants.IsStatusCancelavel(protocolo.Status) {
			return nil, apperrors.ErrTransicaoInvalida
		}
		protocolo.Status = constants.StatusCancelado
	}

	eventos, err := s.tramitacaoRepo.ListarPorProtocolo(ctx, numero)
	if err != nil {
		return nil, err
	}

	evento := &entities.Tramitacao{
		NumeroProtocolo: numero,
		Sequencia:       len(eventos) + 1,
		Acao:            acao,
		SetorOrigemID:   &protocolo.SetorAtualID,
		Motivo:          motivo,
		Observacoes:     observacoes,
		AtorID:          atorID,
		EnviadaEm:       agora,
	}
	evento.HashIntegridade = hashchain.Calcular(camposDoEvento(evento), ultimoHash(eventos))

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.protocoloRepo.AtualizarEstadoInTx(ctx, tx, protocolo, versaoLida); err != nil {
			return err
		}
		_, err := s.tramitacaoRepo.CriarInTx(ctx, tx, evento)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("protocolo finalizado",
		zap.String("numero", numero),
		zap.String("acao", acao),
	)
	return s.toProtocoloDTO(ctx, protocolo), nil
}

// VerificarIntegridade recomputa a cadeia de hashes do protocolo inteiro.
// Qualquer divergência devolve ErrHistoricoCorrompido junto do relatório
// apontando a sequência em que a cadeia quebrou; a corrupção nunca é
// reparada automaticamente.
func (s *ProtocoloService) VerificarIntegridade(ctx context.Context, numero string) (*dto.VerificacaoIntegridadeDTO, error) {
	if _, err := s.protocoloRepo.BuscarPorNumero(ctx, numero); err != nil {
		return nil, err
	}
	eventos, err := s.tramitacaoRepo.ListarPorProtocolo(ctx, numero)
	if err != nil {
		return nil, err
	}

	resultado := &dto.VerificacaoIntegridadeDTO{
		Numero:          numero,
		TotalEventos:    len(eventos),
		Integro:         true,
		AlgoritmoVersao: hashchain.Versao,
	}

	anterior := hashchain.HashSemente()
	for i := range eventos {
		esperado := hashchain.Calcular(camposDoEvento(&eventos[i]), anterior)
		if esperado != eventos[i].HashIntegridade {
			seq := eventos[i].Sequencia
			resultado.Integro = false
			resultado.SequenciaFalha = &seq
			s.logger.Error("cadeia de integridade corrompida",
				zap.String("numero", numero),
				zap.Int("sequencia", seq),
			)
			return resultado, apperrors.ErrHistoricoCorrompido
		}
		anterior = eventos[i].HashIntegridade
	}
	return resultado, nil
}

func (s *ProtocoloService) BuscarPorNumero(ctx context.Context, numero string) (*dto.ProtocoloDTO, error) {
	protocolo, err := s.protocoloRepo.BuscarPorNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	return s.toProtocoloDTO(ctx, protocolo), nil
}

func (s *ProtocoloService) ListarHistorico(ctx context.Context, numero string) ([]dto.TramitacaoDTO, error) {
	if _, err := s.protocoloRepo.BuscarPorNumero(ctx, numero); err != nil {
		return nil, err
	}
	eventos, err := s.tramitacaoRepo.ListarPorProtocolo(ctx, numero)
	if err != nil {
		return nil, err
	}
	historico := make([]dto.TramitacaoDTO, 0, len(eventos))
	for i := range eventos {
		historico = append(historico, *toTramitacaoDTO(&eventos[i]))
	}
	return historico, nil
}

func (s *ProtocoloService) Listar(ctx context.Context, filter types.Filter) ([]dto.ProtocoloDTO, uint64, error) {
	protocolos, total, err := s.protocoloRepo.Listar(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return s.toProtocoloDTOs(ctx, protocolos), total, nil
}

func (s *ProtocoloService) ListarPendentesPorSetor(ctx context.Context, setorID int64, limit, offset uint64) ([]dto.ProtocoloDTO, uint64, error) {
	protocolos, total, err := s.protocoloRepo.ListarPendentesPorSetor(ctx, setorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return s.toProtocoloDTOs(ctx, protocolos), total, nil
}

func (s *ProtocoloService) ListarVencidos(ctx context.Context, limit, offset uint64) ([]dto.ProtocoloDTO, uint64, error) {
	protocolos, total, err := s.protocoloRepo.ListarVencidos(ctx, s.relogio.Agora(), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return s.toProtocoloDTOs(ctx, protocolos), total, nil
}

// --- helpers ---

func camposDoEvento(t *entities.Tramitacao) hashchain.Campos {
	var origem, destino int64
	if t.SetorOrigemID != nil {
		origem = *t.SetorOrigemID
	}
	if t.SetorDestinoID != nil {
		destino = *t.SetorDestinoID
	}
	return hashchain.Campos{
		NumeroProtocolo: t.NumeroProtocolo,
		Sequencia:       t.Sequencia,
		Acao:            t.Acao,
		SetorOrigemID:   origem,
		SetorDestinoID:  destino,
		AtorID:          t.AtorID,
		Motivo:          t.Motivo,
		Observacoes:     t.Observacoes,
		Atrasada:        t.Atrasada,
		EnviadaEm:       t.EnviadaEm,
	}
}

func ultimoHash(eventos []entities.Tramitacao) string {
	if len(eventos) == 0 {
		return hashchain.HashSemente()
	}
	return eventos[len(eventos)-1].HashIntegridade
}

func (s *ProtocoloService) toProtocoloDTO(ctx context.Context, p *entities.Protocolo) *dto.ProtocoloDTO {
	out := &dto.ProtocoloDTO{
		Numero:          p.Numero,
		InternalID:      p.InternalID.String(),
		TipoDocumentoID: p.TipoDocumentoID,
		Origem:          p.Origem,
		Assunto:         p.Assunto,
		Descricao:       p.Descricao,
		Status:          p.Status,
		Prioridade:      p.Prioridade,
		Remetente: dto.RemetenteDTO{
			Nome:     p.Remetente.Nome,
			CPFCNPJ:  p.Remetente.CPFCNPJ,
			Email:    p.Remetente.Email,
			Telefone: p.Remetente.Telefone,
			Endereco: p.Remetente.Endereco,
		},
		SetorAtualID:  p.SetorAtualID,
		SetorOrigemID: p.SetorOrigemID,
		ResponsavelID: p.ResponsavelID,
		PrazoResposta: p.PrazoResposta.Format(time.RFC3339),
		CriadoEm:      p.CriadoEm.Format(time.RFC3339),
		Confidencial:  p.Confidencial,
		Versao:        p.Versao,
	}
	if p.ConcluidoEm != nil {
		formatado := p.ConcluidoEm.Format(time.RFC3339)
		out.ConcluidoEm = &formatado
	}
	if p.Relacionada != nil {
		out.Relacionada = &dto.EntidadeRelacionadaDTO{Tipo: p.Relacionada.Tipo, ID: p.Relacionada.ID}
	}
	if tipoDoc, err := s.tipoDocService.BuscarPorID(ctx, p.TipoDocumentoID); err == nil {
		out.TipoDocumento = tipoDoc.Nome
	}
	return out
}

func (s *ProtocoloService) toProtocoloDTOs(ctx context.Context, protocolos []entities.Protocolo) []dto.ProtocoloDTO {
	out := make([]dto.ProtocoloDTO, 0, len(protocolos))
	for i := range protocolos {
		out = append(out, *s.toProtocoloDTO(ctx, &protocolos[i]))
	}
	return out
}

func toTramitacaoDTO(t *entities.Tramitacao) *dto.TramitacaoDTO {
	out := &dto.TramitacaoDTO{
		ID:              t.ID,
		Sequencia:       t.Sequencia,
		Acao:            t.Acao,
		SetorOrigemID:   t.SetorOrigemID,
		SetorDestinoID:  t.SetorDestinoID,
		Motivo:          t.Motivo,
		Observacoes:     t.Observacoes,
		AtorID:          t.AtorID,
		EnviadaEm:       t.EnviadaEm.Format(time.RFC3339),
		RecebidaPor:     t.RecebidaPor,
		Atrasada:        t.Atrasada,
		HashIntegridade: t.HashIntegridade,
	}
	if t.RecebidaEm != nil {
		formatado := t.RecebidaEm.Format(time.RFC3339)
		out.RecebidaEm = &formatado
	}
	return out
}
