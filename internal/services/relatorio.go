package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/internal/repositories"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
	"github.com/Stevensbe/system-procon-sub001/pkg/types"
)

type RelatorioServiceInterface interface {
	GerarItens(ctx context.Context, filter types.Filter) ([]entities.RelatorioItem, uint64, error)
}

// RelatorioService monta as linhas do relatório gerencial de protocolos,
// resolvendo os nomes de setor e tipo de documento pelos serviços cacheados.
type RelatorioService struct {
	protocoloRepo  repositories.ProtocoloRepositoryInterface
	tipoDocService TipoDocumentoServiceInterface
	setorService   SetorServiceInterface
	prazoMonitor   *PrazoMonitor
	relogio        relogio.Relogio
	logger         *zap.Logger
}

func NewRelatorioService(
	protocoloRepo repositories.ProtocoloRepositoryInterface,
	tipoDocService TipoDocumentoServiceInterface,
	setorService SetorServiceInterface,
	prazoMonitor *PrazoMonitor,
	rel relogio.Relogio,
	logger *zap.Logger,
) RelatorioServiceInterface {
	return &RelatorioService{
		protocoloRepo:  protocoloRepo,
		tipoDocService: tipoDocService,
		setorService:   setorService,
		prazoMonitor:   prazoMonitor,
		relogio:        rel,
		logger:         logger,
	}
}

func (s *RelatorioService) GerarItens(ctx context.Context, filter types.Filter) ([]entities.RelatorioItem, uint64, error) {
	agora := s.relogio.Agora()

	// O recorte "somente vencidos" é resolvido aqui para que o instante de
	// referência seja o mesmo usado na classificação das faixas.
	if vencidos, ok := filter.Filter["vencidos"].(bool); ok {
		delete(filter.Filter, "vencidos")
		if vencidos {
			filter.Filter["vencidos_em"] = agora
		}
	}

	protocolos, total, err := s.protocoloRepo.Listar(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	itens := make([]entities.RelatorioItem, 0, len(protocolos))
	for i := range protocolos {
		p := &protocolos[i]

		item := entities.RelatorioItem{
			Numero:        p.Numero,
			Origem:        p.Origem,
			Assunto:       p.Assunto,
			Status:        p.Status,
			Prioridade:    p.Prioridade,
			RemetenteNome: p.Remetente.Nome,
			CriadoEm:      p.CriadoEm,
			PrazoResposta: p.PrazoResposta,
			ConcluidoEm:   p.ConcluidoEm,
			FaixaPrazo:    s.prazoMonitor.Classificar(p.PrazoResposta, agora),
		}

		fim := agora
		if p.ConcluidoEm != nil {
			fim = *p.ConcluidoEm
		}
		item.DiasEmAberto = int(fim.Sub(p.CriadoEm) / (24 * time.Hour))

		// Falha de resolução de nome não derruba o relatório inteiro.
		if tipoDoc, err := s.tipoDocService.BuscarPorID(ctx, p.TipoDocumentoID); err == nil {
			item.TipoDocumento = tipoDoc.Nome
		} else {
			s.logger.Warn("tipo de documento não resolvido no relatório",
				zap.Int64("tipo_documento_id", p.TipoDocumentoID), zap.Error(err))
		}
		if setor, err := s.setorService.BuscarPorID(ctx, p.SetorAtualID); err == nil {
			item.SetorAtual = setor.Sigla
		}
		if setor, err := s.setorService.BuscarPorID(ctx, p.SetorOrigemID); err == nil {
			item.SetorOrigem = setor.Sigla
		}

		itens = append(itens, item)
	}
	return itens, total, nil
}
