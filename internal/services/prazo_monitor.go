package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/internal/repositories"
	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	"github.com/Stevensbe/system-procon-sub001/pkg/notifier"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
)

// PrazoMonitor varre periodicamente os protocolos em aberto e notifica o
// setor responsável quando o prazo de resposta entra numa faixa de atenção.
// Cada protocolo gera no máximo uma notificação por faixa por dia; a
// deduplicação é feita no banco, então múltiplas instâncias do serviço podem
// varrer ao mesmo tempo sem duplicar avisos.
type PrazoMonitor struct {
	protocoloRepo   repositories.ProtocoloRepositoryInterface
	notificacaoRepo repositories.NotificacaoPrazoRepositoryInterface
	setorService    SetorServiceInterface
	notificador     notifier.Notifier
	relogio         relogio.Relogio
	cfg             config.PrazoConfig
	logger          *zap.Logger
	envios          sync.WaitGroup
}

func NewPrazoMonitor(
	protocoloRepo repositories.ProtocoloRepositoryInterface,
	notificacaoRepo repositories.NotificacaoPrazoRepositoryInterface,
	setorService SetorServiceInterface,
	notificador notifier.Notifier,
	rel relogio.Relogio,
	cfg config.PrazoConfig,
	logger *zap.Logger,
) *PrazoMonitor {
	return &PrazoMonitor{
		protocoloRepo:   protocoloRepo,
		notificacaoRepo: notificacaoRepo,
		setorService:    setorService,
		notificador:     notificador,
		relogio:         rel,
		cfg:             cfg,
		logger:          logger,
	}
}

// Classificar enquadra um prazo numa faixa de atenção relativa ao instante
// informado. Dias corridos, sem desconto de fins de semana ou feriados.
func (m *PrazoMonitor) Classificar(prazo, agora time.Time) string {
	if agora.After(prazo) {
		return constants.FaixaVencido
	}
	restante := prazo.Sub(agora)
	if restante <= time.Duration(m.cfg.DiasUrgente)*24*time.Hour {
		return constants.FaixaUrgente
	}
	if restante <= time.Duration(m.cfg.DiasAlerta)*24*time.Hour {
		return constants.FaixaAlerta
	}
	return constants.FaixaNormal
}

// Run executa a varredura em intervalos fixos até o contexto ser cancelado.
// A primeira varredura acontece imediatamente na subida do serviço.
func (m *PrazoMonitor) Run(ctx context.Context) {
	m.logger.Info("monitor de prazos iniciado",
		zap.Duration("intervalo", m.cfg.IntervaloVarredura))

	if err := m.Varrer(ctx); err != nil {
		m.logger.Error("varredura de prazos falhou", zap.Error(err))
	}

	ticker := time.NewTicker(m.cfg.IntervaloVarredura)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.AguardarEnvios()
			m.logger.Info("monitor de prazos encerrado")
			return
		case <-ticker.C:
			if err := m.Varrer(ctx); err != nil {
				m.logger.Error("varredura de prazos falhou", zap.Error(err))
			}
		}
	}
}

// Varrer faz uma passada única sobre os protocolos não terminais. Falha de
// notificação de um protocolo não interrompe o restante da varredura.
func (m *PrazoMonitor) Varrer(ctx context.Context) error {
	protocolos, err := m.protocoloRepo.ListarNaoTerminais(ctx)
	if err != nil {
		return err
	}

	agora := m.relogio.Agora()
	dia := agora.UTC().Truncate(24 * time.Hour)
	notificados := 0

	for i := range protocolos {
		p := &protocolos[i]

		faixa := m.Classificar(p.PrazoResposta, agora)
		if faixa == constants.FaixaNormal {
			continue
		}

		inedita, err := m.notificacaoRepo.RegistrarSeAusente(ctx, p.Numero, faixa, dia)
		if err != nil {
			m.logger.Error("falha ao registrar a notificação de prazo",
				zap.String("numero", p.Numero), zap.Error(err))
			continue
		}
		if !inedita {
			continue
		}

		// O aviso já está contabilizado no banco; a entrega sai do laço da
		// varredura para que retentativas de envio não a atrasem.
		protocolo := *p
		m.envios.Add(1)
		go func() {
			defer m.envios.Done()
			if err := m.notificar(ctx, &protocolo, faixa); err != nil {
				m.logger.Error("falha ao enviar a notificação de prazo",
					zap.String("numero", protocolo.Numero),
					zap.String("faixa", faixa),
					zap.Error(err))
			}
		}()
		notificados++
	}

	m.logger.Info("varredura de prazos concluída",
		zap.Int("examinados", len(protocolos)),
		zap.Int("notificados", notificados))
	return nil
}

// AguardarEnvios bloqueia até as entregas já despachadas terminarem.
func (m *PrazoMonitor) AguardarEnvios() {
	m.envios.Wait()
}

func (m *PrazoMonitor) notificar(ctx context.Context, p *entities.Protocolo, faixa string) error {
	setor, err := m.setorService.BuscarPorID(ctx, p.SetorAtualID)
	if err != nil {
		return err
	}

	var assunto string
	switch faixa {
	case constants.FaixaVencido:
		assunto = fmt.Sprintf("Protocolo %s com prazo VENCIDO", p.Numero)
	case constants.FaixaUrgente:
		assunto = fmt.Sprintf("Protocolo %s vence em menos de %d dia(s)", p.Numero, m.cfg.DiasUrgente)
	default:
		assunto = fmt.Sprintf("Protocolo %s vence em menos de %d dia(s)", p.Numero, m.cfg.DiasAlerta)
	}

	corpo := fmt.Sprintf(
		"Protocolo: %s\nAssunto: %s\nSetor atual: %s\nPrazo de resposta: %s\nFaixa: %s",
		p.Numero, p.Assunto, setor.Sigla,
		p.PrazoResposta.Format("02/01/2006 15:04"), faixa,
	)
	return m.notificador.Send(ctx, setor.EmailContato, assunto, corpo)
}
