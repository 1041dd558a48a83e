package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Notifier é o contrato com o mecanismo externo de entrega (e-mail/SMS).
// A entrega em si fica fora deste serviço; aqui só existe a interface.
type Notifier interface {
	Send(ctx context.Context, destinatario, assunto, corpo string) error
}

// logNotifier escreve a notificação no log em vez de entregá-la.
// Serve para desenvolvimento e testes, no lugar do gateway real.
type logNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Send(_ context.Context, destinatario, assunto, corpo string) error {
	n.logger.Info("notificação emitida",
		zap.String("destinatario", destinatario),
		zap.String("assunto", assunto),
		zap.String("corpo", corpo),
	)
	return nil
}

// ComReenvio decora um Notifier com tentativas limitadas e backoff
// exponencial. Esgotadas as tentativas, o erro final é registrado e
// devolvido; quem chama decide se trata como fatal (o monitor de prazos
// não trata).
type ComReenvio struct {
	interno       Notifier
	maxTentativas int
	esperaInicial time.Duration
	logger        *zap.Logger
}

func NewComReenvio(interno Notifier, maxTentativas int, esperaInicial time.Duration, logger *zap.Logger) *ComReenvio {
	if maxTentativas < 1 {
		maxTentativas = 1
	}
	return &ComReenvio{
		interno:       interno,
		maxTentativas: maxTentativas,
		esperaInicial: esperaInicial,
		logger:        logger,
	}
}

func (r *ComReenvio) Send(ctx context.Context, destinatario, assunto, corpo string) error {
	espera := r.esperaInicial
	var err error
	for tentativa := 1; tentativa <= r.maxTentativas; tentativa++ {
		err = r.interno.Send(ctx, destinatario, assunto, corpo)
		if err == nil {
			return nil
		}
		if tentativa == r.maxTentativas {
			break
		}
		r.logger.Warn("falha ao enviar notificação, tentando novamente",
			zap.Int("tentativa", tentativa),
			zap.Duration("espera", espera),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(espera):
		}
		espera *= 2
	}

	r.logger.Error("notificação descartada após esgotar as tentativas",
		zap.String("destinatario", destinatario),
		zap.String("assunto", assunto),
		zap.Error(err),
	)
	return err
}
