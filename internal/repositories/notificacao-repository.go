package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificacaoPrazoRepositoryInterface é a contabilidade do monitor de prazos.
// RegistrarSeAusente insere a tupla (protocolo, faixa, dia) de forma
// idempotente: só quem efetivou o insert dispara a notificação, o que
// garante no máximo um envio por protocolo por faixa por dia mesmo com
// varreduras concorrentes.
type NotificacaoPrazoRepositoryInterface interface {
	RegistrarSeAusente(ctx context.Context, numeroProtocolo, faixa string, dia time.Time) (bool, error)
}

type NotificacaoPrazoRepository struct {
	storage *pgxpool.Pool
}

func NewNotificacaoPrazoRepository(storage *pgxpool.Pool) NotificacaoPrazoRepositoryInterface {
	return &NotificacaoPrazoRepository{storage: storage}
}

func (r *NotificacaoPrazoRepository) RegistrarSeAusente(ctx context.Context, numeroProtocolo, faixa string, dia time.Time) (bool, error) {
	tag, err := r.storage.Exec(ctx,
		`INSERT INTO notificacoes_prazo (numero_protocolo, faixa, dia, criada_em)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (numero_protocolo, faixa, dia) DO NOTHING`,
		numeroProtocolo, faixa, dia.Format("2006-01-02"),
	)
	if err != nil {
		return false, fmt.Errorf("erro ao registrar a notificação de prazo: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
