package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// NumeradorRepositoryInterface controla o contador diário de protocolos.
// O incremento é um upsert atômico no banco, nunca leitura-depois-escrita:
// e roda na mesma transação do insert do protocolo, de modo que a numeração
// permanece sem colisões com múltiplos criadores concorrentes e múltiplas
// instâncias do serviço.
type NumeradorRepositoryInterface interface {
	ProximaSequenciaDoDia(ctx context.Context, tx pgx.Tx, dia time.Time) (int64, error)
}

type NumeradorRepository struct{}

func NewNumeradorRepository() NumeradorRepositoryInterface {
	return &NumeradorRepository{}
}

func (r *NumeradorRepository) ProximaSequenciaDoDia(ctx context.Context, tx pgx.Tx, dia time.Time) (int64, error) {
	query := `
		INSERT INTO protocolo_numeradores (dia, contador)
		VALUES ($1, 1)
		ON CONFLICT (dia)
		DO UPDATE SET contador = protocolo_numeradores.contador + 1
		RETURNING contador`

	var contador int64
	if err := tx.QueryRow(ctx, query, dia.Format("2006-01-02")).Scan(&contador); err != nil {
		return 0, fmt.Errorf("erro ao incrementar o numerador do dia: %w", err)
	}
	return contador, nil
}
