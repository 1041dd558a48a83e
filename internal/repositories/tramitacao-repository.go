package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

const colunasTramitacao = `
	id, numero_protocolo, sequencia, acao, setor_origem_id, setor_destino_id,
	motivo, observacoes, ator_id, enviada_em, recebida_em, recebida_por,
	atrasada, hash_integridade`

// TramitacaoRepositoryInterface é o log append-only do histórico. Eventos
// nunca são alterados nem removidos; o único UPDATE permitido é o
// preenchimento único dos campos de recebimento.
type TramitacaoRepositoryInterface interface {
	CriarInTx(ctx context.Context, tx pgx.Tx, t *entities.Tramitacao) (int64, error)
	ListarPorProtocolo(ctx context.Context, numero string) ([]entities.Tramitacao, error)
	BuscarPorID(ctx context.Context, id int64) (*entities.Tramitacao, error)
	// RegistrarRecebimento preenche recebida_em/recebida_por apenas se ainda
	// vazios. Devolve o evento atualizado e se esta chamada efetivou o
	// registro (false = já estava recebido, no-op).
	RegistrarRecebimento(ctx context.Context, id int64, recebidaEm time.Time, recebidaPor int64) (*entities.Tramitacao, bool, error)
}

type TramitacaoRepository struct {
	storage *pgxpool.Pool
}

func NewTramitacaoRepository(storage *pgxpool.Pool) TramitacaoRepositoryInterface {
	return &TramitacaoRepository{storage: storage}
}

func (r *TramitacaoRepository) CriarInTx(ctx context.Context, tx pgx.Tx, t *entities.Tramitacao) (int64, error) {
	query := `
		INSERT INTO tramitacoes (
			numero_protocolo, sequencia, acao, setor_origem_id, setor_destino_id,
			motivo, observacoes, ator_id, enviada_em, atrasada, hash_integridade
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		t.NumeroProtocolo, t.Sequencia, t.Acao, t.SetorOrigemID, t.SetorDestinoID,
		t.Motivo, t.Observacoes, t.AtorID, t.EnviadaEm, t.Atrasada, t.HashIntegridade,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar a tramitação do protocolo %s: %w", t.NumeroProtocolo, err)
	}
	return id, nil
}

func (r *TramitacaoRepository) ListarPorProtocolo(ctx context.Context, numero string) ([]entities.Tramitacao, error) {
	query := `SELECT ` + colunasTramitacao + `
		FROM tramitacoes
		WHERE numero_protocolo = $1
		ORDER BY sequencia ASC`

	rows, err := r.storage.Query(ctx, query, numero)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar o histórico do protocolo %s: %w", numero, err)
	}
	defer rows.Close()

	eventos := make([]entities.Tramitacao, 0)
	for rows.Next() {
		t, err := scanTramitacao(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler evento do histórico: %w", err)
		}
		eventos = append(eventos, *t)
	}
	return eventos, rows.Err()
}

func (r *TramitacaoRepository) BuscarPorID(ctx context.Context, id int64) (*entities.Tramitacao, error) {
	query := `SELECT ` + colunasTramitacao + ` FROM tramitacoes WHERE id = $1`

	t, err := scanTramitacao(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar a tramitação %d: %w", id, err)
	}
	return t, nil
}

func (r *TramitacaoRepository) RegistrarRecebimento(ctx context.Context, id int64, recebidaEm time.Time, recebidaPor int64) (*entities.Tramitacao, bool, error) {
	tag, err := r.storage.Exec(ctx,
		`UPDATE tramitacoes SET recebida_em = $1, recebida_por = $2
		 WHERE id = $3 AND recebida_em IS NULL`,
		recebidaEm, recebidaPor, id,
	)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao registrar o recebimento da tramitação %d: %w", id, err)
	}

	evento, err := r.BuscarPorID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return evento, tag.RowsAffected() > 0, nil
}

func scanTramitacao(row pgx.Row) (*entities.Tramitacao, error) {
	var t entities.Tramitacao
	var setorOrigem, setorDestino, recebidaPor sql.NullInt64
	var recebidaEm sql.NullTime
	var motivo, observacoes sql.NullString

	err := row.Scan(
		&t.ID, &t.NumeroProtocolo, &t.Sequencia, &t.Acao, &setorOrigem, &setorDestino,
		&motivo, &observacoes, &t.AtorID, &t.EnviadaEm, &recebidaEm, &recebidaPor,
		&t.Atrasada, &t.HashIntegridade,
	)
	if err != nil {
		return nil, err
	}

	t.Motivo = motivo.String
	t.Observacoes = observacoes.String
	if setorOrigem.Valid {
		t.SetorOrigemID = &setorOrigem.Int64
	}
	if setorDestino.Valid {
		t.SetorDestinoID = &setorDestino.Int64
	}
	if recebidaEm.Valid {
		tm := recebidaEm.Time
		t.RecebidaEm = &tm
	}
	if recebidaPor.Valid {
		t.RecebidaPor = &recebidaPor.Int64
	}
	return &t, nil
}
