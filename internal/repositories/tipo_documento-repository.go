package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

type TipoDocumentoRepositoryInterface interface {
	BuscarPorID(ctx context.Context, id int64) (*entities.TipoDocumento, error)
	BuscarPorNome(ctx context.Context, nome string) (*entities.TipoDocumento, error)
	Listar(ctx context.Context, somenteAtivos bool) ([]entities.TipoDocumento, error)
	Criar(ctx context.Context, t *entities.TipoDocumento) (int64, error)
	Atualizar(ctx context.Context, id int64, d dto.AtualizarTipoDocumentoDTO) error
}

type TipoDocumentoRepository struct {
	storage *pgxpool.Pool
}

func NewTipoDocumentoRepository(storage *pgxpool.Pool) TipoDocumentoRepositoryInterface {
	return &TipoDocumentoRepository{storage: storage}
}

func (r *TipoDocumentoRepository) BuscarPorID(ctx context.Context, id int64) (*entities.TipoDocumento, error) {
	var t entities.TipoDocumento
	err := r.storage.QueryRow(ctx,
		`SELECT id, nome, prazo_resposta_dias, exige_assinatura, ativo, criado_em
		 FROM tipos_documento WHERE id = $1`, id,
	).Scan(&t.ID, &t.Nome, &t.PrazoRespostaDias, &t.ExigeAssinatura, &t.Ativo, &t.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTipoDocumentoNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar o tipo de documento %d: %w", id, err)
	}
	return &t, nil
}

func (r *TipoDocumentoRepository) BuscarPorNome(ctx context.Context, nome string) (*entities.TipoDocumento, error) {
	var t entities.TipoDocumento
	err := r.storage.QueryRow(ctx,
		`SELECT id, nome, prazo_resposta_dias, exige_assinatura, ativo, criado_em
		 FROM tipos_documento WHERE nome = $1`, nome,
	).Scan(&t.ID, &t.Nome, &t.PrazoRespostaDias, &t.ExigeAssinatura, &t.Ativo, &t.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTipoDocumentoNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar o tipo de documento %q: %w", nome, err)
	}
	return &t, nil
}

func (r *TipoDocumentoRepository) Listar(ctx context.Context, somenteAtivos bool) ([]entities.TipoDocumento, error) {
	query := `SELECT id, nome, prazo_resposta_dias, exige_assinatura, ativo, criado_em
		FROM tipos_documento`
	if somenteAtivos {
		query += ` WHERE ativo = TRUE`
	}
	query += ` ORDER BY nome ASC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar os tipos de documento: %w", err)
	}
	defer rows.Close()

	tipos := make([]entities.TipoDocumento, 0)
	for rows.Next() {
		var t entities.TipoDocumento
		if err := rows.Scan(&t.ID, &t.Nome, &t.PrazoRespostaDias, &t.ExigeAssinatura, &t.Ativo, &t.CriadoEm); err != nil {
			return nil, fmt.Errorf("erro ao ler o tipo de documento: %w", err)
		}
		tipos = append(tipos, t)
	}
	return tipos, rows.Err()
}

func (r *TipoDocumentoRepository) Criar(ctx context.Context, t *entities.TipoDocumento) (int64, error) {
	var id int64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO tipos_documento (nome, prazo_resposta_dias, exige_assinatura, ativo, criado_em)
		 VALUES ($1, $2, $3, TRUE, NOW()) RETURNING id`,
		t.Nome, t.PrazoRespostaDias, t.ExigeAssinatura,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar o tipo de documento: %w", err)
	}
	return id, nil
}

func (r *TipoDocumentoRepository) Atualizar(ctx context.Context, id int64, d dto.AtualizarTipoDocumentoDTO) error {
	query := `UPDATE tipos_documento SET
			nome = COALESCE($1, nome),
			prazo_resposta_dias = COALESCE($2, prazo_resposta_dias),
			exige_assinatura = COALESCE($3, exige_assinatura),
			ativo = COALESCE($4, ativo)
		WHERE id = $5`

	tag, err := r.storage.Exec(ctx, query,
		d.Nome.Ptr(), d.PrazoRespostaDias.Ptr(), d.ExigeAssinatura.Ptr(), d.Ativo.Ptr(), id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar o tipo de documento %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTipoDocumentoNaoEncontrado
	}
	return nil
}
