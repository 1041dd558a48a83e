package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

type SetorRepositoryInterface interface {
	BuscarPorID(ctx context.Context, id int64) (*entities.Setor, error)
	BuscarPorSigla(ctx context.Context, sigla string) (*entities.Setor, error)
	Listar(ctx context.Context) ([]entities.Setor, error)
	Criar(ctx context.Context, s *entities.Setor) (int64, error)
	Atualizar(ctx context.Context, id int64, d dto.AtualizarSetorDTO) error
}

type SetorRepository struct {
	storage *pgxpool.Pool
}

func NewSetorRepository(storage *pgxpool.Pool) SetorRepositoryInterface {
	return &SetorRepository{storage: storage}
}

const colunasSetor = `id, nome, sigla, pode_protocolar, pode_tramitar, responsavel_id, email_contato, criado_em`

func (r *SetorRepository) BuscarPorID(ctx context.Context, id int64) (*entities.Setor, error) {
	s, err := scanSetor(r.storage.QueryRow(ctx,
		`SELECT `+colunasSetor+` FROM setores WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSetorNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar o setor %d: %w", id, err)
	}
	return s, nil
}

func (r *SetorRepository) BuscarPorSigla(ctx context.Context, sigla string) (*entities.Setor, error) {
	s, err := scanSetor(r.storage.QueryRow(ctx,
		`SELECT `+colunasSetor+` FROM setores WHERE sigla = $1`, sigla))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSetorNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar o setor %s: %w", sigla, err)
	}
	return s, nil
}

func (r *SetorRepository) Listar(ctx context.Context) ([]entities.Setor, error) {
	rows, err := r.storage.Query(ctx, `SELECT `+colunasSetor+` FROM setores ORDER BY sigla ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar os setores: %w", err)
	}
	defer rows.Close()

	setores := make([]entities.Setor, 0)
	for rows.Next() {
		s, err := scanSetor(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler o setor: %w", err)
		}
		setores = append(setores, *s)
	}
	return setores, rows.Err()
}

func (r *SetorRepository) Criar(ctx context.Context, s *entities.Setor) (int64, error) {
	var id int64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO setores (nome, sigla, pode_protocolar, pode_tramitar, responsavel_id, email_contato, criado_em)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id`,
		s.Nome, s.Sigla, s.PodeProtocolar, s.PodeTramitar, s.ResponsavelID, s.EmailContato,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar o setor %s: %w", s.Sigla, err)
	}
	return id, nil
}

func (r *SetorRepository) Atualizar(ctx context.Context, id int64, d dto.AtualizarSetorDTO) error {
	query := `UPDATE setores SET
			nome = COALESCE($1, nome),
			pode_protocolar = COALESCE($2, pode_protocolar),
			pode_tramitar = COALESCE($3, pode_tramitar),
			responsavel_id = COALESCE($4, responsavel_id),
			email_contato = COALESCE($5, email_contato)
		WHERE id = $6`

	tag, err := r.storage.Exec(ctx, query,
		d.Nome.Ptr(), d.PodeProtocolar.Ptr(), d.PodeTramitar.Ptr(), d.ResponsavelID.Ptr(), d.EmailContato.Ptr(), id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar o setor %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSetorNaoEncontrado
	}
	return nil
}

func scanSetor(row pgx.Row) (*entities.Setor, error) {
	var s entities.Setor
	var responsavelID sql.NullInt64
	var email sql.NullString

	err := row.Scan(&s.ID, &s.Nome, &s.Sigla, &s.PodeProtocolar, &s.PodeTramitar,
		&responsavelID, &email, &s.CriadoEm)
	if err != nil {
		return nil, err
	}
	if responsavelID.Valid {
		s.ResponsavelID = &responsavelID.Int64
	}
	s.EmailContato = email.String
	return &s, nil
}
