package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

type AnexoRepositoryInterface interface {
	Criar(ctx context.Context, a *entities.Anexo) (int64, error)
	ListarPorProtocolo(ctx context.Context, numero string) ([]entities.Anexo, error)
	BuscarPorID(ctx context.Context, id int64) (*entities.Anexo, error)
}

type AnexoRepository struct {
	storage *pgxpool.Pool
}

func NewAnexoRepository(storage *pgxpool.Pool) AnexoRepositoryInterface {
	return &AnexoRepository{storage: storage}
}

const colunasAnexo = `id, numero_protocolo, nome_arquivo, chave_blob, mime_type,
	tamanho_bytes, sha256, enviado_por, enviado_em, descricao`

func (r *AnexoRepository) Criar(ctx context.Context, a *entities.Anexo) (int64, error) {
	var id int64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO anexos (numero_protocolo, nome_arquivo, chave_blob, mime_type,
			tamanho_bytes, sha256, enviado_por, enviado_em, descricao)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		a.NumeroProtocolo, a.NomeArquivo, a.ChaveBlob, a.MimeType,
		a.TamanhoBytes, a.SHA256, a.EnviadoPor, a.EnviadoEm, a.Descricao,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar o anexo do protocolo %s: %w", a.NumeroProtocolo, err)
	}
	return id, nil
}

func (r *AnexoRepository) ListarPorProtocolo(ctx context.Context, numero string) ([]entities.Anexo, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT `+colunasAnexo+` FROM anexos WHERE numero_protocolo = $1 ORDER BY enviado_em ASC`,
		numero)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar os anexos do protocolo %s: %w", numero, err)
	}
	defer rows.Close()

	anexos := make([]entities.Anexo, 0)
	for rows.Next() {
		a, err := scanAnexo(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler o anexo: %w", err)
		}
		anexos = append(anexos, *a)
	}
	return anexos, rows.Err()
}

func (r *AnexoRepository) BuscarPorID(ctx context.Context, id int64) (*entities.Anexo, error) {
	a, err := scanAnexo(r.storage.QueryRow(ctx,
		`SELECT `+colunasAnexo+` FROM anexos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar o anexo %d: %w", id, err)
	}
	return a, nil
}

func scanAnexo(row pgx.Row) (*entities.Anexo, error) {
	var a entities.Anexo
	var descricao sql.NullString
	err := row.Scan(&a.ID, &a.NumeroProtocolo, &a.NomeArquivo, &a.ChaveBlob, &a.MimeType,
		&a.TamanhoBytes, &a.SHA256, &a.EnviadoPor, &a.EnviadoEm, &descricao)
	if err != nil {
		return nil, err
	}
	a.Descricao = descricao.String
	return &a, nil
}
