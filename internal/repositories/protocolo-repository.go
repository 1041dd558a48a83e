package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/types"
)

const colunasProtocolo = `
	id, numero, internal_id, tipo_documento_id, origem, assunto, descricao,
	status, prioridade,
	remetente_nome, remetente_cpf_cnpj, remetente_email, remetente_telefone, remetente_endereco,
	setor_atual_id, setor_origem_id, responsavel_id, prazo_resposta,
	criado_em, concluido_em, confidencial, entidade_tipo, entidade_id, versao`

type ProtocoloRepositoryInterface interface {
	CriarInTx(ctx context.Context, tx pgx.Tx, p *entities.Protocolo) (int64, error)
	BuscarPorNumero(ctx context.Context, numero string) (*entities.Protocolo, error)
	AtualizarEstadoInTx(ctx context.Context, tx pgx.Tx, p *entities.Protocolo, versaoEsperada int64) error
	Listar(ctx context.Context, filter types.Filter) ([]entities.Protocolo, uint64, error)
	ListarPendentesPorSetor(ctx context.Context, setorID int64, limit, offset uint64) ([]entities.Protocolo, uint64, error)
	ListarVencidos(ctx context.Context, agora time.Time, limit, offset uint64) ([]entities.Protocolo, uint64, error)
	ListarNaoTerminais(ctx context.Context) ([]entities.Protocolo, error)
}

type ProtocoloRepository struct {
	storage *pgxpool.Pool
}

func NewProtocoloRepository(storage *pgxpool.Pool) ProtocoloRepositoryInterface {
	return &ProtocoloRepository{storage: storage}
}

func (r *ProtocoloRepository) CriarInTx(ctx context.Context, tx pgx.Tx, p *entities.Protocolo) (int64, error) {
	query := `
		INSERT INTO protocolos (
			numero, internal_id, tipo_documento_id, origem, assunto, descricao,
			status, prioridade,
			remetente_nome, remetente_cpf_cnpj, remetente_email, remetente_telefone, remetente_endereco,
			setor_atual_id, setor_origem_id, responsavel_id, prazo_resposta,
			criado_em, confidencial, entidade_tipo, entidade_id, versao
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22
		) RETURNING id`

	var entidadeTipo, entidadeID *string
	if p.Relacionada != nil {
		entidadeTipo = &p.Relacionada.Tipo
		entidadeID = &p.Relacionada.ID
	}

	var id int64
	err := tx.QueryRow(ctx, query,
		p.Numero, p.InternalID, p.TipoDocumentoID, p.Origem, p.Assunto, p.Descricao,
		p.Status, p.Prioridade,
		p.Remetente.Nome, p.Remetente.CPFCNPJ, p.Remetente.Email, p.Remetente.Telefone, p.Remetente.Endereco,
		p.SetorAtualID, p.SetorOrigemID, p.ResponsavelID, p.PrazoResposta,
		p.CriadoEm, p.Confidencial, entidadeTipo, entidadeID, p.Versao,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir o protocolo %s: %w", p.Numero, err)
	}
	return id, nil
}

func (r *ProtocoloRepository) BuscarPorNumero(ctx context.Context, numero string) (*entities.Protocolo, error) {
	query := `SELECT ` + colunasProtocolo + ` FROM protocolos WHERE numero = $1`

	p, err := scanProtocolo(r.storage.QueryRow(ctx, query, numero))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProtocoloNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar o protocolo %s: %w", numero, err)
	}
	return p, nil
}

// AtualizarEstadoInTx grava o novo estado do protocolo condicionado à versão
// lida pelo chamador. Zero linhas afetadas significa que outro escritor
// chegou primeiro: a operação falha com ErrConflitoConcorrencia e nada da
// transação é aplicado.
func (r *ProtocoloRepository) AtualizarEstadoInTx(ctx context.Context, tx pgx.Tx, p *entities.Protocolo, versaoEsperada int64) error {
	query := `
		UPDATE protocolos SET
			status = $1,
			prioridade = $2,
			setor_atual_id = $3,
			responsavel_id = $4,
			prazo_resposta = $5,
			concluido_em = $6,
			versao = versao + 1
		WHERE numero = $7 AND versao = $8`

	tag, err := tx.Exec(ctx, query,
		p.Status, p.Prioridade, p.SetorAtualID, p.ResponsavelID,
		p.PrazoResposta, p.ConcluidoEm, p.Numero, versaoEsperada,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar o protocolo %s: %w", p.Numero, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflitoConcorrencia
	}
	p.Versao = versaoEsperada + 1
	return nil
}

func (r *ProtocoloRepository) Listar(ctx context.Context, filter types.Filter) ([]entities.Protocolo, uint64, error) {
	builder := sq.Select(colunasProtocolo).
		From("protocolos").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From("protocolos").
		PlaceholderFormat(sq.Dollar)

	permitidos := map[string]string{
		"status":            "status",
		"origem":            "origem",
		"prioridade":        "prioridade",
		"setor_atual_id":    "setor_atual_id",
		"tipo_documento_id": "tipo_documento_id",
		"confidencial":      "confidencial",
	}
	for chave, valor := range filter.Filter {
		if col, ok := permitidos[chave]; ok {
			builder = builder.Where(sq.Eq{col: valor})
			countBuilder = countBuilder.Where(sq.Eq{col: valor})
		}
	}
	// Recorte por período de criação, usado principalmente pelos relatórios.
	if valor, ok := filter.Filter["criado_de"]; ok {
		builder = builder.Where(sq.GtOrEq{"criado_em": valor})
		countBuilder = countBuilder.Where(sq.GtOrEq{"criado_em": valor})
	}
	if valor, ok := filter.Filter["criado_ate"]; ok {
		builder = builder.Where(sq.LtOrEq{"criado_em": valor})
		countBuilder = countBuilder.Where(sq.LtOrEq{"criado_em": valor})
	}
	// Somente protocolos em aberto com o prazo estourado no instante informado.
	if valor, ok := filter.Filter["vencidos_em"]; ok {
		cond := sq.And{
			sq.Lt{"prazo_resposta": valor},
			sq.NotEq{"status": constants.StatusTerminais},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.Expr("numero ILIKE ?", like),
			sq.Expr("assunto ILIKE ?", like),
			sq.Expr("remetente_nome ILIKE ?", like),
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	ordenavel := map[string]bool{"criado_em": true, "prazo_resposta": true, "numero": true, "prioridade": true}
	ordenado := false
	for col, dir := range filter.Sort {
		if ordenavel[col] {
			builder = builder.OrderBy(col + " " + dir)
			ordenado = true
		}
	}
	if !ordenado {
		builder = builder.OrderBy("criado_em DESC")
	}

	builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a contagem de protocolos: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar protocolos: %w", err)
	}

	querySQL, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a listagem de protocolos: %w", err)
	}
	lista, err := r.consultar(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return lista, total, nil
}

func (r *ProtocoloRepository) ListarPendentesPorSetor(ctx context.Context, setorID int64, limit, offset uint64) ([]entities.Protocolo, uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM protocolos WHERE setor_atual_id = $1 AND status NOT IN ($2, $3, $4)`,
		setorID, constants.StatusDecidido, constants.StatusArquivado, constants.StatusCancelado,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar pendências do setor: %w", err)
	}

	query := `SELECT ` + colunasProtocolo + `
		FROM protocolos
		WHERE setor_atual_id = $1 AND status NOT IN ($2, $3, $4)
		ORDER BY prazo_resposta ASC
		LIMIT $5 OFFSET $6`
	lista, err := r.consultar(ctx, query, setorID,
		constants.StatusDecidido, constants.StatusArquivado, constants.StatusCancelado, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return lista, total, nil
}

func (r *ProtocoloRepository) ListarVencidos(ctx context.Context, agora time.Time, limit, offset uint64) ([]entities.Protocolo, uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM protocolos WHERE prazo_resposta < $1 AND status NOT IN ($2, $3, $4)`,
		agora, constants.StatusDecidido, constants.StatusArquivado, constants.StatusCancelado,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar protocolos vencidos: %w", err)
	}

	query := `SELECT ` + colunasProtocolo + `
		FROM protocolos
		WHERE prazo_resposta < $1 AND status NOT IN ($2, $3, $4)
		ORDER BY prazo_resposta ASC
		LIMIT $5 OFFSET $6`
	lista, err := r.consultar(ctx, query, agora,
		constants.StatusDecidido, constants.StatusArquivado, constants.StatusCancelado, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return lista, total, nil
}

// ListarNaoTerminais alimenta a varredura do monitor de prazos.
func (r *ProtocoloRepository) ListarNaoTerminais(ctx context.Context) ([]entities.Protocolo, error) {
	query := `SELECT ` + colunasProtocolo + `
		FROM protocolos
		WHERE status NOT IN ($1, $2, $3)
		ORDER BY prazo_resposta ASC`
	return r.consultar(ctx, query,
		constants.StatusDecidido, constants.StatusArquivado, constants.StatusCancelado)
}

func (r *ProtocoloRepository) consultar(ctx context.Context, query string, args ...interface{}) ([]entities.Protocolo, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar protocolos: %w", err)
	}
	defer rows.Close()

	protocolos := make([]entities.Protocolo, 0)
	for rows.Next() {
		p, err := scanProtocolo(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler o protocolo da listagem: %w", err)
		}
		protocolos = append(protocolos, *p)
	}
	return protocolos, rows.Err()
}

func scanProtocolo(row pgx.Row) (*entities.Protocolo, error) {
	var p entities.Protocolo
	var descricao, entidadeTipo, entidadeID sql.NullString
	var concluidoEm sql.NullTime
	var responsavelID sql.NullInt64

	err := row.Scan(
		&p.ID, &p.Numero, &p.InternalID, &p.TipoDocumentoID, &p.Origem, &p.Assunto, &descricao,
		&p.Status, &p.Prioridade,
		&p.Remetente.Nome, &p.Remetente.CPFCNPJ, &p.Remetente.Email, &p.Remetente.Telefone, &p.Remetente.Endereco,
		&p.SetorAtualID, &p.SetorOrigemID, &responsavelID, &p.PrazoResposta,
		&p.CriadoEm, &concluidoEm, &p.Confidencial, &entidadeTipo, &entidadeID, &p.Versao,
	)
	if err != nil {
		return nil, err
	}

	p.Descricao = descricao.String
	if responsavelID.Valid {
		p.ResponsavelID = &responsavelID.Int64
	}
	if concluidoEm.Valid {
		t := concluidoEm.Time
		p.ConcluidoEm = &t
	}
	if entidadeTipo.Valid && entidadeID.Valid {
		p.Relacionada = &entities.EntidadeRelacionada{Tipo: entidadeTipo.String, ID: entidadeID.String}
	}
	return &p, nil
}
