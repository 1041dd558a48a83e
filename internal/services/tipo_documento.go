package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/internal/repositories"
)

// TipoDocumentoServiceInterface é o registro de tipos de documento que o
// motor consulta na criação de protocolos (prazo padrão e exigência de
// assinatura). Leituras passam por cache-aside no Redis.
type TipoDocumentoServiceInterface interface {
	BuscarPorID(ctx context.Context, id int64) (*entities.TipoDocumento, error)
	BuscarPorNome(ctx context.Context, nome string) (*entities.TipoDocumento, error)
	Listar(ctx context.Context, somenteAtivos bool) ([]entities.TipoDocumento, error)
	Criar(ctx context.Context, d dto.CriarTipoDocumentoDTO) (*entities.TipoDocumento, error)
	Atualizar(ctx context.Context, id int64, d dto.AtualizarTipoDocumentoDTO) error
}

type TipoDocumentoService struct {
	repo     repositories.TipoDocumentoRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewTipoDocumentoService(
	repo repositories.TipoDocumentoRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) TipoDocumentoServiceInterface {
	return &TipoDocumentoService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func chaveCacheTipoDocumento(id int64) string {
	return fmt.Sprintf("tipo_documento:%d", id)
}

func (s *TipoDocumentoService) BuscarPorID(ctx context.Context, id int64) (*entities.TipoDocumento, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, chaveCacheTipoDocumento(id)); err == nil && raw != "" {
			var t entities.TipoDocumento
			if err := json.Unmarshal([]byte(raw), &t); err == nil {
				return &t, nil
			}
		}
	}

	t, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(t); err == nil {
			if err := s.cache.Set(ctx, chaveCacheTipoDocumento(id), string(raw), s.cacheTTL); err != nil {
				s.logger.Warn("falha ao popular o cache de tipo de documento", zap.Error(err))
			}
		}
	}
	return t, nil
}

func (s *TipoDocumentoService) BuscarPorNome(ctx context.Context, nome string) (*entities.TipoDocumento, error) {
	return s.repo.BuscarPorNome(ctx, nome)
}

func (s *TipoDocumentoService) Listar(ctx context.Context, somenteAtivos bool) ([]entities.TipoDocumento, error) {
	return s.repo.Listar(ctx, somenteAtivos)
}

func (s *TipoDocumentoService) Criar(ctx context.Context, d dto.CriarTipoDocumentoDTO) (*entities.TipoDocumento, error) {
	t := &entities.TipoDocumento{
		Nome:              d.Nome,
		PrazoRespostaDias: d.PrazoRespostaDias,
		ExigeAssinatura:   d.ExigeAssinatura,
		Ativo:             true,
	}
	id, err := s.repo.Criar(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return t, nil
}

func (s *TipoDocumentoService) Atualizar(ctx context.Context, id int64, d dto.AtualizarTipoDocumentoDTO) error {
	if err := s.repo.Atualizar(ctx, id, d); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, chaveCacheTipoDocumento(id)); err != nil {
			s.logger.Warn("falha ao invalidar o cache de tipo de documento", zap.Error(err))
		}
	}
	return nil
}
