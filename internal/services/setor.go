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

// SetorServiceInterface é o diretório de setores consultado pelo motor a
// cada encaminhamento: quem pode tramitar e quem responde pelo setor.
type SetorServiceInterface interface {
	BuscarPorID(ctx context.Context, id int64) (*entities.Setor, error)
	BuscarPorSigla(ctx context.Context, sigla string) (*entities.Setor, error)
	Listar(ctx context.Context) ([]entities.Setor, error)
	Criar(ctx context.Context, d dto.CriarSetorDTO) (*entities.Setor, error)
	Atualizar(ctx context.Context, id int64, d dto.AtualizarSetorDTO) error
}

type SetorService struct {
	repo     repositories.SetorRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewSetorService(
	repo repositories.SetorRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) SetorServiceInterface {
	return &SetorService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func chaveCacheSetor(id int64) string {
	return fmt.Sprintf("setor:%d", id)
}

func (s *SetorService) BuscarPorID(ctx context.Context, id int64) (*entities.Setor, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, chaveCacheSetor(id)); err == nil && raw != "" {
			var setor entities.Setor
			if err := json.Unmarshal([]byte(raw), &setor); err == nil {
				return &setor, nil
			}
		}
	}

	setor, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(setor); err == nil {
			if err := s.cache.Set(ctx, chaveCacheSetor(id), string(raw), s.cacheTTL); err != nil {
				s.logger.Warn("falha ao popular o cache de setor", zap.Error(err))
			}
		}
	}
	return setor, nil
}

func (s *SetorService) BuscarPorSigla(ctx context.Context, sigla string) (*entities.Setor, error) {
	return s.repo.BuscarPorSigla(ctx, sigla)
}

func (s *SetorService) Listar(ctx context.Context) ([]entities.Setor, error) {
	return s.repo.Listar(ctx)
}

func (s *SetorService) Criar(ctx context.Context, d dto.CriarSetorDTO) (*entities.Setor, error) {
	setor := &entities.Setor{
		Nome:           d.Nome,
		Sigla:          d.Sigla,
		PodeProtocolar: d.PodeProtocolar,
		PodeTramitar:   d.PodeTramitar,
		ResponsavelID:  d.ResponsavelID,
		EmailContato:   d.EmailContato,
	}
	id, err := s.repo.Criar(ctx, setor)
	if err != nil {
		return nil, err
	}
	setor.ID = id
	return setor, nil
}

func (s *SetorService) Atualizar(ctx context.Context, id int64, d dto.AtualizarSetorDTO) error {
	if err := s.repo.Atualizar(ctx, id, d); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, chaveCacheSetor(id)); err != nil {
			s.logger.Warn("falha ao invalidar o cache de setor", zap.Error(err))
		}
	}
	return nil
}
