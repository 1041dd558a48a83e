package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/dto"
	"github.com/Stevensbe/system-procon-sub001/internal/entities"
	"github.com/Stevensbe/system-procon-sub001/internal/repositories"
	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	"github.com/Stevensbe/system-procon-sub001/pkg/constants"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/filestorage"
	"github.com/Stevensbe/system-procon-sub001/pkg/relogio"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
	"github.com/Stevensbe/system-procon-sub001/pkg/validation"
)

type AnexoServiceInterface interface {
	Anexar(ctx context.Context, numeroProtocolo, nomeArquivo, mimeType, descricao string, tamanhoBytes int64, conteudo io.Reader) (*dto.AnexoDTO, error)
	ListarPorProtocolo(ctx context.Context, numeroProtocolo string) ([]dto.AnexoDTO, error)
	Baixar(ctx context.Context, id int64) (*dto.AnexoDTO, io.ReadCloser, error)
}

// AnexoService grava o conteúdo no armazenamento de blobs e os metadados no
// banco. O SHA-256 do conteúdo fica registrado para conferência posterior de
// integridade do arquivo.
type AnexoService struct {
	anexoRepo     repositories.AnexoRepositoryInterface
	protocoloRepo repositories.ProtocoloRepositoryInterface
	blobStore     filestorage.BlobStore
	cfg           config.UploadConfig
	relogio       relogio.Relogio
	logger        *zap.Logger
}

func NewAnexoService(
	anexoRepo repositories.AnexoRepositoryInterface,
	protocoloRepo repositories.ProtocoloRepositoryInterface,
	blobStore filestorage.BlobStore,
	cfg config.UploadConfig,
	rel relogio.Relogio,
	logger *zap.Logger,
) AnexoServiceInterface {
	return &AnexoService{
		anexoRepo:     anexoRepo,
		protocoloRepo: protocoloRepo,
		blobStore:     blobStore,
		cfg:           cfg,
		relogio:       rel,
		logger:        logger,
	}
}

func (s *AnexoService) Anexar(ctx context.Context, numeroProtocolo, nomeArquivo, mimeType, descricao string, tamanhoBytes int64, conteudo io.Reader) (*dto.AnexoDTO, error) {
	atorID, err := utils.GetActorIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidarArquivo(s.cfg, nomeArquivo, mimeType, tamanhoBytes); err != nil {
		return nil, err
	}

	protocolo, err := s.protocoloRepo.BuscarPorNumero(ctx, numeroProtocolo)
	if err != nil {
		return nil, err
	}
	if constants.IsStatusTerminal(protocolo.Status) {
		return nil, apperrors.ErrTransicaoInvalida
	}

	agora := s.relogio.Agora()
	chave := filestorage.GerarChave(nomeArquivo, agora)

	// O hash do conteúdo sai do mesmo stream que alimenta o armazenamento.
	digest := sha256.New()
	if err := s.blobStore.Put(ctx, chave, io.TeeReader(conteudo, digest)); err != nil {
		s.logger.Error("falha ao gravar o anexo no armazenamento",
			zap.String("numero", numeroProtocolo),
			zap.String("chave", chave),
			zap.Error(err))
		return nil, err
	}

	anexo := &entities.Anexo{
		NumeroProtocolo: numeroProtocolo,
		NomeArquivo:     nomeArquivo,
		ChaveBlob:       chave,
		MimeType:        mimeType,
		TamanhoBytes:    tamanhoBytes,
		SHA256:          hex.EncodeToString(digest.Sum(nil)),
		EnviadoPor:      atorID,
		EnviadoEm:       agora,
		Descricao:       descricao,
	}
	id, err := s.anexoRepo.Criar(ctx, anexo)
	if err != nil {
		return nil, err
	}
	anexo.ID = id

	s.logger.Info("anexo gravado",
		zap.String("numero", numeroProtocolo),
		zap.String("arquivo", nomeArquivo),
		zap.Int64("tamanho", tamanhoBytes))
	return toAnexoDTO(anexo), nil
}

func (s *AnexoService) ListarPorProtocolo(ctx context.Context, numeroProtocolo string) ([]dto.AnexoDTO, error) {
	if _, err := s.protocoloRepo.BuscarPorNumero(ctx, numeroProtocolo); err != nil {
		return nil, err
	}
	anexos, err := s.anexoRepo.ListarPorProtocolo(ctx, numeroProtocolo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnexoDTO, 0, len(anexos))
	for i := range anexos {
		out = append(out, *toAnexoDTO(&anexos[i]))
	}
	return out, nil
}

func (s *AnexoService) Baixar(ctx context.Context, id int64) (*dto.AnexoDTO, io.ReadCloser, error) {
	anexo, err := s.anexoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	conteudo, err := s.blobStore.Get(ctx, anexo.ChaveBlob)
	if err != nil {
		return nil, nil, err
	}
	return toAnexoDTO(anexo), conteudo, nil
}

func toAnexoDTO(a *entities.Anexo) *dto.AnexoDTO {
	return &dto.AnexoDTO{
		ID:              a.ID,
		NumeroProtocolo: a.NumeroProtocolo,
		NomeArquivo:     a.NomeArquivo,
		ChaveBlob:       a.ChaveBlob,
		MimeType:        a.MimeType,
		TamanhoBytes:    a.TamanhoBytes,
		SHA256:          a.SHA256,
		EnviadoPor:      a.EnviadoPor,
		EnviadoEm:       a.EnviadoEm.Format(time.RFC3339),
		Descricao:       a.Descricao,
	}
}
