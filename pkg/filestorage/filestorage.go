package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BlobStore é o contrato com o armazenamento externo de conteúdo de anexos.
// O serviço de anexos guarda apenas metadados; o conteúdo vive atrás desta
// interface, referenciado por chave.
type BlobStore interface {
	Put(ctx context.Context, chave string, conteudo io.Reader) error
	Get(ctx context.Context, chave string) (io.ReadCloser, error)
}

// GerarChave cria uma chave única particionada por data, para que o
// armazenamento não acumule tudo num único diretório/prefixo.
func GerarChave(nomeOriginal string, agora time.Time) string {
	ext := filepath.Ext(nomeOriginal)
	return fmt.Sprintf("%s/%s%s", agora.Format("2006/01/02"), uuid.New().String(), ext)
}

// LocalBlobStore grava os blobs no sistema de arquivos local. Em produção a
// mesma interface é atendida por um object storage.
type LocalBlobStore struct {
	basePath string
}

func NewLocalBlobStore(basePath string) (*LocalBlobStore, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0755); err != nil {
			return nil, fmt.Errorf("não foi possível criar o diretório de armazenamento: %w", err)
		}
	}
	return &LocalBlobStore{basePath: basePath}, nil
}

func (s *LocalBlobStore) Put(_ context.Context, chave string, conteudo io.Reader) error {
	caminho := filepath.Join(s.basePath, filepath.FromSlash(chave))
	if err := os.MkdirAll(filepath.Dir(caminho), 0755); err != nil {
		return err
	}

	dst, err := os.Create(caminho)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, conteudo); err != nil {
		return err
	}
	return nil
}

func (s *LocalBlobStore) Get(_ context.Context, chave string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.basePath, filepath.FromSlash(chave)))
}
