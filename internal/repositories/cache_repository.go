package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface abstrai o cache de leitura usado pelos serviços
// de dados de referência (tipos de documento e setores).
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}
