package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event é qualquer sinal publicado no barramento (ex.: "auto de infração
// lavrado" pelo subsistema de fiscalização).
type Event interface {
	Name() string
}

// Listener é um assinante de eventos.
type Listener func(ctx context.Context, event Event) error

// Bus é o barramento de eventos em processo. Cada listener roda na sua
// própria goroutine com deadline próprio: uma falha de assinante jamais
// bloqueia ou desfaz a transação de quem publicou.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

// Subscribe registra um listener para um evento.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish dispara o evento para todos os assinantes e retorna imediatamente.
// Erros dos listeners são registrados, nunca propagados ao publicador.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	if listeners, ok := b.listeners[eventName]; ok {
		for _, listener := range listeners {
			go func(l Listener) {
				// Deadline próprio para evitar goroutines eternas.
				ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
				defer cancel()

				if err := l(ctxWithTimeout, event); err != nil {
					b.logger.Error("erro no assinante do evento",
						zap.String("event", eventName),
						zap.Error(err),
					)
				}
			}(listener)
		}
	}
}
