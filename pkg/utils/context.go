package utils

import (
	"context"

	"github.com/Stevensbe/system-procon-sub001/pkg/contextkeys"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

// GetActorIDFromCtx extrai o ator autenticado colocado no contexto pelo
// middleware. Toda operação mutadora do motor exige um ator.
func GetActorIDFromCtx(ctx context.Context) (int64, error) {
	actorID, ok := ctx.Value(contextkeys.ActorIDKey).(int64)
	if !ok || actorID == 0 {
		return 0, apperrors.ErrActorIDNotFoundInContext
	}
	return actorID, nil
}

// CtxWithActorID injeta o ator no contexto; usado pelo middleware e nos testes.
func CtxWithActorID(ctx context.Context, actorID int64) context.Context {
	return context.WithValue(ctx, contextkeys.ActorIDKey, actorID)
}
