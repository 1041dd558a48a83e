package contextkeys

type contextKey string

const (
	// ActorIDKey identifica o servidor (usuário) que executa a operação.
	// Preenchido pelo middleware de autenticação a partir das claims do JWT.
	ActorIDKey contextKey = "ActorID"
)
