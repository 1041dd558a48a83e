package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

// ActorClaims identifica o servidor que opera o sistema. A autenticação em si
// acontece numa camada externa; aqui o token só carrega a identidade do ator.
type ActorClaims struct {
	ActorID int64 `json:"actorId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(actorID int64) (string, error)
	ValidateToken(tokenString string) (*ActorClaims, error)
}

type jwtService struct {
	secretKey string
	tokenTTL  time.Duration
}

func NewJWTService(secretKey string, tokenTTL time.Duration) JWTService {
	return &jwtService{secretKey: secretKey, tokenTTL: tokenTTL}
}

func (s *jwtService) GenerateToken(actorID int64) (string, error) {
	claims := &ActorClaims{
		ActorID: actorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*ActorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ActorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}
	return claims, nil
}
