package identity

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shelftalk/config"
	"shelftalk/pkg/errors"
)

type AuthClaims struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// JWTGate verifies bearer tokens issued by the auth service.
type JWTGate struct {
	secret []byte
}

func NewJWTGate(cfg *config.Config) *JWTGate {
	return &JWTGate{secret: []byte(cfg.JWT.Secret)}
}

func (g *JWTGate) Verify(tokenStr string) (Identity, error) {
	if tokenStr == "" {
		return Identity{}, errors.ErrUnauthorized
	}

	token, err := jwt.ParseWithClaims(tokenStr, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return Identity{}, errors.ErrUnauthorized
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, errors.ErrUnauthorized
	}

	return Identity{ID: id, DisplayName: claims.DisplayName}, nil
}
