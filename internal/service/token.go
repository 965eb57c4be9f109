package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *TokenManager) Issue(u entity.User) (string, error) {
	now := time.Now()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.SessionClaims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// Verify resolves a session token into the caller identity. Every failure
// wraps entity.ErrUnauthorized together with the specific reason.
func (m *TokenManager) Verify(raw string) (entity.Caller, error) {
	var claims entity.SessionClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return entity.Caller{}, fmt.Errorf("%w: %w", entity.ErrUnauthorized, entity.ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return entity.Caller{}, fmt.Errorf("%w: %w", entity.ErrUnauthorized, entity.ErrTokenMalformed)
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return entity.Caller{}, fmt.Errorf("%w: %w", entity.ErrUnauthorized, entity.ErrTokenNotValidYet)
		default:
			return entity.Caller{}, fmt.Errorf("%w: %w: %s", entity.ErrUnauthorized, entity.ErrTokenInvalid, err.Error())
		}
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return entity.Caller{}, fmt.Errorf("%w: %w", entity.ErrUnauthorized, entity.ErrTokenMalformed)
	}

	if !claims.Role.IsValid() {
		return entity.Caller{}, fmt.Errorf("%w: %w: unknown role", entity.ErrUnauthorized, entity.ErrTokenInvalid)
	}

	return entity.Caller{
		ID:    id,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
