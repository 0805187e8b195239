package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Service signs and verifies the session cookie value. The token only
// names a server-side session; revoking that session invalidates the
// cookie even before the token expires.
type Service struct {
	secret []byte
}

type Claims struct {
	SessionID string `json:"sid"`
	jwtlib.RegisteredClaims
}

func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

func (s *Service) Sign(sessionID string, expiresAt time.Time) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
