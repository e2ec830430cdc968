package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenLifetime = 24 * time.Hour

var (
	// ErrExpired means the token was once valid but is past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed covers bad signatures, wrong algorithms and broken payloads.
	ErrMalformed = errors.New("token malformed")
	// ErrNoSecret is returned when issuing without a configured signing secret.
	ErrNoSecret = errors.New("signing secret is not configured")
)

type Claims struct {
	UserID    uint
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless HS256 bearer tokens.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(userID uint, role string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	if !token.Valid {
		return nil, ErrMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformed
	}

	sub, ok1 := claims["sub"].(float64)
	role, ok2 := claims["role"].(string)
	if !ok1 || !ok2 {
		return nil, ErrMalformed
	}

	out := &Claims{
		UserID: uint(sub),
		Role:   role,
	}
	if jti, ok := claims["jti"].(string); ok {
		out.TokenID = jti
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return out, nil
}
