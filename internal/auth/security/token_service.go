package security

import (
	"errors"
	"fmt"
	"time"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/infra/utils"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid          = errors.New("token is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the session tokens of the admin API. Each
// token carries a unique jti so a single session can be revoked before its
// expiry.
type TokenService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

func NewTokenService(secretKey, issuer string, ttl time.Duration) (*TokenService, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret key cannot be empty")
	}
	if issuer == "" {
		return nil, errors.New("jwt issuer cannot be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt token ttl must be positive")
	}

	return &TokenService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}, nil
}

func (s *TokenService) Generate(user domain.User) (string, domain.Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.GenerateUUID(),
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, domain.Session{
		TokenID:   claims.ID,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *TokenService) Verify(tokenString string) (domain.Session, error) {
	if tokenString == "" {
		return domain.Session{}, ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignatureInvalid
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.Session{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.Session{}, ErrTokenSignatureInvalid
	case err != nil:
		return domain.Session{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Session{}, ErrTokenInvalid
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Session{}, ErrTokenInvalid
	}

	return domain.Session{
		TokenID:   claims.ID,
		UserID:    domain.ID(claims.Subject),
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
