package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/auth/security"
	"atlas-cms/internal/infra/cache"
)

const revokedTokenKeyPrefix = "auth:revoked:"

func NewSessionService(userService UserService, tokens *security.TokenService, revocations cache.Cache) *SimpleSessionService {
	return &SimpleSessionService{
		userService: userService,
		tokens:      tokens,
		revocations: revocations,
	}
}

var _ SessionService = &SimpleSessionService{}

// SimpleSessionService issues JWT sessions and tracks revocations by jti.
// A revocation entry only has to outlive the token, so the cache TTL is tied
// to the token expiry.
type SimpleSessionService struct {
	userService UserService
	tokens      *security.TokenService
	revocations cache.Cache
}

func (s *SimpleSessionService) Login(ctx context.Context, email, password string) (string, domain.Session, error) {
	user, err := s.userService.Authenticate(ctx, email, password)
	if err != nil {
		return "", domain.Session{}, err
	}

	token, session, err := s.tokens.Generate(user)
	if err != nil {
		slog.Error("generating token", slog.String("error", err.Error()))
		return "", domain.Session{}, fmt.Errorf("generating token: %w", err)
	}

	slog.Info("session issued",
		slog.String("user_id", user.ID.String()),
		slog.String("token_id", session.TokenID))

	return token, session, nil
}

func (s *SimpleSessionService) Verify(ctx context.Context, token string) (domain.Session, error) {
	session, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Session{}, err
	}

	if _, revoked := s.revocations.Get(ctx, revokedTokenKeyPrefix+session.TokenID); revoked {
		return domain.Session{}, ErrSessionRevoked
	}

	return session, nil
}

func (s *SimpleSessionService) Revoke(ctx context.Context, session domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	s.revocations.Set(ctx, revokedTokenKeyPrefix+session.TokenID, true, ttl)
	slog.Info("session revoked", slog.String("token_id", session.TokenID))

	return nil
}
