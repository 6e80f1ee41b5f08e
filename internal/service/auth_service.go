package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"miniblog/api/internal/config"
	"miniblog/api/internal/models"
	"miniblog/api/internal/security"
	"miniblog/api/internal/session"
	"miniblog/api/internal/store"
)

type AuthService struct {
	identity *store.IdentityStore
	sessions *session.Manager
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewAuthService(identity *store.IdentityStore, sessions *session.Manager, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

type LoginResult struct {
	AccessToken string
	Account     models.Account
}

// Login authenticates the credential pair and establishes the session. The
// configured delay emulates the original site's fixed login round-trip; it
// is not tied to the request context on purpose, the effect lands once the
// timer fires regardless.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	simulateRoundTrip(s.cfg.Latency.Login)

	account, err := s.identity.Authenticate(username, password)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.sessions.Establish(ctx, account); err != nil {
		s.log.Warn().Err(err).Msg("remembered username not persisted")
	}

	token, err := security.GenerateAccessToken(
		s.cfg.Security.JWTAccessSecret,
		account.ID,
		account.Username,
		string(account.Role()),
		s.cfg.Security.JWTAccessTTL,
	)
	if err != nil {
		return LoginResult{}, err
	}

	s.log.Info().Str("account_id", account.ID).Str("role", string(account.Role())).Msg("login")
	return LoginResult{AccessToken: token, Account: account}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func simulateRoundTrip(d time.Duration) {
	if d <= 0 {
		return
	}
	<-time.After(d)
}
