package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/observability"
	"github.com/jackc/pgx/v5"
)

type identityUserStore interface {
	UpsertFromIdentity(ctx context.Context, identity models.ExternalIdentity) (*models.User, bool, error)
}

type authSessionStore interface {
	Create(ctx context.Context, userID string, createdAt time.Time, ttl time.Duration) (*models.AuthSession, error)
	GetByToken(ctx context.Context, token string) (*models.AuthSession, error)
}

type AuthConfig struct {
	PortalURL   string
	RedirectURL string
	SessionTTL  time.Duration
}

type AuthService struct {
	provider IdentityProvider
	users    identityUserStore
	sessions authSessionStore
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthService(
	provider IdentityProvider,
	users identityUserStore,
	sessions authSessionStore,
	cfg AuthConfig,
) *AuthService {
	return &AuthService{
		provider: provider,
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
	}
}

type LoginUser struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type LoginResult struct {
	SessionToken string    `json:"session_token"`
	User         LoginUser `json:"user"`
	NewUser      bool      `json:"-"`
}

func (s *AuthService) LoginURL() string {
	return strings.TrimRight(s.cfg.PortalURL, "/") + "/?" + url.Values{"redirect": {s.cfg.RedirectURL}}.Encode()
}

// Login exchanges an identity provider session id for a local session token,
// creating the user on first login.
func (s *AuthService) Login(ctx context.Context, providerSessionID string) (*LoginResult, error) {
	providerSessionID = strings.TrimSpace(providerSessionID)
	if providerSessionID == "" {
		return nil, ErrInvalidInput
	}

	identity, err := s.provider.FetchSessionData(ctx, providerSessionID)
	if err != nil {
		observability.RecordLogin(observability.OutcomeRejected)
		if errors.Is(err, ErrUpstream) {
			return nil, err
		}
		return nil, errors.Join(ErrUpstream, err)
	}

	user, inserted, err := s.users.UpsertFromIdentity(ctx, *identity)
	if err != nil {
		observability.RecordLogin(observability.OutcomeError)
		return nil, err
	}

	session, err := s.sessions.Create(ctx, user.UserID, s.now().UTC(), s.cfg.SessionTTL)
	if err != nil {
		observability.RecordLogin(observability.OutcomeError)
		return nil, err
	}

	observability.RecordLogin(observability.OutcomeSuccess)
	return &LoginResult{
		SessionToken: session.Token,
		User: LoginUser{
			UserID:  user.UserID,
			Email:   identity.Email,
			Name:    identity.Name,
			Picture: identity.Picture,
		},
		NewUser: inserted,
	}, nil
}

// Authenticate resolves a bearer token to its user id. Expired sessions stay
// in storage and are rejected here.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrUnauthenticated
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUnauthenticated
		}
		return "", err
	}
	if session.ExpiredAt(s.now()) {
		return "", ErrUnauthenticated
	}
	return session.UserID, nil
}
