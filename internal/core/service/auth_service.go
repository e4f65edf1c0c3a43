package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accessgate/rbac-system/internal/core/domain"
	"github.com/accessgate/rbac-system/internal/core/ports"
)

// AuthService implements login and registration on top of a user
// repository and a token service. It keeps no per-request state.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter // nil disables throttling
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenService,
	limiter ports.LoginLimiter,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, audit: audit, log: log}
}

// Login verifies credentials and mints a token. Unknown username and
// wrong password both fail with ErrInvalidCredentials so the caller
// cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Throttling is best-effort: an unreachable limiter must
			// not lock everyone out.
			s.log.Warn().Err(err).Str("username", username).Msg("login limiter unavailable")
		} else if !ok {
			s.recordAudit(username, domain.ActionLogin, false, "throttled")
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.loginFailed(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.loginFailed(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Encode(user)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login counter")
		}
	}
	s.recordAudit(username, domain.ActionLogin, true, "")

	return token, user, nil
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.recordAudit(username, domain.ActionRegister, true, "")
	return created, nil
}

func (s *AuthService) loginFailed(ctx context.Context, username string) {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
		}
	}
	s.recordAudit(username, domain.ActionLogin, false, "invalid_credentials")
}

func (s *AuthService) recordAudit(username string, action domain.AuthAction, success bool, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Username:  username,
		Action:    action,
		Success:   success,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
