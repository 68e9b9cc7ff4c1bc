package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/store"
	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/MKhiriev/lexsight/internal/validators"
	"github.com/MKhiriev/lexsight/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential registration and verification with bcrypt and the
// lifecycle of opaque server-side sessions.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// validator checks email and password presence before any store call.
	validator validators.Validator

	// bcryptCost is the work factor for new password digests (>= 10).
	bcryptCost int

	// sessionDuration controls how long a newly created session stays valid.
	sessionDuration time.Duration

	// now is the clock used for verification and expiry timestamps.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}
	duration := cfg.SessionDuration
	if duration <= 0 {
		duration = config.DefaultSessionDuration
	}

	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		validator:         validators.NewDocumentValidator(),
		bcryptCost:        cost,
		sessionDuration:   duration,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateUserWithPassword registers a credential user.
//
// The email is stored as given (trimmed, case preserved) and marked verified
// at creation. Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is empty, or the password
//     is longer than bcrypt accepts.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) CreateUserWithPassword(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if err := a.validator.Validate(ctx, validators.Credentials{Email: email, Password: password}); err != nil {
		log.Debug().Err(err).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	verified := a.now().UTC()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:         email,
		Name:          strings.TrimSpace(name),
		Password:      string(digest),
		EmailVerified: &verified,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Authenticate verifies an email and password pair.
//
// An unknown email, an account without a password and a wrong password all
// yield ErrInvalidCredentials so callers cannot probe for accounts.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if err := a.validator.Validate(ctx, validators.Credentials{Email: email, Password: password}); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPassword() {
		return models.User{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateSession issues a new session for userID.
//
// Only the SHA-256 digest of the token is stored; the raw token is returned
// for the cookie and never logged.
func (a *authService) CreateSession(ctx context.Context, userID string) (models.Session, string, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Session{}, "", ErrInvalidDataProvided
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return models.Session{}, "", fmt.Errorf("%w: %w", ErrSessionCreation, err)
	}

	now := a.now().UTC()
	session, err := a.sessionRepository.CreateSession(ctx, models.Session{
		TokenHash: utils.HashSessionToken(token),
		UserID:    userID,
		ExpiresAt: now.Add(a.sessionDuration),
		CreatedAt: now,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error storing session")
		return models.Session{}, "", fmt.Errorf("%w: %w", ErrSessionCreation, err)
	}

	return session, token, nil
}

// GetSession resolves token into the projection of its user.
//
// It fails closed: an empty or unknown token, a lookup error, an expired
// session and a session whose user is gone all yield (nil, nil). Expired and
// orphaned sessions are deleted on the way.
func (a *authService) GetSession(ctx context.Context, token string) (*models.SessionUser, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil, nil
	}
	tokenHash := utils.HashSessionToken(token)

	session, err := a.sessionRepository.FindSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Msg("error fetching session, treating as anonymous")
		}
		return nil, nil
	}

	if session.IsExpired(a.now()) {
		a.dropSession(ctx, tokenHash, "expired")
		return nil, nil
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.dropSession(ctx, tokenHash, "orphaned")
			return nil, nil
		}
		log.Err(err).Str("user_id", session.UserID).Msg("error fetching session user, treating as anonymous")
		return nil, nil
	}

	projection := user.Projection()
	return &projection, nil
}

// DeleteSession removes the session identified by token. Deleting an empty
// or unknown token is a no-op.
func (a *authService) DeleteSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessionRepository.DeleteSessionByTokenHash(ctx, utils.HashSessionToken(token)); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (a *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := a.sessionRepository.DeleteExpiredSessions(ctx, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error purging expired sessions")
		return 0, fmt.Errorf("error purging expired sessions: %w", err)
	}

	return removed, nil
}

func (a *authService) dropSession(ctx context.Context, tokenHash, reason string) {
	if err := a.sessionRepository.DeleteSessionByTokenHash(ctx, tokenHash); err != nil {
		logger.FromContext(ctx).Err(err).Str("reason", reason).Msg("error deleting stale session")
		return
	}
	logger.FromContext(ctx).Debug().Str("reason", reason).Msg("stale session deleted")
}
