package services

import (
	"context"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

// sessionKey is the fixed key of the single persisted session.
const sessionKey = "current"

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRe      = regexp.MustCompile(`[A-Z]`)
	lowerRe      = regexp.MustCompile(`[a-z]`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	specialRe    = regexp.MustCompile(`[^A-Za-z0-9]`)
	minPasswordL = 8
)

type authRemote interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignUp(ctx context.Context, email, password, name string) (*models.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) (*models.Session, error)
	SetToken(token string)
}

type sessionCache interface {
	Get(id string) (*models.Session, error)
	Put(*models.Session) error
	Delete(id string) error
}

type authOracle interface {
	IsOnline() bool
}

type authService struct {
	remote   authRemote
	sessions sessionCache
	oracle   authOracle
}

func NewAuthService(rc authRemote, sessions sessionCache, oracle authOracle) *authService {
	return &authService{remote: rc, sessions: sessions, oracle: oracle}
}

// Restore loads the persisted session at startup so the operator stays
// signed in across restarts. A stale token is refreshed when online;
// offline, the stale session is kept so cached data stays reachable.
func (s *authService) Restore(ctx context.Context) *models.Session {
	log := logger.FromContext(ctx)

	sess, err := s.sessions.Get(sessionKey)
	if err != nil {
		return nil
	}

	if sess.Expired(time.Now()) && s.oracle.IsOnline() && sess.RefreshToken != "" {
		refreshed, err := s.remote.RefreshSession(ctx, sess.RefreshToken)
		if err == nil {
			sess = s.completeSession(refreshed)
			s.persist(ctx, sess)
		} else {
			log.Warn("session refresh failed, keeping stale session", "error", err)
		}
	}

	s.remote.SetToken(sess.AccessToken)
	log.Info("session restored", "uid", sess.UID)
	return sess
}

func (s *authService) SignIn(ctx context.Context, req dto.SignInRequest) (*models.Session, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errs.NewValidationError("email and password are required")
	}
	sess, err := s.remote.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	sess = s.completeSession(sess)
	s.remote.SetToken(sess.AccessToken)
	s.persist(ctx, sess)
	return sess, nil
}

func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) (*models.Session, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}
	if !emailRe.MatchString(req.Email) {
		return nil, errs.NewValidationError("invalid email address")
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	sess, err := s.remote.SignUp(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	sess = s.completeSession(sess)
	s.remote.SetToken(sess.AccessToken)
	s.persist(ctx, sess)
	return sess, nil
}

func (s *authService) SignOut(ctx context.Context) error {
	s.remote.SetToken("")
	if err := s.sessions.Delete(sessionKey); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("signed out")
	return nil
}

// Current returns the active session, refreshing an expired token when the
// network allows it.
func (s *authService) Current(ctx context.Context) (*models.Session, error) {
	sess, err := s.sessions.Get(sessionKey)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return nil, errs.NewUnauthorizedError("not signed in")
		}
		return nil, err
	}

	if sess.Expired(time.Now()) && s.oracle.IsOnline() && sess.RefreshToken != "" {
		refreshed, err := s.remote.RefreshSession(ctx, sess.RefreshToken)
		if err != nil {
			return nil, errs.NewUnauthorizedError("session expired")
		}
		sess = s.completeSession(refreshed)
		s.remote.SetToken(sess.AccessToken)
		s.persist(ctx, sess)
	}
	return sess, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if !emailRe.MatchString(req.Email) {
		return errs.NewValidationError("invalid email address")
	}
	return s.remote.RequestPasswordReset(ctx, req.Email)
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*models.Session, error) {
	if req.Token == "" {
		return nil, errs.NewValidationError("reset token is required")
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	sess, err := s.remote.ConfirmPasswordReset(ctx, req.Token, req.Password)
	if err != nil {
		return nil, err
	}
	sess = s.completeSession(sess)
	s.remote.SetToken(sess.AccessToken)
	s.persist(ctx, sess)
	return sess, nil
}

func (s *authService) persist(ctx context.Context, sess *models.Session) {
	if err := s.sessions.Put(sess); err != nil {
		// session lives in memory for the rest of the run
		logger.FromContext(ctx).Warn("failed to persist session", "error", err)
	}
}

// completeSession fills uid, email and expiry from the access token claims
// when the auth response left them out (refresh responses often do).
func (s *authService) completeSession(sess *models.Session) *models.Session {
	if sess.UID != "" && !sess.ExpiresAt.IsZero() {
		return sess
	}
	claims := jwt.MapClaims{}
	// signature verification is the remote's job; we only read our own
	// token's claims
	if _, _, err := jwt.NewParser().ParseUnverified(sess.AccessToken, claims); err != nil {
		return sess
	}
	if sess.UID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			sess.UID = sub
		}
	}
	if sess.Email == "" {
		if email, ok := claims["email"].(string); ok {
			sess.Email = email
		}
	}
	if sess.ExpiresAt.IsZero() {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			sess.ExpiresAt = exp.Time
		}
	}
	return sess
}

func validatePassword(pw string) error {
	switch {
	case len(pw) < minPasswordL:
		return errs.NewValidationError("password must be at least 8 characters")
	case !upperRe.MatchString(pw):
		return errs.NewValidationError("password must contain at least one uppercase letter")
	case !lowerRe.MatchString(pw):
		return errs.NewValidationError("password must contain at least one lowercase letter")
	case !digitRe.MatchString(pw):
		return errs.NewValidationError("password must contain at least one number")
	case !specialRe.MatchString(pw):
		return errs.NewValidationError("password must contain at least one special character")
	}
	return nil
}
