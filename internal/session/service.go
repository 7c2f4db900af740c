// Package session holds the signed-in account the attendance gate acts on.
//
// Sign-up and sign-in only establish identity for this process. Passwords are
// checked for presence and length and then discarded; there is no credential
// store.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"presence/internal/attendance/biometric"
	"presence/internal/attendance/models"
	"presence/internal/attendance/ports"
	"presence/internal/platform/metrics"
	id "presence/pkg/domain"
	dErrors "presence/pkg/domain-errors"
	"presence/pkg/email"
	"presence/pkg/platform/audit"
	"presence/pkg/platform/sentinel"
	"presence/pkg/requestcontext"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 8

// UserStore persists accounts for the session.
type UserStore interface {
	Save(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// BiometricVerifier runs the enrollment prompt.
type BiometricVerifier interface {
	Verify(ctx context.Context, reason string) error
}

// AuditPublisher is an alias to the shared interface.
type AuditPublisher = ports.AuditPublisher

type Service struct {
	users          UserStore
	biometric      BiometricVerifier
	reason         string
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher

	mu      sync.RWMutex
	current *models.User
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

// WithBiometricVerifier enables EnrollBiometrics.
func WithBiometricVerifier(verifier BiometricVerifier) Option {
	return func(s *Service) {
		s.biometric = verifier
	}
}

func WithReason(reason string) Option {
	return func(s *Service) {
		if reason != "" {
			s.reason = reason
		}
	}
}

func New(users UserStore, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	svc := &Service{
		users:  users,
		reason: biometric.DefaultReason,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// SignUp creates an account and makes it current. A blank name is derived
// from the email's local part.
func (s *Service) SignUp(ctx context.Context, address, name, password string) (*models.User, error) {
	address = strings.TrimSpace(address)
	if !email.IsValid(address) {
		return nil, dErrors.New(dErrors.CodeInvalidCredentials, "invalid email address")
	}
	if len(password) < MinPasswordLength {
		return nil, dErrors.New(dErrors.CodeInvalidCredentials, "password must be at least 8 characters")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		first, last := email.DeriveNameFromEmail(address)
		name = first
		if last != "User" {
			name += " " + last
		}
	}

	user := &models.User{
		ID:        id.NewUserID(),
		Email:     address,
		Name:      name,
		CreatedAt: requestcontext.Now(ctx),
	}
	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(err, dErrors.CodeConflict, "an account with this email already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
	}

	s.setCurrent(user)
	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventUserCreated, audit.Event{
		UserID: user.ID,
		Email:  user.Email,
	})
	return user, nil
}

// SignIn makes the account registered under address current.
func (s *Service) SignIn(ctx context.Context, address, password string) error {
	address = strings.TrimSpace(address)
	if !email.IsValid(address) || password == "" {
		return s.signInFailed(ctx, address, "malformed credentials")
	}

	user, err := s.users.FindByEmail(ctx, address)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return s.signInFailed(ctx, address, "unknown account")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	s.setCurrent(user)
	if s.metrics != nil {
		s.metrics.IncrementSignIns("ok")
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventUserSignedIn, audit.Event{
		UserID: user.ID,
		Email:  user.Email,
	})
	return nil
}

func (s *Service) signInFailed(ctx context.Context, address, reason string) error {
	if s.metrics != nil {
		s.metrics.IncrementSignIns("failed")
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventSignInFailed, audit.Event{
		Email:  address,
		Reason: reason,
	})
	return dErrors.New(dErrors.CodeInvalidCredentials, "invalid email or password")
}

// SignOut clears the current user. Signing out with nobody signed in is a no-op.
func (s *Service) SignOut(ctx context.Context) {
	s.mu.Lock()
	user := s.current
	s.current = nil
	s.mu.Unlock()

	if user == nil {
		return
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventUserSignedOut, audit.Event{UserID: user.ID})
}

// CurrentUser returns the signed-in user, or nil.
func (s *Service) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// EnrollBiometrics runs one biometric prompt and marks the current user as
// enrolled when it succeeds.
func (s *Service) EnrollBiometrics(ctx context.Context) error {
	user := s.CurrentUser()
	if user == nil {
		return dErrors.New(dErrors.CodeNoCurrentUser, "no user is signed in")
	}
	if s.biometric == nil {
		return dErrors.New(dErrors.CodeBiometricUnavailable, "biometric authentication is not configured")
	}
	if err := s.biometric.Verify(ctx, s.reason); err != nil {
		return err
	}

	user.HasRegisteredBiometrics = true
	if err := s.users.Save(ctx, user); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventBiometricsEnrolled, audit.Event{UserID: user.ID})
	return nil
}

func (s *Service) setCurrent(user *models.User) {
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
}
