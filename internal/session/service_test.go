package session

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks UserStore,BiometricVerifier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"presence/internal/platform/metrics"
	"presence/internal/session/mocks"
	"presence/internal/session/store"
	dErrors "presence/pkg/domain-errors"
	auditmemory "presence/pkg/platform/audit/store/memory"
	"presence/pkg/testutil"
)

type SessionSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	users     *store.InMemoryUserStore
	biometric *mocks.MockBiometricVerifier
	auditLog  *auditmemory.InMemoryStore
	metrics   *metrics.Metrics
	service   *Service
	ctx       context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = store.New()
	s.biometric = mocks.NewMockBiometricVerifier(s.ctrl)
	s.auditLog = auditmemory.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.ctx = testutil.ContextAt(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	var err error
	s.service, err = New(s.users,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithAuditPublisher(s.auditLog),
		WithBiometricVerifier(s.biometric),
	)
	s.Require().NoError(err)
}

func (s *SessionSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionSuite) recentActions() []string {
	events, err := s.auditLog.ListRecent(context.Background(), 100)
	s.Require().NoError(err)
	actions := make([]string, 0, len(events))
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	return actions
}

func (s *SessionSuite) TestNew() {
	_, err := New(nil)
	s.ErrorContains(err, "user store is required")
}

func (s *SessionSuite) TestSignUp() {
	s.Run("creates the user and makes them current", func() {
		user, err := s.service.SignUp(s.ctx, "ada@example.com", "Ada Lovelace", "analytical")
		s.Require().NoError(err)

		s.Equal("Ada Lovelace", user.Name)
		s.Equal(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), user.CreatedAt)
		s.False(user.HasRegisteredBiometrics)
		s.Nil(user.LastCheckIn)
		s.Same(user, s.service.CurrentUser())
		s.Equal(1.0, promtest.ToFloat64(s.metrics.UsersCreated))
		s.Contains(s.recentActions(), "user_created")
	})

	s.Run("derives a name when none is given", func() {
		user, err := s.service.SignUp(s.ctx, "grace.hopper@example.com", "  ", "compilers")
		s.Require().NoError(err)
		s.Equal("Grace Hopper", user.Name)

		user, err = s.service.SignUp(s.ctx, "linus@example.com", "", "password1")
		s.Require().NoError(err)
		s.Equal("Linus", user.Name)
	})

	s.Run("rejects an invalid email", func() {
		_, err := s.service.SignUp(s.ctx, "not-an-email", "Name", "password1")
		s.Equal(dErrors.CodeInvalidCredentials, dErrors.CodeOf(err))
	})

	s.Run("rejects a short password", func() {
		_, err := s.service.SignUp(s.ctx, "short@example.com", "Name", "1234567")
		s.Equal(dErrors.CodeInvalidCredentials, dErrors.CodeOf(err))
	})

	s.Run("rejects a duplicate email", func() {
		_, err := s.service.SignUp(s.ctx, "ADA@example.com", "Other Ada", "password1")
		s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
	})
}

func (s *SessionSuite) TestSignIn() {
	user, err := s.service.SignUp(s.ctx, "ada@example.com", "Ada", "analytical")
	s.Require().NoError(err)
	s.service.SignOut(s.ctx)
	s.Require().Nil(s.service.CurrentUser())

	s.Run("registered email signs in", func() {
		s.Require().NoError(s.service.SignIn(s.ctx, "ada@example.com", "anything"))
		s.Same(user, s.service.CurrentUser())
		s.Equal(1.0, promtest.ToFloat64(s.metrics.SignIns.WithLabelValues("ok")))
	})

	s.Run("invalid inputs are invalid credentials", func() {
		for _, tc := range []struct{ email, password string }{
			{"ada@example", "anything"},
			{"", "anything"},
			{"ada@example.com", ""},
			{"nobody@example.com", "anything"},
		} {
			err := s.service.SignIn(s.ctx, tc.email, tc.password)
			s.Equal(dErrors.CodeInvalidCredentials, dErrors.CodeOf(err), "email=%q", tc.email)
		}
		s.Equal(4.0, promtest.ToFloat64(s.metrics.SignIns.WithLabelValues("failed")))
		s.Contains(s.recentActions(), "sign_in_failed")
	})

	s.Run("store failure is internal", func() {
		users := mocks.NewMockUserStore(s.ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(nil, errors.New("disk full"))
		svc, err := New(users)
		s.Require().NoError(err)

		err = svc.SignIn(s.ctx, "ada@example.com", "anything")
		s.Equal(dErrors.CodeInternal, dErrors.CodeOf(err))
		s.Nil(svc.CurrentUser())
	})
}

func (s *SessionSuite) TestSignOut() {
	s.Run("no-op without a user", func() {
		s.service.SignOut(s.ctx)
		s.Nil(s.service.CurrentUser())
		s.NotContains(s.recentActions(), "user_signed_out")
	})

	s.Run("clears the current user", func() {
		_, err := s.service.SignUp(s.ctx, "bye@example.com", "Bye", "password1")
		s.Require().NoError(err)

		s.service.SignOut(s.ctx)
		s.Nil(s.service.CurrentUser())
		s.Contains(s.recentActions(), "user_signed_out")
	})
}

func (s *SessionSuite) TestEnrollBiometrics() {
	s.Run("requires a current user", func() {
		err := s.service.EnrollBiometrics(s.ctx)
		s.Equal(dErrors.CodeNoCurrentUser, dErrors.CodeOf(err))
	})

	user, err := s.service.SignUp(s.ctx, "ada@example.com", "Ada", "analytical")
	s.Require().NoError(err)

	s.Run("failed prompt leaves the flag unset", func() {
		s.biometric.EXPECT().Verify(gomock.Any(), "Authenticate for attendance").
			Return(dErrors.New(dErrors.CodeBiometricNotMatched, "no match"))

		err := s.service.EnrollBiometrics(s.ctx)
		s.Equal(dErrors.CodeBiometricNotMatched, dErrors.CodeOf(err))
		s.False(user.HasRegisteredBiometrics)
	})

	s.Run("successful prompt sets the flag", func() {
		s.biometric.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.service.EnrollBiometrics(s.ctx))
		s.True(user.HasRegisteredBiometrics)
		s.Contains(s.recentActions(), "biometrics_enrolled")
	})

	s.Run("no verifier configured", func() {
		svc, err := New(store.New())
		s.Require().NoError(err)
		_, err = svc.SignUp(s.ctx, "x@example.com", "X", "password1")
		s.Require().NoError(err)

		err = svc.EnrollBiometrics(s.ctx)
		s.Equal(dErrors.CodeBiometricUnavailable, dErrors.CodeOf(err))
	})
}
