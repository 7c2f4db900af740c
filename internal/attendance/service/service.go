// Package service is the attendance gate. It decides whether the signed-in
// user may record a check-in or check-out now, and records it when they may.
//
// An attempt moves through: start, day guard, biometric, location, commit.
// Any failure ends the attempt and leaves AttendanceState untouched; the error
// carries its code verbatim to the caller. Nothing is retried.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"presence/internal/attendance/biometric"
	"presence/internal/attendance/location"
	"presence/internal/attendance/lock"
	"presence/internal/attendance/models"
	"presence/internal/attendance/ports"
	"presence/internal/platform/metrics"
	id "presence/pkg/domain"
	dErrors "presence/pkg/domain-errors"
	"presence/pkg/platform/audit"
	"presence/pkg/requestcontext"
)

const tracerName = "presence/internal/attendance/service"

// Session exposes the signed-in user. The returned record is owned by the
// session; the gate mutates only its AttendanceState.
type Session interface {
	CurrentUser() *models.User
}

// BiometricVerifier proves the person at the device is its owner.
type BiometricVerifier interface {
	Verify(ctx context.Context, reason string) error
}

// LocationVerifier proves the device is inside the office zone.
type LocationVerifier interface {
	Verify(ctx context.Context, zone models.OfficeZone) error
}

// AuditPublisher is an alias to the shared interface.
type AuditPublisher = ports.AuditPublisher

// Clock supplies the evaluation timestamp for an attempt.
type Clock interface {
	Now(ctx context.Context) time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func(ctx context.Context) time.Time

func (f ClockFunc) Now(ctx context.Context) time.Time {
	return f(ctx)
}

type Service struct {
	session        Session
	biometric      BiometricVerifier
	location       LocationVerifier
	zone           models.OfficeZone
	locker         lock.Locker
	clock          Clock
	calendar       models.Calendar
	reason         string
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	tracer         trace.Tracer
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

func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithLocker(locker lock.Locker) Option {
	return func(s *Service) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// WithCalendar sets the calendar whose day boundaries the day guard uses.
func WithCalendar(cal models.Calendar) Option {
	return func(s *Service) {
		s.calendar = cal
	}
}

// WithReason sets the text shown in the biometric prompt.
func WithReason(reason string) Option {
	return func(s *Service) {
		if reason != "" {
			s.reason = reason
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

func New(session Session, biometricVerifier BiometricVerifier, locationVerifier LocationVerifier, zone models.OfficeZone, opts ...Option) (*Service, error) {
	if session == nil {
		return nil, errors.New("session is required")
	}
	if biometricVerifier == nil {
		return nil, errors.New("biometric verifier is required")
	}
	if locationVerifier == nil {
		return nil, errors.New("location verifier is required")
	}
	if err := location.ValidateZone(zone); err != nil {
		return nil, err
	}

	svc := &Service{
		session:   session,
		biometric: biometricVerifier,
		location:  locationVerifier,
		zone:      zone,
		locker:    lock.NewMemoryLocker(),
		clock:     ClockFunc(requestcontext.Now),
		calendar:  models.NewCalendar(time.Local),
		reason:    biometric.DefaultReason,
		tracer:    otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// CheckIn records today's check-in for the current user.
func (s *Service) CheckIn(ctx context.Context) error {
	return s.attempt(ctx, models.DirectionCheckIn)
}

// CheckOut records today's check-out for the current user. A check-in is not
// required first.
func (s *Service) CheckOut(ctx context.Context) error {
	return s.attempt(ctx, models.DirectionCheckOut)
}

// Today reports the current user's attendance for the calendar day of now.
func (s *Service) Today(ctx context.Context) (models.Status, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return models.Status{}, dErrors.New(dErrors.CodeNoCurrentUser, "no user is signed in")
	}
	unlock, err := s.locker.Lock(ctx, user.ID.String())
	if err != nil {
		return models.Status{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "could not read attendance")
	}
	defer func() { _ = unlock(context.WithoutCancel(ctx)) }()

	now := s.clock.Now(ctx)
	return models.Status{
		UserID:        user.ID,
		Now:           now,
		CheckedIn:     user.HasCheckedInToday(now, s.calendar),
		CheckedOut:    user.HasCheckedOutToday(now, s.calendar),
		LastCheckIn:   copyTime(user.LastCheckIn),
		LastCheckOut:  copyTime(user.LastCheckOut),
		BiometricsSet: user.HasRegisteredBiometrics,
	}, nil
}

func (s *Service) attempt(ctx context.Context, dir models.Direction) error {
	attempt := &models.Attempt{ID: id.NewAttemptID(), Direction: dir}
	ctx, span := s.tracer.Start(ctx, "attendance."+dir.String(), trace.WithAttributes(
		attribute.String("attendance.direction", dir.String()),
		attribute.String("attendance.attempt_id", attempt.ID.String()),
	))
	defer span.End()

	user := s.session.CurrentUser()
	if user == nil {
		attempt.EvaluatedAt = s.clock.Now(ctx)
		return s.finish(ctx, span, attempt, dErrors.New(dErrors.CodeNoCurrentUser, "no user is signed in"))
	}
	attempt.UserID = user.ID
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	unlock, err := s.locker.Lock(ctx, user.ID.String())
	if err != nil {
		attempt.EvaluatedAt = s.clock.Now(ctx)
		return s.finish(ctx, span, attempt, dErrors.Wrap(err, dErrors.CodeUnavailable, "could not serialize attendance attempt"))
	}
	defer func() {
		if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "failed to release attendance lock", "user_id", user.ID.String(), "error", uerr)
		}
	}()

	// One timestamp for the whole attempt, taken once the lock is held.
	now := s.clock.Now(ctx)
	attempt.EvaluatedAt = now

	return s.finish(ctx, span, attempt, s.evaluate(ctx, span, user, dir, now))
}

func (s *Service) evaluate(ctx context.Context, span trace.Span, user *models.User, dir models.Direction, now time.Time) error {
	if user.Recorded(dir, now, s.calendar) {
		if dir == models.DirectionCheckIn {
			return dErrors.New(dErrors.CodeAlreadyCheckedIn, "already checked in today")
		}
		return dErrors.New(dErrors.CodeAlreadyCheckedOut, "already checked out today")
	}
	span.AddEvent("day_guard_checked")

	if err := s.step(ctx, "biometric", func() error {
		return s.biometric.Verify(ctx, s.reason)
	}); err != nil {
		return err
	}
	span.AddEvent("biometric_verified")

	if err := s.step(ctx, "location", func() error {
		return s.location.Verify(ctx, s.zone)
	}); err != nil {
		return err
	}
	span.AddEvent("location_verified")

	user.Record(dir, now)
	span.AddEvent("committed")
	return nil
}

func (s *Service) step(ctx context.Context, name string, verify func() error) error {
	started := time.Now()
	err := verify()
	if s.metrics != nil {
		s.metrics.ObserveVerification(name, err == nil, time.Since(started))
	}
	if err != nil && s.logger != nil {
		s.logger.DebugContext(ctx, "verification failed", "step", name, "error", err)
	}
	return err
}

func (s *Service) finish(ctx context.Context, span trace.Span, attempt *models.Attempt, err error) error {
	if err != nil {
		attempt.Fail(err)
		span.SetStatus(codes.Error, string(attempt.FailureCode))
		span.SetAttributes(attribute.String("attendance.failure_code", string(attempt.FailureCode)))
	} else {
		attempt.Succeed()
		span.SetStatus(codes.Ok, "")
	}

	if s.metrics != nil {
		s.metrics.ObserveAttempt(attempt.Direction.String(), string(attempt.Outcome), string(attempt.FailureCode))
	}

	event := audit.Event{
		Timestamp: attempt.EvaluatedAt,
		UserID:    attempt.UserID,
		Subject:   attempt.ID.String(),
		Decision:  string(attempt.Outcome),
		Reason:    string(attempt.FailureCode),
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, auditEventFor(attempt), event,
		"direction", attempt.Direction.String(),
		"attempt_id", attempt.ID.String(),
		"outcome", string(attempt.Outcome),
		"failure_code", string(attempt.FailureCode),
	)
	return err
}

func auditEventFor(attempt *models.Attempt) audit.AuditEvent {
	switch {
	case attempt.Outcome == models.OutcomeSuccess && attempt.Direction == models.DirectionCheckIn:
		return audit.EventCheckInRecorded
	case attempt.Outcome == models.OutcomeSuccess:
		return audit.EventCheckOutRecorded
	case attempt.FailureCode == dErrors.CodeAlreadyCheckedIn, attempt.FailureCode == dErrors.CodeAlreadyCheckedOut:
		return audit.EventAttendanceSkipped
	default:
		return audit.EventAttendanceDenied
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
