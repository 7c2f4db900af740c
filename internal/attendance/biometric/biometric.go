// Package biometric verifies device-local proof of presence.
//
// The platform prompt lives behind Authenticator. Verify is the only place the
// attendance flow suspends on user interaction: it blocks until the user
// completes or cancels the prompt. There is no timeout of our own and no
// retry; every call is a fresh prompt.
package biometric

import (
	"context"
	"errors"
	"log/slog"

	dErrors "presence/pkg/domain-errors"
)

// DefaultReason is shown in the platform prompt when none is configured.
const DefaultReason = "Authenticate for attendance"

// Authenticator is the platform biometric capability.
type Authenticator interface {
	// CanEvaluate returns an error when the device cannot evaluate a biometric
	// policy at all: no enrolled biometrics, missing hardware, or denied permission.
	CanEvaluate(ctx context.Context) error
	// Evaluate presents the prompt and reports whether the presented
	// biometric matched.
	Evaluate(ctx context.Context, reason string) (bool, error)
}

// Verifier maps the platform capability onto the two biometric failure kinds.
type Verifier struct {
	auth   Authenticator
	logger *slog.Logger
}

type Option func(*Verifier)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

func New(auth Authenticator, opts ...Option) (*Verifier, error) {
	if auth == nil {
		return nil, errors.New("biometric authenticator is required")
	}
	v := &Verifier{auth: auth}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify runs one biometric prompt. It returns a CodeBiometricUnavailable
// error when the policy cannot be evaluated and CodeBiometricNotMatched when
// the prompt ran but did not succeed. Platform causes stay in the chain.
func (v *Verifier) Verify(ctx context.Context, reason string) error {
	if reason == "" {
		reason = DefaultReason
	}

	if err := v.auth.CanEvaluate(ctx); err != nil {
		v.debug(ctx, "biometric policy unavailable", "error", err)
		return dErrors.Wrap(err, dErrors.CodeBiometricUnavailable, "biometric authentication is not available")
	}

	matched, err := v.auth.Evaluate(ctx, reason)
	if err != nil {
		v.debug(ctx, "biometric prompt failed", "error", err)
		return dErrors.Wrap(err, dErrors.CodeBiometricNotMatched, "biometric authentication failed")
	}
	if !matched {
		return dErrors.New(dErrors.CodeBiometricNotMatched, "biometric authentication failed")
	}
	return nil
}

func (v *Verifier) debug(ctx context.Context, msg string, args ...any) {
	if v.logger != nil {
		v.logger.DebugContext(ctx, msg, args...)
	}
}
