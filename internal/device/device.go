// Package device simulates the phone's biometric sensor and location fix so
// the attendance flow can be driven from a terminal or a test.
package device

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"presence/internal/attendance/models"
)

// BiometricMode is the outcome the next prompts will produce.
type BiometricMode string

const (
	BiometricMatch       BiometricMode = "match"
	BiometricMismatch    BiometricMode = "mismatch"
	BiometricUnavailable BiometricMode = "unavailable"
	// BiometricCancel models the user dismissing the prompt.
	BiometricCancel BiometricMode = "cancel"
)

var (
	ErrNoBiometrics    = errors.New("biometry is not available on this device")
	ErrPromptCancelled = errors.New("user cancelled the biometric prompt")
	ErrLocationOff     = errors.New("location services are disabled")
)

// ParseBiometricMode accepts the mode names used by the shell.
func ParseBiometricMode(s string) (BiometricMode, error) {
	switch mode := BiometricMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case BiometricMatch, BiometricMismatch, BiometricUnavailable, BiometricCancel:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown biometric mode %q", s)
	}
}

// Simulator satisfies biometric.Authenticator and location.Provider.
type Simulator struct {
	mu       sync.Mutex
	mode     BiometricMode
	fix      *models.GeoCoordinate
	prompts  int
	fixes    int
	lastText string
}

// New returns a simulator whose sensor matches and whose location is at.
func New(at models.GeoCoordinate) *Simulator {
	return &Simulator{mode: BiometricMatch, fix: &at}
}

func (d *Simulator) SetBiometricMode(mode BiometricMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
}

// SetLocation moves the device. A nil coordinate turns location services off.
func (d *Simulator) SetLocation(at *models.GeoCoordinate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if at == nil {
		d.fix = nil
		return
	}
	c := *at
	d.fix = &c
}

func (d *Simulator) CanEvaluate(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == BiometricUnavailable {
		return ErrNoBiometrics
	}
	return nil
}

func (d *Simulator) Evaluate(ctx context.Context, reason string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prompts++
	d.lastText = reason
	switch d.mode {
	case BiometricMatch:
		return true, nil
	case BiometricCancel:
		return false, ErrPromptCancelled
	default:
		return false, nil
	}
}

func (d *Simulator) CurrentLocation(ctx context.Context) (*models.GeoCoordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fixes++
	if d.fix == nil {
		return nil, ErrLocationOff
	}
	c := *d.fix
	return &c, nil
}

// Stats reports how many prompts and location fixes have been requested.
func (d *Simulator) Stats() (prompts, fixes int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.prompts, d.fixes
}

// LastPrompt is the reason text shown in the most recent prompt.
func (d *Simulator) LastPrompt() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastText
}

// Describe summarises the simulator state for the shell.
func (d *Simulator) Describe() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	loc := "off"
	if d.fix != nil {
		loc = fmt.Sprintf("%.6f,%.6f", d.fix.Latitude, d.fix.Longitude)
	}
	return fmt.Sprintf("biometric=%s location=%s prompts=%d fixes=%d", d.mode, loc, d.prompts, d.fixes)
}
