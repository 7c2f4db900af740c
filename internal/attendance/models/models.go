package models

import (
	"time"

	id "presence/pkg/domain"
	dErrors "presence/pkg/domain-errors"
)

// User is the account bound to a session. The session owns the record; the
// attendance gate only updates the embedded AttendanceState on success.
type User struct {
	ID                      id.UserID
	Email                   string
	Name                    string
	HasRegisteredBiometrics bool
	CreatedAt               time.Time
	AttendanceState
}

// GeoCoordinate is a latitude/longitude pair in degrees.
type GeoCoordinate struct {
	Latitude  float64
	Longitude float64
}

// OfficeZone is the circular area in which attendance may be recorded.
type OfficeZone struct {
	Center       GeoCoordinate
	RadiusMeters float64
}

// Direction distinguishes the two attendance operations.
type Direction string

const (
	DirectionCheckIn  Direction = "check_in"
	DirectionCheckOut Direction = "check_out"
)

func (d Direction) String() string {
	return string(d)
}

// Outcome is the terminal state of an attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Attempt describes one evaluation of the gate. It is never persisted; it
// lives for the duration of a single CheckIn/CheckOut call.
type Attempt struct {
	ID          id.AttemptID
	UserID      id.UserID
	Direction   Direction
	EvaluatedAt time.Time
	Outcome     Outcome
	FailureCode dErrors.Code
}

// Succeed marks the attempt committed.
func (a *Attempt) Succeed() {
	a.Outcome = OutcomeSuccess
	a.FailureCode = ""
}

// Fail marks the attempt failed with the code carried by err.
func (a *Attempt) Fail(err error) {
	a.Outcome = OutcomeFailure
	a.FailureCode = dErrors.CodeOf(err)
}

// Status is a read-only view of today's attendance for the current user.
type Status struct {
	UserID        id.UserID
	Now           time.Time
	CheckedIn     bool
	CheckedOut    bool
	LastCheckIn   *time.Time
	LastCheckOut  *time.Time
	BiometricsSet bool
}
