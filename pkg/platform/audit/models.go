package audit

import (
	"context"
	"time"

	id "presence/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so sinks can
// apply different retention.
type EventCategory string

const (
	// CategoryCompliance covers events with payroll/HR significance:
	// recorded check-ins and check-outs, account creation.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers failed verifications worth monitoring
	// (biometric mismatch, attempts from outside the office zone).
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity (sign-in, sign-out, guard hits).
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	UserID    id.UserID
	Subject   string
	Action    string
	Decision  string
	Reason    string
	Email     string
	RequestID string
}

// Publisher receives audit events.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

type AuditEvent string

const (
	// Account events
	EventUserCreated        AuditEvent = "user_created"
	EventUserSignedIn       AuditEvent = "user_signed_in"
	EventUserSignedOut      AuditEvent = "user_signed_out"
	EventSignInFailed       AuditEvent = "sign_in_failed"
	EventBiometricsEnrolled AuditEvent = "biometrics_enrolled"

	// Attendance events
	EventCheckInRecorded   AuditEvent = "check_in_recorded"
	EventCheckOutRecorded  AuditEvent = "check_out_recorded"
	EventAttendanceDenied  AuditEvent = "attendance_denied"
	EventAttendanceSkipped AuditEvent = "attendance_skipped"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventUserCreated:      CategoryCompliance,
	EventCheckInRecorded:  CategoryCompliance,
	EventCheckOutRecorded: CategoryCompliance,

	EventSignInFailed:     CategorySecurity,
	EventAttendanceDenied: CategorySecurity,

	EventUserSignedIn:       CategoryOperations,
	EventUserSignedOut:      CategoryOperations,
	EventBiometricsEnrolled: CategoryOperations,
	EventAttendanceSkipped:  CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

func (e AuditEvent) String() string {
	return string(e)
}
