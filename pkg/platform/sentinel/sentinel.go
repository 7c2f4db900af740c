package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and lockers return these
// (optionally wrapped) and services translate them into domain codes:
//   - ErrNotFound: record does not exist in the store
//   - ErrConflict: record already exists (duplicate email)
//   - ErrUnavailable: backing service could not be reached
//   - ErrLockNotHeld: a lock release found the key owned by someone else
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
	ErrLockNotHeld = errors.New("lock not held")
)
