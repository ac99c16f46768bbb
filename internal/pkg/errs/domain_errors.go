package errs

import "errors"

// Categories. Concrete errors are marked with one of these so the handler layer
// can pick a status code without knowing every sentinel.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Parking lot errors
var (
	ErrLotNotFound = Mark(New("parking lot not found"), ErrNotFound)
)

// Parking spot errors
var (
	ErrSpotNotFound      = Mark(New("parking slot not found"), ErrNotFound)
	ErrNoSpotsForLot     = Mark(New("no slots found for this parking lot"), ErrNotFound)
	ErrSpotLabelConflict = Mark(New("spot number already exists in this parking lot"), ErrConflict)
)

// Auth errors
var (
	ErrInvalidCredentials = Mark(New("invalid email or password"), ErrUnauthenticated)
	ErrUserNotFound       = Mark(New("user not found"), ErrNotFound)
)
