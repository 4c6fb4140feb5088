package errs

// Error taxonomy shared by the usecase and handler layers. Lower layers mark
// their errors with one of these so callers can branch with Is.
var (
	ErrValidation         = New("validation failed")
	ErrNotFound           = New("not found")
	ErrConflict           = New("slot conflict")
	ErrReservationTimeout = New("reservation timed out")
	ErrEventTypeInactive  = New("event type inactive")
	ErrInvalidSlot        = New("invalid slot")

	// Host registration
	ErrUsernameTaken = New("username already taken")
	ErrSlugTaken     = New("slug already taken")

	ErrDatabaseOperationFailed = New("database operation failed")
)
