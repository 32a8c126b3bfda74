package domain

import "errors"

// Sentinel errors of the auth error taxonomy. Validation failures never
// reach the provider; everything else surfaces to the caller as a single
// human-readable message.
var (
	// ErrInvalidCredentials carries the user-facing message the dashboard
	// shows when the provider rejects a password sign-in.
	ErrInvalidCredentials = errors.New("Account not exist")

	// ErrUnverifiedEmail is returned when the provider reports an
	// unconfirmed email address.
	ErrUnverifiedEmail = errors.New("please verify your email address before signing in")

	// ErrDuplicateEmail is returned both by the local pre-check and by the
	// provider-mapped "already registered" failure, so callers see one
	// consistent error regardless of which check caught it.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	ErrForbidden = errors.New("access forbidden")
)

// ValidationError reports a sign-in/sign-up input violation detected locally,
// before any provider call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ProviderError wraps any provider failure that has no dedicated mapping.
// The provider's original message passes through verbatim.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }

// WrapProvider wraps err as a ProviderError unless it already is one.
func WrapProvider(err error) error {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return &ProviderError{Err: err}
}
