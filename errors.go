package sipbridge

import "github.com/ghettovoice/sipbridge/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrListenerActive is returned when an operation requires that
	// no background listener is running.
	ErrListenerActive Error = "listener already active"
)

// Error represents a bridge error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
