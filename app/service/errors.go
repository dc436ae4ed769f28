// Package service implements the operation entry points of the backend.
// Every operation takes an explicit actor (no ambient current-user
// state) and resolves access control before touching storage.
package service

import (
	"errors"
	"fmt"
)

// ErrAuthRequired tells the caller to redirect to the login flow,
// preserving the originally requested location for the post-login
// return.
var ErrAuthRequired = errors.New("authentication required")

// ErrNotFound covers both true absence and ownership mismatch. The two
// are deliberately indistinguishable so a non-owner cannot probe
// whether a record exists.
var ErrNotFound = errors.New("not found")

// ValidationError is a field-level rejection: nothing was persisted and
// the caller should re-render the form with the original input plus the
// message attached to Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
