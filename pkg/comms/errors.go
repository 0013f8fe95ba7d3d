package comms

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed command payload. It is surfaced to the
// originating session only and never touches registry or router state.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Reason
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports an operation referencing an unknown device id. At the
// realtime command boundary it is a benign no-op; only the CRUD surface maps
// it to a 404.
type NotFoundError struct {
	DeviceID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("device %q not found", e.DeviceID)
}

func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
