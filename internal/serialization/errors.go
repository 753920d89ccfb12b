package serialization

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrOutOfBounds        = errors.New("parameter extends beyond data section")
	ErrTooManyParameters  = errors.New("too many parameters in file")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type      string // Type of error (e.g., "bad_offset", "duplicate_name")
	Parameter string // Parameter name involved
	Details   string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("%s: parameter %q: %s", e.Type, e.Parameter, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
