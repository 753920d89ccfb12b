package serialization

import (
	"fmt"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize       = 16 * 1024 * 1024 // 16MB - maximum header size
	MaxParameterCount   = 1_000_000        // Maximum number of parameters in a file
	MaxParameterNameLen = 1024             // Maximum parameter name length
)

// ValidateParameterName rejects empty, oversized and path-like names.
func ValidateParameterName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty parameter name"}
	}
	if len(name) > MaxParameterNameLen {
		return &ValidationError{
			Type:      "name_too_long",
			Parameter: name,
			Details:   fmt.Sprintf("length %d > max %d", len(name), MaxParameterNameLen),
		}
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\\x00") {
		return &ValidationError{
			Type:      "invalid_name",
			Parameter: name,
			Details:   "contains a path separator, '..' or a null byte",
		}
	}
	return nil
}

// ValidateHeader checks parameter names and layout against a data section of
// dataSize bytes. Parameters must be unique and packed in header order.
func ValidateHeader(h *Header, dataSize int64) error {
	if len(h.Parameters) > MaxParameterCount {
		return ErrTooManyParameters
	}
	if want := int64(len(h.Parameters)) * ValueSize; dataSize != want {
		return &ValidationError{
			Type:    "size_mismatch",
			Details: fmt.Sprintf("data section has %d bytes, %d parameters need %d", dataSize, len(h.Parameters), want),
		}
	}

	seen := make(map[string]struct{}, len(h.Parameters))
	for i, p := range h.Parameters {
		if err := ValidateParameterName(p.Name); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return &ValidationError{Type: "duplicate_name", Parameter: p.Name, Details: "appears more than once"}
		}
		seen[p.Name] = struct{}{}

		if p.Offset+ValueSize > dataSize {
			return ErrOutOfBounds
		}
		if want := int64(i) * ValueSize; p.Offset != want {
			return &ValidationError{
				Type:      "bad_offset",
				Parameter: p.Name,
				Details:   fmt.Sprintf("offset %d, expected %d", p.Offset, want),
			}
		}
	}
	return nil
}
