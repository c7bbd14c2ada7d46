package errors

import (
	"strings"
	"unicode"
)

// ValidateGraphName validates a graph name for use in SGF type lines and
// program header comments.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No whitespace (SGF fields are whitespace-delimited)
//   - No control characters (names are echoed into LP comment lines)
//   - Maximum length of 256 characters
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "graph name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "graph name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "graph name cannot contain whitespace: %q", name)
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "graph name contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path.
// It rejects empty paths and paths with embedded null bytes; everything else
// is left to the operating system.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}

	return nil
}
