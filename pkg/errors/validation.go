package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Request size limits for free-text fields arriving over HTTP. The renderer
// itself accepts input of any length.
const (
	MaxProblemLength    = 2000
	MaxSystemTypeLength = 200
)

// MissingProblemMessage is the inline message shown when generation is
// attempted without a problem statement.
const MissingProblemMessage = "Type one sentence first."

// ValidateProblem rejects an empty or whitespace-only problem statement with
// ErrCodeMissingProblem. Any other text is renderable.
func ValidateProblem(problem string) error {
	if strings.TrimSpace(problem) == "" {
		return New(ErrCodeMissingProblem, MissingProblemMessage)
	}
	return nil
}

// CheckRequestSize bounds the system type and problem of a network request
// with ErrCodeInputTooLong.
func CheckRequestSize(systemType, problem string) error {
	if utf8.RuneCountInString(problem) > MaxProblemLength {
		return New(ErrCodeInputTooLong, "problem statement too long (max %d characters)", MaxProblemLength)
	}
	if utf8.RuneCountInString(systemType) > MaxSystemTypeLength {
		return New(ErrCodeInputTooLong, "system type too long (max %d characters)", MaxSystemTypeLength)
	}
	return nil
}

// ValidatePath validates a bundle file path for safety.
// It prevents path traversal when a bundle is written to disk or a file is
// looked up by path over HTTP.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
