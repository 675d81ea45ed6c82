package errors

import (
	"errors"
	"fmt"
)

// Category classifies a parse failure. Every failure the library reports
// falls into exactly one category; none of them is transient, so callers
// should never retry without changing the input.
type Category string

const (
	// CategoryFile covers missing, unreadable or permission-denied paths.
	CategoryFile Category = "file"
	// CategoryEncoding covers bytes that do not decode as UTF-8.
	CategoryEncoding Category = "encoding"
	// CategoryFormat covers structural problems: missing sentinel,
	// non-numeric data tokens, ragged rows.
	CategoryFormat Category = "format"
	// CategorySerialization covers metadata values that cannot be
	// represented in the output serialization.
	CategorySerialization Category = "serialization"
)

// ParseError is the structured error type for spectrum file failures.
// Line is the one-based file line the failure was detected on, or 0 when
// no single line applies.
type ParseError struct {
	Category Category    `json:"category"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Line     int         `json:"line,omitempty"`
	Details  interface{} `json:"details,omitempty"`
	cause    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// New creates a ParseError with the given category, code and message.
func New(category Category, code, message string) *ParseError {
	return &ParseError{Category: category, Code: code, Message: message}
}

// Error codes.
const (
	CodeFileNotFound    = "FILE_NOT_FOUND"
	CodeFileUnreadable  = "FILE_UNREADABLE"
	CodeInvalidEncoding = "INVALID_ENCODING"
	CodeSentinelMissing = "SENTINEL_MISSING"
	CodeBadNumber       = "BAD_NUMBER"
	CodeRaggedRow       = "RAGGED_ROW"
	CodeUnrepresentable = "UNREPRESENTABLE_VALUE"
)

// FileNotFound wraps a missing-path failure.
func FileNotFound(path string, cause error) *ParseError {
	return &ParseError{
		Category: CategoryFile,
		Code:     CodeFileNotFound,
		Message:  fmt.Sprintf("spectrum file not found: %s", path),
		Details:  path,
		cause:    cause,
	}
}

// FileUnreadable wraps an open or read failure on an existing path.
func FileUnreadable(path string, cause error) *ParseError {
	return &ParseError{
		Category: CategoryFile,
		Code:     CodeFileUnreadable,
		Message:  fmt.Sprintf("spectrum file unreadable: %s", path),
		Details:  path,
		cause:    cause,
	}
}

// InvalidEncoding reports bytes on the given line that are not valid UTF-8.
func InvalidEncoding(line int) *ParseError {
	return &ParseError{
		Category: CategoryEncoding,
		Code:     CodeInvalidEncoding,
		Message:  "file is not valid UTF-8 text",
		Line:     line,
	}
}

// SentinelMissing reports a file whose data-block sentinel never appeared.
func SentinelMissing(sentinel string) *ParseError {
	return &ParseError{
		Category: CategoryFormat,
		Code:     CodeSentinelMissing,
		Message:  fmt.Sprintf("data sentinel %q not found in file", sentinel),
		Details:  sentinel,
	}
}

// BadNumber reports a data token that does not parse as a float.
func BadNumber(line int, token string, cause error) *ParseError {
	return &ParseError{
		Category: CategoryFormat,
		Code:     CodeBadNumber,
		Message:  fmt.Sprintf("non-numeric data token %q", token),
		Line:     line,
		Details:  token,
		cause:    cause,
	}
}

// RaggedRow reports a data row whose column count differs from the file's.
func RaggedRow(line, got, want int) *ParseError {
	return &ParseError{
		Category: CategoryFormat,
		Code:     CodeRaggedRow,
		Message:  fmt.Sprintf("data row has %d columns, expected %d", got, want),
		Line:     line,
	}
}

// Unrepresentable reports a metadata value the serializer cannot emit.
func Unrepresentable(key string, cause error) *ParseError {
	return &ParseError{
		Category: CategorySerialization,
		Code:     CodeUnrepresentable,
		Message:  fmt.Sprintf("metadata value for %q is not serializable", key),
		Details:  key,
		cause:    cause,
	}
}

// is reports whether err is a ParseError of the given category.
func is(err error, c Category) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Category == c
}

// IsFile reports whether err is a file error.
func IsFile(err error) bool { return is(err, CategoryFile) }

// IsEncoding reports whether err is an encoding error.
func IsEncoding(err error) bool { return is(err, CategoryEncoding) }

// IsFormat reports whether err is a format error.
func IsFormat(err error) bool { return is(err, CategoryFormat) }

// IsSerialization reports whether err is a serialization error.
func IsSerialization(err error) bool { return is(err, CategorySerialization) }

// LineOf returns the one-based line number carried by err, or 0.
func LineOf(err error) int {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
