package letter

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the failure stages of letter generation.
type ErrorKind int

const (
	// KindValidation means the document text failed the pre-extraction
	// checks for its dialect.
	KindValidation ErrorKind = iota
	// KindContent means a required anchor or field could not be found
	// in otherwise valid text.
	KindContent
	// KindFormatting means extracted fields could not be rendered into
	// letter form.
	KindFormatting
	// KindGeneration means the final letter could not be composed.
	KindGeneration
)

// String returns the kind's name as used in error output.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindContent:
		return "content"
	case KindFormatting:
		return "formatting"
	case KindGeneration:
		return "generation"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by extraction, formatting and
// composition. Pattern names the anchor that failed to match, when one
// exists; Document carries the originating file path when known.
type Error struct {
	Kind     ErrorKind
	Message  string
	Pattern  string
	Document string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Pattern != "" {
		msg += fmt.Sprintf(" (pattern %q)", e.Pattern)
	}
	if e.Document != "" {
		msg += fmt.Sprintf(" in %s", e.Document)
	}
	return msg
}

// WithDocument returns a copy of the error annotated with the file it
// came from.
func (e *Error) WithDocument(path string) *Error {
	clone := *e
	clone.Document = path
	return &clone
}

// ValidationError reports text that fails dialect validation.
func ValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// ContentError reports a missing anchor or field; pattern names what
// was searched for.
func ContentError(pattern, format string, args ...any) *Error {
	return &Error{Kind: KindContent, Pattern: pattern, Message: fmt.Sprintf(format, args...)}
}

// FormattingError reports fields that cannot be rendered.
func FormattingError(format string, args ...any) *Error {
	return &Error{Kind: KindFormatting, Message: fmt.Sprintf(format, args...)}
}

// GenerationError reports a failed letter composition.
func GenerationError(format string, args ...any) *Error {
	return &Error{Kind: KindGeneration, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err when it is a letter error, and ok
// reporting whether it was one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
