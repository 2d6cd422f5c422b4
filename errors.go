package json5

import (
	"errors"
	"fmt"
)

// Sentinel error kinds from spec.md §7, in the teacher's ErrType/
// ErrParse style (mcvoid-json's json.go).
var (
	// ErrType is returned by the Value accessor methods (AsBool,
	// AsString, ...) when called against the wrong variant.
	ErrType = errors.New("type error")

	// ErrLex covers every tokeniser-level failure: unterminated
	// strings/comments, bad escapes, malformed numbers.
	ErrLex = errors.New("lex error")

	// ErrParse covers every grammar-level failure: unexpected
	// punctuation, missing commas/colons, extra trailing tokens.
	ErrParse = errors.New("parse error")

	// ErrValue covers generator failures: a value tree that cannot be
	// emitted in the requested mode (e.g. Infinity in strict JSON).
	ErrValue = errors.New("value error")
)

// SyntaxError is the concrete error type returned by lex and parse
// failures. It carries the offset of the problem so callers can point
// at it in a large document. Like Token.Start, the offset is a
// code-point index into the decoded input, not a byte offset.
type SyntaxError struct {
	kind   error // one of ErrLex, ErrParse
	msg    string
	offset int
}

// Error returns msg verbatim. spec.md §4.5's message categories are not
// uniformly offset-bearing -- "expected ':'" and "expected ',' or '}'"
// carry no offset at all, matching the reference's message-literal
// asymmetry -- so each call site embeds "at %d" in its own format
// string when its category requires one; Error must not append a
// second one.
func (e *SyntaxError) Error() string {
	return e.msg
}

func (e *SyntaxError) Unwrap() error { return e.kind }

// Offset returns the code-point offset at which the error was detected:
// usually the start of the offending token, or of the enclosing array
// or object when that container is unterminated.
func (e *SyntaxError) Offset() int { return e.offset }

func lexErrorf(offset int, format string, args ...any) error {
	return &SyntaxError{kind: ErrLex, msg: fmt.Sprintf(format, args...), offset: offset}
}

func parseErrorf(offset int, format string, args ...any) error {
	return &SyntaxError{kind: ErrParse, msg: fmt.Sprintf(format, args...), offset: offset}
}

// ValueError is returned by Generate when a value tree cannot be
// emitted in the requested mode, e.g. a non-identifier key requested as
// unquoted, or a non-finite number under strict JSON.
type ValueError struct {
	msg  string
	path string
}

func (e *ValueError) Error() string {
	if e.path == "" {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.path, e.msg)
}

func (e *ValueError) Unwrap() error { return ErrValue }

func valueErrorf(path, format string, args ...any) error {
	return &ValueError{msg: fmt.Sprintf(format, args...), path: path}
}
