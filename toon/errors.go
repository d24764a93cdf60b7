package toon

import (
	"errors"
	"fmt"
)

// Sentinel error kinds surfaced at the API boundary. Every
// [DecodeError] wraps exactly one of these, so callers use errors.Is to
// branch on error kind without parsing message text.
var (
	// ErrEmptyInput indicates the decoder was given blank or empty input.
	ErrEmptyInput = errors.New("toon: empty input")
	// ErrUnterminatedString indicates a quoted string or key has no
	// closing quote before the end of its line.
	ErrUnterminatedString = errors.New("toon: unterminated string")
	// ErrInvalidEscape indicates a backslash is followed by a character
	// other than n, t, r, \, or ".
	ErrInvalidEscape = errors.New("toon: invalid escape sequence")
	// ErrMissingColon indicates a key-value line has no colon terminating
	// the key.
	ErrMissingColon = errors.New("toon: missing colon after key")
	// ErrInvalidHeader indicates an array header's bracket, brace, or
	// length segment could not be parsed.
	ErrInvalidHeader = errors.New("toon: invalid array header")
	// ErrLengthMismatch indicates a declared array length does not match
	// the number of elements actually present (inline, tabular, or list
	// form).
	ErrLengthMismatch = errors.New("toon: array length mismatch")
	// ErrRowWidthMismatch indicates a tabular row has a different number
	// of fields than the header's field list.
	ErrRowWidthMismatch = errors.New("toon: tabular row width mismatch")
	// ErrIndentationNotMultiple indicates (strict mode) a line's leading
	// space count is not an exact multiple of the configured indent.
	ErrIndentationNotMultiple = errors.New("toon: indentation is not a multiple of the configured indent")
	// ErrTabInIndentation indicates (strict mode) a tab character
	// appeared within a line's leading whitespace.
	ErrTabInIndentation = errors.New("toon: tab character in indentation")
	// ErrBlankLineInsideArray indicates (strict mode) a blank line
	// appeared between the first and last row/item of an array.
	ErrBlankLineInsideArray = errors.New("toon: blank line inside array")
	// ErrExtraRowsAfterDeclaredLength indicates (strict mode) more
	// tabular rows were present than the header declared.
	ErrExtraRowsAfterDeclaredLength = errors.New("toon: extra rows after declared length")
	// ErrExtraItemsAfterDeclaredLength indicates (strict mode) more list
	// items were present than the header declared.
	ErrExtraItemsAfterDeclaredLength = errors.New("toon: extra items after declared length")
	// ErrUnexpectedCharactersAfterQuote indicates trailing characters
	// followed a quoted string's closing quote.
	ErrUnexpectedCharactersAfterQuote = errors.New("toon: unexpected characters after closing quote")

	// ErrInvalidOption indicates an EncodeOptions/DecodeOptions value was
	// out of range (e.g. a non-positive indent or unsupported delimiter).
	ErrInvalidOption = errors.New("toon: invalid option")
	// ErrUnsupportedValue names a Go value with no representation in the
	// TOON data model. Normalize does not return it: it maps such values
	// to Null.
	ErrUnsupportedValue = errors.New("toon: unsupported value")
)

// DecodeError is a structured decode-time error carrying the failing
// sentinel Kind plus positional context and an actionable hint. The
// hint is non-correctness metadata: callers should branch on Kind (via
// errors.Is), not on Hint's text.
type DecodeError struct {
	Kind   error
	Line   int
	Column int
	Hint   string
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s at line %d", e.Kind, e.Line)
	if e.Column > 0 {
		msg = fmt.Sprintf("%s, column %d", msg, e.Column)
	}

	if e.Hint != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Hint)
	}

	return msg
}

// Unwrap returns the sentinel Kind so errors.Is(err, ErrXxx) works.
func (e *DecodeError) Unwrap() error { return e.Kind }

func newDecodeError(kind error, line int, hint string) *DecodeError {
	return &DecodeError{Kind: kind, Line: line, Hint: hint}
}

// EncodeError reports an encode-time failure. The encoder is total over
// Values; this only surfaces for invalid options (from [NewEncoder] and
// [Encode]) and for a JSON marshalling failure in [ToJSON].
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("toon: encode: %v", e.Err) }

func (e *EncodeError) Unwrap() error { return e.Err }
