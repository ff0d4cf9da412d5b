package godto

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNotAMap         = "not_a_map"
	CodeNotAList        = "not_a_list"
	CodeLengthMismatch  = "length_mismatch"
	CodeRequired        = "required"
	CodeUnknownKey      = "unknown_key"
	CodeLiteralMismatch = "literal_mismatch"
	CodeEnumNoMatch     = "enum_no_match"
	CodeConversion      = "conversion"
)

// Issue represents a single validation failure.
type Issue struct {
	Path    Path   // Structural location, e.g. data["items"][2]["price"].
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying converter error.
	// Params carries structured parameters (e.g., {"want": 6, "got": 5})
	// for i18n and observability.
	Params map[string]any
}

// Error renders the message with the bracketed path suffix when the issue is
// located below the input root.
func (it Issue) Error() string {
	if len(it.Path) == 0 {
		return it.Message
	}
	return it.Message + " @ " + it.Path.String()
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (it Issue) Unwrap() error { return it.Cause }

// Issues is a non-empty ordered collection of validation failures that
// implements error. Evaluation always surfaces failures as Issues, never as a
// bare Issue; a single leaf failure is normalized into a one-element slice.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. literal_mismatch at data["items"][2]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally. A bare
// Issue is normalized into a one-element Issues.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var it Issue
	if errors.As(err, &it) {
		return Issues{it}, true
	}
	return nil, false
}

// SchemaError reports a schema-authoring mistake. It is returned only while
// compiling a schema, never from evaluation, so callers can tell programmer
// errors apart from invalid data.
type SchemaError struct {
	msg string
}

// NewSchemaError builds a SchemaError with a formatted message.
func NewSchemaError(format string, args ...any) *SchemaError {
	return &SchemaError{msg: fmt.Sprintf(format, args...)}
}

func (e *SchemaError) Error() string { return "godto: " + e.msg }

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
