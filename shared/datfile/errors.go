package datfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOpen reports a data file that could not be opened or read from disk.
	ErrOpen = errors.New("could not open data file")
	// ErrDecompress reports a data file that is not a valid zlib stream.
	ErrDecompress = errors.New("could not decompress data file")
	// ErrSchema reports a document that does not match the expected schema.
	ErrSchema = errors.New("schema violation")

	ErrMissingAttr    = errors.New("missing required attribute")
	ErrMissingElement = errors.New("missing required element")
	ErrNotPositive    = errors.New("must be positive")
	ErrBadInt         = errors.New("expected a decimal integer")
	ErrBadBool        = errors.New(`expected "True" or "False"`)
	ErrBadPoint       = errors.New("expected position of the form {X:0 Y:0}")
)

// SchemaError describes a required attribute or element that is absent or
// malformed. Element and Index are empty/-1 when the failure was raised while
// decoding a single attribute value.
type SchemaError struct {
	Element string
	Index   int
	Attr    string
	Value   string
	Err     error
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("schema: ")
	if e.Element != "" {
		b.WriteString(e.Element)
		if e.Index >= 0 {
			fmt.Fprintf(&b, "[%d]", e.Index)
		}
	}
	if e.Attr != "" {
		if e.Element != "" {
			b.WriteByte(' ')
		}
		b.WriteString("@" + e.Attr)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Element != "" || e.Attr != "" || e.Value != "" {
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *SchemaError) Unwrap() error { return e.Err }

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
