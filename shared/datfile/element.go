package datfile

import "strconv"

// Element converts the decoded attributes of one schema element. Schema
// structs hold required attributes as pointers so that absence is visible;
// Field dereferences them and remembers the first one that was missing.
type Element struct {
	Name  string
	Index int
	err   error
}

// NewElement starts converting the index-th element called name. Use a
// negative index for singleton elements.
func NewElement(name string, index int) *Element {
	return &Element{Name: name, Index: index}
}

// Field returns *v, or records a missing-attribute error on e and returns the
// zero value when v is nil.
func Field[T any](e *Element, attr string, v *T) T {
	if v == nil {
		e.Fail(attr, "", ErrMissingAttr)
		var zero T
		return zero
	}
	return *v
}

// Optional returns *v, or def when the attribute was absent.
func Optional[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// Child records a missing-element error for the named child when present is
// false.
func (e *Element) Child(name string, present bool) {
	if present || e.err != nil {
		return
	}
	e.err = &SchemaError{Element: e.Name, Index: e.Index, Value: name, Err: ErrMissingElement}
}

// Positive records an error against attr when v is not positive.
func (e *Element) Positive(attr string, v int) {
	if v <= 0 {
		e.Fail(attr, strconv.Itoa(v), ErrNotPositive)
	}
}

// Fail records err against attr unless an earlier failure was recorded.
func (e *Element) Fail(attr, value string, err error) {
	if e.err != nil {
		return
	}
	e.err = &SchemaError{Element: e.Name, Index: e.Index, Attr: attr, Value: value, Err: err}
}

// Err returns the first failure recorded on e.
func (e *Element) Err() error {
	return e.err
}
