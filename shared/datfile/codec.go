package datfile

import (
	"encoding/xml"
	"image"
	"regexp"
	"strconv"
)

var positionPattern = regexp.MustCompile(`^\{X:(\d+) Y:(\d+)\}$`)

// ParseBool decodes the game's boolean tokens. Only "True" and "False" are
// accepted; the match is case-sensitive.
func ParseBool(s string) (bool, error) {
	switch s {
	case "True":
		return true, nil
	case "False":
		return false, nil
	}
	return false, &SchemaError{Index: -1, Value: s, Err: ErrBadBool}
}

// ParsePoint decodes a position token such as "{X:12 Y:3}".
func ParsePoint(s string) (image.Point, error) {
	m := positionPattern.FindStringSubmatch(s)
	if m == nil {
		return image.Point{}, &SchemaError{Index: -1, Value: s, Err: ErrBadPoint}
	}
	x, err := strconv.Atoi(m[1])
	if err != nil {
		return image.Point{}, &SchemaError{Index: -1, Value: s, Err: ErrBadPoint}
	}
	y, err := strconv.Atoi(m[2])
	if err != nil {
		return image.Point{}, &SchemaError{Index: -1, Value: s, Err: ErrBadPoint}
	}
	return image.Pt(x, y), nil
}

// ParseInt decodes a decimal integer attribute. An empty value is malformed,
// not absent.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &SchemaError{Index: -1, Value: s, Err: ErrBadInt}
	}
	return v, nil
}

// Int is an attribute value decoded with ParseInt.
type Int int

func (i *Int) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := ParseInt(attr.Value)
	if err != nil {
		return withAttr(err, attr.Name.Local)
	}
	*i = Int(v)
	return nil
}

// Bool is an attribute value decoded with ParseBool.
type Bool bool

func (b *Bool) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := ParseBool(attr.Value)
	if err != nil {
		return withAttr(err, attr.Name.Local)
	}
	*b = Bool(v)
	return nil
}

// Point is an attribute value decoded with ParsePoint.
type Point image.Point

func (p *Point) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := ParsePoint(attr.Value)
	if err != nil {
		return withAttr(err, attr.Name.Local)
	}
	*p = Point(v)
	return nil
}

func withAttr(err error, attr string) error {
	if se, ok := err.(*SchemaError); ok {
		se.Attr = attr
	}
	return err
}
