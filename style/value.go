package style

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Type is the value type of a property.
type Type uint8

// Value types of longhand properties.
const (
	UnknownType Type = iota
	BooleanType
	NumberType
	CharType
	ColorType
	DimensionType
	PositionType // a dimension or `center`
	HAlignType
	VAlignType
)

func (t Type) String() string {
	switch t {
	case BooleanType:
		return "boolean"
	case NumberType:
		return "number"
	case CharType:
		return "char"
	case ColorType:
		return "color"
	case DimensionType:
		return "dimension"
	case PositionType:
		return "position"
	case HAlignType:
		return "halign"
	case VAlignType:
		return "valign"
	}
	return "unknown"
}

// Value is a typed property value. The zero value is an unset value, which
// hosts interpret as "reset to the host's own default".
// Values are comparable with ==.
type Value struct {
	typ   Type
	flag  bool
	num   int
	str   string
	dimen DimenT
}

// Unset is the unset value.
var Unset = Value{}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{typ: BooleanType, flag: b}
}

// Number creates a number value.
func Number(n int) Value {
	return Value{typ: NumberType, num: n}
}

// Char creates a char value from the first rune of s.
func Char(s string) Value {
	r, _ := utf8.DecodeRuneInString(s)
	return Value{typ: CharType, str: string(r)}
}

// Color creates a color value. c should be normalized (see NormalizeColor).
func Color(c string) Value {
	return Value{typ: ColorType, str: c}
}

// Dimension creates a value of type dimension or position.
func Dimension(d DimenT) Value {
	if d.flags&dimenCenter > 0 {
		return Value{typ: PositionType, dimen: d}
	}
	return Value{typ: DimensionType, dimen: d}
}

// HAlign creates a horizontal alignment value: left, center or right.
func HAlign(a string) Value {
	return Value{typ: HAlignType, str: a}
}

// VAlign creates a vertical alignment value: top, middle or bottom.
func VAlign(a string) Value {
	return Value{typ: VAlignType, str: a}
}

// IsUnset is true for the unset value.
func (v Value) IsUnset() bool {
	return v.typ == UnknownType
}

// Type returns the type of v.
func (v Value) Type() Type {
	return v.typ
}

// Bool returns the boolean of a boolean value.
func (v Value) Bool() (bool, bool) {
	return v.flag, v.typ == BooleanType
}

// Int returns the integer of a number value or of a fixed dimension.
func (v Value) Int() (int, bool) {
	switch v.typ {
	case NumberType:
		return v.num, true
	case DimensionType, PositionType:
		var n int
		if m := v.dimen.Match(); m.Just(&n) != nil {
			return n, true
		}
	}
	return 0, false
}

// Dimen returns the dimension of a dimension or position value.
func (v Value) Dimen() (DimenT, bool) {
	return v.dimen, v.typ == DimensionType || v.typ == PositionType
}

// Text returns the text of char, color and alignment values.
func (v Value) Text() (string, bool) {
	switch v.typ {
	case CharType, ColorType, HAlignType, VAlignType:
		return v.str, true
	}
	return "", false
}

func (v Value) String() string {
	switch v.typ {
	case BooleanType:
		return strconv.FormatBool(v.flag)
	case NumberType:
		return strconv.Itoa(v.num)
	case DimensionType, PositionType:
		return v.dimen.String()
	case UnknownType:
		return "unset"
	}
	return v.str
}

// --- Type predicates and casts ---------------------------------------------

var numberPattern = regexp.MustCompile(`^[-+]?\d+$`)

// TestValue checks if the raw value s is valid for type t.
func TestValue(t Type, s string) bool {
	_, ok := CastValue(t, s)
	return ok
}

// CastValue converts the raw value s to a value of type t. Casting only
// converts when unambiguous; ok is false if s is not valid for t.
func CastValue(t Type, s string) (Value, bool) {
	switch t {
	case BooleanType:
		switch strings.ToLower(s) {
		case "true":
			return Bool(true), true
		case "false":
			return Bool(false), true
		}
	case NumberType:
		if numberPattern.MatchString(s) {
			if n, err := strconv.Atoi(s); err == nil {
				return Number(n), true
			}
		}
	case CharType:
		if utf8.RuneCountInString(s) == 1 {
			return Char(s), true
		}
	case ColorType:
		if c, ok := NormalizeColor(s); ok {
			return Color(c), true
		}
	case DimensionType:
		if d, ok := ParseDimen(s, false); ok {
			return Dimension(d), true
		}
	case PositionType:
		if d, ok := ParseDimen(strings.ToLower(s), true); ok {
			v := Dimension(d)
			v.typ = PositionType
			return v, true
		}
	case HAlignType:
		switch a := strings.ToLower(s); a {
		case "left", "center", "right":
			return HAlign(a), true
		}
	case VAlignType:
		switch a := strings.ToLower(s); a {
		case "top", "middle", "bottom":
			return VAlign(a), true
		}
	}
	return Unset, false
}
