package command

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type (
	// Kind identifies the semantic type of an option value.
	Kind int

	// Value is a tagged union holding a single option value of one Kind.
	//
	// Values are produced either from a declared default or by coercing the
	// text a user typed. A nullable option may hold a null Value, which leaves
	// the bound field as a nil pointer.
	Value struct {
		kind Kind
		null bool
		str  string
		b    bool
		i    int
		f    float64
	}
)

const (
	// KindString is a free-form text option. Values are passed through verbatim.
	KindString Kind = iota
	// KindBool is a switch. Its presence on the command line sets it to true.
	KindBool
	// KindInt is a whole number parsed with locale-invariant rules.
	KindInt
	// KindFloat is a floating-point number parsed with locale-invariant rules.
	KindFloat
	// KindEnum is one of a fixed set of names, matched case-insensitively.
	KindEnum
)

// String returns the lower-case name of the kind, as shown in help output.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// StringValue returns a KindString value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue returns a KindBool value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns a KindInt value.
func IntValue(i int) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a KindFloat value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// EnumValue returns a KindEnum value holding the canonical name of a member.
func EnumValue(name string) Value { return Value{kind: KindEnum, str: name} }

// Null returns the null value of the given kind.
func Null(k Kind) Value { return Value{kind: k, null: true} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null value of its kind.
func (v Value) IsNull() bool { return v.null }

// Str returns the text of a KindString or KindEnum value.
func (v Value) Str() string { return v.str }

// Bool returns the payload of a KindBool value.
func (v Value) Bool() bool { return v.b }

// Int returns the payload of a KindInt value.
func (v Value) Int() int { return v.i }

// Float returns the payload of a KindFloat value.
func (v Value) Float() float64 { return v.f }

// String renders the value for help output. Null values render as an empty
// string.
func (v Value) String() string {
	if v.null {
		return ""
	}

	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.str
	}
}

// coercers holds the single coercion function for every option kind.
var coercers = map[Kind]func(opt *Option, raw string) (Value, error){
	KindString: coerceString,
	KindBool:   coerceBool,
	KindInt:    coerceInt,
	KindFloat:  coerceFloat,
	KindEnum:   coerceEnum,
}

// Coerce converts the raw text of a token into a Value of the option's kind.
func Coerce(opt *Option, raw string) (Value, error) {
	fn, ok := coercers[opt.Kind]
	if !ok {
		return Value{}, errors.Errorf("unsupported option kind %d", opt.Kind)
	}

	return fn(opt, raw)
}

func coerceString(_ *Option, raw string) (Value, error) {
	return StringValue(raw), nil
}

func coerceBool(_ *Option, raw string) (Value, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return Value{}, errors.New("expected true or false")
	}

	return BoolValue(b), nil
}

func coerceInt(_ *Option, raw string) (Value, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Value{}, errors.New("expected a whole number")
	}

	return IntValue(i), nil
}

func coerceFloat(_ *Option, raw string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Value{}, errors.New("expected a number")
	}

	return FloatValue(f), nil
}

func coerceEnum(opt *Option, raw string) (Value, error) {
	name := strings.TrimSpace(raw)
	for _, v := range opt.Values {
		if strings.EqualFold(v, name) {
			return EnumValue(v), nil
		}
	}

	return Value{}, errors.Errorf("expected one of: %s", strings.Join(opt.Values, ", "))
}
