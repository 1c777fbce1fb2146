package command

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type (
	// Option describes a single named option accepted by a command.
	Option struct {
		// Long is the long name, matched as --<Long>.
		Long string

		// Short is the optional short alias, matched as -<Short>.
		Short string

		// Kind is the semantic type values are coerced to.
		Kind Kind

		// Nullable options are bound to pointer fields that stay nil when unset.
		Nullable bool

		// Required options must be supplied on the command line.
		Required bool

		// Default is assigned when the option is not supplied.
		Default Value

		// Help is the free-text description shown in help output.
		Help string

		// Values lists the accepted names of an enum option.
		Values []string

		// SuppressValuesHelp hides the list of accepted values in help output.
		SuppressValuesHelp bool

		defaultRaw any
		hasDefault bool
		assign     func(Value)
	}

	// OptionFn configures an Option while it is being declared.
	OptionFn func(*Option)

	// Schema is the ordered set of options a command accepts.
	//
	// A Schema is populated by an options type's Define method. Each declaration
	// binds an option to a field of the options instance, so the same Schema
	// both describes the command and knows how to populate a fresh instance.
	Schema struct {
		options []*Option
		byLong  map[string]*Option
		byShort map[string]*Option
		errs    []string
	}
)

// Required marks an option as mandatory.
func Required() OptionFn {
	return func(o *Option) { o.Required = true }
}

// Help sets the help text of an option.
func Help(text string) OptionFn {
	return func(o *Option) { o.Help = text }
}

// Default declares the value assigned when the option is not supplied. The
// value must match the declared type of the option (for enums, a member of
// the enum); a mismatch is reported when the registry is built.
func Default(v any) OptionFn {
	return func(o *Option) {
		o.defaultRaw = v
		o.hasDefault = true
	}
}

// SuppressValuesHelp hides the accepted values of an option in help output.
func SuppressValuesHelp() OptionFn {
	return func(o *Option) { o.SuppressValuesHelp = true }
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{
		byLong:  make(map[string]*Option),
		byShort: make(map[string]*Option),
	}
}

// Options returns the declared options in declaration order.
func (s *Schema) Options() []*Option {
	return s.options
}

// Lookup finds an option by long name. Matching is case-insensitive.
func (s *Schema) Lookup(long string) (*Option, bool) {
	o, ok := s.byLong[strings.ToLower(long)]
	return o, ok
}

// LookupShort finds an option by short alias. Matching is case-insensitive.
func (s *Schema) LookupShort(short string) (*Option, bool) {
	o, ok := s.byShort[strings.ToLower(short)]
	return o, ok
}

// Err returns the problems found while the schema was declared, such as
// duplicate names or defaults of the wrong type.
func (s *Schema) Err() error {
	if len(s.errs) == 0 {
		return nil
	}

	return errors.New(strings.Join(s.errs, "; "))
}

// String declares a string option bound to p.
//
// Example:
//
//	func (o *CreateOptions) Define(s *command.Schema) {
//		s.String(&o.Table, "table", "t", command.Required(), command.Help("The table name"))
//	}
func (s *Schema) String(p *string, long, short string, opts ...OptionFn) {
	s.add(&Option{Long: long, Short: short, Kind: KindString}, opts, func(v Value) {
		*p = v.Str()
	})
}

// NullableString declares a string option bound to a pointer field that
// stays nil unless the option is supplied or has a default.
func (s *Schema) NullableString(p **string, long, short string, opts ...OptionFn) {
	s.add(&Option{Long: long, Short: short, Kind: KindString, Nullable: true}, opts, func(v Value) {
		if v.IsNull() {
			*p = nil
			return
		}
		str := v.Str()
		*p = &str
	})
}

// Bool declares a switch bound to p.
func (s *Schema) Bool(p *bool, long, short string, opts ...OptionFn) {
	s.add(&Option{Long: long, Short: short, Kind: KindBool}, opts, func(v Value) {
		*p = v.Bool()
	})
}

// Int declares a whole number option bound to p.
func (s *Schema) Int(p *int, long, short string, opts ...OptionFn) {
	s.add(&Option{Long: long, Short: short, Kind: KindInt}, opts, func(v Value) {
		*p = v.Int()
	})
}

// NullableInt declares a whole number option bound to a pointer field.
func (s *Schema) NullableInt(p **int, long, short string, opts ...OptionFn) {
	s.add(&Option{Long: long, Short: short, Kind: KindInt, Nullable: true}, opts, func(v Value) {
		if v.IsNull() {
			*p = nil
			return
		}
		i := v.Int()
		*p = &i
	})
}

// Float declares a floating-point option bound to p.
func (s *Schema) Float(p *float64, long, short string, opts ...OptionFn) {
	s.add(&Option{Long: long, Short: short, Kind: KindFloat}, opts, func(v Value) {
		*p = v.Float()
	})
}

// NullableFloat declares a floating-point option bound to a pointer field.
func (s *Schema) NullableFloat(p **float64, long, short string, opts ...OptionFn) {
	s.add(&Option{Long: long, Short: short, Kind: KindFloat, Nullable: true}, opts, func(v Value) {
		if v.IsNull() {
			*p = nil
			return
		}
		f := v.Float()
		*p = &f
	})
}

// Enum declares an option whose value is one of members, bound to p. Members
// are matched case-insensitively by their String form.
//
// Example:
//
//	command.Enum(s, &o.Type, AttributeTypes, "type", "at", command.Default(AttributeTypeString))
func Enum[T fmt.Stringer](s *Schema, p *T, members []T, long, short string, opts ...OptionFn) {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.String()
	}

	s.add(&Option{Long: long, Short: short, Kind: KindEnum, Values: names}, opts, func(v Value) {
		for _, m := range members {
			if m.String() == v.Str() {
				*p = m
				return
			}
		}
	})
}

func (s *Schema) add(o *Option, opts []OptionFn, assign func(Value)) {
	for _, fn := range opts {
		fn(o)
	}
	o.assign = assign

	if o.Long == "" {
		s.errs = append(s.errs, "an option must have a long name")
		return
	}

	long := strings.ToLower(o.Long)
	if _, exists := s.byLong[long]; exists {
		s.errs = append(s.errs, fmt.Sprintf("duplicate option name --%s", o.Long))
		return
	}

	short := strings.ToLower(o.Short)
	if short != "" {
		if _, exists := s.byShort[short]; exists {
			s.errs = append(s.errs, fmt.Sprintf("duplicate short alias -%s for option --%s", o.Short, o.Long))
			return
		}
	}

	def, err := o.defaultValue()
	if err != nil {
		s.errs = append(s.errs, fmt.Sprintf("option --%s: %v", o.Long, err))
		return
	}
	o.Default = def

	s.options = append(s.options, o)
	s.byLong[long] = o
	if short != "" {
		s.byShort[short] = o
	}
}

// defaultValue converts the declared default into a Value of the option's
// kind. Options without a declared default get the zero value of their kind,
// or null when nullable.
func (o *Option) defaultValue() (Value, error) {
	if !o.hasDefault {
		switch {
		case o.Nullable:
			return Null(o.Kind), nil
		case o.Kind == KindEnum && len(o.Values) > 0:
			return EnumValue(o.Values[0]), nil
		default:
			return Value{kind: o.Kind}, nil
		}
	}

	if o.Required {
		return Value{}, errors.New("a required option cannot declare a default")
	}

	switch v := o.defaultRaw.(type) {
	case nil:
		if o.Nullable {
			return Null(o.Kind), nil
		}
	case string:
		if o.Kind == KindString {
			return StringValue(v), nil
		}
	case bool:
		if o.Kind == KindBool {
			return BoolValue(v), nil
		}
	case int:
		switch o.Kind {
		case KindInt:
			return IntValue(v), nil
		case KindFloat:
			return FloatValue(float64(v)), nil
		}
	case float64:
		if o.Kind == KindFloat {
			return FloatValue(v), nil
		}
	case fmt.Stringer:
		if o.Kind == KindEnum {
			for _, name := range o.Values {
				if name == v.String() {
					return EnumValue(name), nil
				}
			}
			return Value{}, errors.Errorf("default %q is not one of the declared values", v.String())
		}
	}

	return Value{}, errors.Errorf("default %v (%T) does not match option kind %s", o.defaultRaw, o.defaultRaw, o.Kind)
}
