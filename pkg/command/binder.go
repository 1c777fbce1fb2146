package command

import (
	"fmt"
	"strings"
)

const (
	DefaultLongPrefix  = "--"
	DefaultShortPrefix = "-"
)

// Binder turns the tokens that follow a command's namespace and verb into a
// populated options instance.
type Binder struct {
	LongPrefix  string
	ShortPrefix string
}

// NewBinder returns a Binder using the "--long" and "-s" option conventions.
func NewBinder() *Binder {
	return &Binder{LongPrefix: DefaultLongPrefix, ShortPrefix: DefaultShortPrefix}
}

// Bind creates a fresh options instance for d and populates it from tokens.
//
// Options are matched case-insensitively by long name or short alias. A value
// may follow as the next token or inline as "--name=value". Bool options take
// no value and are set to true by their presence, though "--flag=false" is
// accepted. When an option appears more than once, the last occurrence wins.
// Options that were not supplied receive their declared default, and a
// missing required option is an error.
//
// Errors are returned as *BindingError.
func (b *Binder) Bind(d *Descriptor, tokens []string) (Options, error) {
	opts := d.New()
	schema := NewSchema()
	opts.Define(schema)
	if err := schema.Err(); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("command %q: %v", d.Key, err)}
	}

	supplied := make(map[*Option]bool)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		opt, inline, hasInline, isOption := b.match(schema, tok)
		if opt == nil {
			kind := UnexpectedArgument
			if isOption {
				kind = UnknownOption
			}
			return nil, &BindingError{Kind: kind, Command: d.Key, Token: tok}
		}

		var raw string
		switch {
		case hasInline:
			raw = inline
		case opt.Kind == KindBool:
			raw = "true"
		case i+1 < len(tokens):
			i++
			raw = tokens[i]
		default:
			return nil, &BindingError{Kind: MissingValue, Command: d.Key, Option: opt.Long, Token: tok}
		}

		v, err := Coerce(opt, raw)
		if err != nil {
			return nil, &BindingError{
				Kind:    InvalidValue,
				Command: d.Key,
				Option:  opt.Long,
				Token:   raw,
				Reason:  err.Error(),
			}
		}

		opt.assign(v)
		supplied[opt] = true
	}

	for _, opt := range schema.Options() {
		if supplied[opt] {
			continue
		}

		if opt.Required {
			return nil, &BindingError{Kind: MissingRequired, Command: d.Key, Option: opt.Long}
		}

		opt.assign(opt.Default)
	}

	return opts, nil
}

// TakesValue reports whether tok names an option of d that consumes the
// following token as its value.
func (b *Binder) TakesValue(d *Descriptor, tok string) bool {
	if d.Schema == nil {
		return false
	}

	opt, _, hasInline, _ := b.match(d.Schema, tok)
	return opt != nil && !hasInline && opt.Kind != KindBool
}

// match finds the option named by tok. isOption reports whether tok carries an
// option prefix at all, so callers can tell unknown options from stray values.
func (b *Binder) match(s *Schema, tok string) (opt *Option, inline string, hasInline, isOption bool) {
	lookups := []struct {
		prefix string
		find   func(string) (*Option, bool)
	}{
		{b.LongPrefix, s.Lookup},
		{b.ShortPrefix, s.LookupShort},
	}

	for _, l := range lookups {
		if l.prefix == "" || !strings.HasPrefix(tok, l.prefix) {
			continue
		}
		isOption = true

		name := tok[len(l.prefix):]
		name, inline, hasInline = strings.Cut(name, "=")
		if name == "" {
			continue
		}

		if o, ok := l.find(name); ok {
			return o, inline, hasInline, true
		}
	}

	return nil, "", false, isOption
}
