package command_test

import (
	"context"

	. "github.com/pseudomuto/tablectl/pkg/command"
)

type (
	color int

	createOptions struct {
		Table       string
		Name        string
		Length      *int
		Precision   float64
		Audit       bool
		Color       color
		Description *string
	}

	listOptions struct {
		Verbose bool
	}

	panicOptions struct{}

	brokenOptions struct {
		A string
		B string
	}

	badDefaultOptions struct {
		N int
	}
)

const (
	red color = iota
	green
	blue
)

var colors = []color{red, green, blue}

func (c color) String() string {
	return [...]string{"Red", "Green", "Blue"}[c]
}

func (o *createOptions) Define(s *Schema) {
	s.String(&o.Table, "table", "t", Required(), Help("The table name"))
	s.String(&o.Name, "name", "n", Required())
	s.NullableInt(&o.Length, "len", "l")
	s.Float(&o.Precision, "precision", "p", Default(2.5))
	s.Bool(&o.Audit, "audit", "a", Default(true))
	Enum(s, &o.Color, colors, "color", "c", Default(green))
	s.NullableString(&o.Description, "description", "d")
}

func (o *listOptions) Define(s *Schema) {
	s.Bool(&o.Verbose, "verbose", "v")
}

func (o *panicOptions) Define(*Schema) {}

func (o *brokenOptions) Define(s *Schema) {
	s.String(&o.A, "name", "n")
	s.String(&o.B, "Name", "x")
}

func (o *badDefaultOptions) Define(s *Schema) {
	s.Int(&o.N, "count", "c", Default("three"))
}

func createDescriptor() Descriptor {
	return NewDescriptor[createOptions]("column", "create", "Creates a column", K("create", "column"))
}

func listDescriptor() Descriptor {
	return NewDescriptor[listOptions]("appmodule", "list", "Lists app modules")
}

func panicDescriptor() Descriptor {
	return NewDescriptor[panicOptions]("test", "panic", "Always panics")
}

func noop[O Options]() Handler {
	return Handle[O](ExecutorFunc[O](func(context.Context, O) Result {
		return Success()
	}))
}

func newTestRegistry() (*Registry, error) {
	return NewRegistry(
		[]Descriptor{createDescriptor(), listDescriptor(), panicDescriptor()},
		[]Handler{
			noop[*createOptions](),
			Handle[*listOptions](ExecutorFunc[*listOptions](func(_ context.Context, o *listOptions) Result {
				return Successf("verbose=%t", o.Verbose)
			})),
			Handle[*panicOptions](ExecutorFunc[*panicOptions](func(context.Context, *panicOptions) Result {
				panic("boom")
			})),
		},
		Namespace{Name: "column", Help: "Manage table columns"},
	)
}
