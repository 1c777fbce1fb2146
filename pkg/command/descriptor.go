package command

import (
	"context"
	"reflect"
	"strings"
)

type (
	// Options is implemented by every command options type. Define declares
	// the options the command accepts and binds each to a field of the receiver.
	Options interface {
		Define(s *Schema)
	}

	// Key is the (namespace, verb) pair a command is invoked with.
	Key struct {
		Namespace string
		Verb      string
	}

	// Descriptor is the metadata for one registered command.
	Descriptor struct {
		// Key is the primary invocation key.
		Key Key

		// Aliases are additional keys that resolve to the same command.
		Aliases []Key

		// Help is the one-line description shown in help output.
		Help string

		// Type is the concrete (pointer) options type, used to find the executor.
		Type reflect.Type

		// New returns a fresh options instance.
		New func() Options

		// Schema is the declared option schema. It is populated by the Registry.
		Schema *Schema
	}

	// Namespace carries the help text shown for a group of verbs.
	Namespace struct {
		Name string
		Help string
	}

	// Executor performs the work of one command.
	Executor[O Options] interface {
		Execute(ctx context.Context, opts O) Result
	}

	// ExecutorFunc adapts a function to the Executor interface.
	ExecutorFunc[O Options] func(ctx context.Context, opts O) Result

	// Handler is a type-erased executor registration. Build one with Handle.
	Handler struct {
		Type   reflect.Type
		invoke func(ctx context.Context, opts Options) Result
	}
)

// K is shorthand for building a Key.
func K(namespace, verb string) Key {
	return Key{Namespace: namespace, Verb: verb}
}

// String renders the key as it is typed on the command line.
func (k Key) String() string {
	if k.Verb == "" {
		return k.Namespace
	}

	return k.Namespace + " " + k.Verb
}

func (k Key) normalize() Key {
	return Key{
		Namespace: strings.ToLower(strings.TrimSpace(k.Namespace)),
		Verb:      strings.ToLower(strings.TrimSpace(k.Verb)),
	}
}

// NewDescriptor builds the descriptor for the options type T. Because Define
// is implemented on *T, the descriptor records *T as the options type.
//
// Example:
//
//	command.NewDescriptor[CreateOptions]("column", "create", "Creates a new column", command.K("create", "column"))
func NewDescriptor[T any, O interface {
	*T
	Options
}](namespace, verb, help string, aliases ...Key) Descriptor {
	return Descriptor{
		Key:     K(namespace, verb),
		Aliases: aliases,
		Help:    help,
		Type:    reflect.TypeFor[O](),
		New:     func() Options { return O(new(T)) },
	}
}

// Execute calls f(ctx, opts).
func (f ExecutorFunc[O]) Execute(ctx context.Context, opts O) Result {
	return f(ctx, opts)
}

// Handle registers e as the executor for options of type O.
//
// Example:
//
//	command.Handle[*CreateOptions](NewCreateExecutor(repo))
func Handle[O Options](e Executor[O]) Handler {
	return Handler{
		Type: reflect.TypeFor[O](),
		invoke: func(ctx context.Context, opts Options) Result {
			return e.Execute(ctx, opts.(O))
		},
	}
}
