package command

import (
	"fmt"
	"iter"
	"reflect"
	"sort"
	"strings"
)

// Registry is the immutable catalog of commands and the executors that run
// them. It is built once at startup from the descriptors and handlers
// contributed by every command package.
type Registry struct {
	byKey      map[Key]*Descriptor
	ordered    []*Descriptor
	handlers   map[reflect.Type]Handler
	namespaces map[string]string
}

// NewRegistry validates and indexes the given commands.
//
// It fails with a *ConfigurationError when two commands share a key (primary
// or alias), when an options schema is malformed, when two handlers target the
// same options type, or when a command has no handler (or a handler no
// command). The result does not depend on the order of the inputs.
func NewRegistry(descriptors []Descriptor, handlers []Handler, namespaces ...Namespace) (*Registry, error) {
	r := &Registry{
		byKey:      make(map[Key]*Descriptor),
		handlers:   make(map[reflect.Type]Handler),
		namespaces: make(map[string]string),
	}

	byType := make(map[reflect.Type]*Descriptor)
	for i := range descriptors {
		d := descriptors[i]
		if err := r.addDescriptor(&d, byType); err != nil {
			return nil, err
		}
	}

	for _, h := range handlers {
		if h.Type == nil || h.invoke == nil {
			return nil, &ConfigurationError{Reason: "handler must be created with command.Handle"}
		}

		if _, exists := r.handlers[h.Type]; exists {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("multiple executors registered for %s", h.Type)}
		}

		if _, known := byType[h.Type]; !known {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("executor registered for %s, which is not a command", h.Type)}
		}

		r.handlers[h.Type] = h
	}

	for _, d := range r.ordered {
		if _, ok := r.handlers[d.Type]; !ok {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("no executor registered for command %q", d.Key)}
		}
	}

	for _, ns := range namespaces {
		r.namespaces[strings.ToLower(ns.Name)] = ns.Help
	}

	sort.Slice(r.ordered, func(i, j int) bool {
		a, b := r.ordered[i].Key, r.ordered[j].Key
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		return a.Verb < b.Verb
	})

	return r, nil
}

func (r *Registry) addDescriptor(d *Descriptor, byType map[reflect.Type]*Descriptor) error {
	d.Key = d.Key.normalize()
	if d.Key.Namespace == "" || d.Key.Verb == "" {
		return &ConfigurationError{Reason: fmt.Sprintf("command %q must have a namespace and a verb", d.Key)}
	}

	if d.Type == nil || d.New == nil {
		return &ConfigurationError{Reason: fmt.Sprintf("command %q must be created with command.NewDescriptor", d.Key)}
	}

	if other, exists := byType[d.Type]; exists {
		return &ConfigurationError{
			Reason: fmt.Sprintf("commands %q and %q share the options type %s", other.Key, d.Key, d.Type),
		}
	}

	schema := NewSchema()
	d.New().Define(schema)
	if err := schema.Err(); err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("command %q: %v", d.Key, err)}
	}
	d.Schema = schema

	aliases := make([]Key, len(d.Aliases))
	for i, a := range d.Aliases {
		aliases[i] = a.normalize()
	}
	d.Aliases = aliases

	for _, k := range append([]Key{d.Key}, d.Aliases...) {
		if other, exists := r.byKey[k]; exists {
			return &ConfigurationError{
				Reason: fmt.Sprintf("duplicate command %q (declared by %q and %q)", k, other.Key, d.Key),
			}
		}
		r.byKey[k] = d
	}

	byType[d.Type] = d
	r.ordered = append(r.ordered, d)

	return nil
}

// Resolve finds the command for the given namespace and verb, matching case-
// insensitively against primary keys and aliases. When nothing matches, it
// returns an *UnknownCommandError carrying the closest candidates.
func (r *Registry) Resolve(namespace, verb string) (*Descriptor, error) {
	key := K(namespace, verb).normalize()
	if d, ok := r.byKey[key]; ok {
		return d, nil
	}

	err := &UnknownCommandError{Namespace: key.Namespace, Verb: key.Verb}
	if key.Namespace == "" {
		return nil, err
	}

	verbs := r.verbNames(key.Namespace)
	switch {
	case len(verbs) == 0:
		err.Suggestions = suggest(key.Namespace, r.namespaceNames())
	case key.Verb == "":
		err.Suggestions = verbs
	default:
		err.Suggestions = suggest(key.Verb, verbs)
		if len(err.Suggestions) == 0 {
			err.Suggestions = verbs
		}
	}

	return nil, err
}

// Lookup returns the command registered under key, if any.
func (r *Registry) Lookup(key Key) (*Descriptor, bool) {
	d, ok := r.byKey[key.normalize()]
	return d, ok
}

// Namespaces yields every namespace with at least one command, sorted.
// Aliases do not introduce namespaces of their own.
func (r *Registry) Namespaces() iter.Seq[string] {
	return func(yield func(string) bool) {
		prev := ""
		for _, d := range r.ordered {
			if d.Key.Namespace == prev {
				continue
			}
			prev = d.Key.Namespace
			if !yield(prev) {
				return
			}
		}
	}
}

// Verbs yields the commands in namespace, sorted by verb.
func (r *Registry) Verbs(namespace string) iter.Seq[*Descriptor] {
	ns := strings.ToLower(namespace)
	return func(yield func(*Descriptor) bool) {
		for _, d := range r.ordered {
			if d.Key.Namespace != ns {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Commands yields every registered command, sorted by key.
func (r *Registry) Commands() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, d := range r.ordered {
			if !yield(d) {
				return
			}
		}
	}
}

// HasNamespace reports whether any command lives in namespace.
func (r *Registry) HasNamespace(namespace string) bool {
	return len(r.verbNames(strings.ToLower(namespace))) > 0
}

// NamespaceHelp returns the help text registered for namespace.
func (r *Registry) NamespaceHelp(namespace string) string {
	return r.namespaces[strings.ToLower(namespace)]
}

// Handler returns the handler registered for the options type t.
func (r *Registry) Handler(t reflect.Type) (Handler, bool) {
	h, ok := r.handlers[t]
	return h, ok
}

func (r *Registry) namespaceNames() []string {
	var out []string
	for ns := range r.Namespaces() {
		out = append(out, ns)
	}
	return out
}

func (r *Registry) verbNames(ns string) []string {
	var out []string
	for d := range r.Verbs(ns) {
		out = append(out, d.Key.Verb)
	}
	return out
}
