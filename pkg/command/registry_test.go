package command_test

import (
	"slices"
	"testing"

	. "github.com/pseudomuto/tablectl/pkg/command"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []Descriptor
		handlers    []Handler
		errContains string
	}{
		{
			name:        "valid",
			descriptors: []Descriptor{createDescriptor(), listDescriptor()},
			handlers:    []Handler{noop[*createOptions](), noop[*listOptions]()},
		},
		{
			name:        "duplicate key",
			descriptors: []Descriptor{listDescriptor(), NewDescriptor[createOptions]("AppModule", "List", "dup")},
			handlers:    []Handler{noop[*createOptions](), noop[*listOptions]()},
			errContains: `duplicate command "appmodule list"`,
		},
		{
			name:        "alias collides with a primary key",
			descriptors: []Descriptor{createDescriptor(), NewDescriptor[listOptions]("create", "column", "dup")},
			handlers:    []Handler{noop[*createOptions](), noop[*listOptions]()},
			errContains: `duplicate command "create column"`,
		},
		{
			name:        "missing executor",
			descriptors: []Descriptor{createDescriptor(), listDescriptor()},
			handlers:    []Handler{noop[*createOptions]()},
			errContains: `no executor registered for command "appmodule list"`,
		},
		{
			name:        "duplicate executor",
			descriptors: []Descriptor{listDescriptor()},
			handlers:    []Handler{noop[*listOptions](), noop[*listOptions]()},
			errContains: "multiple executors registered",
		},
		{
			name:        "executor without command",
			descriptors: []Descriptor{listDescriptor()},
			handlers:    []Handler{noop[*listOptions](), noop[*createOptions]()},
			errContains: "which is not a command",
		},
		{
			name:        "duplicate option names",
			descriptors: []Descriptor{NewDescriptor[brokenOptions]("broken", "cmd", "")},
			handlers:    []Handler{noop[*brokenOptions]()},
			errContains: "duplicate option name --Name",
		},
		{
			name:        "default of the wrong type",
			descriptors: []Descriptor{NewDescriptor[badDefaultOptions]("bad", "default", "")},
			handlers:    []Handler{noop[*badDefaultOptions]()},
			errContains: "does not match option kind int",
		},
		{
			name:        "missing verb",
			descriptors: []Descriptor{NewDescriptor[listOptions]("appmodule", " ", "")},
			handlers:    []Handler{noop[*listOptions]()},
			errContains: "must have a namespace and a verb",
		},
		{
			name:        "hand-built handler",
			descriptors: []Descriptor{listDescriptor()},
			handlers:    []Handler{{}},
			errContains: "must be created with command.Handle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.descriptors, tt.handlers)
			if tt.errContains == "" {
				require.NoError(t, err)
				require.NotNil(t, r)
				return
			}

			require.Error(t, err)
			require.True(t, IsConfigurationError(err))
			require.Contains(t, err.Error(), tt.errContains)

			// Registration order never changes the outcome.
			slices.Reverse(tt.descriptors)
			slices.Reverse(tt.handlers)
			_, err = NewRegistry(tt.descriptors, tt.handlers)
			require.Error(t, err)
			require.True(t, IsConfigurationError(err))
		})
	}
}

func TestRegistry_Resolve(t *testing.T) {
	r, err := newTestRegistry()
	require.NoError(t, err)

	tests := []struct {
		name        string
		namespace   string
		verb        string
		key         Key
		suggestions []string
		errContains string
	}{
		{name: "primary key", namespace: "column", verb: "create", key: K("column", "create")},
		{name: "alias", namespace: "create", verb: "column", key: K("column", "create")},
		{name: "case insensitive", namespace: "AppModule", verb: "LIST", key: K("appmodule", "list")},
		{
			name:        "misspelled verb",
			namespace:   "column",
			verb:        "creat",
			suggestions: []string{"create"},
			errContains: `unknown command "column creat", did you mean: create?`,
		},
		{
			name:        "unrelated verb lists the namespace",
			namespace:   "appmodule",
			verb:        "frobnicate",
			suggestions: []string{"list"},
		},
		{
			name:        "misspelled namespace",
			namespace:   "colum",
			verb:        "create",
			suggestions: []string{"column"},
		},
		{
			name:        "unknown namespace",
			namespace:   "frobnicate",
			verb:        "all",
			errContains: `unknown command "frobnicate all"`,
		},
		{
			name:        "namespace without verb",
			namespace:   "column",
			suggestions: []string{"create"},
			errContains: `no verb specified for "column"`,
		},
		{
			name:        "nothing",
			errContains: "no command specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := r.Resolve(tt.namespace, tt.verb)
			if tt.key != (Key{}) {
				require.NoError(t, err)
				require.Equal(t, tt.key, d.Key)
				return
			}

			require.Nil(t, d)
			var unknown *UnknownCommandError
			require.ErrorAs(t, err, &unknown)
			require.Equal(t, tt.suggestions, unknown.Suggestions)
			if tt.errContains != "" {
				require.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestRegistry_Enumeration(t *testing.T) {
	r, err := newTestRegistry()
	require.NoError(t, err)

	require.Equal(t, []string{"appmodule", "column", "test"}, slices.Collect(r.Namespaces()))

	var verbs []string
	for d := range r.Verbs("Column") {
		verbs = append(verbs, d.Key.Verb)
		require.NotNil(t, d.Schema)
		require.Len(t, d.Schema.Options(), 7)
	}
	require.Equal(t, []string{"create"}, verbs)

	require.Empty(t, slices.Collect(r.Verbs("create")))
	require.True(t, r.HasNamespace("COLUMN"))
	require.False(t, r.HasNamespace("create"))
	require.Equal(t, "Manage table columns", r.NamespaceHelp("column"))
	require.Empty(t, r.NamespaceHelp("appmodule"))

	var keys []string
	for d := range r.Commands() {
		keys = append(keys, d.Key.String())
	}
	require.Equal(t, []string{"appmodule list", "column create", "test panic"}, keys)
}
