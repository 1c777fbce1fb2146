package command

import "go.uber.org/fx"

// RegistryParams collects the commands, executors and namespace help texts
// contributed by every command package.
type RegistryParams struct {
	fx.In

	Commands   []Descriptor `group:"commands"`
	Executors  []Handler    `group:"executors"`
	Namespaces []Namespace  `group:"namespaces"`
}

var Module = fx.Module("command",
	fx.Provide(
		func(p RegistryParams) (*Registry, error) {
			return NewRegistry(p.Commands, p.Executors, p.Namespaces...)
		},
		NewBinder,
		NewDispatcher,
	),
)
