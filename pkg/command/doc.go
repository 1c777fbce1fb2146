// Package command is the registry, option binding and dispatch core of
// tablectl.
//
// Every command is identified by a (namespace, verb) pair and described by an
// options type. The options type declares what it accepts by implementing
// Options:
//
//	type ListOptions struct {
//		Verbose bool
//	}
//
//	func (o *ListOptions) Define(s *command.Schema) {
//		s.Bool(&o.Verbose, "verbose", "v", command.Help("Show every column"))
//	}
//
// Command packages contribute a Descriptor for each options type and a
// Handler wrapping the Executor that runs it. Both are collected through fx
// value groups, so no central list of commands exists:
//
//	fx.Provide(
//		fx.Annotate(func() command.Descriptor {
//			return command.NewDescriptor[ListOptions]("appmodule", "list", "Lists app modules")
//		}, fx.ResultTags(`group:"commands"`)),
//		fx.Annotate(func(repo *clickhouse.Repository) command.Handler {
//			return command.Handle[*ListOptions](newListExecutor(repo))
//		}, fx.ResultTags(`group:"executors"`)),
//	)
//
// At runtime a line of tokens flows through Registry.Resolve, Binder.Bind and
// Dispatcher.Dispatch to produce a Result.
package command
