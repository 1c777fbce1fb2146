package usersettings

import (
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/settings"
	"go.uber.org/fx"
)

var Module = fx.Module("usersettings",
	fx.Provide(
		fx.Annotate(namespace, fx.ResultTags(`group:"namespaces"`)),
		fx.Annotate(setDefaultSolutionCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(getDefaultSolutionCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(setDefaultSolutionExecutor, fx.ResultTags(`group:"executors"`)),
		fx.Annotate(getDefaultSolutionExecutor, fx.ResultTags(`group:"executors"`)),
	),
)

func namespace() command.Namespace {
	return command.Namespace{
		Name: "settings",
		Help: "Reads and updates the settings kept between sessions",
	}
}

func setDefaultSolutionCommand() command.Descriptor {
	return command.NewDescriptor[SetDefaultSolutionOptions]("settings", "set-default-solution",
		"Sets the solution new components are added to")
}

func getDefaultSolutionCommand() command.Descriptor {
	return command.NewDescriptor[GetDefaultSolutionOptions]("settings", "get-default-solution",
		"Shows the solution new components are added to")
}

func setDefaultSolutionExecutor(repo *clickhouse.Repository, store *settings.Store, out *output.Output) command.Handler {
	return command.Handle[*SetDefaultSolutionOptions](NewSetDefaultSolutionExecutor(repo, store, out))
}

func getDefaultSolutionExecutor(store *settings.Store, out *output.Output) command.Handler {
	return command.Handle[*GetDefaultSolutionOptions](NewGetDefaultSolutionExecutor(store, out))
}
