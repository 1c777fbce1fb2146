package appmodule

import (
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"go.uber.org/fx"
)

var Module = fx.Module("appmodule",
	fx.Provide(
		fx.Annotate(namespace, fx.ResultTags(`group:"namespaces"`)),
		fx.Annotate(listCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(listRolesCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(listExecutor, fx.ResultTags(`group:"executors"`)),
		fx.Annotate(listRolesExecutor, fx.ResultTags(`group:"executors"`)),
	),
)

func namespace() command.Namespace {
	return command.Namespace{
		Name: "appmodule",
		Help: "Lists the available model-driven apps (app modules); you can show and manage roles for each model-driven app",
	}
}

func listCommand() command.Descriptor {
	return command.NewDescriptor[ListOptions]("appmodule", "list",
		"Lists the active model-driven apps with their id and name")
}

func listRolesCommand() command.Descriptor {
	return command.NewDescriptor[ListRolesOptions]("appmodule", "listroles",
		"Lists the roles associated to one or all model-driven apps")
}

func listExecutor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*ListOptions](NewListExecutor(repo, out))
}

func listRolesExecutor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*ListRolesOptions](NewListRolesExecutor(repo, out))
}
