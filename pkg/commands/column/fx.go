package column

import (
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"go.uber.org/fx"
)

var Module = fx.Module("column",
	fx.Provide(
		fx.Annotate(namespace, fx.ResultTags(`group:"namespaces"`)),
		fx.Annotate(createCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(createExecutor, fx.ResultTags(`group:"executors"`)),
	),
)

func namespace() command.Namespace {
	return command.Namespace{
		Name: "column",
		Help: "Execute manipulations on table columns",
	}
}

func createCommand() command.Descriptor {
	return command.NewDescriptor[CreateOptions]("column", "create",
		"Creates a new column on a given table", command.K("create", "column"))
}

func createExecutor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*CreateOptions](NewCreateExecutor(repo, out))
}
