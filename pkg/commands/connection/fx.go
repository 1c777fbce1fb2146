package connection

import (
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"go.uber.org/fx"
)

var Module = fx.Module("connection",
	fx.Provide(
		fx.Annotate(namespace, fx.ResultTags(`group:"namespaces"`)),
		fx.Annotate(infoCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(infoExecutor, fx.ResultTags(`group:"executors"`)),
		fx.Annotate(initExecutor, fx.ResultTags(`group:"executors"`)),
	),
)

func namespace() command.Namespace {
	return command.Namespace{
		Name: "connection",
		Help: "Inspects the ClickHouse connection and prepares the metadata database",
	}
}

func infoCommand() command.Descriptor {
	return command.NewDescriptor[InfoOptions]("connection", "info",
		"Shows the server version, metadata database and cluster")
}

func initCommand() command.Descriptor {
	return command.NewDescriptor[InitOptions]("connection", "init",
		"Creates the metadata database and its tables")
}

func infoExecutor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*InfoOptions](NewInfoExecutor(repo, out))
}

func initExecutor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*InitOptions](NewInitExecutor(repo, out))
}
