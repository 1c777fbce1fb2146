package solution

import (
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"go.uber.org/fx"
)

var Module = fx.Module("solution",
	fx.Provide(
		fx.Annotate(namespace, fx.ResultTags(`group:"namespaces"`)),
		fx.Annotate(getPublisherListCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(getPublisherListExecutor, fx.ResultTags(`group:"executors"`)),
	),
)

func namespace() command.Namespace {
	return command.Namespace{
		Name: "solution",
		Help: "Commands to inspect solutions and their publishers",
	}
}

func getPublisherListCommand() command.Descriptor {
	return command.NewDescriptor[GetPublisherListOptions]("solution", "getpublisherlist",
		"Lists the publishers that can own new solutions")
}

func getPublisherListExecutor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*GetPublisherListOptions](NewGetPublisherListExecutor(repo, out))
}
