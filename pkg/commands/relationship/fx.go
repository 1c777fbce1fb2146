package relationship

import (
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"go.uber.org/fx"
)

var Module = fx.Module("relationship",
	fx.Provide(
		fx.Annotate(namespace, fx.ResultTags(`group:"namespaces"`)),
		fx.Annotate(createN1Command, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(createN1Executor, fx.ResultTags(`group:"executors"`)),
	),
)

func namespace() command.Namespace {
	return command.Namespace{
		Name: "relationship",
		Help: "Creates relationships between tables",
	}
}

func createN1Command() command.Descriptor {
	return command.NewDescriptor[CreateN1Options]("relationship", "create-n1",
		"Creates a many-to-one relationship with a lookup column on the child")
}

func createN1Executor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*CreateN1Options](NewCreateN1Executor(repo, out))
}
