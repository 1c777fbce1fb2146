package unifiedrouting

import (
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"go.uber.org/fx"
)

var Module = fx.Module("unifiedrouting",
	fx.Provide(
		fx.Annotate(namespace, fx.ResultTags(`group:"namespaces"`)),
		fx.Annotate(agentStatusCommand, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(agentStatusExecutor, fx.ResultTags(`group:"executors"`)),
	),
)

func namespace() command.Namespace {
	return command.Namespace{
		Name: "unifiedrouting",
		Help: "Commands to inspect the presence of unified routing agents",
	}
}

func agentStatusCommand() command.Descriptor {
	return command.NewDescriptor[AgentStatusOptions]("unifiedrouting", "agentstatus",
		"Shows the presence of an agent now or at a given time")
}

func agentStatusExecutor(repo *clickhouse.Repository, out *output.Output) command.Handler {
	return command.Handle[*AgentStatusOptions](NewAgentStatusExecutor(repo, out))
}
