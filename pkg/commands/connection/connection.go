package connection

import (
	"context"

	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
)

type (
	InfoOptions struct{}

	InitOptions struct {
		DryRun bool
	}

	// InfoExecutor prints the server version and where metadata is kept.
	InfoExecutor struct {
		repo *clickhouse.Repository
		out  *output.Output
	}

	// InitExecutor creates the metadata database and its tables.
	InitExecutor struct {
		repo *clickhouse.Repository
		out  *output.Output
	}
)

func (o *InfoOptions) Define(*command.Schema) {}

func (o *InitOptions) Define(s *command.Schema) {
	s.Bool(&o.DryRun, "dryRun", "d", command.Help("Print the statements without running them."))
}

func NewInfoExecutor(repo *clickhouse.Repository, out *output.Output) *InfoExecutor {
	return &InfoExecutor{repo: repo, out: out}
}

func (e *InfoExecutor) Execute(ctx context.Context, _ *InfoOptions) command.Result {
	client, err := connect(ctx, e.repo, e.out)
	if err != nil {
		return command.Fail("Error while reading connection info", err)
	}

	version, err := client.GetVersion(ctx)
	if err != nil {
		return command.Fail("Error while reading connection info", err)
	}

	cluster := client.Cluster()
	if cluster == "" {
		cluster = "(none)"
	}

	e.out.WriteTable(
		[]string{"Property", "Value"},
		[][]string{
			{"Server version", version.Raw},
			{"Bool type", yesNo(version.SupportsBoolType())},
			{"Metadata database", client.Database()},
			{"Cluster", cluster},
		},
		output.HighlightHeader,
	)

	return command.Success()
}

func NewInitExecutor(repo *clickhouse.Repository, out *output.Output) *InitExecutor {
	return &InitExecutor{repo: repo, out: out}
}

func (e *InitExecutor) Execute(ctx context.Context, opts *InitOptions) command.Result {
	client, err := connect(ctx, e.repo, e.out)
	if err != nil {
		return command.Fail("Error while initializing metadata", err)
	}

	if opts.DryRun {
		for _, stmt := range client.MetadataStatements() {
			e.out.WriteLine(stmt+";", output.Gray)
		}
		return command.Success()
	}

	done := e.out.Progress("Creating metadata tables in " + client.Database())
	err = client.InitMetadata(ctx)
	done(err)
	if err != nil {
		return command.Fail("Error while initializing metadata", err)
	}

	return command.Successf("Metadata database %s is ready", client.Database())
}

func connect(ctx context.Context, repo *clickhouse.Repository, out *output.Output) (*clickhouse.Client, error) {
	done := out.Progress("Connecting to ClickHouse")
	client, err := repo.GetCurrentConnection(ctx)
	done(err)

	return client, err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
