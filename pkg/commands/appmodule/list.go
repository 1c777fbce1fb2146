package appmodule

import (
	"context"

	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
)

type (
	ListOptions struct {
		Verbose bool
	}

	// ListExecutor prints the active app modules.
	ListExecutor struct {
		repo *clickhouse.Repository
		out  *output.Output
	}
)

func (o *ListOptions) Define(s *command.Schema) {
	s.Bool(&o.Verbose, "verbose", "v", command.Help("Add the unique name."))
}

func NewListExecutor(repo *clickhouse.Repository, out *output.Output) *ListExecutor {
	return &ListExecutor{repo: repo, out: out}
}

func (e *ListExecutor) Execute(ctx context.Context, opts *ListOptions) command.Result {
	client, err := connect(ctx, e.repo, e.out)
	if err != nil {
		return command.Fail("Error while getting list of appmodule", err)
	}

	modules, err := client.ListAppModules(ctx)
	if err != nil {
		return command.Fail("Error while getting list of appmodule", err)
	}

	columns := []string{"Id", "Name"}
	if opts.Verbose {
		columns = append(columns, "Unique name")
	}

	rows := make([][]string, len(modules))
	for i, m := range modules {
		rows[i] = []string{m.ID.String(), m.Name}
		if opts.Verbose {
			rows[i] = append(rows[i], m.UniqueName)
		}
	}

	e.out.WriteTable(columns, rows, output.HighlightHeader)
	return command.Success()
}

func connect(ctx context.Context, repo *clickhouse.Repository, out *output.Output) (*clickhouse.Client, error) {
	done := out.Progress("Connecting to ClickHouse")
	client, err := repo.GetCurrentConnection(ctx)
	done(err)

	return client, err
}
