package solution

import (
	"context"
	"strconv"
	"time"

	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
)

type (
	GetPublisherListOptions struct {
		Verbose bool
	}

	// GetPublisherListExecutor prints the publishers new solutions can be
	// created under.
	GetPublisherListExecutor struct {
		repo *clickhouse.Repository
		out  *output.Output
	}
)

func (o *GetPublisherListOptions) Define(s *command.Schema) {
	s.Bool(&o.Verbose, "verbose", "v", command.Help("Add option set prefix, creation and description."))
}

func NewGetPublisherListExecutor(repo *clickhouse.Repository, out *output.Output) *GetPublisherListExecutor {
	return &GetPublisherListExecutor{repo: repo, out: out}
}

func (e *GetPublisherListExecutor) Execute(ctx context.Context, opts *GetPublisherListOptions) command.Result {
	done := e.out.Progress("Connecting to ClickHouse")
	client, err := e.repo.GetCurrentConnection(ctx)
	done(err)
	if err != nil {
		return command.Fail("Error while getting list of publishers", err)
	}

	publishers, err := client.ListPublishers(ctx)
	if err != nil {
		return command.Fail("Error while getting list of publishers", err)
	}

	columns := []string{"Unique name", "Friendly name", "Prefix"}
	if opts.Verbose {
		columns = append(columns, "Optionset prefix", "Created on", "Created by", "Description")
	}

	rows := make([][]string, len(publishers))
	for i, p := range publishers {
		rows[i] = []string{p.UniqueName, p.FriendlyName, p.Prefix}
		if opts.Verbose {
			rows[i] = append(rows[i],
				strconv.Itoa(int(p.OptionValuePrefix)),
				formatTime(p.CreatedOn),
				p.CreatedBy,
				p.Description,
			)
		}
	}

	e.out.WriteTable(columns, rows, output.HighlightHeader)
	return command.Success()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(time.DateTime)
}
