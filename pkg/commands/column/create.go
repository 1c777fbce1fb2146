package column

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/ddl"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/utils"
)

const failure = "Error while creating column"

// CreateExecutor adds a column to a table and records it in the solution.
type CreateExecutor struct {
	repo *clickhouse.Repository
	out  *output.Output
}

func NewCreateExecutor(repo *clickhouse.Repository, out *output.Output) *CreateExecutor {
	return &CreateExecutor{repo: repo, out: out}
}

func (e *CreateExecutor) Execute(ctx context.Context, opts *CreateOptions) command.Result {
	done := e.out.Progress("Connecting to ClickHouse")
	client, err := e.repo.GetCurrentConnection(ctx)
	done(err)
	if err != nil {
		return command.Fail(failure, err)
	}

	done = e.out.Progress("Checking solution and publisher prefix")
	solution, err := e.repo.ResolveSolution(ctx, client, deref(opts.Solution))
	done(err)
	if err != nil {
		return command.Fail(failure, err)
	}

	name, err := SchemaName(opts, solution.PublisherPrefix)
	if err != nil {
		return command.Fail(failure, err)
	}

	if err := checkTarget(ctx, client, opts.Table, name); err != nil {
		return command.Fail(failure, err)
	}

	version, err := client.GetVersion(ctx)
	if err != nil {
		return command.Fail(failure, err)
	}

	def, err := Define(opts, version.SupportsBoolType())
	if err != nil {
		return command.Fail(failure, err)
	}

	stmt := AlterStatement(opts.Table, client.Cluster(), name, opts.DisplayName, def)
	if err := ddl.Validate(stmt); err != nil {
		return command.Fail(failure, errors.Wrap(err, "generated an invalid statement"))
	}

	done = e.out.Progress("Creating column " + name)
	err = e.create(ctx, client, opts, solution, name, def, stmt)
	done(err)
	if err != nil {
		return command.Fail(failure, err)
	}

	slog.Info("Created column", "table", opts.Table, "column", name, "type", def.Type, "solution", solution.UniqueName)
	return command.Successf("Column %s (%s) added to %s", name, def.Type, opts.Table)
}

func (e *CreateExecutor) create(
	ctx context.Context,
	client *clickhouse.Client,
	opts *CreateOptions,
	solution *clickhouse.Solution,
	name string,
	def *Definition,
	stmt string,
) error {
	if err := client.Exec(ctx, stmt); err != nil {
		return err
	}

	if err := client.InsertAttribute(ctx, clickhouse.Attribute{
		TableName:     opts.Table,
		SchemaName:    name,
		DisplayName:   opts.DisplayName,
		Description:   deref(opts.Description),
		AttributeType: opts.Type.String(),
		RequiredLevel: opts.RequiredLevel.String(),
		IsAudited:     opts.Audit,
		Properties:    def.Properties,
		SolutionID:    solution.ID,
	}); err != nil {
		return err
	}

	return client.AddSolutionComponent(ctx, clickhouse.SolutionComponent{
		SolutionID:    solution.ID,
		ComponentType: "Attribute",
		ObjectName:    opts.Table + "." + name,
	})
}

// SchemaName returns --schemaName, which must carry the publisher prefix, or
// derives one from the display name.
func SchemaName(opts *CreateOptions, prefix string) (string, error) {
	if explicit := strings.TrimSpace(deref(opts.SchemaName)); explicit != "" {
		if err := utils.CheckPrefix(explicit, prefix, "schema name"); err != nil {
			return "", err
		}
		return explicit, nil
	}

	if utils.OnlyLettersNumbersOrUnderscore(opts.DisplayName) == "" {
		return "", errors.Errorf("unable to derive a schema name from %q, pass --schemaName", opts.DisplayName)
	}

	return utils.SchemaName(prefix, opts.DisplayName), nil
}

// AlterStatement renders the ALTER TABLE statement adding the column.
func AlterStatement(table, cluster, name, displayName string, def *Definition) string {
	return utils.NewSQLBuilder().
		Alter("TABLE").
		Name(table).
		OnCluster(cluster).
		AddColumn(name, def.Type).
		Default(def.Default).
		Comment(displayName).
		StringWithoutSemicolon()
}

func checkTarget(ctx context.Context, client *clickhouse.Client, table, column string) error {
	exists, err := client.TableExists(ctx, table)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("table %s does not exist", table)
	}

	exists, err = client.ColumnExists(ctx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("column %s already exists on %s", column, table)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
