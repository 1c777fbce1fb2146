package appmodule

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
)

type (
	ListRolesOptions struct {
		All              bool
		ModelDrivenAppID *string
	}

	// ListRolesExecutor prints the roles associated with one or every app
	// module.
	ListRolesExecutor struct {
		repo *clickhouse.Repository
		out  *output.Output
	}
)

func (o *ListRolesOptions) Define(s *command.Schema) {
	s.Bool(&o.All, "all", "a", command.Help("Show every app module / role association."))
	s.NullableString(&o.ModelDrivenAppID, "id", "", command.Help("The app module whose roles are listed."))
}

func NewListRolesExecutor(repo *clickhouse.Repository, out *output.Output) *ListRolesExecutor {
	return &ListRolesExecutor{repo: repo, out: out}
}

func (e *ListRolesExecutor) Execute(ctx context.Context, opts *ListRolesOptions) command.Result {
	var appID *uuid.UUID
	switch {
	case opts.All:
	case opts.ModelDrivenAppID != nil:
		id, err := uuid.Parse(*opts.ModelDrivenAppID)
		if err != nil {
			return command.Fail("Invalid app module id: "+*opts.ModelDrivenAppID, err)
		}
		appID = &id
	default:
		return command.Fail("Either --all or --id must be provided", nil)
	}

	client, err := connect(ctx, e.repo, e.out)
	if err != nil {
		return command.Fail("Error while getting list of appmodule roles", err)
	}

	roles, err := client.ListAppModuleRoles(ctx, appID)
	if err != nil {
		return command.Fail("Error while getting list of appmodule roles", err)
	}

	if appID != nil && len(roles) == 0 {
		modules, err := client.ListAppModules(ctx)
		if err != nil {
			return command.Fail("Error while getting list of appmodule roles", err)
		}
		if !containsModule(modules, *appID) {
			return command.Fail("Error while getting list of appmodule roles", errors.Wrapf(clickhouse.ErrNotFound, "app module %s", appID))
		}
	}

	columns := []string{"App module", "Role", "Role id"}
	if opts.All {
		columns = []string{"App module id", "App module", "Role", "Role id"}
	}

	rows := make([][]string, len(roles))
	for i, r := range roles {
		rows[i] = []string{r.AppModuleName, r.RoleName, r.RoleID.String()}
		if opts.All {
			rows[i] = append([]string{r.AppModuleID.String()}, rows[i]...)
		}
	}

	e.out.WriteTable(columns, rows, output.HighlightHeader)
	return command.Success()
}

func containsModule(modules []clickhouse.AppModule, id uuid.UUID) bool {
	for _, m := range modules {
		if m.ID == id {
			return true
		}
	}
	return false
}
