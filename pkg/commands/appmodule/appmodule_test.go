package appmodule_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	. "github.com/pseudomuto/tablectl/pkg/commands/appmodule"
	"github.com/pseudomuto/tablectl/pkg/commands/commandstest"
	"github.com/pseudomuto/tablectl/pkg/utils"
	"github.com/stretchr/testify/require"
)

var (
	salesID   = uuid.MustParse("0b6c1a52-97a5-4d8e-8f7e-52c3f1b1d2e3")
	serviceID = uuid.MustParse("5a0e4c3b-1d2f-4e6a-9b8c-7d6e5f4a3b2c")
	roleID    = uuid.MustParse("c2d7e0f4-5b1a-4f3e-8e62-6a9b5d4c3b21")
)

func TestListExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("lists app modules", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.OnQuery("FROM `meta`.`appmodule`",
			[]any{salesID, "Sales Hub", "msdynce_SalesHub"},
			[]any{serviceID, "Customer Service", "msdynce_CustomerService"},
		)

		res := NewListExecutor(env.Repo, env.Out).Execute(ctx, &ListOptions{})
		require.True(t, res.Success)

		out := env.Output()
		require.True(t, strings.HasPrefix(out, "Connecting to ClickHouse... Done\n"))
		require.Contains(t, out, salesID.String())
		require.Contains(t, out, "Customer Service")
		require.NotContains(t, out, "Unique name")
		require.NotContains(t, out, "msdynce_SalesHub")
	})

	t.Run("verbose adds the unique name", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.OnQuery("FROM `meta`.`appmodule`", []any{salesID, "Sales Hub", "msdynce_SalesHub"})

		res := NewListExecutor(env.Repo, env.Out).Execute(ctx, &ListOptions{Verbose: true})
		require.True(t, res.Success)
		require.Contains(t, env.Output(), "Unique name")
		require.Contains(t, env.Output(), "msdynce_SalesHub")
	})

	t.Run("connection failure", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.FailPing(errors.New("connection refused"))

		res := NewListExecutor(env.Repo, env.Out).Execute(ctx, &ListOptions{})
		require.True(t, res.Failed())
		require.Equal(t, "Error while getting list of appmodule", res.Message)
		require.ErrorContains(t, res.Err, "connection refused")
		require.Equal(t, "Connecting to ClickHouse... Failed\n", env.Output())
	})

	t.Run("query failure", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.FailQuery("FROM `meta`.`appmodule`", errors.New("table missing"))

		res := NewListExecutor(env.Repo, env.Out).Execute(ctx, &ListOptions{})
		require.True(t, res.Failed())
		require.ErrorContains(t, res.Err, "table missing")
	})
}

func TestListRolesExecutor(t *testing.T) {
	ctx := context.Background()
	roleRow := []any{salesID, "Sales Hub", roleID, "Salesperson"}

	t.Run("requires all or id", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewListRolesExecutor(env.Repo, env.Out).Execute(ctx, &ListRolesOptions{})
		require.True(t, res.Failed())
		require.Equal(t, "Either --all or --id must be provided", res.Message)
		require.Empty(t, env.Conn.Queries())
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewListRolesExecutor(env.Repo, env.Out).Execute(ctx, &ListRolesOptions{ModelDrivenAppID: utils.Ptr("sales")})
		require.True(t, res.Failed())
		require.Equal(t, "Invalid app module id: sales", res.Message)
	})

	t.Run("all associations", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.OnQuery("FROM `meta`.`appmoduleroles`", roleRow)

		res := NewListRolesExecutor(env.Repo, env.Out).Execute(ctx, &ListRolesOptions{All: true})
		require.True(t, res.Success)
		require.Contains(t, env.Output(), "App module id")
		require.Contains(t, env.Output(), "Salesperson")
		require.Empty(t, env.Conn.Queries()[0].Args)
	})

	t.Run("roles of one app module", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.OnQuery("FROM `meta`.`appmoduleroles`", roleRow)

		res := NewListRolesExecutor(env.Repo, env.Out).Execute(ctx, &ListRolesOptions{ModelDrivenAppID: utils.Ptr(salesID.String())})
		require.True(t, res.Success)
		require.NotContains(t, env.Output(), "App module id")
		require.Contains(t, env.Output(), roleID.String())
		require.Equal(t, []any{salesID}, env.Conn.Queries()[0].Args)
	})

	t.Run("unknown app module", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewListRolesExecutor(env.Repo, env.Out).Execute(ctx, &ListRolesOptions{ModelDrivenAppID: utils.Ptr(serviceID.String())})
		require.True(t, res.Failed())
		require.ErrorContains(t, res.Err, "app module "+serviceID.String()+": not found")
	})
}
