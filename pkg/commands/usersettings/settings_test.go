package usersettings_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/commands/commandstest"
	. "github.com/pseudomuto/tablectl/pkg/commands/usersettings"
	"github.com/stretchr/testify/require"
)

func solutionRow(managed bool) []any {
	return []any{uuid.New(), "crm", "CRM", managed, uuid.New(), "contoso", "core"}
}

func TestSetDefaultSolutionExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the solution", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.OnQuery("FROM `meta`.`solution` AS s", solutionRow(false))

		res := NewSetDefaultSolutionExecutor(env.Repo, env.Settings, env.Out).Execute(ctx, &SetDefaultSolutionOptions{Name: " crm "})
		require.True(t, res.Success, res.Summary())
		require.Equal(t, "Default solution set to crm", res.Message)

		name, err := env.Settings.DefaultSolution()
		require.NoError(t, err)
		require.Equal(t, "crm", name)
		require.Equal(t, []any{"crm"}, env.Conn.Queries()[0].Args)
	})

	t.Run("unknown solution", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewSetDefaultSolutionExecutor(env.Repo, env.Settings, env.Out).Execute(ctx, &SetDefaultSolutionOptions{Name: "nope"})
		require.True(t, res.Failed())
		require.EqualError(t, res.Err, "invalid solution name: nope")

		name, err := env.Settings.DefaultSolution()
		require.NoError(t, err)
		require.Empty(t, name)
	})

	t.Run("managed solution", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.OnQuery("FROM `meta`.`solution` AS s", solutionRow(true))

		res := NewSetDefaultSolutionExecutor(env.Repo, env.Settings, env.Out).Execute(ctx, &SetDefaultSolutionOptions{Name: "crm"})
		require.True(t, res.Failed())
		require.ErrorIs(t, res.Err, clickhouse.ErrManagedSolution)
	})

	t.Run("blank name", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewSetDefaultSolutionExecutor(env.Repo, env.Settings, env.Out).Execute(ctx, &SetDefaultSolutionOptions{Name: "  "})
		require.True(t, res.Failed())
		require.Equal(t, "The solution name cannot be empty", res.Message)
		require.Empty(t, env.Output())
	})
}

func TestGetDefaultSolutionExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("unset", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewGetDefaultSolutionExecutor(env.Settings, env.Out).Execute(ctx, &GetDefaultSolutionOptions{})
		require.True(t, res.Success)
		require.Equal(t, "No default solution set\n", env.Output())
	})

	t.Run("set", func(t *testing.T) {
		env := commandstest.New(t)
		require.NoError(t, env.Settings.SetDefaultSolution("crm"))

		res := NewGetDefaultSolutionExecutor(env.Settings, env.Out).Execute(ctx, &GetDefaultSolutionOptions{})
		require.True(t, res.Success)
		require.Equal(t, "Default solution: crm\n", env.Output())
	})
}
