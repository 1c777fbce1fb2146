package connection_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/commands/commandstest"
	. "github.com/pseudomuto/tablectl/pkg/commands/connection"
	"github.com/stretchr/testify/require"
)

func TestInfoExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("prints server details", func(t *testing.T) {
		env := commandstest.New(t)
		env.Config.ClickHouse.Cluster = "prod"
		env.Conn.OnQuery("SELECT version()", []any{"24.3.2.23"})

		res := NewInfoExecutor(env.Repo, env.Out).Execute(ctx, &InfoOptions{})
		require.True(t, res.Success, res.Summary())

		out := env.Output()
		require.Contains(t, out, "24.3.2.23")
		require.Contains(t, out, "meta")
		require.Contains(t, out, "prod")
		require.Contains(t, out, "yes")
	})

	t.Run("without cluster", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.OnQuery("SELECT version()", []any{"21.8.15.7"})

		res := NewInfoExecutor(env.Repo, env.Out).Execute(ctx, &InfoOptions{})
		require.True(t, res.Success, res.Summary())
		require.Contains(t, env.Output(), "(none)")
		require.Contains(t, env.Output(), "no")
	})

	t.Run("version failure", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.FailQuery("SELECT version()", errors.New("broken pipe"))

		res := NewInfoExecutor(env.Repo, env.Out).Execute(ctx, &InfoOptions{})
		require.True(t, res.Failed())
		require.ErrorContains(t, res.Err, "broken pipe")
	})
}

func TestInitExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the metadata tables", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewInitExecutor(env.Repo, env.Out).Execute(ctx, &InitOptions{})
		require.True(t, res.Success, res.Summary())
		require.Equal(t, "Metadata database meta is ready", res.Message)

		execs := env.Conn.Execs()
		require.NotEmpty(t, execs)
		require.Equal(t, "CREATE DATABASE IF NOT EXISTS `meta`", execs[0].SQL)
		for _, e := range execs[1:] {
			require.True(t, strings.HasPrefix(e.SQL, "CREATE TABLE IF NOT EXISTS `meta`."), e.SQL)
		}
	})

	t.Run("dry run", func(t *testing.T) {
		env := commandstest.New(t)

		res := NewInitExecutor(env.Repo, env.Out).Execute(ctx, &InitOptions{DryRun: true})
		require.True(t, res.Success)
		require.Empty(t, env.Conn.Execs())
		require.Contains(t, env.Output(), "CREATE DATABASE IF NOT EXISTS `meta`;\n")
	})

	t.Run("failure", func(t *testing.T) {
		env := commandstest.New(t)
		env.Conn.FailExec("CREATE TABLE", errors.New("readonly mode"))

		res := NewInitExecutor(env.Repo, env.Out).Execute(ctx, &InitOptions{})
		require.True(t, res.Failed())
		require.ErrorContains(t, res.Err, "readonly mode")
		require.Contains(t, env.Output(), "Failed")
	})
}
