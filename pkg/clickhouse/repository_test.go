package clickhouse_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/clickhouse/clickhousetest"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/settings"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, conn *clickhousetest.Conn) (*Repository, *config.Config) {
	t.Helper()

	cfg := config.Default()
	cfg.SettingsFile = filepath.Join(t.TempDir(), "settings.yaml")
	cfg.ClickHouse.Database = "meta"
	cfg.ClickHouse.Cluster = "prod"

	return NewRepository(cfg, settings.NewStore(cfg), WithDialer(conn.Dialer())), cfg
}

func TestRepository_GetCurrentConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("connects once and caches", func(t *testing.T) {
		dials := 0
		conn := clickhousetest.NewConn()
		cfg := config.Default()
		repo := NewRepository(cfg, settings.NewStore(cfg), WithDialer(func(ctx context.Context, c config.ClickHouse) (Conn, error) {
			dials++
			return conn.Dialer()(ctx, c)
		}))

		first, err := repo.GetCurrentConnection(ctx)
		require.NoError(t, err)
		second, err := repo.GetCurrentConnection(ctx)
		require.NoError(t, err)

		require.Same(t, first, second)
		require.Equal(t, 1, dials)
		require.Equal(t, cfg.ClickHouse.Database, first.Database())
	})

	t.Run("reads config at first connection", func(t *testing.T) {
		repo, cfg := newRepository(t, clickhousetest.NewConn())
		cfg.ClickHouse.Database = "changed"

		client, err := repo.GetCurrentConnection(ctx)
		require.NoError(t, err)
		require.Equal(t, "changed", client.Database())
		require.Equal(t, "prod", client.Cluster())
	})

	t.Run("failed connections are retried", func(t *testing.T) {
		conn := clickhousetest.NewConn().FailPing(errors.New("connection refused"))
		repo, _ := newRepository(t, conn)

		_, err := repo.GetCurrentConnection(ctx)
		require.ErrorContains(t, err, "connection refused")

		conn.FailPing(nil)
		_, err = repo.GetCurrentConnection(ctx)
		require.NoError(t, err)
	})

	t.Run("close", func(t *testing.T) {
		conn := clickhousetest.NewConn()
		repo, _ := newRepository(t, conn)

		require.NoError(t, repo.Close())
		require.False(t, conn.Closed())

		_, err := repo.GetCurrentConnection(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.Close())
		require.True(t, conn.Closed())
	})
}

func TestRepository_GetCurrentDefaultSolution(t *testing.T) {
	repo, cfg := newRepository(t, clickhousetest.NewConn())

	name, err := repo.GetCurrentDefaultSolution(context.Background())
	require.NoError(t, err)
	require.Empty(t, name)

	require.NoError(t, settings.NewStore(cfg).SetDefaultSolution("core"))
	name, err = repo.GetCurrentDefaultSolution(context.Background())
	require.NoError(t, err)
	require.Equal(t, "core", name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.GetCurrentDefaultSolution(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepository_ResolveSolution(t *testing.T) {
	ctx := context.Background()
	solutionRow := func(managed bool, prefix string) []any {
		return []any{solutionID, "core_platform", "Core Platform", managed, publisherID, "contoso", prefix}
	}

	t.Run("named solution", func(t *testing.T) {
		conn := clickhousetest.NewConn().OnQuery("FROM `meta`.`solution`", solutionRow(false, "core"))
		repo, _ := newRepository(t, conn)
		client, err := repo.GetCurrentConnection(ctx)
		require.NoError(t, err)

		s, err := repo.ResolveSolution(ctx, client, "core_platform")
		require.NoError(t, err)
		require.Equal(t, "core", s.PublisherPrefix)
		require.Equal(t, []any{"core_platform"}, conn.Queries()[0].Args)
	})

	t.Run("falls back to the default solution", func(t *testing.T) {
		conn := clickhousetest.NewConn().OnQuery("FROM `meta`.`solution`", solutionRow(false, "core"))
		repo, cfg := newRepository(t, conn)
		require.NoError(t, settings.NewStore(cfg).SetDefaultSolution("core_platform"))
		client, err := repo.GetCurrentConnection(ctx)
		require.NoError(t, err)

		s, err := repo.ResolveSolution(ctx, client, " ")
		require.NoError(t, err)
		require.Equal(t, solutionID, s.ID)
		require.Equal(t, []any{"core_platform"}, conn.Queries()[0].Args)
	})

	tests := []struct {
		name    string
		solName string
		row     []any
		err     string
	}{
		{name: "no solution", err: "no solution name provided"},
		{name: "unknown solution", solName: "nope", err: "invalid solution name: nope"},
		{name: "managed solution", solName: "core_platform", row: solutionRow(true, "core"), err: "the solution is managed"},
		{name: "missing prefix", solName: "core_platform", row: solutionRow(false, ""), err: "unable to retrieve the publisher prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := clickhousetest.NewConn()
			if tt.row != nil {
				conn.OnQuery("FROM `meta`.`solution`", tt.row)
			}
			repo, _ := newRepository(t, conn)
			client, err := repo.GetCurrentConnection(ctx)
			require.NoError(t, err)

			_, err = repo.ResolveSolution(ctx, client, tt.solName)
			require.ErrorContains(t, err, tt.err)
		})
	}
}
