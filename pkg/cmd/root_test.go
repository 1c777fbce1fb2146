package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/pseudomuto/tablectl/pkg/cmd"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/shell"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type listOptions struct {
	Verbose bool
	ID      *string
}

func (o *listOptions) Define(s *command.Schema) {
	s.Bool(&o.Verbose, "verbose", "v")
	s.NullableString(&o.ID, "id", "i")
}

type fixture struct {
	app    *cli.Command
	cfg    *config.Config
	out    *bytes.Buffer
	called []*listOptions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{cfg: config.Default(), out: new(bytes.Buffer)}

	registry, err := command.NewRegistry(
		[]command.Descriptor{command.NewDescriptor[listOptions]("appmodule", "list", "Lists app modules")},
		[]command.Handler{
			command.Handle[*listOptions](command.ExecutorFunc[*listOptions](func(_ context.Context, o *listOptions) command.Result {
				f.called = append(f.called, o)
				if o.ID != nil && *o.ID == "missing" {
					return command.Fail("No records found", nil)
				}
				return command.Success()
			})),
		},
		command.Namespace{Name: "appmodule", Help: "Lists the available model-driven apps"},
	)
	require.NoError(t, err)

	out := output.New(f.out, "never")
	f.app = New(Params{
		Config:   f.cfg,
		Output:   out,
		Registry: registry,
		Shell:    shell.New(registry, command.NewBinder(), command.NewDispatcher(registry), out),
		Version:  &Version{Version: "test"},
	})

	return f
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tablectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestRoot_RunOnce(t *testing.T) {
	path := writeConfig(t, "clickhouse:\n  dsn: clickhouse://db:9000/default\n")

	t.Run("runs a namespace command", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.Run(context.Background(), PrepareArgs([]string{"tablectl", "-c", path, "appmodule", "list", "-v"}))
		require.NoError(t, err)
		require.Equal(t, 0, ExitCode(err))
		require.Len(t, f.called, 1)
		require.True(t, f.called[0].Verbose)
		require.Equal(t, "clickhouse://db:9000/default", f.cfg.ClickHouse.DSN)
		require.Contains(t, f.out.String(), "Done")
	})

	t.Run("dsn flag overrides the config file", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.Run(context.Background(), PrepareArgs([]string{
			"tablectl", "--config", path, "--dsn", "clickhouse://other:9000/x", "appmodule", "list", "--id", "Sales Hub",
		}))
		require.NoError(t, err)
		require.Equal(t, "clickhouse://other:9000/x", f.cfg.ClickHouse.DSN)
		require.Len(t, f.called, 1)
		require.Equal(t, "Sales Hub", *f.called[0].ID)
	})

	t.Run("failures exit with status 1", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.Run(context.Background(), PrepareArgs([]string{"tablectl", "-c", path, "appmodule", "list", "--id", "missing"}))
		require.Error(t, err)
		require.Equal(t, 1, ExitCode(err))
		require.Contains(t, f.out.String(), "Error: No records found")
	})

	t.Run("unknown namespaces are reported with suggestions", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.Run(context.Background(), PrepareArgs([]string{"tablectl", "-c", path, "appmodul", "list", "-v"}))
		require.Equal(t, 1, ExitCode(err))
		require.Empty(t, f.called)
		require.Contains(t, f.out.String(), "did you mean: appmodule?")
	})

	t.Run("help is answered by the shell", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.Run(context.Background(), PrepareArgs([]string{"tablectl", "-c", path, "appmodule", "list", "--help"}))
		require.NoError(t, err)
		require.Empty(t, f.called)
		require.Contains(t, f.out.String(), "Usage: appmodule list [options]")
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.Run(context.Background(), PrepareArgs([]string{"tablectl", "-c", "/does/not/exist.yaml", "appmodule", "list"}))
		require.ErrorContains(t, err, "failed to open file")
		require.Equal(t, 1, ExitCode(err))
		require.Empty(t, f.called)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		f := newFixture(t)
		bad := writeConfig(t, "output:\n  color: sometimes\n")

		err := f.app.Run(context.Background(), PrepareArgs([]string{"tablectl", "-c", bad, "appmodule", "list"}))
		require.ErrorContains(t, err, "invalid color mode")
		require.Empty(t, f.called)
	})
}

func TestPrepareArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no arguments",
			args: []string{"tablectl"},
			want: []string{"tablectl"},
		},
		{
			name: "global flags only",
			args: []string{"tablectl", "-v", "--version"},
			want: []string{"tablectl", "-v", "--version"},
		},
		{
			name: "command options are never global flags",
			args: []string{"tablectl", "column", "create", "-c", "x", "-v"},
			want: []string{"tablectl", "--", "column", "create", "-c", "x", "-v"},
		},
		{
			name: "flag values are skipped",
			args: []string{"tablectl", "-c", "dev.yaml", "--dsn", "clickhouse://db", "-v", "appmodule", "list"},
			want: []string{"tablectl", "-c", "dev.yaml", "--dsn", "clickhouse://db", "-v", "--", "appmodule", "list"},
		},
		{
			name: "inline flag values",
			args: []string{"tablectl", "--config=dev.yaml", "appmodule", "list"},
			want: []string{"tablectl", "--config=dev.yaml", "--", "appmodule", "list"},
		},
		{
			name: "existing separator",
			args: []string{"tablectl", "--", "appmodule", "list"},
			want: []string{"tablectl", "--", "appmodule", "list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PrepareArgs(tt.args))
		})
	}
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 3, ExitCode(cli.Exit("boom", 3)))
	require.Equal(t, 1, ExitCode(os.ErrNotExist))
}
