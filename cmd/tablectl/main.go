package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/cmd"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/commands"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/settings"
	"github.com/pseudomuto/tablectl/pkg/shell"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	os.Exit(run())
}

func run() int {
	var root *cli.Command
	app := fx.New(
		fx.NopLogger,
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		config.Module,
		settings.Module,
		clickhouse.Module,
		output.Module,
		command.Module,
		commands.Module,
		shell.Module,
		cmd.Module,
		fx.Populate(&root),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	// SIGINT is left to the shell, which cancels only the running command.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	err := root.Run(ctx, cmd.PrepareArgs(os.Args))
	if err != nil && err.Error() != "" {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	if stopErr := app.Stop(context.Background()); stopErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", stopErr)
	}

	return cmd.ExitCode(err)
}
