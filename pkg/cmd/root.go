package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/consts"
	"github.com/pseudomuto/tablectl/pkg/logging"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/shell"
	"github.com/pseudomuto/tablectl/pkg/tokenizer"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Config   *config.Config
		Output   *output.Output
		Registry *command.Registry
		Shell    *shell.Shell
		Version  *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// flagsWithValues are the root flags that consume the following argument.
var flagsWithValues = map[string]bool{
	"--config": true,
	"-config":  true,
	"-c":       true,
	"--dsn":    true,
	"-dsn":     true,
}

// New creates the tablectl root command.
//
// Without arguments it starts the interactive shell. Otherwise the arguments
// after the global flags are run once as "<namespace> <verb> [options]" and
// the process exit code reflects the result.
//
// Global Flags:
//   - --config, -c: the config file (TABLECTL_CONFIG)
//   - --dsn: overrides clickhouse.dsn (TABLECTL_DSN)
//   - --verbose, -v: debug logging
//   - --version: print version information
//
// Example usage:
//
//	app := cmd.New(p)
//	err := app.Run(ctx, cmd.PrepareArgs(os.Args))
func New(p Params) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	cli.VersionFlag = &cli.BoolFlag{
		Name:        "version",
		Usage:       "print the version",
		HideDefault: true,
		Local:       true,
	}

	var commands []*cli.Command
	for ns := range p.Registry.Namespaces() {
		commands = append(commands, namespaceCommand(p, ns))
	}

	return &cli.Command{
		Name:  "tablectl",
		Usage: "Manage ClickHouse tables, solutions and app modules",
		Description: `tablectl runs administrative commands of the form
"<namespace> <verb> [options]" against ClickHouse. Run it without arguments
for an interactive shell, or pass a command to run it once.`,
		Version:         p.Version.Version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the tablectl config file",
				Sources: cli.EnvVars("TABLECTL_CONFIG"),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "the ClickHouse DSN, overrides the config file",
				Sources: cli.EnvVars("TABLECTL_DSN"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, configure(p, cmd)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cmd.Args().Present() {
				return p.Shell.Run(ctx)
			}

			return runOnce(ctx, p.Shell, cmd.Args().Slice())
		},
		Commands: commands,
		ExitErrHandler: func(context.Context, *cli.Command, error) {
			// exit codes are decided by ExitCode
		},
	}
}

func namespaceCommand(p Params, ns string) *cli.Command {
	usage := p.Registry.NamespaceHelp(ns)
	if usage == "" {
		usage = "commands in the " + ns + " namespace"
	}

	return &cli.Command{
		Name:            ns,
		Usage:           usage,
		UsageText:       "tablectl " + ns + " <verb> [options]",
		SkipFlagParsing: true,
		HideHelp:        true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runOnce(ctx, p.Shell, append([]string{ns}, cmd.Args().Slice()...))
		},
	}
}

func configure(p Params, cmd *cli.Command) error {
	if err := p.Config.Load(cmd.String("config"), cmd.IsSet("config")); err != nil {
		return err
	}

	if dsn := cmd.String("dsn"); dsn != "" {
		p.Config.ClickHouse.DSN = dsn
	}

	if err := p.Config.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if err := logging.Setup(os.Stderr, p.Config.Log, cmd.Bool("verbose")); err != nil {
		return err
	}

	p.Output.SetColorMode(p.Config.Output.Color)
	return nil
}

// runOnce executes a single command. An interrupt cancels the command.
func runOnce(ctx context.Context, s *shell.Shell, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	res := s.Execute(ctx, tokenizer.Split(tokenizer.Join(args)))
	if res.Failed() {
		return cli.Exit("", 1)
	}

	return nil
}

// PrepareArgs inserts "--" ahead of the first argument that is not a global
// flag, so that command options such as -t or --name are never parsed as
// global flags.
func PrepareArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[0])
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case flagsWithValues[arg]:
			out = append(out, arg)
			if i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case strings.HasPrefix(arg, "-"):
			out = append(out, arg)
		default:
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}

	return out
}

// ExitCode returns the process exit code for the error returned by running
// the root command.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return 1
}
