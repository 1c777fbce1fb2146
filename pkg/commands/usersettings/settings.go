package usersettings

import (
	"context"
	"strings"

	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/settings"
)

type (
	SetDefaultSolutionOptions struct {
		Name string
	}

	GetDefaultSolutionOptions struct{}

	// SetDefaultSolutionExecutor stores the solution used when --solution is
	// omitted. The solution must exist and be unmanaged.
	SetDefaultSolutionExecutor struct {
		repo  *clickhouse.Repository
		store *settings.Store
		out   *output.Output
	}

	GetDefaultSolutionExecutor struct {
		store *settings.Store
		out   *output.Output
	}
)

func (o *SetDefaultSolutionOptions) Define(s *command.Schema) {
	s.String(&o.Name, "name", "n", command.Required(), command.Help("The unique name of the solution."))
}

func (o *GetDefaultSolutionOptions) Define(*command.Schema) {}

func NewSetDefaultSolutionExecutor(repo *clickhouse.Repository, store *settings.Store, out *output.Output) *SetDefaultSolutionExecutor {
	return &SetDefaultSolutionExecutor{repo: repo, store: store, out: out}
}

func (e *SetDefaultSolutionExecutor) Execute(ctx context.Context, opts *SetDefaultSolutionOptions) command.Result {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return command.Fail("The solution name cannot be empty", nil)
	}

	done := e.out.Progress("Connecting to ClickHouse")
	client, err := e.repo.GetCurrentConnection(ctx)
	done(err)
	if err != nil {
		return command.Fail("Error while setting the default solution", err)
	}

	solution, err := e.repo.ResolveSolution(ctx, client, name)
	if err != nil {
		return command.Fail("Error while setting the default solution", err)
	}

	if err := e.store.SetDefaultSolution(solution.UniqueName); err != nil {
		return command.Fail("Error while setting the default solution", err)
	}

	return command.Successf("Default solution set to %s", solution.UniqueName)
}

func NewGetDefaultSolutionExecutor(store *settings.Store, out *output.Output) *GetDefaultSolutionExecutor {
	return &GetDefaultSolutionExecutor{store: store, out: out}
}

func (e *GetDefaultSolutionExecutor) Execute(_ context.Context, _ *GetDefaultSolutionOptions) command.Result {
	name, err := e.store.DefaultSolution()
	if err != nil {
		return command.Fail("Error while reading the default solution", err)
	}

	if name == "" {
		e.out.WriteLine("No default solution set", output.Yellow)
		return command.Success()
	}

	e.out.Write("Default solution: ", output.Default).WriteLine(name, output.Cyan)
	return command.Success()
}
