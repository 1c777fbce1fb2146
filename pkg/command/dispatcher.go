package command

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/pkg/errors"
)

// Dispatcher routes bound options to the executor registered for their type.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher returns a Dispatcher backed by r.
func NewDispatcher(r *Registry) *Dispatcher {
	return &Dispatcher{registry: r}
}

// Dispatch runs the executor for opts and returns its result.
//
// A panic raised by the executor is recovered and reported as a failed result
// so one misbehaving command cannot take down an interactive session. A
// context that is already done short-circuits before the executor runs.
func (d *Dispatcher) Dispatch(ctx context.Context, opts Options) (res Result) {
	t := reflect.TypeOf(opts)
	h, ok := d.registry.Handler(t)
	if !ok {
		return Fail("unable to run command", &ConfigurationError{Reason: "no executor registered for " + typeName(t)})
	}

	if err := ctx.Err(); err != nil {
		return Fail("command cancelled", err)
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Command panicked", "options", typeName(t), "panic", rec)
			res = Fail("unexpected failure while running command", errors.Errorf("panic: %v", rec))
		}

		slog.Debug("Command finished", "options", typeName(t), "success", res.Success, "elapsed", time.Since(start))
	}()

	res = h.invoke(ctx, opts)
	if !res.Success && res.Message == "" && res.Err == nil {
		res.Message = "command failed"
	}

	return res
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
