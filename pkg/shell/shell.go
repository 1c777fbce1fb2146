package shell

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/consts"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/tokenizer"
)

type (
	// Shell feeds input lines through the command pipeline: tokenize, resolve,
	// bind, dispatch and render.
	Shell struct {
		registry   *command.Registry
		binder     *command.Binder
		dispatcher *command.Dispatcher
		out        *output.Output

		openReader func(Completer) (LineReader, error)
		interrupts <-chan os.Signal
	}

	// Option customizes a Shell.
	Option func(*Shell)

	state string
)

const (
	stateAwaitingInput state = "AwaitingInput"
	stateTokenizing    state = "Tokenizing"
	stateResolving     state = "Resolving"
	stateBinding       state = "Binding"
	stateExecuting     state = "Executing"
	stateRendering     state = "Rendering"
	stateExiting       state = "Exiting"
)

// WithReader makes Run read from r instead of the terminal.
func WithReader(r LineReader) Option {
	return func(s *Shell) {
		s.openReader = func(Completer) (LineReader, error) { return r, nil }
	}
}

// WithHistoryFile makes Run persist terminal input history to path.
func WithHistoryFile(path string) Option {
	return func(s *Shell) {
		s.openReader = func(c Completer) (LineReader, error) { return NewLineReader(path, c) }
	}
}

// WithInterrupts makes Run cancel the running command whenever a value is
// received on ch, instead of listening for SIGINT.
func WithInterrupts(ch <-chan os.Signal) Option {
	return func(s *Shell) { s.interrupts = ch }
}

// New creates a Shell over the given pipeline stages.
func New(
	registry *command.Registry,
	binder *command.Binder,
	dispatcher *command.Dispatcher,
	out *output.Output,
	opts ...Option,
) *Shell {
	s := &Shell{
		registry:   registry,
		binder:     binder,
		dispatcher: dispatcher,
		out:        out,
	}

	WithHistoryFile("")(s)
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Execute runs one pass of the pipeline over tokens and renders the outcome.
// The first token names the namespace and the second the verb; the rest are
// bound to the command's options.
//
// Built-in help is answered without resolving a command. Every failure is
// returned as a failed Result and never as a panic.
func (s *Shell) Execute(ctx context.Context, tokens []string) command.Result {
	if res, ok := s.builtin(tokens); ok {
		return res
	}

	res := s.execute(ctx, tokens)

	transition(stateRendering)
	s.render(res)

	return res
}

func (s *Shell) execute(ctx context.Context, tokens []string) command.Result {
	transition(stateResolving, "tokens", len(tokens))
	d, err := s.registry.Resolve(at(tokens, 0), at(tokens, 1))
	if err != nil {
		return command.Fail("", err)
	}

	transition(stateBinding, "command", d.Key.String())
	opts, err := s.binder.Bind(d, tail(tokens, 2))
	if err != nil {
		return command.Fail("", err)
	}

	transition(stateExecuting, "command", d.Key.String())
	return s.dispatcher.Dispatch(ctx, opts)
}

// Run reads lines until exit, end of input or a configuration fault, which is
// returned. A failing command never ends the loop.
//
// An interrupt while a command runs cancels only that command. Ctrl+C at the
// prompt discards the current line.
func (s *Shell) Run(ctx context.Context) error {
	session := uuid.New()
	slog.Debug("Starting interactive session", "session", session)

	r, err := s.openReader(s.Complete)
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}
	defer func() {
		if err := r.Close(); err != nil {
			slog.Warn("Failed to save input history", "error", err)
		}
	}()

	interrupts := s.interrupts
	if interrupts == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		defer signal.Stop(ch)
		interrupts = ch
	}

	for {
		if ctx.Err() != nil {
			transition(stateExiting, "session", session)
			return nil
		}

		transition(stateAwaitingInput, "session", session)
		line, err := r.ReadLine(consts.Prompt)
		switch {
		case errors.Is(err, ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			transition(stateExiting, "session", session)
			s.out.Newline()
			return nil
		case err != nil:
			return errors.Wrap(err, "failed to read input")
		}

		transition(stateTokenizing, "session", session)
		tokens := tokenizer.Split(line)
		if len(tokens) == 0 {
			continue
		}

		if isExit(tokens) {
			transition(stateExiting, "session", session)
			return nil
		}

		res := s.executeInterruptible(ctx, interrupts, tokens)
		if res.Failed() && command.IsConfigurationError(errors.Cause(res.Err)) {
			return res.Err
		}
	}
}

func (s *Shell) executeInterruptible(ctx context.Context, interrupts <-chan os.Signal, tokens []string) command.Result {
	drain(interrupts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-interrupts:
			slog.Debug("Interrupt received, cancelling command")
			cancel()
		case <-done:
		}
	}()

	return s.Execute(ctx, tokens)
}

// drain discards interrupts received while no command was running.
func drain(interrupts <-chan os.Signal) {
	for {
		select {
		case <-interrupts:
			slog.Debug("Discarding interrupt received outside of a command")
		default:
			return
		}
	}
}

// render prints a successful result as its message (or Done) in green, and a
// failure as a red headline followed by its indented cause chain.
func (s *Shell) render(res command.Result) {
	if res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Done"
		}
		s.out.WriteLine(msg, output.Green)
		return
	}

	headline, causes := res.Message, causeChain(res.Err)
	if headline == "" && len(causes) > 0 {
		headline, causes = causes[0], causes[1:]
	}

	s.out.WriteLine("Error: "+headline, output.Red)
	for i, c := range causes {
		s.out.WriteLine(strings.Repeat("  ", i+1)+c, output.Red)
	}
}

// causeChain lists the message contributed by each layer of err, outermost
// first. Layers that only attach a stack trace are skipped.
func causeChain(err error) []string {
	var chain []string
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			if msg == next.Error() {
				err = next
				continue
			}
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}

		chain = append(chain, msg)
		err = next
	}

	return chain
}

func transition(to state, args ...any) {
	slog.Debug("Shell state", append([]any{"state", string(to)}, args...)...)
}

func isExit(tokens []string) bool {
	if len(tokens) != 1 {
		return false
	}

	switch strings.ToLower(tokens[0]) {
	case "exit", "quit":
		return true
	}

	return false
}

func at(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

func tail(tokens []string, from int) []string {
	if from < len(tokens) {
		return tokens[from:]
	}
	return nil
}
