package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/consts"
)

// ErrInterrupted is returned by a LineReader when the user presses Ctrl+C at
// the prompt.
var ErrInterrupted = errors.New("input interrupted")

type (
	// LineReader reads one line of interactive input at a time. ReadLine
	// returns io.EOF at the end of input and ErrInterrupted when the line was
	// abandoned.
	LineReader interface {
		ReadLine(prompt string) (string, error)
		Close() error
	}

	// Completer returns the full-line completions for line.
	Completer func(line string) []string

	linerReader struct {
		state       *liner.State
		historyFile string
	}
)

// NewLineReader returns a terminal LineReader with line editing, tab
// completion and history persisted to historyFile. An existing history file
// is loaded immediately; Close writes it back.
func NewLineReader(historyFile string, complete Completer) (LineReader, error) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if complete != nil {
		state.SetCompleter(liner.Completer(complete))
	}

	r := &linerReader{state: state, historyFile: historyFile}
	if historyFile == "" {
		return r, nil
	}

	f, err := os.Open(historyFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return r, nil
	case err != nil:
		_ = state.Close()
		return nil, errors.Wrapf(err, "failed to open history file %s", historyFile)
	}
	defer func() { _ = f.Close() }()

	if _, err := state.ReadHistory(f); err != nil {
		_ = state.Close()
		return nil, errors.Wrapf(err, "failed to read history file %s", historyFile)
	}

	return r, nil
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}

	return line, nil
}

func (r *linerReader) Close() error {
	defer func() { _ = r.state.Close() }()
	if r.historyFile == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.historyFile), consts.ModeDir); err != nil {
		return errors.Wrap(err, "failed to create history directory")
	}

	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.ModePrivateFile)
	if err != nil {
		return errors.Wrapf(err, "failed to open history file %s", r.historyFile)
	}
	defer func() { _ = f.Close() }()

	if _, err := r.state.WriteHistory(f); err != nil {
		return errors.Wrapf(err, "failed to write history file %s", r.historyFile)
	}

	return nil
}
