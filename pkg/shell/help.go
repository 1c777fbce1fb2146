package shell

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
)

const helpFlag = "--help"

// builtin answers help and exit requests. ok is false when tokens name a
// regular command.
func (s *Shell) builtin(tokens []string) (res command.Result, ok bool) {
	if len(tokens) == 0 {
		return command.Result{}, false
	}

	switch {
	case isExit(tokens):
		return command.Success(), true
	case strings.EqualFold(tokens[0], "help"):
		res = s.help(tail(tokens, 1))
	case s.helpRequested(tokens):
		res = s.help(withoutHelpFlag(tokens))
	default:
		return command.Result{}, false
	}

	if res.Failed() {
		s.render(res)
	}

	return res, true
}

func (s *Shell) help(target []string) command.Result {
	switch len(target) {
	case 0:
		s.listNamespaces()
		return command.Success()
	case 1:
		return s.describeNamespace(target[0])
	default:
		d, err := s.registry.Resolve(target[0], target[1])
		if err != nil {
			return command.Fail("", err)
		}
		s.describeCommand(d)
		return command.Success()
	}
}

func (s *Shell) listNamespaces() {
	s.out.WriteLine("Usage: <namespace> <verb> [options]", output.Default).Newline()

	var rows [][]string
	for ns := range s.registry.Namespaces() {
		rows = append(rows, []string{ns, s.registry.NamespaceHelp(ns)})
	}
	s.out.WriteTable([]string{"Namespace", "Description"}, rows, output.HighlightHeader)

	s.out.Newline().
		WriteLine("Type 'help <namespace>' for its verbs, or 'exit' to quit.", output.Gray)
}

func (s *Shell) describeNamespace(ns string) command.Result {
	if !s.registry.HasNamespace(ns) {
		return command.Fail(fmt.Sprintf("unknown namespace %q, type 'help' to list namespaces", ns), nil)
	}

	ns = strings.ToLower(ns)
	if text := s.registry.NamespaceHelp(ns); text != "" {
		s.out.WriteLine(text, output.Default).Newline()
	}

	var rows [][]string
	for d := range s.registry.Verbs(ns) {
		aliases := make([]string, len(d.Aliases))
		for i, a := range d.Aliases {
			aliases[i] = a.String()
		}
		rows = append(rows, []string{d.Key.Verb, d.Help, strings.Join(aliases, ", ")})
	}
	s.out.WriteTable([]string{"Verb", "Description", "Aliases"}, rows, output.HighlightHeader)

	return command.Success()
}

func (s *Shell) describeCommand(d *command.Descriptor) {
	if d.Help != "" {
		s.out.WriteLine(d.Help, output.Default).Newline()
	}
	s.out.WriteLine("Usage: "+d.Key.String()+" [options]", output.Default).Newline()

	var rows [][]string
	for _, o := range d.Schema.Options() {
		rows = append(rows, []string{optionNames(o), optionType(o), optionDefault(o), optionHelp(o)})
	}
	s.out.WriteTable([]string{"Option", "Type", "Default", "Description"}, rows, output.HighlightHeader)
}

func optionNames(o *command.Option) string {
	if o.Short == "" {
		return "--" + o.Long
	}
	return "--" + o.Long + ", -" + o.Short
}

func optionType(o *command.Option) string {
	if o.Nullable {
		return o.Kind.String() + "?"
	}
	return o.Kind.String()
}

func optionDefault(o *command.Option) string {
	if o.Required {
		return ""
	}
	return o.Default.String()
}

func optionHelp(o *command.Option) string {
	text := o.Help
	if o.Required {
		text = strings.TrimSpace("(required) " + text)
	}

	if len(o.Values) > 0 && !o.SuppressValuesHelp {
		text = strings.TrimSpace(text + " [" + strings.Join(o.Values, ", ") + "]")
	}

	return text
}

// helpRequested reports whether --help appears in an option position. Once
// the command resolves, tokens consumed as option values are skipped.
func (s *Shell) helpRequested(tokens []string) bool {
	if len(tokens) < 2 {
		return hasHelpFlag(tokens)
	}

	d, err := s.registry.Resolve(tokens[0], tokens[1])
	if err != nil {
		return hasHelpFlag(tokens)
	}

	args := tokens[2:]
	for i := 0; i < len(args); i++ {
		switch {
		case strings.EqualFold(args[i], helpFlag):
			return true
		case s.binder.TakesValue(d, args[i]):
			i++
		}
	}

	return false
}

func hasHelpFlag(tokens []string) bool {
	for _, t := range tokens {
		if strings.EqualFold(t, helpFlag) {
			return true
		}
	}
	return false
}

func withoutHelpFlag(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !strings.EqualFold(t, helpFlag) {
			out = append(out, t)
		}
	}

	if len(out) > 2 {
		out = out[:2]
	}

	return out
}
