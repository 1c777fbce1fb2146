package shell

import (
	"strings"

	"github.com/pseudomuto/tablectl/pkg/tokenizer"
)

// Complete returns full-line completions for a partially typed line. The
// first word completes to a namespace (or help/exit), the second to a verb of
// that namespace, and later words to the command's long option names.
func (s *Shell) Complete(line string) []string {
	words := tokenizer.Split(line)
	partial := ""
	if !strings.HasSuffix(line, " ") && len(words) > 0 {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	var candidates []string
	switch len(words) {
	case 0:
		candidates = append(candidates, "help", "exit", "quit")
		for ns := range s.registry.Namespaces() {
			candidates = append(candidates, ns)
		}
	case 1:
		for d := range s.registry.Verbs(words[0]) {
			candidates = append(candidates, d.Key.Verb)
		}
	default:
		d, err := s.registry.Resolve(words[0], words[1])
		if err != nil {
			return nil
		}
		for _, o := range d.Schema.Options() {
			candidates = append(candidates, "--"+o.Long)
		}
		candidates = append(candidates, helpFlag)
	}

	prefix := tokenizer.Join(words)
	if prefix != "" {
		prefix += " "
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(partial)) {
			out = append(out, prefix+c)
		}
	}

	return out
}
