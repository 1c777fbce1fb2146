package tokenizer

import "strings"

const (
	quote     = '"'
	backslash = '\\'
	caret     = '^'
	space     = ' '
)

// Split breaks a raw command line into tokens using shell-like rules.
//
// Tokens are separated by unquoted spaces. A double quote toggles quoted mode,
// in which spaces are part of the current token. A backslash immediately
// followed by a double quote makes that quote a literal character. Outside of
// quotes, a caret is a Windows-style escape marker: "^^" yields a single
// literal caret, a caret at the very end of the input is kept, and any other
// caret is dropped.
//
// Split never fails. Malformed input, such as an unterminated quote, degrades
// into the most reasonable tokens rather than producing an error.
//
// Example:
//
//	tokens := tokenizer.Split(`column create --table account --name "Full Name"`)
//	// []string{"column", "create", "--table", "account", "--name", "Full Name"}
func Split(raw string) []string {
	var (
		tokens  []string
		current strings.Builder

		quoted     bool
		escaped    bool
		started    bool
		allowCaret bool
	)

	chars := []rune(raw)
	for i := 0; i < len(chars); i++ {
		ch := chars[i]
		hasNext := i+1 < len(chars)

		switch {
		case ch == caret && !quoted:
			switch {
			case allowCaret:
				current.WriteRune(ch)
				started = true
				escaped = false
				allowCaret = false
			case hasNext && chars[i+1] == caret:
				allowCaret = true
			case !hasNext:
				current.WriteRune(ch)
				started = true
				escaped = false
			}
		case escaped:
			current.WriteRune(ch)
			started = true
			escaped = false
		case ch == quote:
			quoted = !quoted
			started = true
		case ch == backslash && hasNext && chars[i+1] == quote:
			escaped = true
		case ch == space && !quoted:
			if started {
				tokens = append(tokens, current.String())
			}
			current.Reset()
			started = false
		default:
			current.WriteRune(ch)
			started = true
		}
	}

	if started {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Join is the inverse of Split: it renders args as a single command line such
// that Split(Join(args)) returns args unchanged.
//
// Arguments that contain no spaces, quotes, carets or backslash-quote pairs
// are emitted verbatim. Everything else is wrapped in double quotes with
// embedded quotes escaped. Trailing backslashes are moved after the closing
// quote so they cannot escape it.
func Join(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = quoteArg(arg)
	}

	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, ` "^`) {
		return arg
	}

	body := strings.TrimRight(arg, `\`)
	trailing := arg[len(body):]

	var sb strings.Builder
	sb.WriteRune(quote)
	sb.WriteString(strings.ReplaceAll(body, `"`, `\"`))
	sb.WriteRune(quote)
	sb.WriteString(trailing)

	return sb.String()
}
