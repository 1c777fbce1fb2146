package command

import (
	"fmt"
	"strings"
)

type (
	// ConfigurationError is returned when the set of registered commands is
	// invalid. It is a startup error and is never recoverable at runtime.
	ConfigurationError struct {
		Reason string
	}

	// UnknownCommandError is returned when no command matches the typed
	// namespace and verb.
	UnknownCommandError struct {
		Namespace   string
		Verb        string
		Suggestions []string
	}

	// BindingErrorKind classifies a BindingError.
	BindingErrorKind int

	// BindingError is returned when tokens cannot be bound to a command's
	// options.
	BindingError struct {
		Kind    BindingErrorKind
		Command Key

		// Option is the long name of the offending option, when there is one.
		Option string

		// Token is the offending token or value.
		Token string

		// Reason describes why a value could not be coerced.
		Reason string
	}
)

const (
	// MissingRequired means a required option was not supplied.
	MissingRequired BindingErrorKind = iota
	// InvalidValue means a value could not be coerced to the option's kind.
	InvalidValue
	// UnknownOption means a token looked like an option but matched none.
	UnknownOption
	// MissingValue means an option that takes a value was the last token.
	MissingValue
	// UnexpectedArgument means a bare token appeared where an option was expected.
	UnexpectedArgument
)

// IsConfigurationError reports whether err is a *ConfigurationError.
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

func (e *ConfigurationError) Error() string {
	return "invalid command configuration: " + e.Reason
}

func (e *UnknownCommandError) Error() string {
	var sb strings.Builder

	switch {
	case e.Namespace == "":
		sb.WriteString("no command specified")
	case e.Verb == "":
		fmt.Fprintf(&sb, "no verb specified for %q", e.Namespace)
	default:
		fmt.Fprintf(&sb, "unknown command %q", e.Namespace+" "+e.Verb)
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&sb, ", did you mean: %s?", strings.Join(e.Suggestions, ", "))
	}

	return sb.String()
}

func (e *BindingError) Error() string {
	var msg string
	switch e.Kind {
	case MissingRequired:
		msg = fmt.Sprintf("the option --%s is required", e.Option)
	case InvalidValue:
		msg = fmt.Sprintf("invalid value %q for option --%s", e.Token, e.Option)
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
	case UnknownOption:
		msg = fmt.Sprintf("unknown option %q", e.Token)
	case MissingValue:
		msg = fmt.Sprintf("the option --%s requires a value", e.Option)
	case UnexpectedArgument:
		msg = fmt.Sprintf("unexpected argument %q", e.Token)
	default:
		msg = "invalid arguments"
	}

	if e.Command != (Key{}) {
		return e.Command.String() + ": " + msg
	}

	return msg
}
