package command

import "fmt"

// Result is the outcome of running a command.
type Result struct {
	// Success reports whether the command completed.
	Success bool

	// Message is the human-readable outcome. For failures it is the headline
	// shown to the user.
	Message string

	// Err is the underlying cause of a failure, if any.
	Err error
}

// Success returns a successful result with no message.
func Success() Result {
	return Result{Success: true}
}

// Successf returns a successful result with a formatted message.
func Successf(format string, args ...any) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Fail returns a failed result. cause may be nil.
func Fail(message string, cause error) Result {
	return Result{Message: message, Err: cause}
}

// Failed reports whether the result is a failure.
func (r Result) Failed() bool {
	return !r.Success
}

// Summary renders a failed result as a single line of text.
func (r Result) Summary() string {
	switch {
	case r.Success:
		return ""
	case r.Err == nil:
		return r.Message
	case r.Message == "":
		return r.Err.Error()
	default:
		return r.Message + ": " + r.Err.Error()
	}
}
