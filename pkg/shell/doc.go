// Package shell implements the interactive command loop and the single
// pipeline pass shared with one-shot invocations.
//
// A line is split into tokens, the first two select a command from the
// registry, the rest are bound to its options and the bound options are
// dispatched to the command's executor. The outcome is rendered to the
// console: "Done" or the result message in green on success, and a red
// "Error:" headline followed by the indented cause chain on failure.
//
// The loop ends on exit, quit, end of input (Ctrl+D) or a configuration
// fault. Ctrl+C at the prompt discards the line, and Ctrl+C while a command
// runs cancels that command only.
//
// Built-in help:
//
//	help                       lists namespaces
//	help <namespace>           lists the verbs of a namespace
//	help <namespace> <verb>    describes a command's options
//	<namespace> <verb> --help  same as above
package shell
