// Package output renders command results to the console.
//
// Colors and tables are drawn with lipgloss. Whether colors are emitted is
// decided by the configured color mode and whether the writer is a terminal;
// tests write to a bytes.Buffer and always get plain text.
package output
