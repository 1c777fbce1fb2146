// Package tokenizer splits raw command lines into tokens.
//
// The rules mirror the way interactive shells treat quoting so that users can
// pass values containing spaces or quote characters:
//
//	column create --table account --name "Full Name"
//	column create --table account --description "The \"primary\" name"
//
// Carets outside of quotes follow the Windows cmd.exe escape convention, which
// keeps command lines pasted from Windows terminals working unchanged.
//
// Join performs the reverse operation and is used to turn a process argument
// vector back into a single line that tokenizes to the same arguments.
package tokenizer
