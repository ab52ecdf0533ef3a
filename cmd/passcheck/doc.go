// Package passcheck provides the command-line interface for passcheck.
// The root command analyzes a password given as an argument, read from the
// clipboard, or typed at a masked prompt; subcommands cover batch analysis,
// the audit history, and config helpers.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/passcheck/cmd/passcheck"
//	func main() { passcheck.Execute() }
package passcheck
