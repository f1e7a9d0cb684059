// Package main is the entry point for the padstorm macropad tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/padstorm/cmd/padstorm/commands"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return commands.ExitCommandError
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "validate":
		return commands.RunValidate(rest, os.Stdout, os.Stderr)
	case "show":
		return commands.RunShow(rest, os.Stdout, os.Stderr)
	case "program":
		return commands.RunProgram(rest, os.Stdout, os.Stderr)
	case "led":
		return commands.RunLED(rest, os.Stdout, os.Stderr)
	case "watch":
		return commands.RunWatch(rest, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return commands.ExitSuccess
	case "version", "-v", "--version":
		fmt.Printf("padstorm %s (%s)\n", version, commit)
		return commands.ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmd)
		printUsage(os.Stderr)
		return commands.ExitCommandError
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `padstorm - configure and program macropads

Usage:
  padstorm <command> [flags]

Commands:
  validate   Check the mapping file against a device family
  show       Print the mapping file
  program    Validate and write the mapping to a connected device
  led        Apply LED settings and store them in the mapping file
  watch      Revalidate whenever the mapping file changes
  version    Print version information
  help       Print this help

Run "padstorm <command> -h" for command flags.
`)
}
