package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dshills/padstorm/internal/store"
)

// RunShow prints the mapping file in its serialized form.
func RunShow(args []string, stdout, stderr io.Writer) int {
	var opts commonOptions
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	addCommonFlags(fs, &opts)
	if !parseArgs(fs, args, stderr) {
		return ExitCommandError
	}

	path, _, err := opts.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	pad, err := store.Read(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	if err := store.Fprint(stdout, pad); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	return ExitSuccess
}
