package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dshills/padstorm/internal/validate"
)

// RunValidate checks the mapping file against the target device family.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	var opts commonOptions
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	addCommonFlags(fs, &opts)
	if !parseArgs(fs, args, stderr) {
		return ExitCommandError
	}

	path, productID, err := opts.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	_, warnings, err := validate.File(path, productID)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitValidation
	}

	for _, w := range warnings {
		fmt.Fprintf(stdout, "Warning: %s\n", w)
	}
	fmt.Fprintln(stdout, "Configuration is valid.")
	return ExitSuccess
}
