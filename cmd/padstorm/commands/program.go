package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dshills/padstorm/internal/device"
	"github.com/dshills/padstorm/internal/validate"
)

// RunProgram validates the mapping file and writes it to a connected
// device. With -dry-run the write goes to an in-memory recorder instead,
// so the full pipeline can be exercised without hardware.
func RunProgram(args []string, stdout, stderr io.Writer) int {
	var opts commonOptions
	var dryRun bool
	fs := flag.NewFlagSet("program", flag.ContinueOnError)
	addCommonFlags(fs, &opts)
	fs.BoolVar(&dryRun, "dry-run", false, "validate and record instead of writing to hardware")
	if !parseArgs(fs, args, stderr) {
		return ExitCommandError
	}

	path, productID, err := opts.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	pad, warnings, err := validate.File(path, productID)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitValidation
	}
	for _, w := range warnings {
		fmt.Fprintf(stdout, "Warning: %s\n", w)
	}

	kb, err := openKeyboard(productID, dryRun)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitDevice
	}
	defer kb.Close()

	if err := kb.Program(pad); err != nil {
		fmt.Fprintf(stderr, "Error: programming failed: %v\n", err)
		return ExitDevice
	}

	if dryRun {
		fmt.Fprintln(stdout, "Dry run: configuration accepted.")
	} else {
		fmt.Fprintln(stdout, "Device programmed.")
	}
	return ExitSuccess
}

// openKeyboard connects to the target device, or to a recorder for dry
// runs.
func openKeyboard(productID *uint16, dryRun bool) (device.Keyboard, error) {
	if dryRun {
		return device.NewRecorder(), nil
	}
	var product uint16
	if productID != nil {
		product = *productID
	}
	return device.Open(device.VendorID, product)
}
