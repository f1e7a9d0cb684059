package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dshills/padstorm/internal/mapping"
	"github.com/dshills/padstorm/internal/store"
	"github.com/dshills/padstorm/internal/validate"
)

// RunLED stores new LED settings in the mapping file and applies them to
// the device.
func RunLED(args []string, stdout, stderr io.Writer) int {
	var opts commonOptions
	var (
		mode   uint
		layer  uint
		color  string
		dryRun bool
	)
	fs := flag.NewFlagSet("led", flag.ContinueOnError)
	addCommonFlags(fs, &opts)
	fs.UintVar(&mode, "mode", 1, "LED mode number (device-family specific)")
	fs.UintVar(&layer, "layer", 1, "layer the mode applies to")
	fs.StringVar(&color, "color", "cyan", "LED color")
	fs.BoolVar(&dryRun, "dry-run", false, "record the LED command instead of writing to hardware")
	if !parseArgs(fs, args, stderr) {
		return ExitCommandError
	}

	ledColor, ok := mapping.LedColorFromName(color)
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown led color %q\n", color)
		return ExitCommandError
	}
	if mode > 0xff || layer > 0xff {
		fmt.Fprintln(stderr, "Error: mode and layer must fit in a byte")
		return ExitCommandError
	}

	path, productID, err := opts.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	pad, err := store.Read(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	pad.LedSettings = &mapping.LedSettings{Mode: uint8(mode), Layer: uint8(layer), Color: ledColor}

	fam := validate.Default()
	if productID != nil {
		if fam, err = validate.FamilyForProduct(*productID); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitCommandError
		}
	}
	warnings, err := validate.Macropad(pad, fam)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitValidation
	}
	for _, w := range warnings {
		fmt.Fprintf(stdout, "Warning: %s\n", w)
	}

	if err := store.Save(pad, path); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	kb, err := openKeyboard(productID, dryRun)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitDevice
	}
	defer kb.Close()

	if err := kb.SetLED(uint8(mode), uint8(layer), ledColor); err != nil {
		fmt.Fprintf(stderr, "Error: setting LED failed: %v\n", err)
		return ExitDevice
	}

	fmt.Fprintln(stdout, "LED settings applied.")
	return ExitSuccess
}
