package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/padstorm/internal/store"
	"github.com/dshills/padstorm/internal/validate"
)

// RunWatch validates the mapping file, then revalidates every time it
// changes on disk, until interrupted.
func RunWatch(args []string, stdout, stderr io.Writer) int {
	var opts commonOptions
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	addCommonFlags(fs, &opts)
	if !parseArgs(fs, args, stderr) {
		return ExitCommandError
	}

	path, productID, err := opts.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	// Reject a bad product id before entering the loop.
	if productID != nil {
		if _, err := validate.FamilyForProduct(*productID); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitCommandError
		}
	}

	report(path, productID, stdout)

	w, err := store.Watch(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	defer w.Close()

	fmt.Fprintf(stdout, "Watching %s\n", w.Path())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case <-signals:
			return ExitSuccess
		case err, ok := <-w.Errors():
			if !ok {
				return ExitSuccess
			}
			fmt.Fprintf(stderr, "Watch error: %v\n", err)
		case ev, ok := <-w.Events():
			if !ok {
				return ExitSuccess
			}
			if ev.Op == store.OpRemove || ev.Op == store.OpRename {
				fmt.Fprintf(stdout, "%s: file %s\n", ev.Path, ev.Op)
				continue
			}
			report(path, productID, stdout)
		}
	}
}

// report validates once and prints the verdict.
func report(path string, productID *uint16, stdout io.Writer) {
	_, warnings, err := validate.File(path, productID)
	if err != nil {
		fmt.Fprintf(stdout, "Invalid: %v\n", err)
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(stdout, "Warning: %s\n", w)
	}
	fmt.Fprintln(stdout, "Configuration is valid.")
}
