// Package commands implements the padstorm subcommands. Each command is a
// RunX function taking its arguments and output writers and returning a
// process exit code, so commands stay testable without a terminal.
package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dshills/padstorm/internal/settings"
)

// Exit codes shared by every command.
const (
	ExitSuccess      = 0
	ExitCommandError = 1
	ExitValidation   = 2
	ExitDevice       = 3
)

// commonOptions are the flags every command accepts.
type commonOptions struct {
	Config   string
	Product  string
	Settings string
}

// addCommonFlags registers the shared flags on a command's flag set.
func addCommonFlags(fs *flag.FlagSet, opts *commonOptions) {
	fs.StringVar(&opts.Config, "config", "", "mapping file path (default from settings)")
	fs.StringVar(&opts.Product, "product", "", "target product id, e.g. 0x8890 (default from settings)")
	fs.StringVar(&opts.Settings, "settings", settings.DefaultPath(), "settings file path")
}

// resolve merges flags over the settings file and environment, returning
// the mapping path and the optional target product id.
func (o *commonOptions) resolve() (string, *uint16, error) {
	s, err := settings.Load(o.Settings)
	if err != nil {
		return "", nil, err
	}

	path := s.Mapping
	if o.Config != "" {
		path = o.Config
	}

	if o.Product != "" {
		id, err := settings.ParseProductID(o.Product)
		if err != nil {
			return "", nil, err
		}
		return path, &id, nil
	}

	id, ok, err := s.ProductID()
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return path, nil, nil
	}
	return path, &id, nil
}

// parseArgs runs a flag set and reports usage errors on stderr.
func parseArgs(fs *flag.FlagSet, args []string, stderr io.Writer) bool {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return false
	}
	return true
}
