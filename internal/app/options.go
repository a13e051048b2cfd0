package app

import (
	"flag"
	"fmt"
	"io"

	"github.com/skyblockcheck/checker/internal/domain"
)

// Output formats accepted by -format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Options are the command-line settings of one run.
type Options struct {
	// Identifier is the optional positional username or UUID.
	Identifier string
	Format     string
	RawJSON    bool
	Debug      bool
}

// ParseArgs parses command-line arguments, excluding the program name.
func ParseArgs(args []string, stderr io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("skyblock-checker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: skyblock-checker [flags] [username|uuid]")
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.Debug, "debug", false, "enable debug output")
	fs.BoolVar(&opts.RawJSON, "json", false, "print the raw JSON response")
	fs.StringVar(&opts.Format, "format", FormatText, "summary format: text or yaml")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	switch opts.Format {
	case FormatText, FormatYAML:
	default:
		return Options{}, domain.ErrInvalidInput(fmt.Sprintf("unknown format %q", opts.Format))
	}
	if fs.NArg() > 1 {
		return Options{}, domain.ErrInvalidInput("expected at most one username or UUID")
	}
	opts.Identifier = fs.Arg(0)
	return opts, nil
}
