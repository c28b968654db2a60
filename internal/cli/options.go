// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"faidx/internal/cliutil"
	"faidx/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles  []string
	IndexPath string

	// Operation (exactly one)
	Create bool
	List   bool
	Base   string // REF:POS
	Seq    string // REF:START-STOP
	Length string // REF

	// Output
	Output string // text | json | jsonl | fasta
	Wrap   int
	Header bool // true unless --no-header

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: indexed random access to FASTA files

Version: %s

Usage: %s [flags] <fasta...>
Coordinates on the command line are 1-based and inclusive.

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers all flags, separates flag-like args from positionals,
// and parses the flags. Positionals (the FASTA paths) are returned for
// AfterParse; flags and paths may be freely intermixed on the command line.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, []string, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVar(&opt.IndexPath, "index", "", "index file path (default <fasta>.fai)")
	fs.StringVar(&opt.IndexPath, "x", "", "alias of --index")

	fs.BoolVar(&opt.Create, "create", false, "build (or rebuild) the index [false]")
	fs.BoolVar(&opt.Create, "c", false, "alias of --create")
	fs.BoolVar(&opt.List, "list", false, "print the index table [false]")
	fs.BoolVar(&opt.List, "l", false, "alias of --list")
	fs.StringVar(&opt.Base, "base", "", "fetch a single base: REF:POS")
	fs.StringVar(&opt.Seq, "seq", "", "fetch a subsequence: REF:START-STOP")
	fs.StringVar(&opt.Length, "length", "", "report a record's length: REF")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | fasta [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.IntVar(&opt.Wrap, "wrap", 60, "line width for fasta output [60]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.IntVar(&opt.Threads, "threads", 0, "parallel index builds (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	fs.BoolVar(&opt.Quiet, "quiet", false, "log errors only [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log debug detail [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, nil, err
	}
	if help {
		return opt, nil, flag.ErrHelp
	}
	opt.Header = !noHeader
	return opt, posArgs, nil
}

// AfterParse attaches the (glob-expanded) positional FASTA paths and runs
// shared validation. Call it with the positionals split off before Parse.
func AfterParse(opt *Options, posArgs []string) error {
	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return err
	}
	opt.SeqFiles = append(opt.SeqFiles, exp...)
	return Validate(opt)
}

// Validate applies the CLI invariants shared by all call sites.
func Validate(opt *Options) error {
	ops := 0
	for _, on := range []bool{opt.Create, opt.List, opt.Base != "", opt.Seq != "", opt.Length != ""} {
		if on {
			ops++
		}
	}
	switch {
	case ops == 0:
		return errors.New("provide one of --create, --list, --base, --seq, --length")
	case ops > 1:
		return errors.New("--create, --list, --base, --seq and --length are mutually exclusive")
	}
	if len(opt.SeqFiles) == 0 {
		return errors.New("at least one FASTA file is required")
	}
	if !opt.Create && len(opt.SeqFiles) > 1 {
		return errors.New("queries take exactly one FASTA file")
	}
	if opt.Create && opt.IndexPath != "" && len(opt.SeqFiles) > 1 {
		return errors.New("--index with --create takes exactly one FASTA file")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if opt.Wrap < 1 {
		return errors.New("--wrap must be ≥ 1")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	case "fasta":
		if opt.Seq == "" {
			return errors.New("--output fasta is only valid with --seq")
		}
	default:
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.IndexPath != "" && strings.TrimSpace(opt.IndexPath) == "" {
		return errors.New("--index must not be blank")
	}
	return nil
}
