// internal/checkcli/options.go
package checkcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"daedalus/internal/version"
)

// Options holds all CLI flags for daedalus-check.
type Options struct {
	// Request
	Project   string
	Geometry  string
	Form      string
	Turns     int
	Scaffold  string
	OutputDir string

	// Batch
	Manifest string

	// Output
	Output  string // text | json
	NoProbe bool   // skip output-directory creation/write probe
	Quiet   bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with grouped usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), name, fs) }
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Request
	fs.StringVar(&opt.Project, "project", "", "project name (scopes output files) [*]")
	fs.StringVar(&opt.Project, "n", "", "alias of --project")
	fs.StringVar(&opt.Geometry, "geometry", "", "PLY geometry file [*]")
	fs.StringVar(&opt.Geometry, "g", "", "alias of --geometry")
	fs.StringVar(&opt.Form, "form", "Bform", "helical form: Aform | Bform | Hybrid | Twisted [Bform]")
	fs.IntVar(&opt.Turns, "turns", 4, "helical turns per edge [4]")
	fs.StringVar(&opt.Scaffold, "scaffold", "", "scaffold sequence, sequence file, or M13.txt [engine default]")
	fs.StringVar(&opt.OutputDir, "output-dir", "", "output directory [current directory]")

	// Batch
	fs.StringVar(&opt.Manifest, "manifest", "", "YAML manifest of designs (replaces the request flags)")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "report format: text | json [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.NoProbe, "no-probe", false, "skip output directory creation and write probe [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the report, exit code only [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	usingManifest := opt.Manifest != ""
	usingFlags := opt.Project != "" || opt.Geometry != ""
	switch {
	case usingManifest && usingFlags:
		return opt, errors.New("--manifest conflicts with --project/--geometry")
	case !usingManifest && (opt.Project == "" || opt.Geometry == ""):
		return opt, errors.New("provide --manifest or both --project and --geometry")
	}
	if opt.Turns < 1 {
		return opt, errors.New("--turns must be >= 1")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

func usage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – preflight validation for DAEDALUS origami design requests\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage:\n  %s --project NAME --geometry FILE [flags]\n  %s --manifest designs.yaml [flags]\n", name, name)

	fmt.Fprintln(out, "\nRequest:")
	fmt.Fprintln(out, "  -n, --project string        Project name (scopes output files) [*]")
	fmt.Fprintln(out, "  -g, --geometry file         PLY geometry file [*]")
	fmt.Fprintf(out, "      --form string           Helical form: Aform | Bform | Hybrid | Twisted [%s]\n", def("form"))
	fmt.Fprintf(out, "      --turns int             Helical turns per edge [%s]\n", def("turns"))
	fmt.Fprintln(out, "      --scaffold string       Scaffold sequence, sequence file, or M13.txt [engine default]")
	fmt.Fprintln(out, "      --output-dir dir        Output directory [current directory]")

	fmt.Fprintln(out, "\nBatch:")
	fmt.Fprintln(out, "      --manifest file         YAML manifest of designs (replaces the request flags)")

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Report format: text | json [%s]\n", def("output"))
	fmt.Fprintf(out, "      --no-probe              Skip output directory creation and write probe [%s]\n", def("no-probe"))
	fmt.Fprintf(out, "  -q, --quiet                 Suppress the report, exit code only [%s]\n", def("quiet"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
