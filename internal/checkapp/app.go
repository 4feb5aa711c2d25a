// internal/checkapp/app.go

// Package checkapp is the application core of daedalus-check: it runs every
// validation stage that does not require the design engine and renders the
// findings as text or JSON.
package checkapp

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"daedalus-core/helix"
	"daedalus-core/scaffold"

	"daedalus"
	"daedalus/internal/checkcli"
	"daedalus/internal/manifest"
	"daedalus/internal/report"
	"daedalus/internal/validate"
	"daedalus/internal/version"
)

// Finding is one check outcome for one design request.
type Finding struct {
	Project string `json:"project"`
	Check   string `json:"check"`
	Status  string `json:"status"` // ok | fail | skipped
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`

	err error
}

// Run parses argv, checks the request(s) and writes the report.
// Exit codes: 0 all checks passed, 1 at least one failed, 2 usage error,
// 3 write failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := checkcli.NewFlagSet("daedalus-check")
	fs.SetOutput(outw)

	opts, err := checkcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "daedalus-check version %s\n", version.Version)
		return 0
	}

	reqs, err := requestsFrom(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	var findings []Finding
	failed := false
	for _, req := range reqs {
		fr := checkRequest(req, opts.NoProbe)
		for _, f := range fr {
			if f.Status == "fail" {
				failed = true
			}
		}
		findings = append(findings, fr...)
	}

	switch opts.Output {
	case "json":
		enc := json.NewEncoder(outw)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	default:
		if !opts.Quiet {
			renderText(outw, findings)
		}
	}

	if failed {
		return 1
	}
	return 0
}

// requestsFrom builds the request list from either the manifest or the
// single-request flags.
func requestsFrom(opts checkcli.Options) ([]daedalus.Request, error) {
	if opts.Manifest != "" {
		return manifest.Load(opts.Manifest)
	}
	form, err := helix.Parse(opts.Form)
	if err != nil {
		return nil, err
	}
	return []daedalus.Request{{
		Project:      opts.Project,
		GeometryFile: opts.Geometry,
		Form:         form,
		Turns:        opts.Turns,
		Scaffold:     scaffold.Parse(opts.Scaffold),
		OutputDir:    opts.OutputDir,
	}}, nil
}

// checkRequest runs the engine-free validation stages for one request.
func checkRequest(req daedalus.Request, noProbe bool) []Finding {
	req = req.WithDefaults()
	var out []Finding
	add := func(check, detail string, err error) {
		f := Finding{Project: req.Project, Check: check, Status: "ok", Detail: detail}
		if err != nil {
			f.Status = "fail"
			f.Detail = ""
			f.err = err
			f.Error = err.Error()
		}
		out = append(out, f)
	}

	add("geometry", req.GeometryFile, validate.GeometryFile(req.GeometryFile))

	cfg, err := helix.Resolve(req.Form, req.Turns)
	detail := ""
	if err == nil {
		detail = fmt.Sprintf("%s, %d turns: min edge %d nt, twist %d", req.Form, req.Turns, cfg.MinEdgeLen, cfg.Twist)
	}
	add("helix", detail, err)

	add("scaffold", req.Scaffold.String(), scaffold.Validate(req.Scaffold))

	if noProbe {
		out = append(out, Finding{Project: req.Project, Check: "output", Status: "skipped", Detail: "write probe disabled"})
	} else {
		dir, err := validate.OutputDir(req.OutputDir, req.Project)
		add("output", dir, err)
	}
	return out
}

func renderText(w io.Writer, findings []Finding) {
	current := ""
	for _, f := range findings {
		if f.Project != current {
			current = f.Project
			report.Stage(w, current, "")
		}
		switch f.Status {
		case "ok":
			report.OK(w, f.Check, f.Detail)
		case "skipped":
			report.Skip(w, f.Check, f.Detail)
		default:
			report.Fail(w, f.Check, f.err)
		}
	}
}
